package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrInvalidColor is returned when a value is not one of the known shoe colors.
	ErrInvalidColor = errors.New("invalid shoe color")
	// ErrInvalidStatus is returned when a value is not one of the known statuses.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrEmptyField is returned when a required string field is blank.
	ErrEmptyField = errors.New("must not be empty")
	// ErrNegativeValue is returned when a numeric field is negative or not finite.
	ErrNegativeValue = errors.New("must be a finite non-negative number")
	// ErrInvalidType is returned when decoded input has the wrong type for a field.
	ErrInvalidType = errors.New("invalid type")
)

// FieldError ties a validation failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError reports every field of a record that failed validation.
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields returns the individual field failures in the order they were found.
func (e *ValidationError) Fields() []*FieldError {
	var fields []*FieldError
	for _, err := range multierr.Errors(e.Err) {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			fields = append(fields, fieldErr)
		}
	}
	return fields
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// newValidationError combines the non-nil errors into a ValidationError, or returns nil.
func newValidationError(schema string, errs ...error) error {
	err := multierr.Combine(errs...)
	if err == nil {
		return nil
	}
	return &ValidationError{Schema: schema, Err: err}
}

// decodeError maps JSON decoding failures caused by mistyped input onto ValidationError.
func decodeError(schema string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = strings.ToLower(schema)
		}
		return newValidationError(schema, fieldError(field,
			fmt.Errorf("%w: expected %s, got %s", ErrInvalidType, typeErr.Type, typeErr.Value)))
	}

	return fmt.Errorf("decode %s: %w", schema, err)
}
