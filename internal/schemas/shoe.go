package schemas

import (
	"encoding/json"
	"fmt"
	"strings"
)

const shoeSchema = "Shoe"

// Shoe is a pair of running shoes tracked by the log.
type Shoe struct {
	name   string
	color  Color
	status Status
}

type shoeJSON struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Status string `json:"status"`
}

// NewShoe builds a validated Shoe. An empty status means StatusDefault.
func NewShoe(name string, color Color, status Status) (*Shoe, error) {
	s := &Shoe{
		name:   strings.TrimSpace(name),
		color:  Color(strings.TrimSpace(string(color))),
		status: normalizeStatus(status),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shoe) Name() string {
	return s.name
}

func (s *Shoe) Color() Color {
	return s.color
}

func (s *Shoe) Status() Status {
	return s.status
}

// StartTime is a placeholder until shoes carry a first-use timestamp.
func (s *Shoe) StartTime() string {
	return "start_time"
}

func (s *Shoe) SetName(name string) error {
	return s.assign(func(c *Shoe) {
		c.name = strings.TrimSpace(name)
	})
}

func (s *Shoe) SetColor(color Color) error {
	return s.assign(func(c *Shoe) {
		c.color = Color(strings.TrimSpace(string(color)))
	})
}

// SetStatus assigns status; a blank status resets it to StatusDefault, as in NewShoe.
func (s *Shoe) SetStatus(status Status) error {
	return s.assign(func(c *Shoe) {
		c.status = normalizeStatus(status)
	})
}

// Validate checks every field and reports all failures at once.
func (s *Shoe) Validate() error {
	var errs []error
	if s.name == "" {
		errs = append(errs, fieldError("name", ErrEmptyField))
	}
	if !s.color.Valid() {
		errs = append(errs, fieldError("color", fmt.Errorf("%w: %q", ErrInvalidColor, string(s.color))))
	}
	if !s.status.Valid() {
		errs = append(errs, fieldError("status", fmt.Errorf("%w: %q", ErrInvalidStatus, string(s.status))))
	}
	return newValidationError(shoeSchema, errs...)
}

func normalizeStatus(status Status) Status {
	trimmed := Status(strings.TrimSpace(string(status)))
	if trimmed == "" {
		return StatusDefault
	}
	return trimmed
}

func (s *Shoe) assign(mutate func(*Shoe)) error {
	candidate := *s
	mutate(&candidate)
	if err := candidate.Validate(); err != nil {
		return err
	}
	*s = candidate
	return nil
}

func (s Shoe) MarshalJSON() ([]byte, error) {
	return json.Marshal(shoeJSON{
		Name:   s.name,
		Color:  string(s.color),
		Status: string(s.status),
	})
}

func (s *Shoe) UnmarshalJSON(data []byte) error {
	var wire shoeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return decodeError(shoeSchema, err)
	}
	decoded, err := NewShoe(wire.Name, Color(wire.Color), Status(wire.Status))
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
