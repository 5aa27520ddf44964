package schemas

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const runSchema = "Run"

// Run is a single recorded run. Distance is in meters and speed in meters per second.
type Run struct {
	name     string
	start    time.Time
	distance float64
	speed    float64
}

type runJSON struct {
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	Distance float64   `json:"distance"`
	Speed    float64   `json:"speed"`
}

// runInput defers decoding of start so every malformed timestamp is reported
// against the field.
type runInput struct {
	Name     string          `json:"name"`
	Start    json.RawMessage `json:"start"`
	Distance float64         `json:"distance"`
	Speed    float64         `json:"speed"`
}

// NewRun builds a validated Run.
func NewRun(name string, start time.Time, distance, speed float64) (*Run, error) {
	r := &Run{
		name:     strings.TrimSpace(name),
		start:    start,
		distance: distance,
		speed:    speed,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Run) Name() string {
	return r.name
}

func (r *Run) Start() time.Time {
	return r.start
}

func (r *Run) Distance() float64 {
	return r.distance
}

func (r *Run) Speed() float64 {
	return r.speed
}

// Pace is a placeholder for minutes and seconds per kilometer.
func (r *Run) Pace() string {
	return `X'Y"`
}

// ImageName picks the header image for the time of day the run started.
func (r *Run) ImageName() string {
	hour := r.start.Hour()
	prefix := "day"
	switch {
	case hour <= 4 || hour > 16:
		prefix = "evening"
	case hour <= 11:
		prefix = "morning"
	}
	return prefix + "-run.jpg"
}

func (r *Run) SetName(name string) error {
	return r.assign(func(c *Run) {
		c.name = strings.TrimSpace(name)
	})
}

func (r *Run) SetStart(start time.Time) error {
	return r.assign(func(c *Run) {
		c.start = start
	})
}

func (r *Run) SetDistance(distance float64) error {
	return r.assign(func(c *Run) {
		c.distance = distance
	})
}

func (r *Run) SetSpeed(speed float64) error {
	return r.assign(func(c *Run) {
		c.speed = speed
	})
}

// Validate checks every field and reports all failures at once.
func (r *Run) Validate() error {
	var errs []error
	if !nonNegative(r.distance) {
		errs = append(errs, fieldError("distance", ErrNegativeValue))
	}
	if !nonNegative(r.speed) {
		errs = append(errs, fieldError("speed", ErrNegativeValue))
	}
	return newValidationError(runSchema, errs...)
}

func (r *Run) assign(mutate func(*Run)) error {
	candidate := *r
	mutate(&candidate)
	if err := candidate.Validate(); err != nil {
		return err
	}
	*r = candidate
	return nil
}

func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal(runJSON{
		Name:     r.name,
		Start:    r.start,
		Distance: r.distance,
		Speed:    r.speed,
	})
}

func (r *Run) UnmarshalJSON(data []byte) error {
	var wire runInput
	if err := json.Unmarshal(data, &wire); err != nil {
		return decodeError(runSchema, err)
	}
	start, err := parseStart(wire.Start)
	if err != nil {
		return newValidationError(runSchema, err)
	}
	decoded, err := NewRun(wire.Name, start, wire.Distance, wire.Speed)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

// parseStart accepts a missing or null start as the zero time and otherwise
// requires an RFC 3339 string.
func parseStart(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return time.Time{}, fieldError("start", fmt.Errorf("%w: expected RFC 3339 string, got %s", ErrInvalidType, raw))
	}
	start, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, fieldError("start", fmt.Errorf("%w: %q is not a timestamp", ErrInvalidType, text))
	}
	return start, nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
