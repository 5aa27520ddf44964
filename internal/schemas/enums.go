package schemas

import (
	"fmt"
	"slices"
	"strings"
)

// Color of a shoe. The value doubles as the name of the shoe image asset.
type Color string

const (
	ColorBlack  Color = "black"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorMixed  Color = "mixed"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
)

var colors = []Color{ColorBlack, ColorBlue, ColorGreen, ColorMixed, ColorOrange, ColorRed, ColorYellow}

// Colors returns every known color.
func Colors() []Color {
	return slices.Clone(colors)
}

// ParseColor trims raw and returns the matching Color.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.TrimSpace(raw))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}
	return c, nil
}

func (c Color) Valid() bool {
	return slices.Contains(colors, c)
}

func (c Color) String() string {
	return string(c)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	return []byte(c), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Status drives the style of a shoe's wear progress bar.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
	StatusDefault Status = "default"
)

var statuses = []Status{StatusOK, StatusWarning, StatusDanger, StatusDefault}

// Statuses returns every known status.
func Statuses() []Status {
	return slices.Clone(statuses)
}

// ParseStatus trims raw and returns the matching Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
