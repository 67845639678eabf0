package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrNonPositiveFrequency = errors.New("frequency must be > 0")
	ErrEmptySequence        = errors.New("empty sample sequence")
	ErrBadDimensions        = errors.New("non-positive canvas dimensions")
	ErrUnknownKind          = errors.New("unknown waveform kind")
	ErrUnknownScheme        = errors.New("unknown modulation scheme")
	ErrPresetNotFound       = errors.New("preset not found")
	ErrBadPhase             = errors.New("unparseable phase expression")
)

// RenderError reports malformed input to the ASCII renderer. Numeric
// degeneracies (zero amplitude, flat signals) never error; only a shape
// problem with the request itself does.
type RenderError struct {
	Cols  int
	Rows  int
	Cause error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %dx%d: %s", e.Cols, e.Rows, e.Cause)
	}
	return fmt.Sprintf("render %dx%d: invalid canvas shape", e.Cols, e.Rows)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a RenderError
func NewRenderError(cols, rows int, cause error) *RenderError {
	return &RenderError{Cols: cols, Rows: rows, Cause: cause}
}
