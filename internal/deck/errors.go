package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the raw text is blank or whitespace-only.
var ErrEmptyInput = errors.New("input is empty")

// DecodeError wraps the JSON decoder diagnostic for malformed input.
// The underlying message is surfaced verbatim to the user.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("invalid JSON: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// UnrecognizedShapeError means the input decoded fine but matches none of
// the three recognized deck shapes, or yielded zero records. This is a
// usage error, not corruption, and is reported at lower severity.
type UnrecognizedShapeError struct {
	Reason string
}

func (e *UnrecognizedShapeError) Error() string { return e.Reason }
