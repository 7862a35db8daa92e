package timeslot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStart is matched (see errors.Is) by errors returned when
	// a start value is neither nil, a recognized instant nor a string.
	ErrInvalidStart = errors.New("start must be nil, a time instant or a date/time string")
	// ErrUnparsableStart is matched by errors returned when a start
	// string cannot be parsed.
	ErrUnparsableStart = errors.New("unparsable start")
	// ErrInvalidDuration is matched by errors returned when hours or
	// minutes are negative.
	ErrInvalidDuration = errors.New("hours and minutes must be non-negative")
)

// StartError is returned when a start value cannot be turned into an
// instant.
type StartError struct {
	Value any   // the rejected value
	Err   error // parse error, nil if Value type is not supported
}

// Error returns the error as a string.
func (e *StartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %s", ErrUnparsableStart, e.Value, e.Err)
	}
	return fmt.Sprintf("%s, not %T", ErrInvalidStart, e.Value)
}

// Unwrap returns the underlying parse error, if any.
func (e *StartError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match ErrInvalidStart or ErrUnparsableStart
// depending on the cause.
func (e *StartError) Is(target error) bool {
	if e.Err != nil {
		return target == ErrUnparsableStart
	}
	return target == ErrInvalidStart
}

// DurationError is returned when a negative duration component is
// passed to a constructor.
type DurationError struct {
	Hours   int
	Minutes int
}

// Error returns the error as a string.
func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid duration %dh%02dm: %s", e.Hours, e.Minutes, ErrInvalidDuration)
}

// Is allows errors.Is to match ErrInvalidDuration.
func (e *DurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}
