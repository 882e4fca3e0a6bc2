package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedState is returned when a state encoding has the wrong shape or non-numeric fields.
var ErrMalformedState = errors.New("malformed state")

// ErrBoatMissing is returned when neither bank carries the boat flag.
var ErrBoatMissing = errors.New("boat flag missing")

// ErrBoatAmbiguous is returned when both banks carry the boat flag.
var ErrBoatAmbiguous = errors.New("boat flag set on both banks")

// ErrSolutionNotFound is returned when a key cannot be found in a solution cache.
var ErrSolutionNotFound = errors.New("solution not found")

// ParseError describes a failure to decode a persisted state.
type ParseError struct {
	// Line is the 1-based line the error was found on, or 0 if it concerns the whole input.
	Line  int
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse state: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse state: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
