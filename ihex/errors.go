package ihex

import (
	"fmt"
)

// ParseError indicates that a line of the input could not be decoded
// into a valid record.
type ParseError struct {
	// Line is the 1-based line number of the failing line
	Line int

	// Err describes what made the line invalid
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
