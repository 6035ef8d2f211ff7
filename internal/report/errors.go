package report

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure mode of a report run. Callers match them
// with errors.Is; none of them is retried.
var (
	ErrFileNotFound = errors.New("report file not found")
	ErrRead         = errors.New("report file could not be read")
	ErrParse        = errors.New("report field is not a 32-bit integer")
	ErrEmptyInput   = errors.New("no values found in report")
	ErrNoCandidate  = errors.New("no candidate pair sums to target")
)

// ParseError describes the field that could not be parsed.
type ParseError struct {
	Field  string // raw field text
	Line   int    // 1-based line of the record
	Column int    // 1-based field index within the record
	Err    error  // underlying strconv or csv error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v: %v", e.Line, ErrParse, e.Err)
	}
	return fmt.Sprintf("line %d, field %d: %v: %q", e.Line, e.Column, ErrParse, e.Field)
}

// Unwrap returns the underlying error for errors.As compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse so callers need not know about the concrete type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
