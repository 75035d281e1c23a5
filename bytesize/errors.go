package bytesize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is returned when the numeric part of an expression is
	// empty or is not a representable non-negative number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnknownUnit is returned when the unit suffix is not in the unit table.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrOverflow is returned when a result does not fit in 64 bits.
	ErrOverflow = errors.New("byte size overflows uint64")
	// ErrUnderflow is returned when a subtraction would go below zero.
	ErrUnderflow = errors.New("byte size underflows zero")
	// ErrTypeMismatch is returned when decoding a value that is neither an
	// unsigned integer nor a string.
	ErrTypeMismatch = errors.New("expected an unsigned integer or a string")
)

// ParseError records a failed Parse. Err is one of ErrInvalidNumber,
// ErrUnknownUnit or ErrOverflow and can be tested with errors.Is.
type ParseError struct {
	Input  string // the text given to Parse
	Suffix string // the unit suffix, when parsing got that far
	Err    error  // the stage that failed
	Cause  error  // the underlying conversion error, if any
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownUnit):
		return fmt.Sprintf("bytesize: parsing %q: unknown unit %q", e.Input, e.Suffix)
	case e.Cause != nil:
		return fmt.Sprintf("bytesize: parsing %q: %v: %v", e.Input, e.Err, e.Cause)
	default:
		return fmt.Sprintf("bytesize: parsing %q: %v", e.Input, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
