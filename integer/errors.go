package integer

import "github.com/zeebo/errs"

// Error is the class of codec errors.
var Error = errs.Class("integer")

var (
	// ErrInvalidFormat is returned when text is not a decimal integer.
	ErrInvalidFormat = errs.Class("invalid format")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errs.Class("division by zero")
)
