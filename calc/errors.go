package calc

import "github.com/zeebo/errs"

// Error is the class of calculator errors.
var Error = errs.Class("calc")

// ErrInvalidExpr is returned when an expression cannot be tokenized, ordered
// or reduced to a single value.
var ErrInvalidExpr = errs.Class("invalid expression")
