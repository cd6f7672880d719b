package calc

import "errors"

var (
	// ErrUnknownFunction is returned when no function is registered under a name.
	ErrUnknownFunction = errors.New("algocomplex/calc: unknown function")

	// ErrMissingOperand is returned when a binary function is applied without
	// its second operand, or a parameterized function without its parameter.
	ErrMissingOperand = errors.New("algocomplex/calc: missing operand")

	// ErrNonIntegerExponent is returned when powi receives a fractional or
	// out-of-range exponent.
	ErrNonIntegerExponent = errors.New("algocomplex/calc: powi exponent is not an integer")
)
