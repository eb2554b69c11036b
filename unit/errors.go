package unit

import "errors"

// Contract violations surfaced by the algebra. Callers match with errors.Is;
// every returned error wraps exactly one of these sentinels.
var (
	// ErrIncompatibleUnits marks an additive combination of two quantities
	// whose dimensional signatures differ.
	ErrIncompatibleUnits = errors.New("incompatible units")

	// ErrUnsupportedOperand marks an operator applied to a type outside the
	// closed set of Base, Derived, Composite, int and float64.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrUnsupportedComparison marks an equality test against a type the
	// operand cannot be compared with.
	ErrUnsupportedComparison = errors.New("unsupported comparison")

	// ErrUndefinedOperation marks a division whose right operand is a
	// Composite on the unit-combination path.
	ErrUndefinedOperation = errors.New("undefined operation")
)
