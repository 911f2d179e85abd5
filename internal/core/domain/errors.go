package domain

import "errors"

// Domain errors represent arithmetic and formatting failures.
// Callers match them with errors.Is; wrapped errors carry the context.
var (
	// ErrFormat indicates a malformed scalar, vector or expression.
	ErrFormat = errors.New("invalid format")

	// ErrDimensionMismatch indicates vector operands of unequal or unsupported dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOperator indicates an unknown operator, or two operands with no operator between them.
	ErrOperator = errors.New("invalid operator")

	// ErrDivisionByZero indicates a zero denominator or a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates a result that does not fit in a 64-bit integer.
	ErrOverflow = errors.New("integer overflow")

	// ErrUndefinedAngle indicates an angle involving a zero-length vector.
	ErrUndefinedAngle = errors.New("angle undefined for zero-length vector")

	// Service Errors.

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or out-of-range input to a service.
	ErrInvalidInput = errors.New("invalid input")
)
