package domain

import "time"

// Calculation is a recorded evaluation of an expression.
type Calculation struct {
	// ID uniquely identifies the calculation.
	ID string

	// Expression is the normalised input text.
	Expression string

	// Result is the formatted result (bare scalar or bracketed vector).
	Result string

	// CreatedAt is when the calculation was evaluated.
	CreatedAt time.Time
}
