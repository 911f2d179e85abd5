package driving

import (
	"context"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// CalculatorService evaluates vector expressions.
type CalculatorService interface {
	// Evaluate parses and evaluates an expression and records it in history.
	Evaluate(ctx context.Context, expression string) (*domain.Calculation, error)

	// Angle returns the angle between two vector literals in whole degrees.
	Angle(ctx context.Context, a, b string) (int, error)

	// Magnitude returns the Euclidean length of a vector literal.
	Magnitude(ctx context.Context, vector string) (float64, error)
}
