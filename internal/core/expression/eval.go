package expression

import (
	"strings"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// Evaluate parses and evaluates input, returning the formatted result.
// A 1-dimensional result is printed as a bare scalar.
func Evaluate(input string) (string, error) {
	v, err := EvaluateVector(input)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// EvaluateVector parses and evaluates input.
func EvaluateVector(input string) (domain.Vector, error) {
	node, err := Parse(input)
	if err != nil {
		return domain.Vector{}, err
	}
	return node.Eval()
}

// Format renders v as a bare scalar when it has one component and as a
// bracketed vector otherwise.
func Format(v domain.Vector) string {
	if v.Dimension() == 1 {
		return v.X().String()
	}
	return v.String()
}

// Normalize lower-cases and trims user input.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
