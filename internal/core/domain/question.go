package domain

import (
	"fmt"
	"strings"
)

// QuestionKind identifies the type of practice question.
type QuestionKind string

const (
	// QuestionCross asks for the cross product of two 3D vectors.
	QuestionCross QuestionKind = "cross"
	// QuestionDot asks for the dot product of two vectors.
	QuestionDot QuestionKind = "dot"
	// QuestionSubtract asks for the difference of two vectors.
	QuestionSubtract QuestionKind = "subtract"
	// QuestionAdd asks for the sum of two vectors.
	QuestionAdd QuestionKind = "add"
	// QuestionAngle asks for the angle between two vectors in whole degrees.
	QuestionAngle QuestionKind = "angle"
	// QuestionMixed chains scalar multiples with add, subtract and cross.
	QuestionMixed QuestionKind = "mixed"
)

// QuestionKinds lists every kind in menu order.
func QuestionKinds() []QuestionKind {
	return []QuestionKind{
		QuestionCross,
		QuestionDot,
		QuestionSubtract,
		QuestionAdd,
		QuestionAngle,
		QuestionMixed,
	}
}

// ParseQuestionKind accepts a kind name or its 1-based menu number.
func ParseQuestionKind(s string) (QuestionKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range QuestionKinds() {
		if s == string(k) || s == fmt.Sprint(i+1) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown question kind %q", ErrInvalidInput, s)
}

// Description returns a human-readable label for the kind.
func (k QuestionKind) Description() string {
	switch k {
	case QuestionCross:
		return "Cross Product"
	case QuestionDot:
		return "Dot Product"
	case QuestionSubtract:
		return "Subtract Vectors"
	case QuestionAdd:
		return "Add Vectors"
	case QuestionAngle:
		return "Find angle between Vectors"
	case QuestionMixed:
		return "Mix of add, subtract, scalar multiple, and Cross Product"
	default:
		return string(k)
	}
}

// Question is a generated practice question.
type Question struct {
	// Kind is the question type.
	Kind QuestionKind

	// Expression is the formula to evaluate. Empty for angle questions.
	Expression string

	// Operands holds the two vectors of an angle question.
	Operands []Vector
}

// Prompt returns the text shown to the user.
func (q Question) Prompt() string {
	if q.Kind == QuestionAngle && len(q.Operands) == 2 {
		return fmt.Sprintf("Find angle between %s and %s", q.Operands[0], q.Operands[1])
	}
	return q.Expression
}
