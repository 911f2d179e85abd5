package driving

import (
	"context"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// QuizService generates and grades practice questions.
type QuizService interface {
	// NewQuestion generates a random question of the given kind.
	NewQuestion(ctx context.Context, kind domain.QuestionKind) (*domain.Question, error)

	// Solve returns the expected answer to a question.
	Solve(ctx context.Context, q *domain.Question) (string, error)

	// Check reports whether answer is correct for q.
	Check(ctx context.Context, q *domain.Question, answer string) (bool, error)
}
