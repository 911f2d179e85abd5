package mcp

import (
	"context"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	calc      *domain.Calculation
	degrees   int
	magnitude float64
	err       error

	lastExpression string
}

func (m *mockCalculatorService) Evaluate(_ context.Context, expression string) (*domain.Calculation, error) {
	m.lastExpression = expression
	return m.calc, m.err
}

func (m *mockCalculatorService) Angle(_ context.Context, _, _ string) (int, error) {
	return m.degrees, m.err
}

func (m *mockCalculatorService) Magnitude(_ context.Context, _ string) (float64, error) {
	return m.magnitude, m.err
}

// mockQuizService is a mock implementation of driving.QuizService.
type mockQuizService struct {
	question *domain.Question
	solution string
	correct  bool
	err      error

	checked *domain.Question
}

func (m *mockQuizService) NewQuestion(_ context.Context, _ domain.QuestionKind) (*domain.Question, error) {
	return m.question, m.err
}

func (m *mockQuizService) Solve(_ context.Context, _ *domain.Question) (string, error) {
	return m.solution, m.err
}

func (m *mockQuizService) Check(_ context.Context, q *domain.Question, _ string) (bool, error) {
	m.checked = q
	return m.correct, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	calcs     []domain.Calculation
	err       error
	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	m.lastLimit = limit
	return m.calcs, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
