package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/expression"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// Ensure QuizService implements the interface.
var _ driving.QuizService = (*QuizService)(nil)

// maxGenerateAttempts bounds regeneration of questions whose solution
// overflows.
const maxGenerateAttempts = 10

// QuizService generates random practice questions and grades answers.
type QuizService struct {
	rand     driven.RandomSource
	settings driving.SettingsService
}

// NewQuizService creates a quiz service. settings may be nil.
func NewQuizService(rand driven.RandomSource, settings driving.SettingsService) *QuizService {
	return &QuizService{
		rand:     rand,
		settings: settings,
	}
}

// NewQuestion generates a random question of the given kind.
// Every returned question has a computable solution.
func (s *QuizService) NewQuestion(ctx context.Context, kind domain.QuestionKind) (*domain.Question, error) {
	cfg := currentSettings(s.settings).Quiz

	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		q, err := s.generate(kind, cfg)
		if err != nil {
			return nil, err
		}
		if _, err := s.Solve(ctx, q); err != nil {
			logger.Debug("Discarding unsolvable question %q: %v", q.Prompt(), err)
			lastErr = err
			continue
		}
		logger.Debug("Generated %s question: %s", kind, q.Prompt())
		return q, nil
	}
	return nil, fmt.Errorf("generate %s question: %w", kind, lastErr)
}

func (s *QuizService) generate(kind domain.QuestionKind, cfg domain.QuizSettings) (*domain.Question, error) {
	switch kind {
	case domain.QuestionCross:
		return s.operation(kind, "x", 3, cfg)
	case domain.QuestionDot:
		return s.operation(kind, "*", s.dimension(), cfg)
	case domain.QuestionSubtract:
		return s.operation(kind, "-", s.dimension(), cfg)
	case domain.QuestionAdd:
		return s.operation(kind, "+", s.dimension(), cfg)
	case domain.QuestionAngle:
		return s.angle(cfg)
	case domain.QuestionMixed:
		return s.mixed(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown question kind %q", domain.ErrInvalidInput, kind)
	}
}

// operation builds "A op B" over two random vectors.
func (s *QuizService) operation(kind domain.QuestionKind, op string, dim int, cfg domain.QuizSettings) (*domain.Question, error) {
	a, err := s.vector(dim, cfg.MaxValue)
	if err != nil {
		return nil, err
	}
	b, err := s.vector(dim, cfg.MaxValue)
	if err != nil {
		return nil, err
	}
	return &domain.Question{
		Kind:       kind,
		Expression: fmt.Sprintf("%s %s %s", a, op, b),
	}, nil
}

func (s *QuizService) angle(cfg domain.QuizSettings) (*domain.Question, error) {
	dim := s.dimension()
	a, err := s.vector(dim, cfg.MaxValue)
	if err != nil {
		return nil, err
	}
	b, err := s.vector(dim, cfg.MaxValue)
	if err != nil {
		return nil, err
	}
	return &domain.Question{
		Kind:     domain.QuestionAngle,
		Operands: []domain.Vector{a, b},
	}, nil
}

// mixed chains scalar-multiplied vectors with "+" and "-", plus "x" when
// the vectors are 3D.
func (s *QuizService) mixed(cfg domain.QuizSettings) (*domain.Question, error) {
	terms := 2 + s.rand.IntN(cfg.MaxTerms-1)
	dim := s.dimension()
	ops := []string{"+", "-"}
	if dim == 3 {
		ops = append(ops, "x")
	}

	var b strings.Builder
	for i := 0; i < terms; i++ {
		if i > 0 {
			fmt.Fprintf(&b, " %s ", ops[s.rand.IntN(len(ops))])
		}
		scalar, err := s.rational(cfg.MaxValue)
		if err != nil {
			return nil, err
		}
		v, err := s.vector(dim, cfg.MaxValue)
		if err != nil {
			return nil, err
		}
		b.WriteString(scalar.String())
		b.WriteString(v.String())
	}

	return &domain.Question{
		Kind:       domain.QuestionMixed,
		Expression: b.String(),
	}, nil
}

// dimension picks 2 or 3.
func (s *QuizService) dimension() int {
	return 2 + s.rand.IntN(2)
}

func (s *QuizService) vector(dim, maxValue int) (domain.Vector, error) {
	comps := make([]domain.Rational, dim)
	for i := range comps {
		r, err := s.rational(maxValue)
		if err != nil {
			return domain.Vector{}, err
		}
		comps[i] = r
	}
	return domain.NewVector(comps...)
}

// rational returns a positive whole number, improper fraction or mixed
// number with every part in 1..maxValue.
func (s *QuizService) rational(maxValue int) (domain.Rational, error) {
	n := func() int64 { return int64(1 + s.rand.IntN(maxValue)) }
	switch s.rand.IntN(3) {
	case 0:
		return domain.NewInt(n()), nil
	case 1:
		return domain.NewFraction(n(), n())
	default:
		return domain.NewMixed(n(), n(), n())
	}
}

// Solve returns the expected answer: whole degrees for angle questions,
// the formatted result otherwise.
func (s *QuizService) Solve(_ context.Context, q *domain.Question) (string, error) {
	if q == nil {
		return "", fmt.Errorf("%w: no question", domain.ErrInvalidInput)
	}
	if q.Kind == domain.QuestionAngle {
		if len(q.Operands) != 2 {
			return "", fmt.Errorf("%w: angle question needs two vectors", domain.ErrInvalidInput)
		}
		deg, err := domain.Angle(q.Operands[0], q.Operands[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(deg), nil
	}
	return expression.Evaluate(q.Expression)
}

// Check reports whether answer solves q.
// Angle answers compare as whole numbers. Other answers are compared as
// vectors; a bare scalar is read as a 1D vector.
func (s *QuizService) Check(ctx context.Context, q *domain.Question, answer string) (bool, error) {
	answer = expression.Normalize(answer)
	if answer == "" {
		return false, fmt.Errorf("%w: empty answer", domain.ErrFormat)
	}

	expected, err := s.Solve(ctx, q)
	if err != nil {
		return false, err
	}

	if q.Kind == domain.QuestionAngle {
		got, err := strconv.Atoi(answer)
		if err != nil {
			return false, fmt.Errorf("%w: angle answers are whole degrees, got %q", domain.ErrFormat, answer)
		}
		want, err := strconv.Atoi(expected)
		if err != nil {
			return false, err
		}
		return got == want, nil
	}

	got, err := domain.ParseVector(bracket(answer))
	if err != nil {
		return false, err
	}
	want, err := domain.ParseVector(bracket(expected))
	if err != nil {
		return false, err
	}

	ok, err := got.Equal(want)
	if errors.Is(err, domain.ErrDimensionMismatch) {
		return false, fmt.Errorf("%w: expected a %dD answer", domain.ErrDimensionMismatch, want.Dimension())
	}
	return ok, err
}

// bracket wraps s in "[...]" unless it already contains a bracket.
func bracket(s string) string {
	if strings.Contains(s, "[") {
		return s
	}
	return "[" + s + "]"
}
