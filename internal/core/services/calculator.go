package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/expression"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService evaluates expressions and records them in history.
type CalculatorService struct {
	history  driven.HistoryStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewCalculatorService creates a calculator.
// history and settings may be nil; without a store nothing is recorded and
// without settings recording follows the defaults.
func NewCalculatorService(history driven.HistoryStore, settings driving.SettingsService) *CalculatorService {
	return &CalculatorService{
		history:  history,
		settings: settings,
		now:      time.Now,
	}
}

// Evaluate parses and evaluates an expression.
// A failure to record the calculation is logged and does not fail the call.
func (s *CalculatorService) Evaluate(ctx context.Context, input string) (*domain.Calculation, error) {
	logger.Section("Evaluation")
	defer logger.Timed("Evaluation")()

	text := expression.Normalize(input)
	logger.Debug("Expression: %q", text)

	result, err := expression.Evaluate(text)
	if err != nil {
		logger.Debug("Evaluation failed: %v", err)
		return nil, err
	}
	logger.Debug("Result: %s", result)

	calc := &domain.Calculation{
		ID:         uuid.New().String(),
		Expression: text,
		Result:     result,
		CreatedAt:  s.now(),
	}
	s.record(ctx, *calc)

	return calc, nil
}

func (s *CalculatorService) record(ctx context.Context, calc domain.Calculation) {
	if s.history == nil {
		return
	}
	if !historyEnabled(s.settings) {
		logger.Debug("History disabled, not recording")
		return
	}
	if err := s.history.Save(ctx, calc); err != nil {
		logger.Warn("Failed to record calculation %s: %v", calc.ID, err)
		return
	}
	logger.Debug("Recorded calculation %s", calc.ID)
}

// Angle returns the angle between two vector literals in whole degrees.
func (s *CalculatorService) Angle(_ context.Context, a, b string) (int, error) {
	va, err := domain.ParseVector(expression.Normalize(a))
	if err != nil {
		return 0, err
	}
	vb, err := domain.ParseVector(expression.Normalize(b))
	if err != nil {
		return 0, err
	}
	return domain.Angle(va, vb)
}

// Magnitude returns the Euclidean length of a vector literal.
func (s *CalculatorService) Magnitude(_ context.Context, vector string) (float64, error) {
	v, err := domain.ParseVector(expression.Normalize(vector))
	if err != nil {
		return 0, err
	}
	return v.Magnitude(), nil
}

// currentSettings returns the configured settings, or the defaults when
// none are available.
func currentSettings(settings driving.SettingsService) domain.Settings {
	if settings == nil {
		return domain.DefaultSettings()
	}
	st, err := settings.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultSettings()
	}
	return *st
}

func historyEnabled(settings driving.SettingsService) bool {
	return currentSettings(settings).History.Enabled
}
