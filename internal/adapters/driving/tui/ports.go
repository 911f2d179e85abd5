// Package tui provides an interactive terminal user interface for vecalc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.CalculatorService

	// Quiz generates and grades practice questions.
	Quiz driving.QuizService

	// History seeds the calculator's recent results. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.Quiz == nil {
		return ErrMissingQuizService
	}
	return nil
}
