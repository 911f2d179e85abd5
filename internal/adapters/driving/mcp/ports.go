package mcp

import (
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Calculator evaluates expressions. Required.
	Calculator driving.CalculatorService

	// Quiz generates and grades practice questions. Optional.
	Quiz driving.QuizService

	// History exposes recorded calculations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
