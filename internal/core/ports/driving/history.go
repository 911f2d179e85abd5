package driving

import (
	"context"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// HistoryService exposes recorded calculations.
type HistoryService interface {
	// List returns recent calculations, newest first.
	// A limit of zero or less uses the configured default.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Clear removes all recorded calculations.
	Clear(ctx context.Context) error
}
