package driven

import (
	"context"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// HistoryStore persists evaluated calculations.
type HistoryStore interface {
	// Save records a calculation.
	Save(ctx context.Context, calc domain.Calculation) error

	// List returns at most limit calculations, newest first.
	// A limit of zero or less returns all of them.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Clear removes every calculation.
	Clear(ctx context.Context) error

	// Close releases any held resources.
	Close() error
}
