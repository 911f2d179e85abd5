package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService lists and clears recorded calculations.
type HistoryService struct {
	store    driven.HistoryStore
	settings driving.SettingsService
}

// NewHistoryService creates a history service. store may be nil, in which
// case the history is always empty.
func NewHistoryService(store driven.HistoryStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
	}
}

// List returns recent calculations, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = currentSettings(s.settings).History.Limit
	}
	logger.Debug("Listing history, limit=%d", limit)

	calcs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return calcs, nil
}

// Clear removes all recorded calculations.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	logger.Info("History cleared")
	return nil
}
