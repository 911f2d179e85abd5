package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Entries live for the lifetime of the process.
type HistoryStore struct {
	mu    sync.RWMutex
	calcs map[string]domain.Calculation
	seq   map[string]int
	next  int
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		calcs: make(map[string]domain.Calculation),
		seq:   make(map[string]int),
	}
}

// Save stores or replaces a calculation by ID.
func (s *HistoryStore) Save(_ context.Context, calc domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.calcs[calc.ID]; !ok {
		s.seq[calc.ID] = s.next
		s.next++
	}
	s.calcs[calc.ID] = calc
	return nil
}

// List returns at most limit calculations, newest first. Equal timestamps
// keep reverse insertion order.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Calculation, 0, len(s.calcs))
	for _, calc := range s.calcs {
		result = append(result, calc)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.seq[a.ID] > s.seq[b.ID]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes every calculation.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calcs = make(map[string]domain.Calculation)
	s.seq = make(map[string]int)
	return nil
}

// Close is a no-op.
func (s *HistoryStore) Close() error {
	return nil
}
