package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// cycleRand returns vals in order, wrapping around, each reduced mod n.
type cycleRand struct {
	vals []int
	i    int
}

func (r *cycleRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

var errStoreDown = errors.New("store down")

// failingHistory fails every operation.
type failingHistory struct{}

func (failingHistory) Save(context.Context, domain.Calculation) error { return errStoreDown }
func (failingHistory) List(context.Context, int) ([]domain.Calculation, error) {
	return nil, errStoreDown
}
func (failingHistory) Clear(context.Context) error { return errStoreDown }
func (failingHistory) Close() error                { return nil }
