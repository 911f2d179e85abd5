package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

func calcAt(id string, at time.Time) domain.Calculation {
	return domain.Calculation{
		ID:         id,
		Expression: "[1] + [" + id + "]",
		Result:     id,
		CreatedAt:  at,
	}
}

func TestNewHistoryStore(t *testing.T) {
	store := NewHistoryStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.calcs)
}

func TestHistoryStore_List_NewestFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, store.Save(ctx, calcAt("1", base)))
	require.NoError(t, store.Save(ctx, calcAt("3", base.Add(2*time.Second))))
	require.NoError(t, store.Save(ctx, calcAt("2", base.Add(time.Second))))

	calcs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, calcs, 3)
	assert.Equal(t, "3", calcs[0].ID)
	assert.Equal(t, "2", calcs[1].ID)
	assert.Equal(t, "1", calcs[2].ID)
}

func TestHistoryStore_List_SameTimestamp(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, calcAt(id, at)))
	}

	calcs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, calcs, 3)
	assert.Equal(t, "c", calcs[0].ID)
	assert.Equal(t, "a", calcs[2].ID)
}

func TestHistoryStore_List_Limit(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, calcAt(fmt.Sprint(i), base.Add(time.Duration(i)*time.Second))))
	}

	calcs, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, calcs, 2)
	assert.Equal(t, "4", calcs[0].ID)
	assert.Equal(t, "3", calcs[1].ID)
}

func TestHistoryStore_Save_Replaces(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	at := time.Now()

	require.NoError(t, store.Save(ctx, calcAt("1", at)))
	updated := calcAt("1", at)
	updated.Result = "changed"
	require.NoError(t, store.Save(ctx, updated))

	calcs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, calcs, 1)
	assert.Equal(t, "changed", calcs[0].Result)
}

func TestHistoryStore_Clear(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("1", time.Now())))
	require.NoError(t, store.Clear(ctx))

	calcs, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, calcs)
	assert.NoError(t, store.Close())
}

func TestHistoryStore_ConcurrentAccess(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Save(ctx, calcAt(fmt.Sprint(i), time.Now()))
			_, _ = store.List(ctx, 10)
		}(i)
	}
	wg.Wait()

	calcs, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, calcs, 50)
}
