package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(map[string]any{
		domain.KeyQuizMaxValue:   int64(12),
		domain.KeyHistoryBackend: "memory",
	})

	assert.Equal(t, 12, store.GetInt(domain.KeyQuizMaxValue))
	assert.Equal(t, "memory", store.GetString(domain.KeyHistoryBackend))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("int", 7))
	require.NoError(t, store.Set("int64", int64(8)))
	require.NoError(t, store.Set("float", 9.0))
	require.NoError(t, store.Set("bool", true))
	require.NoError(t, store.Set("string", "text"))

	assert.Equal(t, 7, store.GetInt("int"))
	assert.Equal(t, 8, store.GetInt("int64"))
	assert.Equal(t, 9, store.GetInt("float"))
	assert.True(t, store.GetBool("bool"))
	assert.Equal(t, "text", store.GetString("string"))

	// Wrong types and missing keys give zero values
	assert.Equal(t, 0, store.GetInt("string"))
	assert.False(t, store.GetBool("int"))
	assert.Empty(t, store.GetString("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_SaveLoadCounted(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Save())
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, 2, store.Saves())
	assert.Equal(t, 1, store.Loads())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(domain.KeyHistoryLimit, i)
			_ = store.GetInt(domain.KeyHistoryLimit)
		}(i)
	}
	wg.Wait()

	_, ok := store.Get(domain.KeyHistoryLimit)
	assert.True(t, ok)
}
