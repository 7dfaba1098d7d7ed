package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		store := NewConfigStore()

		require.NotNil(t, store)
		_, ok := store.Get("log.level")
		assert.False(t, ok)
	})

	t.Run("seeded store", func(t *testing.T) {
		store := NewConfigStore(
			map[string]any{"log.level": "debug"},
			map[string]any{"log.level": "warn", "log.format": "text"},
		)

		assert.Equal(t, "warn", store.GetString("log.level"), "later seeds win")
		assert.Equal(t, "text", store.GetString("log.format"))
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("github.user_agent", "Issue Fetcher"))

	val, ok := store.Get("github.user_agent")
	assert.True(t, ok)
	assert.Equal(t, "Issue Fetcher", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore(map[string]any{"int": 1, "str": "s"})

	assert.Equal(t, "s", store.GetString("str"))
	assert.Equal(t, "", store.GetString("int"), "wrong type")
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("log.level", "info")
			_ = store.GetString("log.level")
		}()
	}
	wg.Wait()

	assert.Equal(t, "info", store.GetString("log.level"))
}
