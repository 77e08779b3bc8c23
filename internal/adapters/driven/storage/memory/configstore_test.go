package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestNewConfigStoreWith_CopiesSeed(t *testing.T) {
	seed := map[string]any{"data.dir": "/srv"}
	store := NewConfigStoreWith(seed)

	seed["data.dir"] = "/changed"
	assert.Equal(t, "/srv", store.GetString("data.dir"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("report.last_name", "Liar"))
	val, ok := store.Get("report.last_name")
	assert.True(t, ok)
	assert.Equal(t, "Liar", val)

	require.NoError(t, store.Set("report.last_name", "Smith"))
	assert.Equal(t, "Smith", store.GetString("report.last_name"))

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{"n": 3})
	assert.Empty(t, store.GetString("n"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"int":    250,
		"int64":  int64(500),
		"float":  float64(750),
		"string": "900",
	})

	assert.Equal(t, 250, store.GetInt("int"))
	assert.Equal(t, 500, store.GetInt("int64"))
	assert.Equal(t, 750, store.GetInt("float"))
	assert.Equal(t, 0, store.GetInt("string"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("watch.debounce_ms", i)
		}(i)
		go func() {
			defer wg.Done()
			store.GetInt("watch.debounce_ms")
		}()
	}
	wg.Wait()
}
