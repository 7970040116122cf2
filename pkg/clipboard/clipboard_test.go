package clipboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetRoundtrip(t *testing.T) {
	c := NewMemory()
	got, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, c.Set("hello world"))
	got, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set("x")
			_, _ = c.Get()
		}()
	}
	wg.Wait()
	got, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
