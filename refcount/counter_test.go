package refcount

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainCounterReleaseOnce(t *testing.T) {
	released := 0
	c := NewPlainCounter(func() { released++ })

	c.Retain()
	require.Equal(t, int64(2), c.Count())

	require.False(t, c.Release())
	require.Equal(t, int64(1), c.Count())
	require.Equal(t, 0, released)

	require.True(t, c.Release())
	require.Equal(t, 1, released)

	// Further release calls (defensive double-close) must not re-invoke.
	require.False(t, c.Release())
	require.Equal(t, 1, released)
}

func TestAtomicCounterConcurrentRetainRelease(t *testing.T) {
	released := 0
	c := NewAtomicCounter(func() { released++ })

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		c.Retain()
	}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c.Release()
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), c.Count())
	require.Equal(t, 0, released)

	require.True(t, c.Release())
	require.Equal(t, 1, released)
}
