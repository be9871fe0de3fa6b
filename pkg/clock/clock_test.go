package clock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealkit/pkg/clock"
)

func TestSystem(t *testing.T) {
	t.Parallel()
	before := time.Now()
	got := clock.New().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFunc(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := clock.Func(func() time.Time { return at })

	require.Equal(t, at, c.Now())
}

func TestManual(t *testing.T) {
	t.Parallel()
	start := time.UnixMilli(1_700_000_000_000)
	c := clock.Fixed(start)

	require.Equal(t, start, c.Now())

	c.Advance(1500 * time.Millisecond)
	require.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	later := start.Add(time.Hour)
	c.Set(later)
	require.Equal(t, later, c.Now())
}

func TestManual_Concurrent(t *testing.T) {
	t.Parallel()
	c := clock.Fixed(time.UnixMilli(0))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Advance(time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			_ = c.Now()
		}()
	}
	wg.Wait()

	require.Equal(t, int64(50), c.Now().UnixMilli())
}
