package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestTTL(capacity int, ttl time.Duration) (*ttlCache[string], *clock) {
	clk := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := newTTLCache[string](capacity, ttl, 0)
	c.now = clk.now
	return c, clk
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *ttlCache[string], clk *clock)
		key       string
		wantValue string
		wantFound bool
	}{
		{
			name:      "returns live value",
			setup:     func(c *ttlCache[string], _ *clock) { c.Set("S1", "snapshot") },
			key:       "S1",
			wantValue: "snapshot",
			wantFound: true,
		},
		{
			name:  "missing key",
			setup: func(*ttlCache[string], *clock) {},
			key:   "S2",
		},
		{
			name: "expired value",
			setup: func(c *ttlCache[string], clk *clock) {
				c.Set("S1", "snapshot")
				clk.t = clk.t.Add(2 * time.Minute)
			},
			key: "S1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestTTL(10, time.Minute)
			tt.setup(c, clk)

			got, found := c.Get(tt.key)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestTTL(2, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a")
	c.Set("c", "3")

	_, found := c.Get("b")
	assert.False(t, found, "b was least recently used")
	_, found = c.Get("a")
	assert.True(t, found)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_SetRefreshesTTL(t *testing.T) {
	c, clk := newTestTTL(2, time.Minute)

	c.Set("a", "1")
	clk.t = clk.t.Add(50 * time.Second)
	c.Set("a", "2")
	clk.t = clk.t.Add(50 * time.Second)

	got, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, "2", got)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestTTL(4, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Invalidate("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c, clk := newTestTTL(4, time.Minute)
	c.Set("a", "1")
	clk.t = clk.t.Add(30 * time.Second)
	c.Set("b", "2")
	clk.t = clk.t.Add(45 * time.Second)

	c.cleanup()
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_StopIsIdempotent(t *testing.T) {
	c := newTTLCache[int](1, time.Minute, time.Millisecond)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestNewSharded(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default when zero", numShards: 0, wantShards: 16},
		{name: "default when negative", numShards: -1, wantShards: 16},
		{name: "rounds 3 up to 4", numShards: 3, wantShards: 4},
		{name: "exact power of two", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSharded[int](100, time.Minute, tt.numShards)
			defer c.Stop()
			assert.Equal(t, tt.wantShards, c.NumShards())
		})
	}
}

func TestSharded_Operations(t *testing.T) {
	var c CacheWithMetrics[int] = NewSharded[int](64, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("site-%d", i), i)
	}
	for i := 0; i < 10; i++ {
		got, found := c.Get(fmt.Sprintf("site-%d", i))
		require.True(t, found)
		assert.Equal(t, i, got)
	}

	c.Invalidate("site-3")
	_, found := c.Get("site-3")
	assert.False(t, found)

	m := c.Metrics()
	assert.Equal(t, int64(10), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 9, m.Size)
	assert.Equal(t, 64, m.Capacity)

	c.Clear()
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestSharded_ConcurrentAccess(t *testing.T) {
	c := NewSharded[int](128, time.Minute, 8)
	defer c.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%50)
				c.Set(key, i)
				_, _ = c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 128)
}
