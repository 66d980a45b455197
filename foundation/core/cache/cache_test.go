package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a manually advanced time source
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestCache(cfg Config) (*Cache[string, int], *clock) {
	c := New[string, int](cfg)
	clk := &clock{t: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
	c.now = clk.now
	return c, clk
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(DefaultConfig())

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestEvictsOldest(t *testing.T) {
	c, clk := newTestCache(Config{MaxItems: 2})

	c.Set("a", 1)
	clk.t = clk.t.Add(time.Second)
	c.Set("b", 2)
	clk.t = clk.t.Add(time.Second)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c, _ := newTestCache(Config{MaxItems: 2})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("b", 3)

	_, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestTTL(t *testing.T) {
	c, clk := newTestCache(Config{TTL: time.Minute})
	c.Set("a", 1)

	clk.t = clk.t.Add(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	clk.t = clk.t.Add(2 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestEvictionPrefersExpired(t *testing.T) {
	c, clk := newTestCache(Config{MaxItems: 2, TTL: time.Minute})
	c.Set("old", 1)
	clk.t = clk.t.Add(30 * time.Second)
	c.Set("young", 2)
	clk.t = clk.t.Add(45 * time.Second)
	c.Set("new", 3)

	_, ok := c.Get("young")
	assert.True(t, ok)
	_, ok = c.Get("new")
	assert.True(t, ok)
}

func TestGetOrSet(t *testing.T) {
	c, _ := newTestCache(DefaultConfig())
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrSet("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrSet("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = c.GetOrSet("x", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("x")
	assert.False(t, ok, "failed computations are not cached")
}

func TestStats(t *testing.T) {
	c, _ := newTestCache(DefaultConfig())
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	assert.Equal(t, int64(2), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, 1, s.Size)
	assert.InDelta(t, 66.67, s.HitRate, 0.01)

	c.Clear()
	assert.Equal(t, Stats{}, c.Stats())
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](Config{MaxItems: 16})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i+j)%32)
				_, _ = c.GetOrSet(key, func() (int, error) { return j, nil })
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
