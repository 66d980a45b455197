// File: cache.go
// Title: Bounded In-Memory Cache
// Description: Thread-safe cache with an item limit, optional expiry and
//              hit/miss statistics. Used to keep compiled patterns and other
//              derived values that are expensive to rebuild.
// Author: msto63
// Version: v0.2.0
// Created: 2025-11-02
// Modified: 2026-10-17
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with TTL and background cleanup
// - 2026-10-17 v0.2.0: Generic keys and values, lazy expiry instead of a
//                      cleanup goroutine, eviction by insertion age

package cache

import (
	"sync"
	"time"
)

// entry is a cached value with its insertion and expiry time
type entry[V any] struct {
	value   V
	added   time.Time
	expires time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// Config holds cache configuration
type Config struct {
	// MaxItems bounds the number of entries; the oldest entry is evicted
	// when a new key would exceed it. Defaults to 256.
	MaxItems int

	// TTL expires entries after the given duration. Zero keeps them until
	// they are evicted.
	TTL time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 256}
}

// Stats is a snapshot of cache usage
type Stats struct {
	Hits    int64
	Misses  int64
	Size    int
	HitRate float64 // percent
}

// Cache is a thread-safe in-memory cache
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]entry[V]
	maxItems int
	ttl      time.Duration
	now      func() time.Time

	hits   int64
	misses int64
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	return &Cache[K, V]{
		items:    make(map[K]entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// Get retrieves a value; expired entries are dropped and count as misses
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	e, ok := c.items[key]
	if ok && e.expired(c.now()) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *Cache[K, V]) set(key K, value V) {
	now := c.now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evict(now)
	}

	e := entry[V]{value: value, added: now}
	if c.ttl > 0 {
		e.expires = now.Add(c.ttl)
	}
	c.items[key] = e
}

// evict drops expired entries, or the oldest one when none has expired.
// Must be called with the lock held.
func (c *Cache[K, V]) evict(now time.Time) {
	var (
		oldest    K
		oldestAdd time.Time
		found     bool
		removed   bool
	)
	for key, e := range c.items {
		if e.expired(now) {
			delete(c.items, key)
			removed = true
			continue
		}
		if !found || e.added.Before(oldestAdd) {
			oldest, oldestAdd, found = key, e.added, true
		}
	}
	if !removed && found {
		delete(c.items, oldest)
	}
}

// GetOrSet returns the cached value for key or stores the result of fn.
// Errors from fn are returned and nothing is cached. fn runs with the lock
// held, so it must not call back into the cache.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.get(key); ok {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	c.set(key, v)
	return v, nil
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items and resets the statistics
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]entry[V])
	c.hits, c.misses = 0, 0
}

// Len returns the number of items in the cache, expired ones included
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Hits: c.hits, Misses: c.misses, Size: len(c.items)}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
