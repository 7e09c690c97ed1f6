// Package cache provides a time-expiring key/value store used to avoid
// redundant airport lookups. Entries expire lazily: a stale entry is treated
// as a miss on read but is not deleted until Purge is called or the key is
// overwritten. Bounded growth is an accepted tradeoff for this workload.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/skysearch/flight-search-gateway/internal/infrastructure/timeutil"
)

// DefaultTTL is how long an entry is eligible for reuse.
const DefaultTTL = 10 * time.Minute

// entry pairs cached data with the time it was stored.
type entry[T any] struct {
	data      T
	timestamp time.Time
}

// Cache is a TTL key/value store. The clock is injected so expiry can be
// tested deterministically; construct it at startup and pass it by reference
// rather than sharing an implicit singleton.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	clock   timeutil.Clock
}

// New creates a Cache with the given TTL and clock. A non-positive ttl falls
// back to DefaultTTL; a nil clock falls back to the real system clock.
func New[T any](ttl time.Duration, clock timeutil.Clock) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached value for key. It reports a miss when no entry
// exists or when the entry's age exceeds the TTL. Stale entries are left in
// place (lazy invalidation).
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.clock.Now().Sub(e.timestamp) > c.ttl {
		var zero T
		return zero, false
	}
	return e.data, true
}

// Put stores data under key, overwriting any existing entry with a fresh
// timestamp. Callers must normalize keys with Key before storage and lookup
// or hits will never occur.
func (c *Cache[T]) Put(key string, data T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{data: data, timestamp: c.clock.Now()}
	c.mu.Unlock()
}

// Len returns the number of entries, stale ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge removes entries older than the TTL and returns how many were removed.
// Nothing schedules this automatically.
func (c *Cache[T]) Purge() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.timestamp) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Key normalizes a raw query string into a cache key.
func Key(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
