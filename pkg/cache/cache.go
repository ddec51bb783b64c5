package cache

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a process-wide key-value store with a fixed per-entry TTL.
// Entries are evicted lazily: a lookup past the expiry behaves as a miss
// and removes the entry. There is no capacity bound beyond TTL expiry,
// which is acceptable for the narrow keyspace of page/size combinations.
type Cache struct {
	entries *xsync.MapOf[string, entry]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache whose entries expire ttl after they are written.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock is like New but with an injectable clock for tests.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: xsync.NewMapOf[string, entry](),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the value stored under key, or false when the key is
// absent or its entry has expired.
func (c *Cache) Get(key string) (any, bool) {
	e, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.entries.Delete(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the expiry stamped at write time.
// Concurrent writers to the same key race benignly: one of the freshly
// computed values wins whole, never a partial entry.
func (c *Cache) Set(key string, value any) {
	c.entries.Store(key, entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	})
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.entries.Delete(key)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	return c.entries.Size()
}
