package session

import (
	"sync"
	"time"
)

type cacheEntry struct {
	text     string
	storedAt time.Time
}

// Cache memoizes suggestion texts per context fingerprint. Entries older
// than the TTL are never served even while still stored; capacity overflow
// evicts strictly oldest-by-storedAt first. The cache is process-wide and
// deliberately outlives individual sessions: stale entries are already
// discarded on time.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]cacheEntry

	nowFn func() time.Time
}

func NewCache(ttl time.Duration, capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]cacheEntry),
		nowFn:    time.Now,
	}
}

// Get returns the cached text for the fingerprint, or ok=false when missing
// or expired.
func (c *Cache) Get(fingerprint string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[fingerprint]
	if !ok {
		return "", false
	}
	if c.nowFn().Sub(e.storedAt) >= c.ttl {
		return "", false
	}
	return e.text, true
}

// Put inserts or overwrites an entry and evicts the oldest entries until the
// cache fits its capacity again.
func (c *Cache) Put(fingerprint, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[fingerprint] = cacheEntry{text: text, storedAt: c.nowFn()}

	for len(c.entries) > c.capacity {
		oldestKey := ""
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.storedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
