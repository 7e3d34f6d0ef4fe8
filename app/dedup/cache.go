// Package dedup holds the in-process set of already-published item keys.
// It is best-effort: bounded, never persisted, empty after a restart.
package dedup

import (
	"sync"
)

// Cache is an insertion-ordered, capacity-bounded key set. When the
// cardinality exceeds max, the oldest entries are evicted in bulk down
// to retain, keeping the most recently inserted keys.
//
// Has followed by Insert is not atomic; concurrent pollers may both see
// a key as unseen. That race is tolerated, the cache is not a ledger.
type Cache struct {
	mu     sync.Mutex
	max    int
	retain int
	index  map[string]struct{}
	order  []string
}

func NewCache(max, retain int) *Cache {
	if retain >= max {
		retain = max / 2
	}

	return &Cache{
		max:    max,
		retain: retain,
		index:  make(map[string]struct{}, max),
		order:  make([]string, 0, max),
	}
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.index[key]
	return ok
}

func (c *Cache) Insert(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[key]; ok {
		return
	}

	c.index[key] = struct{}{}
	c.order = append(c.order, key)

	if len(c.order) > c.max {
		c.evict()
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.order)
}

// evict drops the oldest entries down to the retention floor. Caller
// holds the lock.
func (c *Cache) evict() {
	drop := len(c.order) - c.retain
	for _, key := range c.order[:drop] {
		delete(c.index, key)
	}

	remaining := make([]string, c.retain, c.max)
	copy(remaining, c.order[drop:])
	c.order = remaining
}
