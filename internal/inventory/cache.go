package inventory

import (
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

// searchCache holds recent search results keyed by the exact query text.
// Backends differ in how they compare case (ILIKE lower-cases, the SQLite
// casefold function folds), so queries are never merged by case here.
// A nil *searchCache is a valid, always-missing cache.
type searchCache struct {
	lru *expirable.LRU[string, []domain.InventoryRecord]

	// generation is bumped on every purge; results computed under an older
	// generation are dropped instead of cached.
	mu         sync.Mutex
	generation uint64
}

// newSearchCache returns nil when size is not positive.
func newSearchCache(size int, ttl time.Duration) *searchCache {
	if size <= 0 {
		return nil
	}
	return &searchCache{
		lru: expirable.NewLRU[string, []domain.InventoryRecord](size, nil, ttl),
	}
}

// Generation returns the token to pass to Add for results computed from now on.
func (c *searchCache) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Get returns a copy of the cached results for query.
func (c *searchCache) Get(query string) ([]domain.InventoryRecord, bool) {
	if c == nil {
		return nil, false
	}
	records, ok := c.lru.Get(query)
	if !ok {
		return nil, false
	}
	return slices.Clone(records), true
}

// Add stores results unless a purge happened since gen was taken.
func (c *searchCache) Add(query string, gen uint64, records []domain.InventoryRecord) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.lru.Add(query, slices.Clone(records))
}

// Purge drops every entry.
func (c *searchCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *searchCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
