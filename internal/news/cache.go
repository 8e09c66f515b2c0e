package news

import (
	"sync"
	"time"

	"forex-dashboard/internal/types"
)

// feedCache stores fetched feed items per feed key. Expired entries remain
// readable as stale fallback data for degraded panels.
type feedCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	items     []types.NewsItem
	timestamp time.Time
}

func newFeedCache(ttl time.Duration) *feedCache {
	return &feedCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}
}

// get retrieves cached items if still fresh.
func (c *feedCache) get(key string) ([]types.NewsItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.items, true
}

// getStale retrieves cached items regardless of age.
func (c *feedCache) getStale(key string) ([]types.NewsItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}
	return entry.items, true
}

// set stores items in the cache.
func (c *feedCache) set(key string, items []types.NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = &cacheEntry{
		items:     items,
		timestamp: time.Now(),
	}
}

// setTTL adjusts the freshness window, used when the refresh interval
// setting changes.
func (c *feedCache) setTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}
