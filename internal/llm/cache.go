package llm

import (
	"sync"
	"time"

	"github.com/Veraticus/oud-emporium/internal/model"
)

// cacheEntry represents a cached recommendation.
type cacheEntry struct {
	expiry         time.Time
	recommendation model.Recommendation
}

// recommendationCache provides thread-safe caching keyed by normalized preferences.
type recommendationCache struct {
	entries   map[string]cacheEntry
	stopCh    chan struct{}
	ttl       time.Duration
	mu        sync.RWMutex
	closeOnce sync.Once
}

// newRecommendationCache creates a new cache with the specified TTL.
func newRecommendationCache(ttl time.Duration) *recommendationCache {
	if ttl == 0 {
		ttl = time.Hour
	}

	cache := &recommendationCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves a recommendation if it exists and hasn't expired.
func (c *recommendationCache) get(key string) (model.Recommendation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return model.Recommendation{}, false
	}

	if time.Now().After(entry.expiry) {
		return model.Recommendation{}, false
	}

	return entry.recommendation, true
}

// set stores a recommendation in the cache.
func (c *recommendationCache) set(key string, rec model.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		recommendation: rec,
		expiry:         time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *recommendationCache) cleanup() {
	interval := c.ttl
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// clear removes all entries from the cache.
func (c *recommendationCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// size returns the number of entries in the cache.
func (c *recommendationCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *recommendationCache) Close() {
	c.closeOnce.Do(func() { close(c.stopCh) })
}
