// Package cache holds short-lived serialized query responses.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

type ResponseCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*ResponseCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ResponseCache{cache: cache, ttl: ttl}, nil
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

// Set stores body under key. A non-positive TTL disables caching.
func (c *ResponseCache) Set(key string, body []byte) {
	if c.ttl <= 0 {
		return
	}
	cost := int64(len(key) + len(body))
	c.cache.SetWithTTL(key, body, cost, c.ttl)
}

// Wait blocks until buffered writes are applied.
func (c *ResponseCache) Wait() {
	c.cache.Wait()
}

func (c *ResponseCache) Close() {
	c.cache.Close()
}

func (c *ResponseCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
