package suggestion_cache

import (
	"time"
)

// recordCacheHit increments cache hit counter
func (c *Cache) recordCacheHit() {
	if c.stats == nil {
		return
	}
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.TotalRequests++
	c.stats.CacheHits++
}

// recordCacheMiss increments cache miss counter
func (c *Cache) recordCacheMiss() {
	if c.stats == nil {
		return
	}
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.TotalRequests++
	c.stats.CacheMisses++
}

// GetPerformanceStats returns detailed cache performance statistics
func (c *Cache) GetPerformanceStats() map[string]interface{} {
	if c.stats == nil {
		return map[string]interface{}{
			"total_requests":   int64(0),
			"cache_hits":       int64(0),
			"cache_misses":     int64(0),
			"hit_rate_percent": 0.0,
			"entries":          0,
		}
	}

	entries := c.Len()

	c.stats.mutex.RLock()
	defer c.stats.mutex.RUnlock()

	hitRate := 0.0
	if c.stats.TotalRequests > 0 {
		hitRate = float64(c.stats.CacheHits) / float64(c.stats.TotalRequests) * 100
	}

	return map[string]interface{}{
		"total_requests":   c.stats.TotalRequests,
		"cache_hits":       c.stats.CacheHits,
		"cache_misses":     c.stats.CacheMisses,
		"hit_rate_percent": hitRate,
		"entries":          entries,
		"last_reset":       c.stats.LastResetTime.Format(time.RFC3339),
	}
}

// ResetPerformanceStats resets all performance counters
func (c *Cache) ResetPerformanceStats() {
	if c.stats == nil {
		return
	}
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()

	c.stats.TotalRequests = 0
	c.stats.CacheHits = 0
	c.stats.CacheMisses = 0
	c.stats.LastResetTime = time.Now()
}
