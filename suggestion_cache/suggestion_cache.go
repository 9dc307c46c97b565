package suggestion_cache

import (
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/tagmate/tagmate/schema_provider/contracts"
	"github.com/tagmate/tagmate/schema_provider/models"
)

// Cache memoizes the suggestion lists of one schema source. Entries are
// never evicted; the cache lives exactly as long as its source stays
// registered. The mutex spans the check-fetch-store sequence so concurrent
// hosts get at most one source fetch per key.
type Cache struct {
	mutex       sync.Mutex
	source      contracts.ISchemaSource
	entries     map[uint64][]models.NodeDef
	passThrough bool
	stats       *CacheStats
}

// CacheStats tracks cache performance counters.
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
	LastResetTime time.Time
	mutex         sync.RWMutex
}

// NewCache creates a cache bound to one schema source.
func NewCache(source contracts.ISchemaSource) *Cache {
	return &Cache{
		source:  source,
		entries: make(map[uint64][]models.NodeDef),
		stats:   &CacheStats{LastResetTime: time.Now()},
	}
}

// NewPassThroughCache creates a cache that forwards every lookup to the
// source without storing results. Used when caching is disabled by
// configuration.
func NewPassThroughCache(source contracts.ISchemaSource) *Cache {
	c := NewCache(source)
	c.passThrough = true
	return c
}

// Source returns the schema source this cache is bound to.
func (c *Cache) Source() contracts.ISchemaSource {
	return c.source
}

// Elements returns the element suggestions below parent. An empty parent
// means the document root.
func (c *Cache) Elements(parent string) []models.NodeDef {
	if parent == "" {
		return c.lookup("root", "", c.source.GetRootElements)
	}
	return c.lookup("element", parent, func() []models.NodeDef {
		return c.source.GetSubElements(parent)
	})
}

// Attributes returns the attribute suggestions for an element.
func (c *Cache) Attributes(element string) []models.NodeDef {
	return c.lookup("attributes", element, func() []models.NodeDef {
		return c.source.GetAttributesForElement(element)
	})
}

// cacheKey hashes a kind-qualified lookup name. The kind prefix keeps an
// element and an attribute lookup for the same name on distinct entries.
func cacheKey(kind string, name string) uint64 {
	return xxh3.HashString(kind + ":" + name)
}

func (c *Cache) lookup(kind string, name string, fetch func() []models.NodeDef) []models.NodeDef {
	if c.passThrough {
		c.recordCacheMiss()
		return fetch()
	}

	key := cacheKey(kind, name)
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if defs, ok := c.entries[key]; ok {
		c.recordCacheHit()
		return defs
	}
	defs := fetch()
	if defs == nil {
		defs = []models.NodeDef{}
	}
	c.entries[key] = defs
	c.recordCacheMiss()
	return defs
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}
