package schema_provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tagmate/tagmate/schema_provider/contracts"
	"github.com/tagmate/tagmate/suggestion_cache"
)

// SchemaRegistry maps schema paths to loaded sources and owns one
// suggestion cache per source. Lifecycle is explicit: a cache is created on
// Register, swapped on Replace and discarded on Remove.
type SchemaRegistry struct {
	mutex           sync.RWMutex
	entries         map[string]*registryEntry
	cachingDisabled bool
}

// registryEntry holds only the cache; the cache carries its source, so the
// two can never drift apart across Replace.
type registryEntry struct {
	cache *suggestion_cache.Cache
}

// NewSchemaRegistry creates an empty registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{
		entries: make(map[string]*registryEntry),
	}
}

// DisableCaching makes caches created from now on forward every lookup to
// their source. Intended to be called once at startup from configuration.
func (r *SchemaRegistry) DisableCaching() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.cachingDisabled = true
}

// Register adds a new schema source under its path. Registering an already
// present path is an error; use Replace for that.
func (r *SchemaRegistry) Register(source contracts.ISchemaSource) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	path := source.Path()
	if _, exists := r.entries[path]; exists {
		return fmt.Errorf("schema already registered for path %q", path)
	}
	r.entries[path] = &registryEntry{cache: r.newCache(source)}
	return nil
}

// Replace swaps the source registered under source.Path(), discarding the
// old source's cache, and registers it fresh when the path is new.
func (r *SchemaRegistry) Replace(source contracts.ISchemaSource) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[source.Path()] = &registryEntry{cache: r.newCache(source)}
}

// Remove deletes the source registered under path along with its cache.
func (r *SchemaRegistry) Remove(path string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.entries, path)
}

// Lookup returns the source and cache for a path, if loaded.
func (r *SchemaRegistry) Lookup(path string) (contracts.ISchemaSource, *suggestion_cache.Cache, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	entry, ok := r.entries[path]
	if !ok {
		return nil, nil, false
	}
	return entry.cache.Source(), entry.cache, true
}

// Paths returns the registered schema paths in sorted order.
func (r *SchemaRegistry) Paths() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	paths := make([]string, 0, len(r.entries))
	for path := range r.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// PerformanceReport returns per-path cache performance statistics.
func (r *SchemaRegistry) PerformanceReport() map[string]map[string]interface{} {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	report := make(map[string]map[string]interface{}, len(r.entries))
	for path, entry := range r.entries {
		report[path] = entry.cache.GetPerformanceStats()
	}
	return report
}

// ResetPerformanceStats resets the counters of every cache.
func (r *SchemaRegistry) ResetPerformanceStats() {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, entry := range r.entries {
		entry.cache.ResetPerformanceStats()
	}
}

func (r *SchemaRegistry) newCache(source contracts.ISchemaSource) *suggestion_cache.Cache {
	if r.cachingDisabled {
		return suggestion_cache.NewPassThroughCache(source)
	}
	return suggestion_cache.NewCache(source)
}
