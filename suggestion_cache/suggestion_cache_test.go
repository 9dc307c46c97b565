package suggestion_cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmate/tagmate/schema_provider/models"
)

// countingSource instruments every fetch so memoization can be asserted.
type countingSource struct {
	mutex     sync.Mutex
	rootCalls int
	subCalls  map[string]int
	attrCalls map[string]int
}

func newCountingSource() *countingSource {
	return &countingSource{
		subCalls:  make(map[string]int),
		attrCalls: make(map[string]int),
	}
}

func (s *countingSource) Path() string { return "books.xsd" }

func (s *countingSource) GetRootElements() []models.NodeDef {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.rootCalls++
	return []models.NodeDef{{Name: "catalog", Category: models.CategoryElement}}
}

func (s *countingSource) GetSubElements(parentName string) []models.NodeDef {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.subCalls[parentName]++
	if parentName == "book" {
		return []models.NodeDef{
			{Name: "title", Category: models.CategoryElement},
			{Name: "author", Category: models.CategoryElement},
		}
	}
	return nil
}

func (s *countingSource) GetAttributesForElement(elementName string) []models.NodeDef {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.attrCalls[elementName]++
	if elementName == "book" {
		return []models.NodeDef{
			{Name: "id", Category: models.CategoryAttribute, Required: true},
		}
	}
	return nil
}

func TestCache_RootElementsFetchedOnce(t *testing.T) {
	source := newCountingSource()
	cache := NewCache(source)

	first := cache.Elements("")
	second := cache.Elements("")

	assert.Equal(t, 1, source.rootCalls)
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, "catalog", first[0].Name)
}

func TestCache_ElementAndAttributeKeysIndependent(t *testing.T) {
	source := newCountingSource()
	cache := NewCache(source)

	elements := cache.Elements("book")
	attributes := cache.Attributes("book")

	require.Len(t, elements, 2)
	require.Len(t, attributes, 1)
	assert.Equal(t, "title", elements[0].Name)
	assert.Equal(t, "id", attributes[0].Name)

	// Re-reading either key must not refetch or disturb the other.
	assert.Equal(t, elements, cache.Elements("book"))
	assert.Equal(t, attributes, cache.Attributes("book"))
	assert.Equal(t, 1, source.subCalls["book"])
	assert.Equal(t, 1, source.attrCalls["book"])
}

func TestCache_EmptyResultIsMemoized(t *testing.T) {
	source := newCountingSource()
	cache := NewCache(source)

	assert.Empty(t, cache.Elements("unknown"))
	assert.Empty(t, cache.Elements("unknown"))
	assert.Equal(t, 1, source.subCalls["unknown"])
}

func TestCache_ConcurrentLookupsFetchOnce(t *testing.T) {
	source := newCountingSource()
	cache := NewCache(source)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Elements("book")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, source.subCalls["book"])
}

func TestPassThroughCache_AlwaysFetches(t *testing.T) {
	source := newCountingSource()
	cache := NewPassThroughCache(source)

	cache.Elements("book")
	cache.Elements("book")

	assert.Equal(t, 2, source.subCalls["book"])
	assert.Equal(t, 0, cache.Len())
}

func TestCache_BoundToItsSource(t *testing.T) {
	source := newCountingSource()
	assert.Same(t, source, NewCache(source).Source().(*countingSource))
	assert.Same(t, source, NewPassThroughCache(source).Source().(*countingSource))
}

func TestCache_PerformanceStats(t *testing.T) {
	source := newCountingSource()
	cache := NewCache(source)

	cache.Elements("book")
	cache.Elements("book")
	cache.Attributes("book")

	stats := cache.GetPerformanceStats()
	assert.Equal(t, int64(3), stats["total_requests"])
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(2), stats["cache_misses"])
	assert.Equal(t, 2, stats["entries"])

	cache.ResetPerformanceStats()
	stats = cache.GetPerformanceStats()
	assert.Equal(t, int64(0), stats["total_requests"])
}
