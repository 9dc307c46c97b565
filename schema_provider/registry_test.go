package schema_provider

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmate/tagmate/schema_provider/models"
)

// fakeSource is a minimal instrumented schema source for registry and
// selector tests.
type fakeSource struct {
	mutex     sync.Mutex
	path      string
	rootCalls int
}

func (s *fakeSource) Path() string { return s.path }

func (s *fakeSource) GetRootElements() []models.NodeDef {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.rootCalls++
	return []models.NodeDef{{Name: "root-of-" + s.path, Category: models.CategoryElement}}
}

func (s *fakeSource) GetSubElements(parentName string) []models.NodeDef {
	return nil
}

func (s *fakeSource) GetAttributesForElement(elementName string) []models.NodeDef {
	return nil
}

func TestSchemaRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewSchemaRegistry()
	source := &fakeSource{path: "a.xsd"}

	require.NoError(t, registry.Register(source))

	got, cache, ok := registry.Lookup("a.xsd")
	require.True(t, ok)
	assert.Equal(t, source, got)
	assert.NotNil(t, cache)

	assert.Error(t, registry.Register(&fakeSource{path: "a.xsd"}))
}

func TestSchemaRegistry_ReplaceDiscardsCache(t *testing.T) {
	registry := NewSchemaRegistry()
	first := &fakeSource{path: "a.xsd"}
	require.NoError(t, registry.Register(first))

	_, cache, _ := registry.Lookup("a.xsd")
	cache.Elements("")
	cache.Elements("")
	assert.Equal(t, 1, first.rootCalls)

	second := &fakeSource{path: "a.xsd"}
	registry.Replace(second)

	_, freshCache, ok := registry.Lookup("a.xsd")
	require.True(t, ok)
	assert.NotSame(t, cache, freshCache)

	freshCache.Elements("")
	assert.Equal(t, 1, second.rootCalls)
	assert.Equal(t, 1, first.rootCalls)
}

func TestSchemaRegistry_Remove(t *testing.T) {
	registry := NewSchemaRegistry()
	require.NoError(t, registry.Register(&fakeSource{path: "a.xsd"}))

	registry.Remove("a.xsd")

	_, _, ok := registry.Lookup("a.xsd")
	assert.False(t, ok)
	assert.Empty(t, registry.Paths())
}

func TestSchemaRegistry_PathsSorted(t *testing.T) {
	registry := NewSchemaRegistry()
	require.NoError(t, registry.Register(&fakeSource{path: "b.xsd"}))
	require.NoError(t, registry.Register(&fakeSource{path: "a.xsd"}))

	assert.Equal(t, []string{"a.xsd", "b.xsd"}, registry.Paths())
}

func TestSchemaRegistry_DisabledCachingCreatesPassThrough(t *testing.T) {
	registry := NewSchemaRegistry()
	registry.DisableCaching()

	source := &fakeSource{path: "a.xsd"}
	require.NoError(t, registry.Register(source))

	_, cache, _ := registry.Lookup("a.xsd")
	cache.Elements("")
	cache.Elements("")
	assert.Equal(t, 2, source.rootCalls)
}
