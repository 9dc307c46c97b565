package namespace_registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaces_PrefixedDeclarationJoinsLocationHint(t *testing.T) {
	text := `<root xmlns:ns="http://example/ns" xsi:schemaLocation="http://example/ns schema/a.xsd">`

	bindings := Namespaces(text)

	require.Len(t, bindings, 1)
	assert.Equal(t, Binding{Prefix: "ns", Path: "schema/a.xsd"}, bindings["schema/a.xsd"])
}

func TestNamespaces_MultipleLocationPairs(t *testing.T) {
	text := `<root xmlns:a="http://example/a" xmlns:b="http://example/b"
		xsi:schemaLocation="http://example/a a.xsd http://example/b b.xsd">`

	bindings := Namespaces(text)

	require.Len(t, bindings, 2)
	assert.Equal(t, "a", bindings["a.xsd"].Prefix)
	assert.Equal(t, "b", bindings["b.xsd"].Prefix)
}

func TestNamespaces_ReservedPrefixesExcluded(t *testing.T) {
	text := `<root xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
		xmlns:html="http://www.w3.org/1999/xhtml"
		xsi:schemaLocation="http://www.w3.org/1999/xhtml html.xsd">`

	bindings := Namespaces(text)

	require.Contains(t, bindings, "html.xsd")
	assert.Equal(t, "", bindings["html.xsd"].Prefix)
}

func TestNamespaces_DefaultDeclaration(t *testing.T) {
	text := `<root xmlns="http://example/d" xsi:schemaLocation="http://example/d d.xsd">`

	bindings := Namespaces(text)

	require.Contains(t, bindings, "d.xsd")
	assert.Equal(t, "", bindings["d.xsd"].Prefix)
}

func TestNamespaces_NoNamespaceSchemaLocation(t *testing.T) {
	text := `<catalog xsi:noNamespaceSchemaLocation="books.xsd">`

	bindings := Namespaces(text)

	require.Contains(t, bindings, "books.xsd")
	assert.Equal(t, Binding{Prefix: "", Path: "books.xsd"}, bindings["books.xsd"])
}

func TestNamespaces_LastDeclarationWinsPerURI(t *testing.T) {
	text := `<root xmlns:old="http://example/ns" xmlns:new="http://example/ns"
		xsi:schemaLocation="http://example/ns ns.xsd">`

	bindings := Namespaces(text)

	require.Contains(t, bindings, "ns.xsd")
	assert.Equal(t, "new", bindings["ns.xsd"].Prefix)
}

func TestNamespaces_LastDeclarationWinsAcrossCategories(t *testing.T) {
	// Prefixed and default declarations of one URI override each other in
	// document order, not by category.
	defaultLast := `<root xmlns:ns="http://example/ns" xmlns="http://example/ns"
		xsi:schemaLocation="http://example/ns ns.xsd">`
	bindings := Namespaces(defaultLast)
	require.Contains(t, bindings, "ns.xsd")
	assert.Equal(t, "", bindings["ns.xsd"].Prefix)

	prefixedLast := `<root xmlns="http://example/ns" xmlns:ns="http://example/ns"
		xsi:schemaLocation="http://example/ns ns.xsd">`
	bindings = Namespaces(prefixedLast)
	require.Contains(t, bindings, "ns.xsd")
	assert.Equal(t, "ns", bindings["ns.xsd"].Prefix)
}

func TestNamespaces_NoDeclarations(t *testing.T) {
	assert.Empty(t, Namespaces("<root><child/></root>"))
}

func TestCompletionPrefix(t *testing.T) {
	assert.Equal(t, "bk", CompletionPrefix("  <bk:book"))
	assert.Equal(t, "bk", CompletionPrefix("  <bk:"))
	assert.Equal(t, "", CompletionPrefix("  <book"))
	assert.Equal(t, "", CompletionPrefix("no markup"))
	assert.Equal(t, "ns", CompletionPrefix("<a><ns:b"))
}
