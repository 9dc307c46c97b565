package schema_provider

import (
	"sort"

	"github.com/tagmate/tagmate/namespace_registry"
	"github.com/tagmate/tagmate/schema_provider/contracts"
	"github.com/tagmate/tagmate/suggestion_cache"
)

// BoundSchema is a loaded schema source selected for a completion request,
// together with the namespace prefix it is bound to in the document.
type BoundSchema struct {
	Source contracts.ISchemaSource
	Cache  *suggestion_cache.Cache
	Prefix string
}

// ActiveSchemas selects the schema sources eligible for the requested
// namespace prefix. A non-empty prefix selects the single matching binding;
// an empty prefix selects every binding whose path is loaded, so completion
// at the document root can draw on all registered schemas. Unresolvable
// paths and unbound prefixes are skipped silently.
func ActiveSchemas(bindings map[string]namespace_registry.Binding, requestedPrefix string, registry *SchemaRegistry) []BoundSchema {
	paths := make([]string, 0, len(bindings))
	for path := range bindings {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if requestedPrefix != "" {
		for _, path := range paths {
			binding := bindings[path]
			if binding.Prefix != requestedPrefix {
				continue
			}
			if source, cache, ok := registry.Lookup(binding.Path); ok {
				return []BoundSchema{{Source: source, Cache: cache, Prefix: binding.Prefix}}
			}
		}
		return nil
	}

	var active []BoundSchema
	for _, path := range paths {
		if source, cache, ok := registry.Lookup(path); ok {
			active = append(active, BoundSchema{Source: source, Cache: cache, Prefix: bindings[path].Prefix})
		}
	}
	return active
}
