package namespace_registry

import (
	"regexp"
	"sort"
	"strings"
)

// Binding associates a schema path with the namespace prefix declared for
// its URI. Prefix is empty for the default namespace and for schemas hinted
// without any matching xmlns declaration.
type Binding struct {
	Prefix string
	Path   string
}

// Reserved prefixes that never map to a completion schema.
var reservedPrefixes = map[string]bool{
	"xsi":  true,
	"html": true,
}

var (
	prefixedDeclPattern   = regexp.MustCompile(`xmlns:([\w.-]+)\s*=\s*"([^"]+)"`)
	defaultDeclPattern    = regexp.MustCompile(`xmlns\s*=\s*"([^"]+)"`)
	schemaLocationPattern = regexp.MustCompile(`xsi:schemaLocation\s*=\s*"([^"]+)"`)
	noNamespacePattern    = regexp.MustCompile(`xsi:noNamespaceSchemaLocation\s*=\s*"([^"]+)"`)
	tagNamePattern        = regexp.MustCompile(`</?([A-Za-z_][\w.-]*(?::[\w.-]*)?)`)
)

// Namespaces scans full document text for namespace declarations and
// schema-location hints and joins them by URI into a path-keyed binding
// map. Later declarations sharing a URI win; each schema path appears at
// most once.
func Namespaces(text string) map[string]Binding {
	prefixByURI := applyDeclarations(text)

	pathByURI := make(map[string]string)
	for _, m := range schemaLocationPattern.FindAllStringSubmatch(text, -1) {
		fields := strings.Fields(m[1])
		for i := 0; i+1 < len(fields); i += 2 {
			pathByURI[fields[i]] = fields[i+1]
		}
	}
	for _, m := range noNamespacePattern.FindAllStringSubmatch(text, -1) {
		pathByURI["local:"+m[1]] = m[1]
	}

	bindings := make(map[string]Binding, len(pathByURI))
	for uri, path := range pathByURI {
		b := Binding{Path: path}
		if prefix, ok := prefixByURI[uri]; ok {
			b.Prefix = prefix
		}
		bindings[path] = b
	}
	return bindings
}

type namespaceDecl struct {
	offset int
	prefix string
	uri    string
}

// applyDeclarations folds prefixed and default xmlns declarations into a
// uri-to-prefix map in document order, so a later declaration of either
// category overrides an earlier one for the same URI.
func applyDeclarations(text string) map[string]string {
	var decls []namespaceDecl
	for _, m := range prefixedDeclPattern.FindAllStringSubmatchIndex(text, -1) {
		prefix := text[m[2]:m[3]]
		if reservedPrefixes[prefix] {
			continue
		}
		decls = append(decls, namespaceDecl{offset: m[0], prefix: prefix, uri: text[m[4]:m[5]]})
	}
	for _, m := range defaultDeclPattern.FindAllStringSubmatchIndex(text, -1) {
		decls = append(decls, namespaceDecl{offset: m[0], uri: text[m[2]:m[3]]})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].offset < decls[j].offset })

	prefixByURI := make(map[string]string, len(decls))
	for _, decl := range decls {
		prefixByURI[decl.uri] = decl.prefix
	}
	return prefixByURI
}

// CompletionPrefix returns the namespace prefix of the last tag-name token
// on the current line. An empty result means every registered namespace is
// eligible.
func CompletionPrefix(line string) string {
	matches := tagNamePattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return ""
	}
	name := matches[len(matches)-1][1]
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i]
	}
	return ""
}
