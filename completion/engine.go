package completion

import (
	"sync"

	"github.com/tagmate/tagmate/completion/contracts"
	"github.com/tagmate/tagmate/completion/models"
	"github.com/tagmate/tagmate/document"
	"github.com/tagmate/tagmate/namespace_registry"
	"github.com/tagmate/tagmate/schema_provider"
	"github.com/tagmate/tagmate/tag_tracker"
)

// Engine runs the completion pipeline: classify the request, infer the
// structural context, select the active schemas and serve cached
// suggestions. The token stream and namespace map are memoized per
// document version, so repeated requests on an unchanged document never
// rescan its text.
type Engine struct {
	registry *schema_provider.SchemaRegistry

	mutex       sync.Mutex
	doc         *document.Document
	version     int
	tokens      []tag_tracker.Token
	hasTokens   bool
	bindings    map[string]namespace_registry.Binding
	hasBindings bool
}

// NewEngine creates a completion engine over a schema registry.
func NewEngine(registry *schema_provider.SchemaRegistry) contracts.ICompletionEngine {
	return &Engine{registry: registry}
}

// Complete resolves one completion request. The worst outcome of any edge
// case is an empty item list; nothing here fails.
func (e *Engine) Complete(doc *document.Document, pos models.Position, trigger models.Trigger) []models.Item {
	line := doc.LineBefore(pos)

	switch Classify(line, trigger) {
	case KindElement:
		return e.elementItems(doc, pos, line, nil)
	case KindIncompleteElement:
		replaceRange := doc.WordRangeAt(pos)
		return e.elementItems(doc, pos, line, &replaceRange)
	case KindAttribute:
		return e.attributeItems(doc, line, nil)
	case KindIncompleteAttribute:
		replaceRange := doc.WordRangeAt(pos)
		return e.attributeItems(doc, line, &replaceRange)
	case KindClosingElement:
		return e.closingItems(doc, pos)
	case KindSnippet:
		return snippetItems()
	default:
		return nil
	}
}

func (e *Engine) elementItems(doc *document.Document, pos models.Position, line string, replaceRange *models.Range) []models.Item {
	parent := tag_tracker.ParentTag(doc, pos, e.tokensFor(doc))
	active := e.activeSchemas(doc, line)

	var items []models.Item
	for _, bound := range active {
		defs := bound.Cache.Elements(tag_tracker.LocalName(parent))
		for _, def := range defs {
			name := def.Name
			if bound.Prefix != "" {
				name = bound.Prefix + ":" + def.Name
			}
			insert := elementInlineTemplate(name)
			if len(bound.Cache.Elements(def.Name)) > 0 {
				insert = elementBodyTemplate(name)
			}
			items = append(items, models.Item{
				Label:         name,
				Kind:          models.ItemKindElement,
				InsertText:    insert,
				Range:         replaceRange,
				Documentation: def.Documentation,
			})
		}
	}
	return items
}

func (e *Engine) attributeItems(doc *document.Document, line string, replaceRange *models.Range) []models.Item {
	element := tag_tracker.LastTagName(line)
	if element == "" {
		return nil
	}
	active := e.activeSchemas(doc, line)

	var items []models.Item
	for _, bound := range active {
		defs := bound.Cache.Attributes(tag_tracker.LocalName(element))
		for _, def := range defs {
			items = append(items, models.Item{
				Label:         def.Name,
				Kind:          models.ItemKindAttribute,
				InsertText:    attributeTemplate(def.Name),
				Range:         replaceRange,
				Preselect:     def.Required,
				Documentation: def.Documentation,
			})
		}
	}
	return items
}

func (e *Engine) closingItems(doc *document.Document, pos models.Position) []models.Item {
	tokens := tag_tracker.TokensBefore(e.tokensFor(doc), doc.OffsetOf(pos))
	stack := tag_tracker.Stack(tokens)
	if len(stack) == 0 {
		return nil
	}
	name := stack[len(stack)-1]
	return []models.Item{{
		Label:         name,
		Kind:          models.ItemKindCloseTag,
		InsertText:    name,
		Documentation: closingTagDocumentation(name),
	}}
}

func (e *Engine) activeSchemas(doc *document.Document, line string) []schema_provider.BoundSchema {
	bindings := e.bindingsFor(doc)
	prefix := namespace_registry.CompletionPrefix(line)
	return schema_provider.ActiveSchemas(bindings, prefix, e.registry)
}

// tokensFor returns the memoized full-document token stream, rescanning
// only when the document or its version changed.
func (e *Engine) tokensFor(doc *document.Document) []tag_tracker.Token {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.syncLocked(doc)
	if !e.hasTokens {
		e.tokens = tag_tracker.Tokenize(doc.Text())
		e.hasTokens = true
	}
	return e.tokens
}

// bindingsFor returns the memoized namespace binding map for the document.
func (e *Engine) bindingsFor(doc *document.Document) map[string]namespace_registry.Binding {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.syncLocked(doc)
	if !e.hasBindings {
		e.bindings = namespace_registry.Namespaces(doc.Text())
		e.hasBindings = true
	}
	return e.bindings
}

func (e *Engine) syncLocked(doc *document.Document) {
	if e.doc == doc && e.version == doc.Version() {
		return
	}
	e.doc = doc
	e.version = doc.Version()
	e.hasTokens = false
	e.hasBindings = false
}
