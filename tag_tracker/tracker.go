package tag_tracker

import (
	"strings"

	"github.com/tagmate/tagmate/completion/models"
	"github.com/tagmate/tagmate/document"
)

// Stack folds a token stream into the sequence of currently-open element
// names. A token whose name already appears in the sequence is treated as
// that element's closer: everything above the nearest matching entry is
// discarded along with it. Crossed or dangling tags therefore still yield
// some stack; malformed nesting is never reported.
func Stack(tokens []Token) []string {
	stack := make([]string, 0, 8)
	for _, tok := range tokens {
		if idx := lastIndex(stack, tok.Name); idx >= 0 {
			stack = stack[:idx]
			continue
		}
		stack = append(stack, tok.Name)
	}
	return stack
}

// UnclosedTags returns the open element names for a document prefix.
func UnclosedTags(textToCursor string) []string {
	return Stack(Tokenize(textToCursor))
}

// ParentTag infers the element enclosing the cursor from the full-document
// token stream. When the cursor sits on the name of the topmost open tag the
// user is still typing that tag, so its parent is the entry below it. A
// second line-local check catches tags whose name and attributes span lines.
func ParentTag(doc *document.Document, pos models.Position, tokens []Token) string {
	stack := Stack(TokensBefore(tokens, doc.OffsetOf(pos)))
	if len(stack) == 0 {
		return ""
	}
	top := stack[len(stack)-1]
	below := ""
	if len(stack) > 1 {
		below = stack[len(stack)-2]
	}

	word := doc.WordAt(pos)
	if word != "" {
		if word == top {
			return below
		}
		if last := lastTokenName(doc.LineBefore(pos)); last != "" && LocalName(last) == word {
			return below
		}
	}
	return top
}

// LastTagName returns the last tag-name token on a line, or "".
func LastTagName(line string) string {
	return lastTokenName(line)
}

// LocalName strips a namespace prefix from a tag name.
func LocalName(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}

func lastTokenName(line string) string {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1].Name
}

func lastIndex(stack []string, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return i
		}
	}
	return -1
}
