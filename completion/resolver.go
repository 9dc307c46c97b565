package completion

import (
	"regexp"

	"github.com/tagmate/tagmate/completion/models"
)

var (
	// An attribute-value opener whose quote is still unterminated before
	// the cursor. Completions are suppressed anywhere inside it.
	openAttrValuePattern = regexp.MustCompile(`=\s*"[^"]*$`)

	// The nearest tag opener not yet closed by ">" before the cursor.
	openTagPattern = regexp.MustCompile(`<[A-Za-z_][\w:.-]*[^<>]*$`)

	// At least one attribute-name token after the tag name.
	attrTokenPattern = regexp.MustCompile(`\s[\w:.-]+`)

	// Any tag-name token: the identifier following "<" or "</".
	tagTokenPattern = regexp.MustCompile(`</?[A-Za-z_][\w:.-]*`)
)

// Classify determines the completion kind from the current line's text
// before the cursor and the trigger signal. Pure over its inputs.
func Classify(lineBeforeCursor string, trigger models.Trigger) Kind {
	if openAttrValuePattern.MatchString(lineBeforeCursor) {
		return KindNone
	}

	if trigger.Kind == models.TriggerCharacter {
		switch trigger.Character {
		case "<":
			return KindElement
		case " ":
			return KindAttribute
		case "/":
			return KindClosingElement
		default:
			return KindNone
		}
	}

	if openTag := openTagPattern.FindString(lineBeforeCursor); openTag != "" {
		if attrTokenPattern.MatchString(openTag) {
			return KindIncompleteAttribute
		}
	}
	if tagTokenPattern.MatchString(lineBeforeCursor) {
		return KindIncompleteElement
	}
	return KindSnippet
}
