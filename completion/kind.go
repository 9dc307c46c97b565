package completion

// Kind classifies the intent of a suggestion request.
type Kind int

const (
	KindNone Kind = iota
	KindElement
	KindAttribute
	KindClosingElement
	KindIncompleteElement
	KindIncompleteAttribute
	KindSnippet
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindAttribute:
		return "Attribute"
	case KindClosingElement:
		return "ClosingElement"
	case KindIncompleteElement:
		return "IncompleteElement"
	case KindIncompleteAttribute:
		return "IncompleteAttribute"
	case KindSnippet:
		return "Snippet"
	default:
		return "None"
	}
}
