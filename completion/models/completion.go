package models

// Position is a 0-indexed line and character in a document.
type Position struct {
	Line      int
	Character int
}

// Range is a span in a document.
type Range struct {
	Start Position
	End   Position
}

// TriggerKind classifies the event that caused a completion request.
type TriggerKind int

const (
	// TriggerInvoked means the user explicitly asked for completions.
	TriggerInvoked TriggerKind = iota
	// TriggerCharacter means a single typed character caused the request.
	TriggerCharacter
	// TriggerIncomplete means the request continues an incomplete list.
	TriggerIncomplete
)

// Trigger carries the trigger kind and, for character triggers, the typed character.
type Trigger struct {
	Kind      TriggerKind
	Character string
}

// ItemKind tags a completion item for the host presentation layer.
type ItemKind string

const (
	ItemKindElement   ItemKind = "element"
	ItemKindAttribute ItemKind = "attribute"
	ItemKindCloseTag  ItemKind = "closeTag"
	ItemKindSnippet   ItemKind = "snippet"
)

// Item is a single completion record returned to the host.
// InsertText uses snippet placeholders ($1, $2) for cursor stops.
type Item struct {
	Label         string
	Kind          ItemKind
	InsertText    string
	Range         *Range
	Preselect     bool
	Documentation string
}
