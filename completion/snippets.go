package completion

import "github.com/tagmate/tagmate/completion/models"

// builtinSnippets are served when the cursor sits in free text with no tag
// context to complete against.
var builtinSnippets = []models.Item{
	{
		Label:         "xml",
		Kind:          models.ItemKindSnippet,
		InsertText:    `<?xml version="1.0" encoding="UTF-8"?>`,
		Documentation: "XML declaration",
	},
	{
		Label:         "comment",
		Kind:          models.ItemKindSnippet,
		InsertText:    "<!-- $1 -->",
		Documentation: "Comment block",
	},
	{
		Label:         "cdata",
		Kind:          models.ItemKindSnippet,
		InsertText:    "<![CDATA[$1]]>",
		Documentation: "CDATA section",
	},
}

func snippetItems() []models.Item {
	items := make([]models.Item, len(builtinSnippets))
	copy(items, builtinSnippets)
	return items
}
