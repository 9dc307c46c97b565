package contracts

import (
	"github.com/tagmate/tagmate/completion/models"
	"github.com/tagmate/tagmate/document"
)

// ICompletionEngine resolves one completion request against a document.
type ICompletionEngine interface {
	Complete(doc *document.Document, pos models.Position, trigger models.Trigger) []models.Item
}
