package contracts

import "github.com/tagmate/tagmate/schema_provider/models"

// ISchemaSource is one loaded, queryable schema document identified by its
// path. Queries are pure and repeatable, safe to memoize.
type ISchemaSource interface {
	Path() string
	GetRootElements() []models.NodeDef
	GetSubElements(parentName string) []models.NodeDef
	GetAttributesForElement(elementName string) []models.NodeDef
}
