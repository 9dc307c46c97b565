package models

// NodeCategory distinguishes element and attribute definitions.
type NodeCategory string

const (
	CategoryElement   NodeCategory = "element"
	CategoryAttribute NodeCategory = "attribute"
)

// NodeDef is one schema-derived suggestion record. Instances are produced
// once per lookup by a schema source and thereafter served verbatim from
// cache; nothing downstream mutates them.
type NodeDef struct {
	Name          string
	Category      NodeCategory
	TypeInfo      string
	Required      bool
	Documentation string
}
