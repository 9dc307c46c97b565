package schema_provider

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/tagmate/tagmate/schema_provider/models"
)

// XSDSource answers element and attribute queries from one parsed XSD
// document. Decoding happens once at load; lookups run against prepared
// maps so every query is a pure in-memory computation.
type XSDSource struct {
	path     string
	schema   *xsdSchema
	elements map[string]*xsdElement
	types    map[string]*xsdComplexType
}

type xsdSchema struct {
	XMLName      xml.Name         `xml:"schema"`
	Elements     []xsdElement     `xml:"element"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	Annotation  *xsdAnnotation  `xml:"annotation"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdComplexType struct {
	Name       string         `xml:"name,attr"`
	Sequence   *xsdGroup      `xml:"sequence"`
	Choice     *xsdGroup      `xml:"choice"`
	All        *xsdGroup      `xml:"all"`
	Attributes []xsdAttribute `xml:"attribute"`
}

type xsdGroup struct {
	Elements  []xsdElement `xml:"element"`
	Sequences []xsdGroup   `xml:"sequence"`
	Choices   []xsdGroup   `xml:"choice"`
}

type xsdAttribute struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Use        string         `xml:"use,attr"`
	Annotation *xsdAnnotation `xml:"annotation"`
}

type xsdAnnotation struct {
	Documentation []string `xml:"documentation"`
}

// NewXSDSource decodes XSD data and prepares the lookup maps.
func NewXSDSource(path string, data []byte) (*XSDSource, error) {
	var schema xsdSchema
	if err := xml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to decode schema %s: %w", path, err)
	}

	source := &XSDSource{
		path:     path,
		schema:   &schema,
		elements: make(map[string]*xsdElement),
		types:    make(map[string]*xsdComplexType),
	}
	source.prepare()
	return source, nil
}

// LoadXSDSource reads an XSD file and builds a source registered under the
// same path.
func LoadXSDSource(path string) (*XSDSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return NewXSDSource(path, data)
}

// Path returns the schema path this source is identified by.
func (s *XSDSource) Path() string {
	return s.path
}

// GetRootElements returns the top-level element declarations.
func (s *XSDSource) GetRootElements() []models.NodeDef {
	defs := make([]models.NodeDef, 0, len(s.schema.Elements))
	for i := range s.schema.Elements {
		defs = append(defs, s.elementDef(&s.schema.Elements[i]))
	}
	return defs
}

// GetSubElements returns the child element declarations of parentName, or
// an empty list when the element is unknown or has no children.
func (s *XSDSource) GetSubElements(parentName string) []models.NodeDef {
	ct := s.complexTypeFor(parentName)
	if ct == nil {
		return []models.NodeDef{}
	}
	defs := []models.NodeDef{}
	for _, group := range []*xsdGroup{ct.Sequence, ct.Choice, ct.All} {
		s.collectGroup(group, &defs)
	}
	return defs
}

// GetAttributesForElement returns the attribute declarations of an element.
func (s *XSDSource) GetAttributesForElement(elementName string) []models.NodeDef {
	ct := s.complexTypeFor(elementName)
	if ct == nil {
		return []models.NodeDef{}
	}
	defs := make([]models.NodeDef, 0, len(ct.Attributes))
	for _, attr := range ct.Attributes {
		defs = append(defs, models.NodeDef{
			Name:          attr.Name,
			Category:      models.CategoryAttribute,
			TypeInfo:      attr.Type,
			Required:      attr.Use == "required",
			Documentation: documentationText(attr.Annotation),
		})
	}
	return defs
}

// prepare indexes named complex types and every element declaration,
// top-level or nested, by local name so non-root parents resolve too.
func (s *XSDSource) prepare() {
	for i := range s.schema.ComplexTypes {
		ct := &s.schema.ComplexTypes[i]
		if ct.Name != "" {
			s.types[ct.Name] = ct
		}
	}
	for i := range s.schema.Elements {
		s.indexElement(&s.schema.Elements[i])
	}
	for i := range s.schema.ComplexTypes {
		s.indexType(&s.schema.ComplexTypes[i])
	}
}

func (s *XSDSource) indexElement(el *xsdElement) {
	if el.Name == "" {
		return
	}
	if _, exists := s.elements[el.Name]; !exists {
		s.elements[el.Name] = el
	}
	if el.ComplexType != nil {
		s.indexType(el.ComplexType)
	}
}

func (s *XSDSource) indexType(ct *xsdComplexType) {
	for _, group := range []*xsdGroup{ct.Sequence, ct.Choice, ct.All} {
		s.indexGroup(group)
	}
}

func (s *XSDSource) indexGroup(group *xsdGroup) {
	if group == nil {
		return
	}
	for i := range group.Elements {
		s.indexElement(&group.Elements[i])
	}
	for i := range group.Sequences {
		s.indexGroup(&group.Sequences[i])
	}
	for i := range group.Choices {
		s.indexGroup(&group.Choices[i])
	}
}

func (s *XSDSource) complexTypeFor(elementName string) *xsdComplexType {
	el, ok := s.elements[stripPrefix(elementName)]
	if !ok {
		return nil
	}
	return s.complexTypeOf(el)
}

func (s *XSDSource) complexTypeOf(el *xsdElement) *xsdComplexType {
	if el.ComplexType != nil {
		return el.ComplexType
	}
	if el.Type != "" {
		return s.types[stripPrefix(el.Type)]
	}
	return nil
}

func (s *XSDSource) collectGroup(group *xsdGroup, defs *[]models.NodeDef) {
	if group == nil {
		return
	}
	for i := range group.Elements {
		el := &group.Elements[i]
		if el.Ref != "" {
			if target, ok := s.elements[stripPrefix(el.Ref)]; ok {
				*defs = append(*defs, s.elementDef(target))
			}
			continue
		}
		*defs = append(*defs, s.elementDef(el))
	}
	for i := range group.Sequences {
		s.collectGroup(&group.Sequences[i], defs)
	}
	for i := range group.Choices {
		s.collectGroup(&group.Choices[i], defs)
	}
}

func (s *XSDSource) elementDef(el *xsdElement) models.NodeDef {
	typeInfo := el.Type
	if typeInfo == "" && el.ComplexType != nil {
		typeInfo = "complexType"
	}
	return models.NodeDef{
		Name:          el.Name,
		Category:      models.CategoryElement,
		TypeInfo:      typeInfo,
		Required:      el.MinOccurs != "0",
		Documentation: documentationText(el.Annotation),
	}
}

func documentationText(a *xsdAnnotation) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.Documentation))
	for _, doc := range a.Documentation {
		if trimmed := strings.TrimSpace(doc); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}

func stripPrefix(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}
