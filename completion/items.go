package completion

import "fmt"

// Insert templates follow the host's completion syntax, with $1/$2 as
// cursor stops.

// elementBodyTemplate renders an element that expands with an indented body.
func elementBodyTemplate(name string) string {
	return fmt.Sprintf("<%s$1>\n\t$2\n</%s>", name, name)
}

// elementInlineTemplate renders an element without a body placeholder. The
// missing trailing ">" matches the host's established completion syntax
// and is kept as-is.
func elementInlineTemplate(name string) string {
	return fmt.Sprintf("%s$1></%s", name, name)
}

// attributeTemplate renders an attribute with the cursor inside the value.
func attributeTemplate(name string) string {
	return fmt.Sprintf(`%s="$1"`, name)
}

// closingTagDocumentation describes a close-tag completion.
func closingTagDocumentation(name string) string {
	return fmt.Sprintf("Closes the unclosed `<%s>` tag in this file.", name)
}
