package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// RenderXMLPreview prints a highlighted slice of the document around the
// completion position so the user sees the context a suggestion applies to.
func RenderXMLPreview(source string, line int, contextLines int, theme string) error {
	lines := strings.Split(source, "\n")

	start := line - contextLines
	if start < 0 {
		start = 0
	}
	end := line + contextLines + 1
	if end > len(lines) {
		end = len(lines)
	}

	snippet := strings.Join(lines[start:end], "\n") + "\n"
	if err := quick.Highlight(os.Stdout, snippet, "xml", "terminal256", theme); err != nil {
		// Fall back to plain output when the terminal rejects highlighting
		fmt.Print(snippet)
	}
	return nil
}
