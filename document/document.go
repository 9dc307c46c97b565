package document

import (
	"strings"

	"github.com/tagmate/tagmate/completion/models"
)

// Document is an in-memory, line-indexed view of one open markup document.
// Every edit replaces the full text and bumps the version counter, which
// downstream analyses use to invalidate memoized scans.
type Document struct {
	text    string
	lines   []string
	version int
}

// New creates a document from its full text at version 0.
func New(text string) *Document {
	return &Document{
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Version returns the current edit version.
func (d *Document) Version() int {
	return d.version
}

// SetText replaces the document content and bumps the version.
func (d *Document) SetText(text string) {
	d.text = text
	d.lines = strings.Split(text, "\n")
	d.version++
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of the given 0-indexed line, or "" when out of range.
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return d.lines[n]
}

// LineBefore returns the current line's text up to (not including) the cursor.
func (d *Document) LineBefore(pos models.Position) string {
	line := d.Line(pos.Line)
	if pos.Character < 0 {
		return ""
	}
	if pos.Character >= len(line) {
		return line
	}
	return line[:pos.Character]
}

// OffsetOf converts a position to a byte offset into the full text, clamped
// to the document bounds.
func (d *Document) OffsetOf(pos models.Position) int {
	if pos.Line < 0 {
		return 0
	}
	offset := 0
	for i := 0; i < pos.Line && i < len(d.lines); i++ {
		offset += len(d.lines[i]) + 1
	}
	if pos.Line >= len(d.lines) {
		return len(d.text)
	}
	ch := pos.Character
	if ch > len(d.lines[pos.Line]) {
		ch = len(d.lines[pos.Line])
	}
	if ch < 0 {
		ch = 0
	}
	return offset + ch
}

// TextBefore returns the document prefix from the start up to the cursor.
func (d *Document) TextBefore(pos models.Position) string {
	return d.text[:d.OffsetOf(pos)]
}

// WordAt returns the identifier-like word spanning the cursor, expanding in
// both directions, or "" when the cursor touches no word. Namespace
// separators are not word characters, so a prefixed tag name yields only
// its local segment.
func (d *Document) WordAt(pos models.Position) string {
	line := d.Line(pos.Line)
	if line == "" {
		return ""
	}
	ch := pos.Character
	if ch > len(line) {
		ch = len(line)
	}
	start := ch
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end := ch
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return line[start:end]
}

// WordRangeAt returns the range of the word spanning the cursor, or a
// zero-width range at the cursor when there is no word.
func (d *Document) WordRangeAt(pos models.Position) models.Range {
	line := d.Line(pos.Line)
	ch := pos.Character
	if ch > len(line) {
		ch = len(line)
	}
	start := ch
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end := ch
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return models.Range{
		Start: models.Position{Line: pos.Line, Character: start},
		End:   models.Position{Line: pos.Line, Character: end},
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.'
}
