package tag_tracker

// TokenKind classifies a tag-name token in the document.
type TokenKind int

const (
	// TokenOpen is the name following "<" in an opening tag.
	TokenOpen TokenKind = iota
	// TokenClose is the name following "</" in a closing tag.
	TokenClose
)

// Token is one tag-name token with the byte offset of its "<".
type Token struct {
	Kind   TokenKind
	Name   string
	Offset int
}

// Tokenize scans text and returns every tag-name token in document order.
// Processing instructions, comments, declarations and self-closing tags
// produce no token. A tag left unterminated at end of text still produces
// its token, so a tag being typed under the cursor is visible to the stack.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			i++
			continue
		}
		start := i
		i++
		if i >= len(text) {
			break
		}
		switch {
		case text[i] == '?':
			i = skipUntil(text, i, "?>")
		case hasPrefixAt(text, i, "!--"):
			i = skipUntil(text, i, "-->")
		case text[i] == '!':
			i = skipUntil(text, i, ">")
		case text[i] == '/':
			name, next := readName(text, i+1)
			i = skipTagRemainder(text, next)
			if name != "" {
				tokens = append(tokens, Token{Kind: TokenClose, Name: name, Offset: start})
			}
		default:
			name, next := readName(text, i)
			if name == "" {
				continue
			}
			end, selfClosing := scanTagEnd(text, next)
			i = end
			if !selfClosing {
				tokens = append(tokens, Token{Kind: TokenOpen, Name: name, Offset: start})
			}
		}
	}
	return tokens
}

// TokensBefore returns the leading tokens whose tags start before offset.
func TokensBefore(tokens []Token, offset int) []Token {
	for i, tok := range tokens {
		if tok.Offset >= offset {
			return tokens[:i]
		}
	}
	return tokens
}

// scanTagEnd advances past the remainder of an opening tag, honoring quoted
// attribute values, and reports whether the tag is self-closing. It stops
// without consuming a stray "<", which starts the next tag.
func scanTagEnd(text string, i int) (int, bool) {
	var quote byte
	selfClosing := false
	for i < len(text) {
		c := text[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			i++
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '/':
			if i+1 < len(text) && text[i+1] == '>' {
				selfClosing = true
			}
		case '>':
			return i + 1, selfClosing
		case '<':
			return i, false
		}
		i++
	}
	return i, selfClosing
}

func readName(text string, i int) (string, int) {
	start := i
	if i < len(text) && isNameStart(text[i]) {
		i++
		for i < len(text) && isNameChar(text[i]) {
			i++
		}
	}
	return text[start:i], i
}

// skipTagRemainder advances past the rest of a closing tag, stopping
// without consuming a stray "<".
func skipTagRemainder(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case '>':
			return i + 1
		case '<':
			return i
		}
		i++
	}
	return i
}

func skipUntil(text string, i int, marker string) int {
	for i < len(text) {
		if hasPrefixAt(text, i, marker) {
			return i + len(marker)
		}
		i++
	}
	return i
}

func hasPrefixAt(text string, i int, prefix string) bool {
	return i+len(prefix) <= len(text) && text[i:i+len(prefix)] == prefix
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '.' || c == ':'
}
