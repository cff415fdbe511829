package stage

import (
	"strings"

	"golang.org/x/net/html"
)

// Markup strips angle-bracket tag constructs while keeping the text they
// enclose. HTML entities are decoded first so "&lt;3" survives as literal
// text instead of becoming a tag delimiter casualty. Stripping is
// best-effort: any <...> span on a single line is removed, while an
// unmatched < or > stays in the output as literal text.
type Markup struct{}

// NewMarkup creates the markup stripping stage.
func NewMarkup() *Markup {
	return &Markup{}
}

// Name identifies the stage.
func (s *Markup) Name() string { return "markup" }

// Apply decodes entities and replaces every tag-shaped span with a space.
func (s *Markup) Apply(text string) string {
	if text == "" {
		return ""
	}

	text = html.UnescapeString(text)
	if !strings.ContainsRune(text, '<') {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '<' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		end := closingBracket(text, i+1)
		if end < 0 {
			// No closing > on this line: keep the < literal.
			sb.WriteByte('<')
			i++
			continue
		}

		// Spans become a space so words on either side stay separated.
		sb.WriteByte(' ')
		i = end + 1
	}
	return sb.String()
}

// closingBracket returns the index of the next '>' at or after from, or -1 if
// a newline or the end of the text comes first. Tags do not span lines.
func closingBracket(text string, from int) int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '>':
			return i
		case '\n':
			return -1
		}
	}
	return -1
}
