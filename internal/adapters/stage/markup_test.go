package stage

import (
	"strings"
	"testing"
)

func TestMarkup(t *testing.T) {
	s := NewMarkup()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple tags keep inner text",
			input:    "<div>Gooood quality though</div>",
			expected: " Gooood quality though ",
		},
		{
			name:     "tag with attributes",
			input:    `<a href="http://example.com">link text</a>`,
			expected: " link text ",
		},
		{
			name:     "unmatched open bracket stays literal",
			input:    "price < 100",
			expected: "price < 100",
		},
		{
			name:     "unmatched close bracket stays literal",
			input:    "score > 9000",
			expected: "score > 9000",
		},
		{
			name:     "unclosed tag keeps surrounding text",
			input:    "good <div quality",
			expected: "good <div quality",
		},
		{
			name:     "entities decoded before stripping",
			input:    "tom &amp; jerry &lt;3",
			expected: "tom & jerry <3",
		},
		{
			name:     "tag does not span lines",
			input:    "a <div\n> b",
			expected: "a <div\n> b",
		},
		{
			name:     "self closing tag",
			input:    "line one<br/>line two",
			expected: "line one line two",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Apply(tc.input)
			if got != tc.expected {
				t.Errorf("Apply(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMarkupPreservesContent(t *testing.T) {
	s := NewMarkup()
	got := s.Apply("<p><strong>great</strong> product</p>")
	for _, word := range []string{"great", "product"} {
		if !strings.Contains(got, word) {
			t.Errorf("output %q lost content word %q", got, word)
		}
	}
	for _, tag := range []string{"p", "strong"} {
		if strings.Contains(got, "<"+tag) {
			t.Errorf("output %q still contains tag %q", got, tag)
		}
	}
}
