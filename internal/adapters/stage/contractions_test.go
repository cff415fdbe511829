package stage

import (
	"testing"

	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/lexicon"
)

func testLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("loading default lexicon: %v", err)
	}
	return lex
}

func TestContractions(t *testing.T) {
	s := NewContractions(testLexicon(t))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple expansion",
			input:    "didn't meet expectations",
			expected: "did not meet expectations",
		},
		{
			name:     "capitalized contraction keeps its capital",
			input:    "Didn't work",
			expected: "Did not work",
		},
		{
			name:     "curly apostrophe",
			input:    "didn’t work",
			expected: "did not work",
		},
		{
			name:     "trailing punctuation survives",
			input:    "it wasn't!",
			expected: "it was not!",
		},
		{
			name:     "possessive untouched",
			input:    "John's phone",
			expected: "John's phone",
		},
		{
			name:     "no double expansion",
			input:    "did not work",
			expected: "did not work",
		},
		{
			name:     "can't becomes cannot",
			input:    "can't recommend",
			expected: "cannot recommend",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "quoted contraction",
			input:    "she said 'didn't'",
			expected: "she said 'did not'",
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

func TestContractionsIdempotent(t *testing.T) {
	s := NewContractions(testLexicon(t))

	input := "didn't meet expectations and weren't happy"
	once := s.Apply(input)
	twice := s.Apply(once)
	if once != twice {
		t.Errorf("expansion is not idempotent: %q != %q", once, twice)
	}
}
