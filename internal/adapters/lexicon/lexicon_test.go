package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLexicon(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default() returned error: %v", err)
	}

	if lex.Stopwords() == 0 || lex.Negators() == 0 || lex.Contractions() == 0 {
		t.Fatalf("default lexicon has empty tables: stopwords=%d negators=%d contractions=%d",
			lex.Stopwords(), lex.Negators(), lex.Contractions())
	}
}

func TestExpandContraction(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default() returned error: %v", err)
	}

	tests := []struct {
		name     string
		token    string
		expected string
		found    bool
	}{
		{name: "lowercase straight apostrophe", token: "didn't", expected: "did not", found: true},
		{name: "capitalized", token: "Didn't", expected: "did not", found: true},
		{name: "curly apostrophe", token: "didn’t", expected: "did not", found: true},
		{name: "can't expands to cannot", token: "can't", expected: "cannot", found: true},
		{name: "already expanded", token: "not", found: false},
		{name: "possessive", token: "John's", found: false},
		{name: "plain word", token: "quality", found: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lex.ExpandContraction(tc.token)
			if ok != tc.found {
				t.Fatalf("ExpandContraction(%q) found=%v, want %v", tc.token, ok, tc.found)
			}
			if tc.found && got != tc.expected {
				t.Errorf("ExpandContraction(%q) = %q, want %q", tc.token, got, tc.expected)
			}
		})
	}
}

func TestNegatorsOverrideStopwords(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default() returned error: %v", err)
	}

	// The shipped tables deliberately overlap: negation-context auxiliaries
	// are both stopwords and negators.
	for _, token := range []string{"did", "was", "were"} {
		if !lex.IsStopword(token) {
			t.Errorf("expected %q to be a stopword", token)
		}
		if !lex.IsNegator(token) {
			t.Errorf("expected %q to be a negator", token)
		}
	}

	for _, token := range []string{"not", "no", "never", "none"} {
		if !lex.IsNegator(token) {
			t.Errorf("expected %q to be a negator", token)
		}
	}

	if lex.IsNegator("though") {
		t.Error("expected \"though\" to be an ordinary stopword, not a negator")
	}
	if !lex.IsStopword("though") {
		t.Error("expected \"though\" to be a stopword")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "lexicon.yaml")
		data := `
stopwords: [the, a]
negators: [not]
contractions:
  didn't: did not
`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		lex, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if !lex.IsStopword("the") || !lex.IsNegator("not") {
			t.Error("loaded lexicon missing expected entries")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte(":\n\t- ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatal("expected error for malformed yaml")
		}
	})

	t.Run("empty tables", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		if err := os.WriteFile(path, []byte("stopwords: [the]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatal("expected error for lexicon with missing tables")
		}
	})
}
