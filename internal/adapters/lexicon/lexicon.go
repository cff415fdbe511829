// Package lexicon loads the static stopword, negator and contraction tables
// used by the cleaning pipeline. The tables are built once at startup and are
// immutable afterwards, so concurrent reads need no locking.
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconData []byte

// file mirrors the YAML layout of a lexicon file.
type file struct {
	Stopwords    []string          `yaml:"stopwords"`
	Negators     []string          `yaml:"negators"`
	Contractions map[string]string `yaml:"contractions"`
}

// Lexicon holds the loaded tables. It implements ports.Lexicon.
type Lexicon struct {
	stopwords    map[string]struct{}
	negators     map[string]struct{}
	contractions map[string]string
}

// Default builds the lexicon shipped with the module.
func Default() (*Lexicon, error) {
	return parse(defaultLexiconData)
}

// LoadFile builds a lexicon from a YAML file, replacing the embedded default.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	lex, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return lex, nil
}

func parse(data []byte) (*Lexicon, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if len(f.Stopwords) == 0 {
		return nil, errors.New("lexicon has no stopwords")
	}
	if len(f.Negators) == 0 {
		return nil, errors.New("lexicon has no negators")
	}
	if len(f.Contractions) == 0 {
		return nil, errors.New("lexicon has no contractions")
	}

	lex := &Lexicon{
		stopwords:    make(map[string]struct{}, len(f.Stopwords)),
		negators:     make(map[string]struct{}, len(f.Negators)),
		contractions: make(map[string]string, len(f.Contractions)),
	}

	for _, w := range f.Stopwords {
		w = NormalizeToken(w)
		if w == "" {
			return nil, errors.New("lexicon has a blank stopword entry")
		}
		lex.stopwords[w] = struct{}{}
	}
	for _, w := range f.Negators {
		w = NormalizeToken(w)
		if w == "" {
			return nil, errors.New("lexicon has a blank negator entry")
		}
		lex.negators[w] = struct{}{}
	}
	for k, v := range f.Contractions {
		k = NormalizeToken(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			return nil, fmt.Errorf("lexicon has a blank contraction mapping %q: %q", k, v)
		}
		lex.contractions[k] = strings.ToLower(v)
	}

	return lex, nil
}

// IsStopword reports whether token is a common filler word.
func (lx *Lexicon) IsStopword(token string) bool {
	_, ok := lx.stopwords[NormalizeToken(token)]
	return ok
}

// IsNegator reports whether token must survive stopword filtering.
func (lx *Lexicon) IsNegator(token string) bool {
	_, ok := lx.negators[NormalizeToken(token)]
	return ok
}

// ExpandContraction returns the expansion of a contracted token and whether
// a match was found. Lookup is case-insensitive and treats curly and straight
// apostrophes identically.
func (lx *Lexicon) ExpandContraction(token string) (string, bool) {
	exp, ok := lx.contractions[NormalizeToken(token)]
	return exp, ok
}

// Stopwords returns the number of stopword entries.
func (lx *Lexicon) Stopwords() int { return len(lx.stopwords) }

// Negators returns the number of negator entries.
func (lx *Lexicon) Negators() int { return len(lx.negators) }

// Contractions returns the number of contraction entries.
func (lx *Lexicon) Contractions() int { return len(lx.contractions) }

// NormalizeToken lowercases a token and folds curly apostrophes to straight
// ones so lexicon lookups see one canonical form.
func NormalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if strings.ContainsRune(token, '’') {
		token = strings.ReplaceAll(token, "’", "'")
	}
	return token
}
