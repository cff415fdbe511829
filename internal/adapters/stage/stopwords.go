package stage

import (
	"strings"

	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

// Stopwords drops filler words while always keeping negators, even when a
// negator is also listed as a stopword. The negator check runs first; the
// relative order of surviving tokens is preserved.
type Stopwords struct {
	lexicon ports.Lexicon
}

// NewStopwords creates the negation-aware stopword removal stage.
func NewStopwords(lexicon ports.Lexicon) *Stopwords {
	return &Stopwords{lexicon: lexicon}
}

// Name identifies the stage.
func (s *Stopwords) Name() string { return "stopwords" }

// Apply filters whitespace-delimited tokens and rejoins with single spaces.
func (s *Stopwords) Apply(text string) string {
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if s.lexicon.IsNegator(token) {
			kept = append(kept, token)
			continue
		}
		if s.lexicon.IsStopword(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}
