package stage

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

// Contractions expands contracted tokens ("didn't" -> "did not") using the
// lexicon. Tokens are matched case-insensitively with surrounding punctuation
// trimmed off; curly and straight apostrophes match identically. Tokens
// without a lexicon entry, including possessives, pass through unchanged, so
// already-expanded text is never expanded twice.
type Contractions struct {
	lexicon ports.Lexicon
}

// NewContractions creates the contraction expansion stage.
func NewContractions(lexicon ports.Lexicon) *Contractions {
	return &Contractions{lexicon: lexicon}
}

// Name identifies the stage.
func (s *Contractions) Name() string { return "contractions" }

// Apply tokenizes on whitespace, expands matching tokens and rejoins with
// single spaces.
func (s *Contractions) Apply(text string) string {
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(tokens)*4)
	for i, token := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.expandToken(token))
	}
	return sb.String()
}

// expandToken expands a single whitespace-delimited token, keeping any
// punctuation that surrounded the contracted core.
func (s *Contractions) expandToken(token string) string {
	prefix, core, suffix := trimPunct(token)
	if core == "" {
		return token
	}

	expansion, ok := s.lexicon.ExpandContraction(core)
	if !ok {
		return token
	}

	// The lexicon stores lowercase expansions; carry a leading capital over.
	if first, _ := utf8.DecodeRuneInString(core); unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(expansion)
		expansion = string(unicode.ToUpper(r)) + expansion[size:]
	}

	if prefix == "" && suffix == "" {
		return expansion
	}
	return prefix + expansion + suffix
}

// trimPunct splits a token into leading punctuation, core and trailing
// punctuation. Apostrophes inside the core are untouched.
func trimPunct(token string) (prefix, core, suffix string) {
	start := 0
	for start < len(token) {
		r, size := utf8.DecodeRuneInString(token[start:])
		if !isEdgePunct(r) {
			break
		}
		start += size
	}

	end := len(token)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(token[start:end])
		if !isEdgePunct(r) {
			break
		}
		end -= size
	}

	return token[:start], token[start:end], token[end:]
}

// isEdgePunct reports whether r is trimmed from token edges before lexicon
// lookup. Interior apostrophes are never edges, so contraction keys like
// "didn't" stay intact while a quoted "'didn't'" still sheds its quotes.
func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
