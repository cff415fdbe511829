package stage

import (
	"strings"

	"github.com/baditaflorin/go_comment_cleaner/internal/pool"
)

// Symbols removes every character that is not an ASCII letter or whitespace,
// collapses the resulting space runs and trims the ends. With preserveCase
// set, uppercase ASCII letters survive; otherwise only lowercase letters do,
// matching the case-folded text this stage normally receives.
type Symbols struct {
	// Decision table for ASCII bytes: 0 = keep, 1 = replace with space.
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewSymbols creates the special-character stripping stage.
func NewSymbols(preserveCase bool) *Symbols {
	s := &Symbols{
		bytePool: pool.NewBufferPool(1024),
	}

	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'a' && b <= 'z':
			s.asciiTable[i] = 0
		case preserveCase && b >= 'A' && b <= 'Z':
			s.asciiTable[i] = 0
		default:
			s.asciiTable[i] = 1
		}
	}
	return s
}

// Name identifies the stage.
func (s *Symbols) Name() string { return "symbols" }

// Apply strips symbols using the precomputed ASCII table. Non-ASCII runes
// always become spaces; by this point emoji are already gone and any
// remaining accented or foreign-script characters fall outside the
// ASCII-letters-and-spaces contract of the cleaned output.
func (s *Symbols) Apply(text string) string {
	if text == "" {
		return ""
	}

	buffer := s.bytePool.Get()
	defer s.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	lastWasSpace := true // swallows leading spaces
	for _, r := range text {
		keep := r < 128 && s.asciiTable[r] == 0
		if keep {
			*buffer = append(*buffer, byte(r))
			lastWasSpace = false
			continue
		}
		if !lastWasSpace {
			*buffer = append(*buffer, ' ')
			lastWasSpace = true
		}
	}

	return strings.TrimRight(string(*buffer), " ")
}
