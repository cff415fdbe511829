package stage

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// emojiTable covers the pictographic blocks removed by the emoji stage:
// dingbats, miscellaneous symbols, the SMP emoji planes, regional
// indicators, variation selectors and the zero-width joiner. Accented
// letters and every other script are outside these ranges and pass through.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200d, Hi: 0x200d, Stride: 1}, // zero-width joiner
		{Lo: 0x231a, Hi: 0x231b, Stride: 1}, // watch, hourglass
		{Lo: 0x23e9, Hi: 0x23fa, Stride: 1}, // AV controls
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1}, // misc symbols and arrows
		{Lo: 0xfe0e, Hi: 0xfe0f, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1}, // SMP symbols and pictographs
	},
}

// Emoji replaces emoji and pictographic symbols with spaces, leaving all
// other Unicode text untouched. Input is canonicalized to NFC first so
// combining sequences are judged in their composed form.
type Emoji struct{}

// NewEmoji creates the emoji removal stage.
func NewEmoji() *Emoji {
	return &Emoji{}
}

// Name identifies the stage.
func (s *Emoji) Name() string { return "emoji" }

// Apply runs the NFC + emoji-to-space transform chain.
func (s *Emoji) Apply(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFC, runes.Map(blankEmoji))
	out, _, err := transform.String(t, text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the bare map
		// rather than dropping the stage.
		out = string(mapRunes(text))
	}
	return out
}

func blankEmoji(r rune) rune {
	if unicode.Is(emojiTable, r) {
		return ' '
	}
	return r
}

func mapRunes(text string) []rune {
	rs := []rune(text)
	for i, r := range rs {
		rs[i] = blankEmoji(r)
	}
	return rs
}
