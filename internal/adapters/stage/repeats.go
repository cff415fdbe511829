package stage

import (
	"strings"
)

// Repeats collapses runs of three or more identical characters down to two,
// so "Gooood" becomes "Good" while legitimate doubles like "cool" are left
// alone. The threshold is strictly >=3 consecutive identical runes.
type Repeats struct{}

// NewRepeats creates the repeated-character normalization stage.
func NewRepeats() *Repeats {
	return &Repeats{}
}

// Name identifies the stage.
func (s *Repeats) Name() string { return "repeats" }

// Apply scans runes and drops every repetition beyond the second.
func (s *Repeats) Apply(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))

	var prev rune
	runLen := 0
	for _, r := range text {
		if r == prev {
			runLen++
		} else {
			prev = r
			runLen = 1
		}
		if runLen <= 2 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
