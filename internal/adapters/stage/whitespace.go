package stage

import (
	"strings"
)

// Whitespace collapses any remaining multi-space runs to a single space and
// trims both ends. It is the final stage of the pipeline.
type Whitespace struct{}

// NewWhitespace creates the whitespace cleanup stage.
func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Name identifies the stage.
func (s *Whitespace) Name() string { return "whitespace" }

// Apply rejoins the whitespace-delimited fields with single spaces.
func (s *Whitespace) Apply(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}
