package stage

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lowercase folds the whole string to lower case.
type Lowercase struct{}

// NewLowercase creates the case folding stage.
func NewLowercase() *Lowercase {
	return &Lowercase{}
}

// Name identifies the stage.
func (s *Lowercase) Name() string { return "lowercase" }

// Apply lowercases the text. A fresh caser is used per call because
// cases.Caser values are stateful and not safe for concurrent use.
func (s *Lowercase) Apply(text string) string {
	if text == "" {
		return ""
	}
	return cases.Lower(language.Und).String(text)
}
