package ports

// Lexicon defines read-only lookups into the stopword, negator and
// contraction tables. Implementations are loaded once at startup and must be
// safe for concurrent reads.
type Lexicon interface {
	// IsStopword reports whether token is a common filler word.
	IsStopword(token string) bool

	// IsNegator reports whether token must survive stopword filtering
	// because it carries negation.
	IsNegator(token string) bool

	// ExpandContraction returns the expanded form of a contracted token
	// ("didn't" -> "did not") and whether a match was found.
	ExpandContraction(token string) (string, bool)
}
