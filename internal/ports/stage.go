package ports

// Stage is one pure text transformation step in the cleaning pipeline.
// Apply must be total: any string input, including the empty string, yields a
// string output without error.
type Stage interface {
	// Name identifies the stage in traces and logs.
	Name() string

	// Apply transforms the text and returns the result.
	Apply(text string) string
}
