package domain

// Metrics holds the before/after word statistics for a single comment.
type Metrics struct {
	// OriginalWords is the whitespace-delimited word count of the raw text.
	OriginalWords int
	// CleanedWords is the word count of the cleaned text.
	CleanedWords int
	// WordsRemoved is OriginalWords - CleanedWords. Contraction expansion
	// can make this negative for short inputs.
	WordsRemoved int
	// ReductionRatio is WordsRemoved / OriginalWords, 0 when the raw text
	// has no words.
	ReductionRatio float64
}

// Result holds the outcome of cleaning a single comment.
type Result struct {
	Original string
	Cleaned  string
	Metrics  Metrics
	// Success is true when the cleaned text is non-blank.
	Success bool
}

// StageTrace records the output of one pipeline stage for diagnostics.
type StageTrace struct {
	Stage  string
	Output string
}

// CommentRecord pairs a raw comment with its cleaned form and metrics inside
// a batch run. Records are immutable after creation.
type CommentRecord struct {
	ID       string
	Original string
	Cleaned  string
	Metrics  Metrics
	Success  bool
}

// Summary aggregates metrics across a batch of comment records.
type Summary struct {
	TotalComments      int
	Succeeded          int
	Failed             int
	TotalOriginalWords int
	TotalCleanedWords  int
	TotalWordsRemoved  int
	// AverageReductionRatio is the mean of per-record reduction ratios.
	AverageReductionRatio float64
	AverageWordsBefore    float64
	AverageWordsAfter     float64
}
