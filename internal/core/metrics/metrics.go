// Package metrics computes per-comment word-count deltas and aggregates them
// across a batch.
package metrics

import (
	"strings"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

// CountWords returns the number of whitespace-delimited words in text. An
// empty or blank string counts zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Compare computes the before/after metrics for one raw/cleaned pair.
func Compare(raw, cleaned string) domain.Metrics {
	original := CountWords(raw)
	after := CountWords(cleaned)

	m := domain.Metrics{
		OriginalWords: original,
		CleanedWords:  after,
		WordsRemoved:  original - after,
	}
	if original > 0 {
		m.ReductionRatio = float64(m.WordsRemoved) / float64(original)
	}
	return m
}

// Summarizer folds comment records into a batch summary incrementally, so
// large batches can stream through without being held in memory.
type Summarizer struct {
	summary  domain.Summary
	ratioSum float64
}

// NewSummarizer creates an empty summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Add folds one record into the running totals.
func (s *Summarizer) Add(record domain.CommentRecord) {
	s.summary.TotalComments++
	if record.Success {
		s.summary.Succeeded++
	} else {
		s.summary.Failed++
	}
	s.summary.TotalOriginalWords += record.Metrics.OriginalWords
	s.summary.TotalCleanedWords += record.Metrics.CleanedWords
	s.summary.TotalWordsRemoved += record.Metrics.WordsRemoved
	s.ratioSum += record.Metrics.ReductionRatio
}

// Summary returns the aggregate for everything added so far. An empty batch
// yields the zero Summary.
func (s *Summarizer) Summary() domain.Summary {
	out := s.summary
	if out.TotalComments == 0 {
		return out
	}
	n := float64(out.TotalComments)
	out.AverageReductionRatio = s.ratioSum / n
	out.AverageWordsBefore = float64(out.TotalOriginalWords) / n
	out.AverageWordsAfter = float64(out.TotalCleanedWords) / n
	return out
}

// Summarize folds an in-memory slice of records in one call.
func Summarize(records []domain.CommentRecord) domain.Summary {
	s := NewSummarizer()
	for _, r := range records {
		s.Add(r)
	}
	return s.Summary()
}
