// comment_cleaner.go
// Package commentcleaner normalizes noisy free-text customer comments into a
// clean, NLP-ready form while preserving negation semantics. Raw text runs
// through a fixed sequence of deterministic stages: contraction expansion,
// markup stripping, emoji removal, repeated-character collapsing, case
// folding, symbol stripping, negation-aware stopword removal and whitespace
// cleanup. Before/after word counts feed per-comment and batch metrics.
//
// This file exposes one-call helpers over a lazily built default cleaner;
// pkg/cleaner and pkg/batch expose the configurable facades.
package commentcleaner

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/metrics"
	"github.com/baditaflorin/go_comment_cleaner/pkg/cleaner"
)

var (
	defaultOnce    sync.Once
	defaultCleaner *cleaner.Cleaner
	defaultErr     error
)

func getDefault() (*cleaner.Cleaner, error) {
	defaultOnce.Do(func() {
		defaultCleaner, defaultErr = cleaner.New()
	})
	return defaultCleaner, defaultErr
}

// CleanWithDefaults cleans text using the embedded lexicon and default
// configuration. The returned error is always a configuration error from
// building the default cleaner, never a per-input failure.
func CleanWithDefaults(text string) (domain.Result, error) {
	c, err := getDefault()
	if err != nil {
		return domain.Result{}, err
	}
	return c.Clean(context.Background(), text), nil
}

// CompareWithDefaults computes before/after word metrics for a raw/cleaned
// pair.
func CompareWithDefaults(raw, cleaned string) domain.Metrics {
	return metrics.Compare(raw, cleaned)
}

// SummarizeWithDefaults folds a slice of comment records into a batch
// summary. An empty batch yields the zero summary.
func SummarizeWithDefaults(records []domain.CommentRecord) domain.Summary {
	return metrics.Summarize(records)
}
