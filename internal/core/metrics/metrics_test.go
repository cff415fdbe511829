package metrics

import (
	"math"
	"testing"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		cleaned  string
		expected domain.Metrics
	}{
		{
			name:    "words removed",
			raw:     "this is the best product ever",
			cleaned: "best product",
			expected: domain.Metrics{
				OriginalWords:  6,
				CleanedWords:   2,
				WordsRemoved:   4,
				ReductionRatio: 4.0 / 6.0,
			},
		},
		{
			name:     "both empty",
			raw:      "",
			cleaned:  "",
			expected: domain.Metrics{},
		},
		{
			name:     "blank raw counts zero",
			raw:      "   \t ",
			cleaned:  "",
			expected: domain.Metrics{},
		},
		{
			name:    "expansion can add words",
			raw:     "didn't work",
			cleaned: "did not work",
			expected: domain.Metrics{
				OriginalWords:  2,
				CleanedWords:   3,
				WordsRemoved:   -1,
				ReductionRatio: -0.5,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.raw, tc.cleaned)
			if got.OriginalWords != tc.expected.OriginalWords ||
				got.CleanedWords != tc.expected.CleanedWords ||
				got.WordsRemoved != tc.expected.WordsRemoved {
				t.Errorf("Compare(%q, %q) = %+v, want %+v", tc.raw, tc.cleaned, got, tc.expected)
			}
			if math.Abs(got.ReductionRatio-tc.expected.ReductionRatio) > 1e-9 {
				t.Errorf("ReductionRatio = %v, want %v", got.ReductionRatio, tc.expected.ReductionRatio)
			}
		})
	}
}

func TestSummarizer(t *testing.T) {
	t.Run("empty batch yields zeros", func(t *testing.T) {
		got := NewSummarizer().Summary()
		if got != (domain.Summary{}) {
			t.Errorf("empty summary = %+v, want zero value", got)
		}
	})

	t.Run("aggregates records", func(t *testing.T) {
		records := []domain.CommentRecord{
			{
				Metrics: domain.Metrics{OriginalWords: 10, CleanedWords: 6, WordsRemoved: 4, ReductionRatio: 0.4},
				Success: true,
			},
			{
				Metrics: domain.Metrics{OriginalWords: 4, CleanedWords: 2, WordsRemoved: 2, ReductionRatio: 0.5},
				Success: true,
			},
			{
				Metrics: domain.Metrics{OriginalWords: 2, CleanedWords: 0, WordsRemoved: 2, ReductionRatio: 1.0},
				Success: false,
			},
		}

		got := Summarize(records)

		if got.TotalComments != 3 || got.Succeeded != 2 || got.Failed != 1 {
			t.Errorf("counts = %d/%d/%d, want 3/2/1", got.TotalComments, got.Succeeded, got.Failed)
		}
		if got.TotalOriginalWords != 16 || got.TotalCleanedWords != 8 || got.TotalWordsRemoved != 8 {
			t.Errorf("word totals = %d/%d/%d, want 16/8/8",
				got.TotalOriginalWords, got.TotalCleanedWords, got.TotalWordsRemoved)
		}
		wantAvg := (0.4 + 0.5 + 1.0) / 3
		if math.Abs(got.AverageReductionRatio-wantAvg) > 1e-9 {
			t.Errorf("AverageReductionRatio = %v, want %v", got.AverageReductionRatio, wantAvg)
		}
		if math.Abs(got.AverageWordsBefore-16.0/3.0) > 1e-9 {
			t.Errorf("AverageWordsBefore = %v, want %v", got.AverageWordsBefore, 16.0/3.0)
		}
	})

	t.Run("incremental matches one-shot", func(t *testing.T) {
		records := []domain.CommentRecord{
			{Metrics: domain.Metrics{OriginalWords: 5, CleanedWords: 3, WordsRemoved: 2, ReductionRatio: 0.4}, Success: true},
			{Metrics: domain.Metrics{OriginalWords: 7, CleanedWords: 4, WordsRemoved: 3, ReductionRatio: 3.0 / 7.0}, Success: true},
		}

		s := NewSummarizer()
		for _, r := range records {
			s.Add(r)
		}
		if s.Summary() != Summarize(records) {
			t.Error("incremental summary differs from one-shot Summarize")
		}
	})
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{input: "", expected: 0},
		{input: "   ", expected: 0},
		{input: "one", expected: 1},
		{input: "two  words", expected: 2},
		{input: "\ttabs\nand newlines ", expected: 3},
	}

	for _, tc := range tests {
		if got := CountWords(tc.input); got != tc.expected {
			t.Errorf("CountWords(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}
