// Package pipeline composes the transform stages into the single clean
// operation. The stage order is fixed; configuration can only skip the case
// folding and stopword stages, never reorder them.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/stage"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/metrics"
	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

// Config holds the pipeline options.
type Config struct {
	// PreserveCase skips the case folding stage; symbol stripping then keeps
	// uppercase ASCII letters as well.
	PreserveCase bool
	// KeepStopwords skips the stopword removal stage.
	KeepStopwords bool
}

// Cleaner runs raw text through the fixed stage sequence. It is stateless
// aside from read-only lexicon access and safe for concurrent use.
type Cleaner struct {
	config Config
	logger ports.Logger
	stages []ports.Stage
}

// NewCleaner builds a cleaner over the given lexicon.
func NewCleaner(config Config, logger ports.Logger, lexicon ports.Lexicon) (*Cleaner, error) {
	if logger == nil {
		return nil, errors.New("pipeline requires a logger")
	}
	if lexicon == nil {
		return nil, errors.New("pipeline requires a lexicon")
	}

	stages := []ports.Stage{
		stage.NewContractions(lexicon),
		stage.NewMarkup(),
		stage.NewEmoji(),
		stage.NewRepeats(),
	}
	if !config.PreserveCase {
		stages = append(stages, stage.NewLowercase())
	}
	stages = append(stages, stage.NewSymbols(config.PreserveCase))
	if !config.KeepStopwords {
		stages = append(stages, stage.NewStopwords(lexicon))
	}
	stages = append(stages, stage.NewWhitespace())

	return &Cleaner{
		config: config,
		logger: logger,
		stages: stages,
	}, nil
}

// Clean runs every stage in order and returns the cleaned text with its
// metrics. It never fails for any string input; empty, pure-whitespace and
// pure-symbol inputs all degrade to an empty cleaned string.
func (c *Cleaner) Clean(ctx context.Context, raw string) domain.Result {
	result, _ := c.run(ctx, raw, nil)
	return result
}

// CleanWithTrace is Clean plus a per-stage record of intermediate outputs.
func (c *Cleaner) CleanWithTrace(ctx context.Context, raw string) (domain.Result, []domain.StageTrace) {
	traces := make([]domain.StageTrace, 0, len(c.stages))
	return c.run(ctx, raw, &traces)
}

func (c *Cleaner) run(ctx context.Context, raw string, traces *[]domain.StageTrace) (domain.Result, []domain.StageTrace) {
	select {
	case <-ctx.Done():
		c.logger.Warn("cleaning cancelled before start", "error", ctx.Err())
		return domain.Result{Original: raw, Metrics: metrics.Compare(raw, "")}, nil
	default:
	}

	text := raw
	for _, st := range c.stages {
		text = st.Apply(text)
		if traces != nil {
			*traces = append(*traces, domain.StageTrace{Stage: st.Name(), Output: text})
		}
	}

	result := domain.Result{
		Original: raw,
		Cleaned:  text,
		Metrics:  metrics.Compare(raw, text),
		Success:  strings.TrimSpace(text) != "",
	}

	c.logger.Debug("cleaned comment",
		"original_words", result.Metrics.OriginalWords,
		"cleaned_words", result.Metrics.CleanedWords,
		"words_removed", result.Metrics.WordsRemoved,
		"success", result.Success,
	)

	if traces != nil {
		return result, *traces
	}
	return result, nil
}

// Stages exposes the configured stage sequence for warm-up registration.
func (c *Cleaner) Stages() []ports.Stage {
	out := make([]ports.Stage, len(c.stages))
	copy(out, c.stages)
	return out
}
