// Package cleaner is the primary facade over the comment cleaning pipeline.
// It wires the lexicon, the transform stages and the logger together behind
// functional options.
package cleaner

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/lexicon"
	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/metrics"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/pipeline"
	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
	"github.com/baditaflorin/go_comment_cleaner/internal/warmup"
)

// Cleaner provides the clean and compare operations over a fixed lexicon.
type Cleaner struct {
	cleaner ports.Cleaner
	logger  ports.Logger
	warmed  bool
}

// Option defines a functional option for configuring the Cleaner.
type Option func(*config)

type config struct {
	PreserveCase  bool
	KeepStopwords bool
	Logger        ports.Logger
	Lexicon       ports.Lexicon
	LexiconPath   string
	WarmUp        bool
	WarmUpConfig  warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithLexicon injects a pre-built lexicon.
func WithLexicon(lex ports.Lexicon) Option {
	return func(cfg *config) {
		cfg.Lexicon = lex
	}
}

// WithLexiconFile loads the lexicon from a YAML file instead of the embedded
// default.
func WithLexiconFile(path string) Option {
	return func(cfg *config) {
		cfg.LexiconPath = path
	}
}

// WithPreserveCase skips case folding; symbol stripping still runs but keeps
// uppercase ASCII letters.
func WithPreserveCase() Option {
	return func(cfg *config) {
		cfg.PreserveCase = true
	}
}

// WithKeepStopwords skips the stopword removal stage.
func WithKeepStopwords() Option {
	return func(cfg *config) {
		cfg.KeepStopwords = true
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a Cleaner. A missing or malformed lexicon file is a
// configuration error: New fails and no cleaning may proceed.
func New(opts ...Option) (*Cleaner, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}

	if cfg.Lexicon == nil {
		var err error
		if cfg.LexiconPath != "" {
			cfg.Lexicon, err = lexicon.LoadFile(cfg.LexiconPath)
		} else {
			cfg.Lexicon, err = lexicon.Default()
		}
		if err != nil {
			cfg.Logger.Error("lexicon load failed", "error", err)
			return nil, err
		}
	}

	core, err := pipeline.NewCleaner(pipeline.Config{
		PreserveCase:  cfg.PreserveCase,
		KeepStopwords: cfg.KeepStopwords,
	}, cfg.Logger, cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	c := &Cleaner{
		cleaner: core,
		logger:  cfg.Logger,
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return c, nil
}

// Clean runs raw text through the full stage sequence.
func (c *Cleaner) Clean(ctx context.Context, raw string) domain.Result {
	return c.cleaner.Clean(ctx, raw)
}

// CleanWithTrace is Clean plus the per-stage intermediate outputs.
func (c *Cleaner) CleanWithTrace(ctx context.Context, raw string) (domain.Result, []domain.StageTrace) {
	return c.cleaner.CleanWithTrace(ctx, raw)
}

// Compare computes before/after metrics for an arbitrary raw/cleaned pair.
func (c *Cleaner) Compare(raw, cleaned string) domain.Metrics {
	return metrics.Compare(raw, cleaned)
}

// WarmUp performs system warm-up to optimize first-request latency.
func (c *Cleaner) WarmUp(ctx context.Context, wc warmup.WarmupConfig) {
	if c.warmed {
		c.logger.Debug("System already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(c.logger, wc)
	mgr.RegisterCleaner(c.cleaner)
	mgr.WarmUp(ctx)
	c.warmed = true
}
