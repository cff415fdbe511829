// Package batch is the facade for cleaning whole batches of comment rows:
// it maps the pipeline over a row source with a worker pool and folds the
// per-comment metrics into a batch summary.
package batch

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/stream"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
	"github.com/baditaflorin/go_comment_cleaner/pkg/cleaner"
)

// Processor cleans batches of rows concurrently while preserving row order.
type Processor struct {
	processor *stream.Processor
	logger    ports.Logger
}

// Option defines a functional option for configuring the batch Processor.
type Option func(*config)

type config struct {
	Workers        int
	Logger         ports.Logger
	Cleaner        ports.Cleaner
	CleanerOptions []cleaner.Option
}

// WithWorkers sets the worker pool size (0 = number of CPUs).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.Workers = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithCleaner injects a pre-built cleaner implementation.
func WithCleaner(c ports.Cleaner) Option {
	return func(cfg *config) {
		cfg.Cleaner = c
	}
}

// WithCleanerOptions forwards options to the cleaner that the processor
// builds when none is injected.
func WithCleanerOptions(opts ...cleaner.Option) Option {
	return func(cfg *config) {
		cfg.CleanerOptions = append(cfg.CleanerOptions, opts...)
	}
}

// New creates a batch Processor.
func New(opts ...Option) (*Processor, error) {
	cfg := &config{}
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

	if cfg.Cleaner == nil {
		c, err := cleaner.New(cfg.CleanerOptions...)
		if err != nil {
			return nil, err
		}
		cfg.Cleaner = facadeCleaner{c}
	}

	proc := stream.NewProcessor(cfg.Logger, cfg.Cleaner, stream.ProcessingConfig{
		Workers: cfg.Workers,
	})

	return &Processor{
		processor: proc,
		logger:    cfg.Logger,
	}, nil
}

// Process cleans an in-memory slice of rows and returns records in input
// order plus the batch summary.
func (p *Processor) Process(ctx context.Context, rows []string) ([]domain.CommentRecord, domain.Summary, error) {
	return p.processor.ProcessAll(ctx, rows)
}

// ProcessSource streams rows from source into sink (which may be nil) and
// returns the batch summary. Rows reach the sink in input order.
func (p *Processor) ProcessSource(ctx context.Context, source ports.RecordSource, sink ports.RecordSink) (domain.Summary, error) {
	return p.processor.Process(ctx, source, sink)
}

// facadeCleaner adapts the pkg-level Cleaner to the internal port.
type facadeCleaner struct {
	c *cleaner.Cleaner
}

func (f facadeCleaner) Clean(ctx context.Context, raw string) domain.Result {
	return f.c.Clean(ctx, raw)
}

func (f facadeCleaner) CleanWithTrace(ctx context.Context, raw string) (domain.Result, []domain.StageTrace) {
	return f.c.CleanWithTrace(ctx, raw)
}
