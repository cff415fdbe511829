// Package stream processes batches of raw comment rows through the cleaning
// pipeline, fanning rows out to a worker pool while preserving input order on
// the way back out.
package stream

import (
	"context"
	"runtime"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/metrics"
	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

// Constants for batch processing
const (
	// DefaultWorkers is the default number of worker goroutines
	DefaultWorkers = 0 // 0 means use runtime.NumCPU()

	// MaxJobQueueSize limits the number of pending jobs
	MaxJobQueueSize = 32
)

// ProcessingConfig defines configuration for batch processing
type ProcessingConfig struct {
	Workers int
}

// Processor runs raw rows through the cleaner concurrently. Every clean call
// is independent and the lexicon is read-only, so the only coordination
// needed is reordering results back into input order.
type Processor struct {
	logger  ports.Logger
	cleaner ports.Cleaner
	workers int
}

// NewProcessor creates a new batch processor
func NewProcessor(logger ports.Logger, cleaner ports.Cleaner, config ProcessingConfig) *Processor {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{
		logger:  logger,
		cleaner: cleaner,
		workers: workers,
	}
}

type job struct {
	index int
	row   string
}

type jobResult struct {
	index  int
	result domain.Result
}

// Process drains the source, cleans each row and emits records to the sink
// in input order while folding the batch summary. A nil sink aggregates
// without persisting. The summary reflects every record processed before
// cancellation or the first sink error.
func (p *Processor) Process(ctx context.Context, source ports.RecordSource, sink ports.RecordSink) (domain.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, MaxJobQueueSize)
	results := make(chan jobResult, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := jobResult{index: j.index, result: p.cleaner.Clean(ctx, j.row)}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Feed rows to the workers.
	go func() {
		defer close(jobs)
		for index := 0; ; index++ {
			row, ok := source.Next()
			if !ok {
				return
			}
			select {
			case jobs <- job{index: index, row: row}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Reorder results back into input order before they reach the sink.
	summarizer := metrics.NewSummarizer()
	pending := make(map[int]domain.Result)
	next := 0
	var sinkErr error

	for res := range results {
		pending[res.index] = res.result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			record := domain.CommentRecord{
				ID:       ulid.Make().String(),
				Original: r.Original,
				Cleaned:  r.Cleaned,
				Metrics:  r.Metrics,
				Success:  r.Success,
			}
			summarizer.Add(record)

			if sink != nil && sinkErr == nil {
				if err := sink.Write(record); err != nil {
					p.logger.Error("record sink write failed", "error", err, "record", record.ID)
					sinkErr = err
					cancel()
				}
			}
		}
	}

	if sinkErr != nil {
		return summarizer.Summary(), sinkErr
	}
	if err := ctx.Err(); err != nil {
		return summarizer.Summary(), err
	}

	summary := summarizer.Summary()
	p.logger.Info("batch processed",
		"comments", summary.TotalComments,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"words_removed", summary.TotalWordsRemoved,
	)
	return summary, nil
}

// ProcessAll cleans an in-memory slice of rows and returns the records
// alongside the summary.
func (p *Processor) ProcessAll(ctx context.Context, rows []string) ([]domain.CommentRecord, domain.Summary, error) {
	collector := &collectSink{records: make([]domain.CommentRecord, 0, len(rows))}
	summary, err := p.Process(ctx, NewSliceSource(rows), collector)
	return collector.records, summary, err
}

// SliceSource adapts a string slice to the RecordSource interface.
type SliceSource struct {
	rows []string
	pos  int
}

// NewSliceSource creates a source over rows.
func NewSliceSource(rows []string) *SliceSource {
	return &SliceSource{rows: rows}
}

// Next returns the next row until the slice is exhausted.
func (s *SliceSource) Next() (string, bool) {
	if s.pos >= len(s.rows) {
		return "", false
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true
}

type collectSink struct {
	records []domain.CommentRecord
}

func (c *collectSink) Write(record domain.CommentRecord) error {
	c.records = append(c.records, record)
	return nil
}

func (c *collectSink) Close() error { return nil }
