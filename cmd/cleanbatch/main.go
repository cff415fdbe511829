// Command cleanbatch runs the full comment cleaning pipeline over a CSV file:
// load rows, clean the designated text column, write the cleaned CSV (and
// optionally a SQLite database), then print a summary report with a few
// before/after samples.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_comment_cleaner/internal/adapters/storage"
	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/pkg/batch"
	"github.com/baditaflorin/go_comment_cleaner/pkg/cleaner"
)

const defaultSampleCount = 5

func main() {
	inFile := flag.String("in", "data/sample_comments.csv", "Input CSV file")
	outFile := flag.String("out", "data/cleaned_output.csv", "Output CSV file")
	sqlitePath := flag.String("sqlite", "", "Optional SQLite output database")
	column := flag.String("column", "Comment", "Name of the text column")
	workers := flag.Int("workers", 0, "Worker pool size (0 = number of CPUs)")
	lexiconFile := flag.String("lexicon", "", "Lexicon YAML file (empty = embedded default)")
	samples := flag.Int("samples", defaultSampleCount, "Number of before/after samples to print")
	flag.Parse()

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     os.Stdout,
		JsonFormat: false,
		AddSource:  false,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := run(logger, *inFile, *outFile, *sqlitePath, *column, *workers, *lexiconFile, *samples); err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(logger l.Logger, inFile, outFile, sqlitePath, column string, workers int, lexiconFile string, sampleCount int) error {
	cleanerOpts := []cleaner.Option{cleaner.WithLogger(logger)}
	if lexiconFile != "" {
		cleanerOpts = append(cleanerOpts, cleaner.WithLexiconFile(lexiconFile))
	}

	processor, err := batch.New(
		batch.WithLogger(logger),
		batch.WithWorkers(workers),
		batch.WithCleanerOptions(cleanerOpts...),
	)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	in, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	source, err := newCSVSource(in, column)
	if err != nil {
		return fmt.Errorf("read input header: %w", err)
	}
	logger.Info("Data loaded", "file", inFile, "column", column)

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	csvSink, err := storage.NewCSVSink(out)
	if err != nil {
		return err
	}

	sinks := []recordSink{csvSink}
	var sqliteSink *storage.SQLiteSink
	if sqlitePath != "" {
		sqliteSink, err = storage.NewSQLiteSink(sqlitePath)
		if err != nil {
			return err
		}
		sinks = append(sinks, sqliteSink)
	}
	sampler := &sampleSink{limit: sampleCount}
	sinks = append(sinks, sampler)

	start := time.Now()
	summary, err := processor.ProcessSource(context.Background(), source, multiSink(sinks))
	if err != nil {
		return fmt.Errorf("process comments: %w", err)
	}
	if err := source.Err(); err != nil {
		return fmt.Errorf("read input rows: %w", err)
	}
	elapsed := time.Since(start)

	if sqliteSink != nil {
		if err := sqliteSink.WriteSummary(summary); err != nil {
			return err
		}
	}
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			return fmt.Errorf("close sink: %w", err)
		}
	}

	printSummary(summary, elapsed)
	printSamples(sampler.records)
	logger.Info("Cleaned data saved", "file", outFile, "rows", summary.TotalComments)
	return nil
}

// csvSource streams the text column of a CSV file row by row. Missing cells
// surface as empty strings; a read error stops the stream and is reported by
// Err.
type csvSource struct {
	reader *csv.Reader
	index  int
	err    error
}

func newCSVSource(r io.Reader, column string) (*csvSource, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return &csvSource{reader: cr, index: i}, nil
		}
	}
	return nil, fmt.Errorf("column %q not found in header %v", column, header)
}

func (s *csvSource) Next() (string, bool) {
	if s.err != nil {
		return "", false
	}
	row, err := s.reader.Read()
	if err == io.EOF {
		return "", false
	}
	if err != nil {
		s.err = err
		return "", false
	}
	if s.index >= len(row) {
		return "", true
	}
	return row[s.index], true
}

func (s *csvSource) Err() error { return s.err }

// recordSink matches ports.RecordSink without importing it here.
type recordSink interface {
	Write(record domain.CommentRecord) error
	Close() error
}

// multiSink fans one record out to every sink.
type multiSink []recordSink

func (m multiSink) Write(record domain.CommentRecord) error {
	for _, s := range m {
		if err := s.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error { return nil }

// sampleSink keeps the first few records for the before/after printout.
type sampleSink struct {
	limit   int
	records []domain.CommentRecord
}

func (s *sampleSink) Write(record domain.CommentRecord) error {
	if len(s.records) < s.limit {
		s.records = append(s.records, record)
	}
	return nil
}

func (s *sampleSink) Close() error { return nil }

func printSummary(summary domain.Summary, elapsed time.Duration) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("SUMMARY REPORT")
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("Total Comments Processed: %d\n", summary.TotalComments)
	if summary.TotalComments > 0 {
		fmt.Printf("Successfully Cleaned: %d (%.1f%%)\n",
			summary.Succeeded, pct(summary.Succeeded, summary.TotalComments))
		fmt.Printf("Failed to Clean: %d (%.1f%%)\n",
			summary.Failed, pct(summary.Failed, summary.TotalComments))
	}
	fmt.Println()
	fmt.Println("Word Statistics:")
	fmt.Printf("  Average Words Before: %.2f\n", summary.AverageWordsBefore)
	fmt.Printf("  Average Words After: %.2f\n", summary.AverageWordsAfter)
	fmt.Printf("  Average Reduction Ratio: %.2f\n", summary.AverageReductionRatio)
	fmt.Printf("  Total Words Removed: %d\n", summary.TotalWordsRemoved)
	fmt.Println()
	fmt.Println("Performance Metrics:")
	fmt.Printf("  Total Time: %.2f seconds\n", elapsed.Seconds())
	if summary.TotalComments > 0 {
		fmt.Printf("  Time per Comment: %.2f ms\n",
			float64(elapsed.Milliseconds())/float64(summary.TotalComments))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printSamples(records []domain.CommentRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("SAMPLE BEFORE-AFTER EXAMPLES (First %d):\n", len(records))
	fmt.Println(strings.Repeat("=", 72))
	for i, r := range records {
		fmt.Printf("\nExample %d:\n", i+1)
		fmt.Printf("  BEFORE: %s\n", truncate(r.Original, 80))
		fmt.Printf("  AFTER:  %s\n", truncate(r.Cleaned, 80))
		fmt.Printf("  Words: %d -> %d | Success: %v\n",
			r.Metrics.OriginalWords, r.Metrics.CleanedWords, r.Success)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func pct(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
