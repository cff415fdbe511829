// Package storage provides record sinks for batch runs. Persistence lives
// here and in cmd; the cleaning core never writes anywhere itself.
package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

// csvHeader is the column layout of cleaned batch output.
var csvHeader = []string{
	"ID",
	"Original_Comment",
	"Cleaned_Comment",
	"Words_Before",
	"Words_After",
	"Words_Removed",
	"Cleaning_Success",
}

// CSVSink writes cleaned records as CSV rows. It implements ports.RecordSink.
type CSVSink struct {
	writer *csv.Writer
}

// NewCSVSink creates a sink over w and writes the header row.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &CSVSink{writer: cw}, nil
}

// Write appends one record row.
func (s *CSVSink) Write(record domain.CommentRecord) error {
	row := []string{
		record.ID,
		record.Original,
		record.Cleaned,
		strconv.Itoa(record.Metrics.OriginalWords),
		strconv.Itoa(record.Metrics.CleanedWords),
		strconv.Itoa(record.Metrics.WordsRemoved),
		successLabel(record.Success),
	}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Close flushes buffered rows.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	return s.writer.Error()
}

func successLabel(ok bool) string {
	if ok {
		return "Success"
	}
	return "Failed"
}
