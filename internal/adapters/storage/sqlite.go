package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS comments (
	id             TEXT PRIMARY KEY,
	original       TEXT NOT NULL,
	cleaned        TEXT NOT NULL,
	words_before   INTEGER NOT NULL,
	words_after    INTEGER NOT NULL,
	words_removed  INTEGER NOT NULL,
	success        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	finished_at             TEXT NOT NULL DEFAULT (datetime('now')),
	total_comments          INTEGER NOT NULL,
	succeeded               INTEGER NOT NULL,
	failed                  INTEGER NOT NULL,
	total_original_words    INTEGER NOT NULL,
	total_cleaned_words     INTEGER NOT NULL,
	total_words_removed     INTEGER NOT NULL,
	average_reduction_ratio REAL NOT NULL
);
`

// SQLiteSink persists cleaned records to a SQLite database. It implements
// ports.RecordSink; WriteSummary additionally stores the batch aggregate.
type SQLiteSink struct {
	db     *sql.DB
	insert *sql.Stmt
}

// NewSQLiteSink opens (or creates) the database at path and prepares the
// schema.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	insert, err := db.Prepare(`INSERT INTO comments
		(id, original, cleaned, words_before, words_after, words_removed, success)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	return &SQLiteSink{db: db, insert: insert}, nil
}

// Write stores one record.
func (s *SQLiteSink) Write(record domain.CommentRecord) error {
	_, err := s.insert.Exec(
		record.ID,
		record.Original,
		record.Cleaned,
		record.Metrics.OriginalWords,
		record.Metrics.CleanedWords,
		record.Metrics.WordsRemoved,
		boolToInt(record.Success),
	)
	if err != nil {
		return fmt.Errorf("insert record %s: %w", record.ID, err)
	}
	return nil
}

// WriteSummary stores the batch aggregate for the finished run.
func (s *SQLiteSink) WriteSummary(summary domain.Summary) error {
	_, err := s.db.Exec(`INSERT INTO runs
		(total_comments, succeeded, failed, total_original_words,
		 total_cleaned_words, total_words_removed, average_reduction_ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		summary.TotalComments,
		summary.Succeeded,
		summary.Failed,
		summary.TotalOriginalWords,
		summary.TotalCleanedWords,
		summary.TotalWordsRemoved,
		summary.AverageReductionRatio,
	)
	if err != nil {
		return fmt.Errorf("insert run summary: %w", err)
	}
	return nil
}

// Close releases the prepared statement and the database handle.
func (s *SQLiteSink) Close() error {
	s.insert.Close()
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
