package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.db")

	sink, err := NewSQLiteSink(path)
	if err != nil {
		t.Fatalf("NewSQLiteSink failed: %v", err)
	}

	records := []domain.CommentRecord{
		{
			ID:       "01AN4Z07BY79KA1307SR9X4MV3",
			Original: "Didn't work",
			Cleaned:  "did not work",
			Metrics:  domain.Metrics{OriginalWords: 2, CleanedWords: 3, WordsRemoved: -1, ReductionRatio: -0.5},
			Success:  true,
		},
		{
			ID:      "01AN4Z07BY79KA1307SR9X4MV4",
			Success: false,
		},
	}
	for _, record := range records {
		if err := sink.Write(record); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	summary := domain.Summary{
		TotalComments:         2,
		Succeeded:             1,
		Failed:                1,
		TotalOriginalWords:    2,
		TotalCleanedWords:     3,
		TotalWordsRemoved:     -1,
		AverageReductionRatio: -0.25,
	}
	if err := sink.WriteSummary(summary); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopening database failed: %v", err)
	}
	defer db.Close()

	var cleaned string
	var success int
	err = db.QueryRow(
		`SELECT cleaned, success FROM comments WHERE id = ?`,
		"01AN4Z07BY79KA1307SR9X4MV3",
	).Scan(&cleaned, &success)
	if err != nil {
		t.Fatalf("querying record failed: %v", err)
	}
	if cleaned != "did not work" || success != 1 {
		t.Errorf("stored record = (%q, %d), want (%q, 1)", cleaned, success, "did not work")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		t.Fatalf("counting records failed: %v", err)
	}
	if count != 2 {
		t.Errorf("comments count = %d, want 2", count)
	}

	var total, failed int
	var ratio float64
	err = db.QueryRow(
		`SELECT total_comments, failed, average_reduction_ratio FROM runs`,
	).Scan(&total, &failed, &ratio)
	if err != nil {
		t.Fatalf("querying run summary failed: %v", err)
	}
	if total != 2 || failed != 1 || ratio != -0.25 {
		t.Errorf("stored summary = (%d, %d, %v), want (2, 1, -0.25)", total, failed, ratio)
	}
}

func TestSQLiteSinkDuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.db")

	sink, err := NewSQLiteSink(path)
	if err != nil {
		t.Fatalf("NewSQLiteSink failed: %v", err)
	}
	defer sink.Close()

	record := domain.CommentRecord{ID: "dup", Original: "x", Cleaned: "x", Success: true}
	if err := sink.Write(record); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := sink.Write(record); err == nil {
		t.Error("expected primary key violation on duplicate ID")
	}
}

var _ ports.RecordSink = (*SQLiteSink)(nil)
