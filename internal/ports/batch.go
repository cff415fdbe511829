package ports

import (
	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

// RecordSource yields raw comment rows one at a time. Next returns the next
// row and true, or "" and false once the source is exhausted. Missing cells
// are surfaced as empty strings.
type RecordSource interface {
	Next() (string, bool)
}

// RecordSink receives cleaned records in input order. Implementations own
// any persistence; the pipeline core never writes anywhere itself.
type RecordSink interface {
	Write(record domain.CommentRecord) error
	Close() error
}
