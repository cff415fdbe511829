package ports

import (
	"context"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
)

// Cleaner defines the interface for running raw text through the full
// cleaning pipeline.
type Cleaner interface {
	// Clean runs the fixed stage sequence over raw and returns the cleaned
	// text together with its before/after metrics.
	Clean(ctx context.Context, raw string) domain.Result

	// CleanWithTrace behaves like Clean and additionally records the output
	// of every stage that ran.
	CleanWithTrace(ctx context.Context, raw string) (domain.Result, []domain.StageTrace)
}
