package benchmark

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_comment_cleaner/pkg/batch"
	"github.com/baditaflorin/go_comment_cleaner/pkg/cleaner"
)

// generateComment builds a noisy review of roughly the requested byte size by
// repeating a sample that exercises every stage: contractions, markup, emoji,
// stretched words, symbols and stopwords.
func generateComment(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "Didn't meet my expectations!!! The <b>quality</b> wasn't greaaaat \U0001F621 but delivery was sooooo fast \U0001F600 and I can't complain about the price. "
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
	}
	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

// BenchmarkClean measures single-comment cleaning across input sizes.
func BenchmarkClean(b *testing.B) {
	smallComment := generateComment(100)    // 100 B, a short review
	mediumComment := generateComment(2000)  // 2 KB, a long rant
	largeComment := generateComment(100000) // 100 KB, pathological paste

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	benchmarks := []struct {
		name  string
		input string
	}{
		{"Small-100B", smallComment},
		{"Medium-2KB", mediumComment},
		{"Large-100KB", largeComment},
	}

	c, err := cleaner.New()
	if err != nil {
		b.Fatalf("failed to create cleaner: %v", err)
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_ = c.Clean(ctx, bm.input)
			}
		})
	}
}

// BenchmarkCleanConfigurations compares pipeline configurations.
func BenchmarkCleanConfigurations(b *testing.B) {
	input := generateComment(2000)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	b.Run("Default", func(b *testing.B) {
		c, _ := cleaner.New()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Clean(ctx, input)
		}
	})

	b.Run("PreserveCase", func(b *testing.B) {
		c, _ := cleaner.New(cleaner.WithPreserveCase())
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Clean(ctx, input)
		}
	})

	b.Run("KeepStopwords", func(b *testing.B) {
		c, _ := cleaner.New(cleaner.WithKeepStopwords())
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Clean(ctx, input)
		}
	})

	b.Run("WithWarmUp", func(b *testing.B) {
		c, _ := cleaner.New(cleaner.WithWarmUp(true))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Clean(ctx, input)
		}
	})

	b.Run("WithTrace", func(b *testing.B) {
		c, _ := cleaner.New()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = c.CleanWithTrace(ctx, input)
		}
	})
}

// BenchmarkBatch measures batch throughput at different worker counts.
func BenchmarkBatch(b *testing.B) {
	rows := make([]string, 1000)
	for i := range rows {
		rows[i] = generateComment(200)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	workerCounts := []struct {
		name    string
		workers int
	}{
		{"Workers-1", 1},
		{"Workers-4", 4},
		{"Workers-NumCPU", 0},
	}

	for _, wc := range workerCounts {
		b.Run(wc.name, func(b *testing.B) {
			p, err := batch.New(batch.WithWorkers(wc.workers))
			if err != nil {
				b.Fatalf("failed to create processor: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _, err := p.Process(ctx, rows)
				if err != nil {
					b.Fatalf("batch failed: %v", err)
				}
			}
		})
	}
}
