package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_comment_cleaner/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger   ports.Logger
	cleaners []ports.Cleaner
	stages   []ports.Stage
	config   WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCleaner adds a cleaner to be warmed up
func (wm *Manager) RegisterCleaner(c ports.Cleaner) {
	wm.cleaners = append(wm.cleaners, c)
}

// RegisterStage adds an individual stage to be warmed up
func (wm *Manager) RegisterStage(s ports.Stage) {
	wm.stages = append(wm.stages, s)
}

// WarmUp runs the warmup process for all registered components. It exercises
// the pools and lookup tables so the first real request does not pay the
// allocation cost.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.cleaners)+len(wm.stages),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	samples := sampleComments()

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				sample := samples[j%len(samples)]
				for _, s := range wm.stages {
					_ = s.Apply(sample)
				}
				for _, c := range wm.cleaners {
					_ = c.Clean(warmupCtx, sample)
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// sampleComments returns warmup inputs that exercise every stage: markup,
// emoji, contractions, repeated characters and stopwords.
func sampleComments() []string {
	base := []string{
		"Didn't meet expectations weren't \U0001F621 <div>Gooood quality though</div>",
		"I love this product \U0001F60D will buy again!!!",
		"It's okay, nothing speciaaaal <br> just average",
		"Worst experience &amp; wouldn't recommend <b>at all</b>",
	}

	// One long comment keeps the byte pools honest.
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString(base[i%len(base)])
		sb.WriteByte(' ')
	}
	return append(base, sb.String())
}
