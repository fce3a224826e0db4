package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/textmatch/go_name_similarity/internal/ports"
)

// Config defines configuration for warming up the system before serving
// comparisons, so that first-request latency is not paid on live traffic.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  500,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// samplePairs covers the normalization and scoring paths: salutations,
// extensions, corporate suffixes, embedded dates, reordered tokens and typos.
var samplePairs = [][2]string{
	{"Dr. John Smith", "john smith"},
	{"Report_Final.PDF", "report final"},
	{"Acme Pvt Ltd", "ACME Limited"},
	{"invoice_15012024.pdf", "invoice_16012024.docx"},
	{"Jonathan Smith", "Jonathon Smyth"},
	{"alpha beta gamma", "gamma beta alpha"},
	{"completely unrelated", "nothing in common"},
}

// Manager handles system warmup operations.
type Manager struct {
	logger      ports.Logger
	comparators []ports.Comparator
	normalizers []ports.Normalizer
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterComparator adds a comparator to be warmed up.
func (wm *Manager) RegisterComparator(c ports.Comparator) {
	wm.comparators = append(wm.comparators, c)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(n ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, n)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.comparators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpComparators(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pair := samplePairs[j%len(samplePairs)]
				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(pair[0])
					_ = normalizer.Normalize(pair[1])
				}
			}
		}()
	}

	wg.Wait()
}

func (wm *Manager) warmUpComparators(ctx context.Context) {
	if len(wm.comparators) == 0 {
		return
	}

	wm.logger.Debug("Warming up comparators", "count", len(wm.comparators))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pair := samplePairs[j%len(samplePairs)]
				for _, comparator := range wm.comparators {
					_ = comparator.Compare(ctx, pair[0], pair[1])
				}
			}
		}()
	}

	wg.Wait()
}
