package probe

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"webaudit/internal/config"
	"webaudit/internal/domain"
	"webaudit/internal/execution"
	"webaudit/internal/ui"
)

// Runner fans probe work out across a pool of workers
type Runner struct {
	config    *config.Config
	prober    *Prober
	scheduler execution.Scheduler
	progress  *ui.ProgressBar
	log       *zap.Logger
}

// NewRunner creates a Runner distributing URLs with the given scheduler
func NewRunner(cfg *config.Config, prober *Prober, scheduler execution.Scheduler, logger *zap.Logger) *Runner {
	return &Runner{
		config:    cfg,
		prober:    prober,
		scheduler: scheduler,
		log:       logger,
	}
}

// SetProgress sets the progress bar for the probe phase
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Run probes every URL in parallel and returns results keyed by URL
func (r *Runner) Run(ctx context.Context, urls []string) map[string]domain.ProbeResult {
	probes := make(map[string]domain.ProbeResult, len(urls))
	if len(urls) == 0 {
		return probes
	}

	workerCount := r.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}
	batches := r.scheduler.Schedule(urls, workerCount)
	results := make(chan domain.ProbeResult, len(urls))

	var mu sync.Mutex
	var completed int
	var okCount, brokenCount int

	var wg sync.WaitGroup
	for _, batch := range batches {
		if len(batch) == 0 {
			continue
		}
		wg.Add(1)
		go func(batch []string) {
			defer wg.Done()
			for _, rawURL := range batch {
				select {
				case <-ctx.Done():
					return
				default:
				}
				result := r.prober.Probe(ctx, rawURL)
				results <- result
				mu.Lock()
				completed++
				if result.Broken() {
					brokenCount++
				} else {
					okCount++
				}
				if r.progress != nil {
					r.progress.Update(completed, okCount, brokenCount)
				}
				mu.Unlock()
			}
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		probes[result.URL] = result
	}
	if r.progress != nil {
		r.progress.Finish()
	}

	r.log.Debug("probe phase finished",
		zap.Int("urls", len(urls)),
		zap.Int("broken", brokenCount),
	)
	return probes
}
