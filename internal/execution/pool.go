package execution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
	"webaudit/internal/ui"
)

// Pool evaluates snapshot checks in parallel over shared evidence
type Pool struct {
	config    *config.Config
	threshold domain.Severity
	progress  *ui.ProgressBar
}

// NewPool creates a Pool; threshold is the severity that trips fail-fast
func NewPool(cfg *config.Config, threshold domain.Severity) *Pool {
	return &Pool{config: cfg, threshold: threshold}
}

// SetProgress sets the progress bar for the analysis phase
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute evaluates all checks against the evidence (no fail-fast)
func (p *Pool) Execute(list []checks.SnapshotCheck, ev *checks.Evidence) ([]domain.CheckResult, time.Duration, error) {
	return p.ExecuteWithOptions(list, ev, false)
}

// ExecuteWithOptions evaluates checks with optional fail-fast, stopping
// after the first finding at or above the pool's severity threshold.
func (p *Pool) ExecuteWithOptions(list []checks.SnapshotCheck, ev *checks.Evidence, failFast bool) ([]domain.CheckResult, time.Duration, error) {
	if len(list) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return p.executeAll(list, ev)
	}
	return p.executeFailFast(list, ev)
}

// executeAll evaluates every check.
func (p *Pool) executeAll(list []checks.SnapshotCheck, ev *checks.Evidence) ([]domain.CheckResult, time.Duration, error) {
	queue := make(chan checks.SnapshotCheck, len(list))
	results := make(chan domain.CheckResult, len(list))
	for _, c := range list {
		queue <- c
	}
	close(queue)

	var mu sync.Mutex
	var completed int
	var clean, flagged int
	startTime := time.Now()
	workerCount := p.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range queue {
				result := evaluate(c, ev)
				results <- result
				mu.Lock()
				completed++
				if result.Failed() {
					flagged++
				} else {
					clean++
				}
				if p.progress != nil {
					p.progress.Update(completed, clean, flagged)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast evaluates checks and stops handing out work once a
// finding at or above the threshold severity shows up.
func (p *Pool) executeFailFast(list []checks.SnapshotCheck, ev *checks.Evidence) ([]domain.CheckResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan checks.SnapshotCheck, 1)
	results := make(chan domain.CheckResult, len(list))

	go func() {
		defer close(queue)
		for _, c := range list {
			select {
			case <-ctx.Done():
				return
			case queue <- c:
			}
		}
	}()

	var mu sync.Mutex
	var completed int
	var clean, flagged int
	var seenSevere bool
	startTime := time.Now()
	workerCount := p.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range queue {
				result := evaluate(c, ev)
				mu.Lock()
				done := seenSevere
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				completed++
				if result.Failed() {
					flagged++
				} else {
					clean++
				}
				if p.progress != nil {
					p.progress.Update(completed, clean, flagged)
				}
				if hasSevere(result.Findings, p.threshold) {
					seenSevere = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (p *Pool) workerCount() int {
	if p.config.Workers <= 0 {
		return 1
	}
	return p.config.Workers
}

// evaluate runs a single check, converting a panic into an errored result
// so one misbehaving check cannot take the whole run down.
func evaluate(c checks.SnapshotCheck, ev *checks.Evidence) (result domain.CheckResult) {
	start := time.Now()
	result = domain.CheckResult{CheckID: c.Spec().ID}
	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			result.Err = fmt.Sprintf("check panicked: %v", r)
		}
	}()
	result.Findings = c.Inspect(ev)
	return result
}

// hasSevere reports whether any finding reaches the threshold severity
func hasSevere(findings []domain.Finding, threshold domain.Severity) bool {
	for _, f := range findings {
		if f.Severity.AtLeast(threshold) {
			return true
		}
	}
	return false
}
