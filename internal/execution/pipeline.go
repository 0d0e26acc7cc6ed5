package execution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
	"webaudit/internal/ui"
)

// Browser is the slice of the browser session the pipeline drives
type Browser interface {
	checks.Driver
	SetViewport(vp domain.Viewport) error
	Capture(ctx context.Context, vp domain.Viewport) (*domain.Snapshot, error)
	DrainConsole() []domain.ConsoleEntry
	Screenshot(ctx context.Context) ([]byte, error)
	Close() error
}

// OpenBrowser opens a browser session for one audit run
type OpenBrowser func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Browser, error)

// LinkProber runs the network phase of an audit
type LinkProber interface {
	Collect(snaps ...*domain.Snapshot) []string
	Run(ctx context.Context, urls []string) map[string]domain.ProbeResult
	SetProgress(progress *ui.ProgressBar)
}

// Pipeline runs a full audit in three phases: capture the page in both
// viewports, probe the URLs it references, then evaluate the checks
// offline against the collected evidence.
type Pipeline struct {
	config   *config.Config
	open     OpenBrowser
	prober   LinkProber
	executor Executor
	log      *zap.Logger
}

// NewPipeline creates a Pipeline
func NewPipeline(cfg *config.Config, open OpenBrowser, prober LinkProber, executor Executor, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		config:   cfg,
		open:     open,
		prober:   prober,
		executor: executor,
		log:      logger,
	}
}

// Run executes the audit against the configured target and returns the
// per-check results plus the evidence they were judged on.
func (p *Pipeline) Run(ctx context.Context, selected []checks.Check) ([]domain.CheckResult, *checks.Evidence, time.Duration, error) {
	startTime := time.Now()
	target := p.config.GetTargetURL()

	session, err := p.open(ctx, p.config, p.log)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("open browser: %w", err)
	}
	defer session.Close()

	ev, pageResults, err := p.browserPhase(ctx, session, target, selected)
	if err != nil {
		return nil, nil, 0, err
	}

	urls := p.prober.Collect(ev.Desktop, ev.Mobile)
	if len(urls) > 0 {
		bar := ui.NewProgressBar(len(urls), "Probing links")
		p.prober.SetProgress(bar)
	}
	ev.Probes = p.prober.Run(ctx, urls)

	offline := checks.Snapshots(selected)
	if len(offline) > 0 {
		bar := ui.NewProgressBar(len(offline), "Evaluating checks")
		p.executor.SetProgress(bar)
	}
	results, _, err := p.executor.ExecuteWithOptions(offline, ev, p.config.Flags.FailFast)
	if err != nil {
		return nil, nil, 0, err
	}
	results = append(pageResults, results...)

	if p.config.Flags.Screenshots {
		p.saveScreenshots(ctx, session, results)
	}

	return results, ev, time.Since(startTime), nil
}

// browserPhase captures both viewport snapshots and runs the interactive
// checks while the page is live. Console output accumulates for the whole
// phase and lands on the desktop snapshot at the end.
func (p *Pipeline) browserPhase(ctx context.Context, session Browser, target string, selected []checks.Check) (*checks.Evidence, []domain.CheckResult, error) {
	ev := &checks.Evidence{TargetURL: target}

	if err := session.SetViewport(desktopViewport()); err != nil {
		return nil, nil, err
	}
	if err := session.Navigate(ctx, target); err != nil {
		return nil, nil, fmt.Errorf("navigate to %s: %w", target, err)
	}
	session.Settle(ctx)

	desktop, err := session.Capture(ctx, desktopViewport())
	if err != nil {
		return nil, nil, err
	}
	ev.Desktop = desktop

	var pageResults []domain.CheckResult
	for _, c := range checks.Pages(selected) {
		checkStart := time.Now()
		result := domain.CheckResult{CheckID: c.Spec().ID}
		findings, probeErr := c.Probe(ctx, session, ev)
		result.Duration = time.Since(checkStart)
		result.Findings = findings
		if probeErr != nil {
			result.Err = probeErr.Error()
			p.log.Debug("interactive check errored",
				zap.String("check", c.Spec().ID),
				zap.Error(probeErr),
			)
		}
		pageResults = append(pageResults, result)
		p.returnToTarget(ctx, session, target)
	}

	if err := session.SetViewport(mobileViewport()); err != nil {
		return nil, nil, err
	}
	session.Settle(ctx)

	mobile, err := session.Capture(ctx, mobileViewport())
	if err != nil {
		return nil, nil, err
	}
	ev.Mobile = mobile

	desktop.ConsoleEntries = session.DrainConsole()

	return ev, pageResults, nil
}

// returnToTarget brings the session back to the audited page after an
// interactive check may have navigated away
func (p *Pipeline) returnToTarget(ctx context.Context, session Browser, target string) {
	current, err := session.CurrentURL()
	if err == nil && current == target {
		return
	}
	if err := session.Navigate(ctx, target); err != nil {
		p.log.Debug("return to target failed", zap.Error(err))
		return
	}
	session.Settle(ctx)
}

// saveScreenshots writes one capture per flagged viewport, filed under
// every finding's screenshot name so report rows line up with files.
func (p *Pipeline) saveScreenshots(ctx context.Context, session Browser, results []domain.CheckResult) {
	dir := p.config.GetScreenshotsPath()
	if err := os.MkdirAll(dir, 0755); err != nil {
		p.log.Debug("create screenshots dir", zap.Error(err))
		return
	}

	byViewport := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, result := range results {
		for _, f := range result.Findings {
			if f.Screenshot == "" {
				continue
			}
			if _, dup := seen[f.Screenshot]; dup {
				continue
			}
			seen[f.Screenshot] = struct{}{}
			byViewport[f.Viewport] = append(byViewport[f.Viewport], f.Screenshot)
		}
	}

	for _, vp := range []domain.Viewport{desktopViewport(), mobileViewport()} {
		names := byViewport[vp.Label]
		if len(names) == 0 {
			continue
		}
		if err := session.SetViewport(vp); err != nil {
			p.log.Debug("screenshot viewport failed", zap.String("viewport", vp.Label), zap.Error(err))
			continue
		}
		session.Settle(ctx)
		shot, err := session.Screenshot(ctx)
		if err != nil {
			p.log.Debug("screenshot failed", zap.String("viewport", vp.Label), zap.Error(err))
			continue
		}
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), shot, 0644); err != nil {
				p.log.Debug("write screenshot", zap.String("file", name), zap.Error(err))
			}
		}
	}
}

func desktopViewport() domain.Viewport {
	return domain.Viewport{
		Label:  config.DesktopLabel,
		Width:  config.DesktopWidth,
		Height: config.DesktopHeight,
	}
}

func mobileViewport() domain.Viewport {
	return domain.Viewport{
		Label:  config.MobileLabel,
		Width:  config.MobileWidth,
		Height: config.MobileHeight,
		Mobile: true,
	}
}
