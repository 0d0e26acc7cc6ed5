package checks

import (
	"context"
	"fmt"

	"webaudit/internal/domain"
)

// Check categories, used for grouping in reports
const (
	CategoryLayout      = "layout"
	CategoryStyle       = "style"
	CategoryResponsive  = "responsive"
	CategoryNetwork     = "network"
	CategoryContent     = "content"
	CategoryFunctional  = "functional"
	CategoryPerformance = "performance"
)

// Spec describes one check: its stable ID, report number and default texts
type Spec struct {
	ID       string // Stable slug, e.g. "header-overlap"
	Num      int    // Report number, drives the bug ID
	Title    string // Canonical bug title when the check fails
	Category string
	Severity domain.Severity
	Steps    string // Reproduction steps for the report
	Expected string // Expected result for the report
	Shot     string // Screenshot name stem, e.g. "HeaderOverlap"
}

// BugID returns the zero-padded report ID, e.g. "001"
func (s Spec) BugID() string {
	return fmt.Sprintf("%03d", s.Num)
}

// ScreenshotName returns the file name a screenshot for this check gets
func (s Spec) ScreenshotName() string {
	return fmt.Sprintf("%s_%s.png", s.BugID(), s.Shot)
}

// finding builds a report row for this check with its default title.
// Standard failure rows name their screenshot, variant rows do not.
func (s Spec) finding(actual, viewport, environment string) domain.Finding {
	f := s.titledFinding(s.Title, actual, viewport, environment)
	f.Screenshot = s.ScreenshotName()
	return f
}

// titledFinding builds a report row with an overridden title (used by
// variants like "element not found")
func (s Spec) titledFinding(title, actual, viewport, environment string) domain.Finding {
	return domain.Finding{
		CheckID:     s.ID,
		BugID:       s.BugID(),
		Title:       title,
		Severity:    s.Severity,
		Steps:       s.Steps,
		Expected:    s.Expected,
		Actual:      actual,
		Viewport:    viewport,
		Status:      domain.StatusNew,
		Environment: environment,
	}
}

// Evidence is everything the analysis phase knows about the audited page
type Evidence struct {
	TargetURL string
	Desktop   *domain.Snapshot
	Mobile    *domain.Snapshot
	Probes    map[string]domain.ProbeResult
}

// DesktopEnv describes the desktop test environment for report rows
func (ev *Evidence) DesktopEnv() string {
	if ev.Desktop == nil {
		return ""
	}
	return fmt.Sprintf("Chrome, %dx%d", ev.Desktop.Viewport.Width, ev.Desktop.Viewport.Height)
}

// MobileEnv describes the mobile test environment for report rows
func (ev *Evidence) MobileEnv() string {
	if ev.Mobile == nil {
		return ""
	}
	return fmt.Sprintf("Mobile %dx%d", ev.Mobile.Viewport.Width, ev.Mobile.Viewport.Height)
}

// Check describes one automated inspection
type Check interface {
	Spec() Spec
}

// SnapshotCheck evaluates captured evidence without touching the browser
type SnapshotCheck interface {
	Check
	Inspect(ev *Evidence) []domain.Finding
}

// PageCheck drives the live page for functional verification
type PageCheck interface {
	Check
	Probe(ctx context.Context, d Driver, ev *Evidence) ([]domain.Finding, error)
}

// Driver is the browser surface page checks interact with
type Driver interface {
	Navigate(ctx context.Context, rawURL string) error
	CurrentURL() (string, error)
	Count(selector string) int
	VisibleEnabled(selector string) bool
	Click(ctx context.Context, selector string) error
	Type(ctx context.Context, selector, text string) error
	ClickByText(ctx context.Context, tag, substr string) bool
	HasByText(tag, substr string) bool
	Settle(ctx context.Context)
}

type snapshotCheck struct {
	spec    Spec
	inspect func(ev *Evidence) []domain.Finding
}

func (c *snapshotCheck) Spec() Spec { return c.spec }

func (c *snapshotCheck) Inspect(ev *Evidence) []domain.Finding { return c.inspect(ev) }

type pageCheck struct {
	spec  Spec
	probe func(ctx context.Context, d Driver, ev *Evidence) ([]domain.Finding, error)
}

func (c *pageCheck) Spec() Spec { return c.spec }

func (c *pageCheck) Probe(ctx context.Context, d Driver, ev *Evidence) ([]domain.Finding, error) {
	return c.probe(ctx, d, ev)
}
