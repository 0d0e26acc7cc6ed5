package checks

import (
	"fmt"
	"strings"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// severeConsoleEntry classifies a console message as an error worth reporting
func severeConsoleEntry(entry domain.ConsoleEntry) bool {
	level := strings.ToLower(entry.Level)
	if level == "error" || level == "severe" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Text), "error")
}

// NewConsoleErrorsCheck reports JavaScript errors captured from the console
func NewConsoleErrorsCheck() Check {
	spec := Spec{
		ID:       "console-errors",
		Num:      18,
		Title:    "Console errors logged",
		Category: CategoryPerformance,
		Severity: domain.SeverityHigh,
		Steps:    "1. Open DevTools console logs and check for JS errors.",
		Expected: "No JavaScript console errors.",
		Shot:     "ConsoleErrors",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		var sample []string
		for _, entry := range snap.ConsoleEntries {
			if !severeConsoleEntry(entry) {
				continue
			}
			text := entry.Text
			if runes := []rune(text); len(runes) > 160 {
				text = string(runes[:160])
			}
			sample = append(sample, fmt.Sprintf("(%s, %s)", entry.Level, text))
		}
		if len(sample) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Console errors sample: %s", formatStrings(sample, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewMainThreadBlockingCheck reports long tasks that block rendering. When
// the long task API is unavailable it falls back to the overall load time.
func NewMainThreadBlockingCheck() Check {
	spec := Spec{
		ID:       "main-thread-blocking",
		Num:      19,
		Title:    "JS blocking main-thread rendering",
		Category: CategoryPerformance,
		Severity: domain.SeverityMedium,
		Steps:    "1. Use performance entries to check long tasks/main-thread blocking.",
		Expected: "No long main-thread blocking scripts delaying initial load.",
		Shot:     "JSBlocking",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		if snap.LongTasks == nil {
			// Long task API unsupported: fall back to total load time
			if snap.LoadEventMs > float64(config.LoadBudget.Milliseconds()) {
				f := spec.titledFinding(
					"JS blocking suspected",
					fmt.Sprintf("Page load time ~%.0fms suggests blocking scripts", snap.LoadEventMs),
					snap.Viewport.Label, ev.DesktopEnv(),
				)
				f.Screenshot = spec.ScreenshotName()
				return []domain.Finding{f}
			}
			return nil
		}
		var long []float64
		for _, dur := range snap.LongTasks {
			if dur > config.LongTaskBudgetMs {
				long = append(long, dur)
			}
		}
		if len(long) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Long tasks found sample: %s", formatFloats(long, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewHomepageLoadCheck measures the homepage load against the load budget
func NewHomepageLoadCheck() Check {
	spec := Spec{
		ID:       "homepage-load",
		Num:      22,
		Title:    "Homepage load performance slow",
		Category: CategoryPerformance,
		Severity: domain.SeverityHigh,
		Steps:    "1. Measure homepage load time using Navigation Timing.",
		Expected: "Homepage should load within 3 seconds.",
		Shot:     "HomepageLoad",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil || snap.LoadEventMs <= 0 {
			return nil
		}
		budget := config.LoadBudget.Seconds()
		seconds := snap.LoadEventMs / 1000.0
		if seconds <= budget {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Homepage load time %.2fs exceeds %.0fs", seconds, budget),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}
