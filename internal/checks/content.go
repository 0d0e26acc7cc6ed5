package checks

import (
	"fmt"
	"strings"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// NewHeadlinePlaceholdersCheck scans headings for draft tokens left in copy
func NewHeadlinePlaceholdersCheck() Check {
	spec := Spec{
		ID:       "headline-placeholders",
		Num:      10,
		Title:    "Spelling/placeholder found in headlines",
		Category: CategoryContent,
		Severity: domain.SeverityMedium,
		Steps:    "1. Scan headlines for common typos or placeholder tokens.",
		Expected: "No spelling/grammar errors in headlines.",
		Shot:     "Grammar",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		headings := snap.Headings
		if len(headings) > config.HeadingScanLimit {
			headings = headings[:config.HeadingScanLimit]
		}
		var hits []string
		for _, h := range headings {
			text := strings.TrimSpace(h)
			upper := strings.ToUpper(text)
			for _, token := range config.DefaultPlaceholderTokens {
				if strings.Contains(upper, token) {
					hits = append(hits, fmt.Sprintf("(%s, %s)", text, token))
				}
			}
		}
		if len(hits) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Found placeholders in headings: %s", formatStrings(hits, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewPlaceholderTextCheck hunts for INSERT-style template tokens anywhere in
// visible page copy
func NewPlaceholderTextCheck() Check {
	spec := Spec{
		ID:       "placeholder-text",
		Num:      24,
		Title:    "Placeholder text visible in Privacy section",
		Category: CategoryContent,
		Severity: domain.SeverityMedium,
		Steps:    "1. Open Privacy/Contact sections and look for placeholder tokens like 'INSERT'.",
		Expected: "No placeholder text should be visible on the live site.",
		Shot:     "Placeholder",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil || len(snap.PlaceholderHits) == 0 {
			return nil
		}
		hits := snap.PlaceholderHits
		if len(hits) > 10 {
			hits = hits[:10]
		}
		f := spec.finding(
			fmt.Sprintf("Found placeholders: %s", formatStrings(hits, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}
