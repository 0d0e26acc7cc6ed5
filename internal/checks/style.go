package checks

import (
	"fmt"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// NewColorConsistencyCheck flags pages whose buttons and links use more than
// two distinct colors
func NewColorConsistencyCheck() Check {
	spec := Spec{
		ID:       "color-consistency",
		Num:      2,
		Title:    "Inconsistent color scheme across UI",
		Category: CategoryStyle,
		Severity: domain.SeverityMedium,
		Steps:    "1. Visit homepage and article pages; 2. Collect colors for primary buttons and links.",
		Expected: "All buttons and primary links use the brand color (consistent).",
		Shot:     "ColorMismatch",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		seen := make(map[string]struct{})
		var uniq []string
		for _, c := range append(append([]string{}, snap.ButtonColors...), snap.LinkColors...) {
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			uniq = append(uniq, c)
		}
		if len(uniq) <= 2 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Multiple primary colors detected: %s", formatStrings(uniq, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewTextContrastCheck verifies sampled paragraph text against the WCAG AA
// contrast minimum
func NewTextContrastCheck() Check {
	spec := Spec{
		ID:       "text-contrast",
		Num:      3,
		Title:    "Poor text contrast on light background",
		Category: CategoryStyle,
		Severity: domain.SeverityHigh,
		Steps:    "1. Inspect text color and background for main article paragraphs.",
		Expected: "Text must be readable with sufficient contrast (WCAG AA roughly).",
		Shot:     "TextContrast",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		var low []string
		for _, sample := range snap.TextSamples {
			ratio, ok := ContrastRatio(sample.Color, sample.Background)
			if !ok {
				continue
			}
			if ratio < config.MinContrastRatio {
				low = append(low, fmt.Sprintf("(%s, %s, %.2f)", sample.Color, sample.Background, ratio))
			}
		}
		if len(low) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Found low contrast pairs (fg,bg,ratio): %s", formatStrings(low, 5)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}
