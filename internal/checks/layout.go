package checks

import (
	"fmt"
	"strings"

	"webaudit/internal/domain"
)

// NewHeaderOverlapCheck detects the site menu intruding into the logo area
// on the desktop viewport
func NewHeaderOverlapCheck() Check {
	spec := Spec{
		ID:       "header-overlap",
		Num:      1,
		Title:    "Header overlaps logo on desktop",
		Category: CategoryLayout,
		Severity: domain.SeverityHigh,
		Steps:    "1. Open homepage in desktop resolution (1366x768).\n2. Inspect header and logo positions.",
		Expected: "Header and menu aligned properly without overlapping the logo.",
		Shot:     "HeaderOverlap",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		if snap.HeaderBox == nil || snap.LogoBox == nil {
			f := spec.titledFinding(
				"Header or logo element not found",
				"Header or logo element couldn't be detected; manual check needed",
				snap.Viewport.Label, ev.DesktopEnv(),
			)
			return []domain.Finding{f}
		}

		logo := *snap.LogoBox
		overlap := false
		if snap.NavBox != nil {
			overlap = snap.NavBox.X < logo.Right()
		} else {
			// No nav landmark: scan header children against the logo box
			for _, ch := range snap.HeaderChildren {
				if strings.EqualFold(ch.Tag, "img") {
					continue
				}
				if ch.X < logo.Right() && ch.Y <= logo.Bottom() {
					overlap = true
					break
				}
			}
		}
		if !overlap {
			return nil
		}
		f := spec.finding(
			"Menu overlaps logo on desktop header in tested viewport.",
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewSectionSpacingCheck flags vertical gaps between top level sections that
// deviate far from the page average
func NewSectionSpacingCheck() Check {
	spec := Spec{
		ID:       "section-spacing",
		Num:      4,
		Title:    "Uneven spacing between sections",
		Category: CategoryLayout,
		Severity: domain.SeverityLow,
		Steps:    "1. Scroll through homepage, measure vertical gaps between direct children of main content.",
		Expected: "Consistent spacing between sections",
		Shot:     "SectionSpacing",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil || len(snap.SectionBoxes) < 2 {
			return nil
		}
		var gaps []float64
		for i := 1; i < len(snap.SectionBoxes); i++ {
			prev := snap.SectionBoxes[i-1]
			cur := snap.SectionBoxes[i]
			gaps = append(gaps, cur.Y-prev.Bottom())
		}
		var sum float64
		for _, g := range gaps {
			sum += g
		}
		avg := sum / float64(len(gaps))

		uneven := false
		for _, g := range gaps {
			dev := g - avg
			if dev < 0 {
				dev = -dev
			}
			if dev > avg*1.5+5 {
				uneven = true
				break
			}
		}
		if !uneven {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Uneven gaps detected between sections, sample gaps: %s", formatFloats(gaps, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewTypographyHierarchyCheck verifies that H1 headings render larger than H2
func NewTypographyHierarchyCheck() Check {
	spec := Spec{
		ID:       "typography-hierarchy",
		Num:      5,
		Title:    "Incorrect typography hierarchy",
		Category: CategoryLayout,
		Severity: domain.SeverityMedium,
		Steps:    "1. Inspect H1/H2 and paragraph sizes on article pages.",
		Expected: "H1 > H2 > body sizes to maintain hierarchy",
		Shot:     "Typography",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil || len(snap.H1Sizes) == 0 || len(snap.H2Sizes) == 0 {
			return nil
		}
		if mean(snap.H1Sizes) > mean(snap.H2Sizes) {
			return nil
		}
		f := spec.finding(
			"H1 sizes are not larger than H2 sizes",
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// formatFloats renders up to limit values as a compact bracketed list
func formatFloats(vals []float64, limit int) string {
	if len(vals) > limit {
		vals = vals[:limit]
	}
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, fmt.Sprintf("%.1f", v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatStrings renders up to limit values as a compact bracketed list
func formatStrings(vals []string, limit int) string {
	if len(vals) > limit {
		vals = vals[:limit]
	}
	return "[" + strings.Join(vals, ", ") + "]"
}
