package checks

import (
	"fmt"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// NewResponsiveOverflowCheck detects elements wider than the mobile viewport
func NewResponsiveOverflowCheck() Check {
	spec := Spec{
		ID:       "responsive-overflow",
		Num:      6,
		Title:    "Responsive layout breaks on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityHigh,
		Steps:    "1. Open site on mobile viewport (390x844) and inspect major layout sections.",
		Expected: "Layout should adapt correctly to small screens.",
		Shot:     "Responsive",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil || len(snap.OverflowWidths) == 0 {
			return nil
		}
		widest := snap.OverflowWidths[0]
		for _, w := range snap.OverflowWidths {
			if w > widest {
				widest = w
			}
		}
		f := spec.finding(
			fmt.Sprintf("A child element width %.0fpx exceeds viewport width %dpx", widest, snap.InnerWidth),
			snap.Viewport.Label, ev.MobileEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewMobileMenuCollapseCheck verifies the header collapses behind a hamburger
// control on mobile
func NewMobileMenuCollapseCheck() Check {
	spec := Spec{
		ID:       "mobile-menu-collapse",
		Num:      15,
		Title:    "Header menu not collapsing on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityHigh,
		Steps:    "1. Open site on mobile viewport (390x844) and open the header/menu.",
		Expected: "Header should collapse to a hamburger menu on mobile.",
		Shot:     "HeaderMenu",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil || snap.HasHamburger {
			return nil
		}
		navs := snap.NavBoxes
		if len(navs) > 2 {
			navs = navs[:2]
		}
		threshold := float64(snap.Viewport.Width) * 0.8
		for _, nav := range navs {
			if nav.Width > threshold {
				f := spec.finding(
					"Menu remains full-size and overlaps content on mobile",
					snap.Viewport.Label, ev.MobileEnv(),
				)
				return []domain.Finding{f}
			}
		}
		return nil
	}}
}

// NewMobileImageResizeCheck detects images rendered wider than the mobile
// viewport
func NewMobileImageResizeCheck() Check {
	spec := Spec{
		ID:       "mobile-image-resize",
		Num:      16,
		Title:    "Images not resizing on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityMedium,
		Steps:    "1. Open image-rich pages on mobile and observe image widths relative to viewport.",
		Expected: "Images scale to fit screen width.",
		Shot:     "ImageResize",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil {
			return nil
		}
		limit := float64(snap.Viewport.Width) + config.WidthSlackPx
		var oversized []string
		for _, img := range snap.Images {
			if img.DisplayWidth > limit {
				oversized = append(oversized, fmt.Sprintf("(%s, %.0f)", img.Src, img.DisplayWidth))
			}
		}
		if len(oversized) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Images exceeding viewport width sample: %s", formatStrings(oversized, 6)),
			snap.Viewport.Label, ev.MobileEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewHorizontalScrollCheck detects pages needing sideways scrolling on mobile
func NewHorizontalScrollCheck() Check {
	spec := Spec{
		ID:       "horizontal-scroll",
		Num:      17,
		Title:    "Horizontal scrolling required on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityHigh,
		Steps:    "1. On mobile viewport, check if body scroll width exceeds innerWidth.",
		Expected: "No horizontal scrolling required.",
		Shot:     "HorizontalScroll",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil || snap.ScrollWidth == 0 || snap.InnerWidth == 0 {
			return nil
		}
		if float64(snap.ScrollWidth) <= float64(snap.InnerWidth)+config.WidthSlackPx {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Page scrollWidth %dpx > viewport %dpx", snap.ScrollWidth, snap.InnerWidth),
			snap.Viewport.Label, ev.MobileEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewFooterStackingCheck flags footer columns that fail to stack on mobile
func NewFooterStackingCheck() Check {
	spec := Spec{
		ID:       "footer-stacking",
		Num:      20,
		Title:    "Footer stacking issues on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityLow,
		Steps:    "1. Open footer on mobile and check stacking of footer columns.",
		Expected: "Footer stacks correctly on mobile.",
		Shot:     "Footer",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil {
			return nil
		}
		widths := snap.FooterChildWidths
		if len(widths) > 6 {
			widths = widths[:6]
		}
		for _, w := range widths {
			if w > float64(snap.Viewport.Width) {
				f := spec.finding(
					"Footer child elements exceed viewport width; possible stacking issue",
					snap.Viewport.Label, ev.MobileEnv(),
				)
				return []domain.Finding{f}
			}
		}
		return nil
	}}
}

// NewMobileFontSizeCheck flags paragraph text too small to read on mobile
func NewMobileFontSizeCheck() Check {
	spec := Spec{
		ID:       "mobile-font-size",
		Num:      21,
		Title:    "Font size on mobile too small",
		Category: CategoryResponsive,
		Severity: domain.SeverityMedium,
		Steps:    "1. Check computed font-size for paragraphs on mobile viewport.",
		Expected: "Font size should be readable without pinch-zoom (>=14px preferred).",
		Shot:     "FontSize",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil {
			return nil
		}
		var small []string
		for _, size := range snap.ParagraphFontSizes {
			if size < config.MinMobileFontPx {
				small = append(small, fmt.Sprintf("%.1fpx", size))
			}
		}
		if len(small) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Found small font sizes on mobile: %s", formatStrings(small, 6)),
			snap.Viewport.Label, ev.MobileEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewMobileTextOverlapCheck detects interactive and text elements whose
// bounding boxes collide on mobile
func NewMobileTextOverlapCheck() Check {
	spec := Spec{
		ID:       "mobile-text-overlap",
		Num:      26,
		Title:    "Text overlap with interactive elements on mobile",
		Category: CategoryResponsive,
		Severity: domain.SeverityHigh,
		Steps:    "1. On mobile, check if any element's bounding boxes overlap (text overlapping buttons/cards).",
		Expected: "Text should not overlap with interactive elements.",
		Shot:     "TextOverlapMobile",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Mobile
		if snap == nil {
			return nil
		}
		pairs := 0
		boxes := snap.ElementBoxes
		for i := 0; i < len(boxes) && pairs < 6; i++ {
			for j := i + 1; j < len(boxes); j++ {
				if boxes[i].Intersects(boxes[j].Box) {
					pairs++
					if pairs >= 6 {
						break
					}
				}
			}
		}
		if pairs == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Overlapping element pairs sample: %d", pairs),
			snap.Viewport.Label, ev.MobileEnv(),
		)
		return []domain.Finding{f}
	}}
}
