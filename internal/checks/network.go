package checks

import (
	"fmt"
	"strings"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// probeLabel renders a probe outcome the way report readers expect,
// either a status code or the transport error
func probeLabel(p domain.ProbeResult) string {
	if p.Err != "" {
		return fmt.Sprintf("(%s, %s)", p.URL, p.Err)
	}
	return fmt.Sprintf("(%s, %d)", p.URL, p.Status)
}

// NewBrokenLinksCheck verifies collected anchors respond without errors
func NewBrokenLinksCheck() Check {
	spec := Spec{
		ID:       "broken-links",
		Num:      7,
		Title:    "Broken navigation links",
		Category: CategoryNetwork,
		Severity: domain.SeverityHigh,
		Steps:    "1. Collect links from main nav and article lists and check HTTP status codes.",
		Expected: "All internal links should return 200/valid responses.",
		Shot:     "BrokenLinks",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		var broken []string
		checked := 0
		for _, link := range snap.Links {
			if checked >= config.LinkProbeLimit {
				break
			}
			if !strings.HasPrefix(link.Href, "http") {
				continue
			}
			checked++
			probe, ok := ev.Probes[link.Href]
			if !ok {
				continue
			}
			if probe.Broken() {
				broken = append(broken, probeLabel(probe))
			}
		}
		if len(broken) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Found broken or error links sample: %s", formatStrings(broken, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewMissingThumbnailsCheck verifies article images have a reachable src
func NewMissingThumbnailsCheck() Check {
	spec := Spec{
		ID:       "missing-thumbnails",
		Num:      8,
		Title:    "Missing article thumbnails",
		Category: CategoryNetwork,
		Severity: domain.SeverityMedium,
		Steps:    "1. Inspect article list thumbnails on homepage and article list pages.",
		Expected: "Thumbnails should display with valid src.",
		Shot:     "Thumbnails",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		imgs := snap.Images
		if len(imgs) > config.LinkProbeLimit {
			imgs = imgs[:config.LinkProbeLimit]
		}
		var missing []string
		for _, img := range imgs {
			if img.Src == "" {
				missing = append(missing, "empty-src")
				continue
			}
			probe, ok := ev.Probes[img.Src]
			if !ok {
				continue
			}
			if probe.Broken() {
				missing = append(missing, probeLabel(probe))
			}
		}
		if len(missing) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Missing/broken thumbnails sample: %s", formatStrings(missing, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewUnloadedImagesCheck flags images the browser failed to decode
func NewUnloadedImagesCheck() Check {
	spec := Spec{
		ID:       "unloaded-images",
		Num:      9,
		Title:    "Embedded images not loading",
		Category: CategoryNetwork,
		Severity: domain.SeverityMedium,
		Steps:    "1. Open a few articles and check if images loaded (naturalWidth > 0).",
		Expected: "Images must load fully (naturalWidth>0).",
		Shot:     "ImagesMissing",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		imgs := snap.Images
		if len(imgs) > config.ImageProbeLimit {
			imgs = imgs[:config.ImageProbeLimit]
		}
		var unloaded []string
		for _, img := range imgs {
			if img.NaturalWidth == 0 {
				unloaded = append(unloaded, img.Src)
			}
		}
		if len(unloaded) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Images with naturalWidth=0 sample: %s", formatStrings(unloaded, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// NewImageWeightCheck flags image resources heavier than the weight budget
func NewImageWeightCheck() Check {
	spec := Spec{
		ID:       "image-weight",
		Num:      23,
		Title:    "Unoptimized images causing slow rendering",
		Category: CategoryNetwork,
		Severity: domain.SeverityMedium,
		Steps:    "1. Detect image resources > 200KB on page (heuristic).",
		Expected: "Images should be optimized (small file sizes) and lazy-loaded where appropriate.",
		Shot:     "UnoptimizedImages",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		imgs := snap.Images
		if len(imgs) > config.ImageProbeLimit {
			imgs = imgs[:config.ImageProbeLimit]
		}
		var large []string
		for _, img := range imgs {
			if !strings.HasPrefix(img.Src, "http") {
				continue
			}
			probe, ok := ev.Probes[img.Src]
			if !ok || probe.Broken() {
				continue
			}
			if probe.ContentLength > config.ImageWeightBudget {
				large = append(large, fmt.Sprintf("(%s, %d)", img.Src, probe.ContentLength))
			}
		}
		if len(large) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Large images found sample: %s", formatStrings(large, 5)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}
