package probe

import (
	"strings"

	"go.uber.org/zap"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// Collect gathers the distinct URLs worth probing from the captured
// snapshots: anchor targets, image sources and read-more destinations.
// Only absolute http(s) URLs qualify, and each group is capped per
// snapshot so a link-heavy landing page cannot stall the audit.
func (r *Runner) Collect(snaps ...*domain.Snapshot) []string {
	seen := make(map[string]struct{})
	urls := make([]string, 0, 64)

	add := func(rawURL string) {
		if _, dup := seen[rawURL]; dup {
			return
		}
		seen[rawURL] = struct{}{}
		urls = append(urls, rawURL)
	}

	for _, snap := range snaps {
		if snap == nil {
			continue
		}

		links := 0
		for _, link := range snap.Links {
			if !isHTTP(link.Href) {
				continue
			}
			if links >= config.LinkProbeLimit {
				break
			}
			links++
			add(link.Href)
		}

		images := 0
		for _, img := range snap.Images {
			if !isHTTP(img.Src) {
				continue
			}
			if images >= config.ImageProbeLimit {
				break
			}
			images++
			add(img.Src)
		}

		// The read-more check walks the same links with its own cap, so
		// its targets must be probed even when the anchor cap cut them off
		readMore := 0
		for _, link := range snap.Links {
			if !checks.IsReadMoreLink(link) {
				continue
			}
			if readMore >= config.ReadMoreLimit {
				break
			}
			readMore++
			if isHTTP(link.Href) {
				add(link.Href)
			}
		}
	}

	r.log.Debug("collected probe targets", zap.Int("count", len(urls)))
	return urls
}

// isHTTP reports whether rawURL is an absolute web URL. Snapshot hrefs
// come from DOM properties, so mailto:, tel: and fragment links keep
// their scheme and fall out here.
func isHTTP(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}
