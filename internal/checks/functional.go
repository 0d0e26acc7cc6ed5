package checks

import (
	"context"
	"fmt"
	"strings"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

var socialDomains = []string{"facebook.com", "twitter.com", "x.com", "instagram.com", "linkedin.com"}

// Selectors the interactive checks share with common site markup
const (
	searchInputSelector   = "input[type='search'], input[aria-label*='search'], input[name='q'], input[name='s']"
	searchButtonSelector  = "button[type='submit'], button.search, .search-button"
	searchResultsSelector = ".search-results, .results, #search"
	paginationSelector    = "a[rel='next'], .next, .pagination .next, a[aria-label='next']"
)

// NewSocialLinksCheck verifies social icons point at real profiles instead of
// placeholders
func NewSocialLinksCheck() Check {
	spec := Spec{
		ID:       "social-links",
		Num:      12,
		Title:    "Incorrect social media links",
		Category: CategoryFunctional,
		Severity: domain.SeverityMedium,
		Steps:    "1. Click/view social icons in header/footer and check href target domains.",
		Expected: "Social icons link to correct official pages.",
		Shot:     "SocialLinks",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		var bad []string
		for _, link := range snap.Links {
			if !matchesSocialDomain(link.Href) {
				continue
			}
			if strings.Contains(link.Href, "example.com") ||
				strings.HasSuffix(link.Href, "#") ||
				strings.Contains(link.Href, "mailto:") {
				bad = append(bad, link.Href)
			}
		}
		if len(bad) == 0 {
			return nil
		}
		f := spec.finding(
			fmt.Sprintf("Invalid or placeholder social links: %s", formatStrings(bad, 6)),
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

func matchesSocialDomain(href string) bool {
	for _, domainName := range socialDomains {
		if strings.Contains(href, domainName) {
			return true
		}
	}
	return false
}

// NewTwitterRedirectCheck flags Twitter icons that send readers to x.com
func NewTwitterRedirectCheck() Check {
	spec := Spec{
		ID:       "twitter-redirect",
		Num:      25,
		Title:    "Twitter icon redirects to x.com",
		Category: CategoryFunctional,
		Severity: domain.SeverityMedium,
		Steps:    "1. Click Twitter icon (or inspect href) and check domain it redirects to.",
		Expected: "Twitter icon should link to official Twitter profile (twitter.com/...).",
		Shot:     "TwitterLink",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		var findings []domain.Finding
		for _, link := range snap.Links {
			if !strings.Contains(link.Href, "twitter") && !strings.Contains(link.Href, "x.com") {
				continue
			}
			if strings.Contains(link.Href, "x.com") && !strings.Contains(link.Href, "twitter.com") {
				findings = append(findings, spec.finding(
					fmt.Sprintf("Twitter icon links to %s (x.com) instead of twitter.com", link.Href),
					snap.Viewport.Label, ev.DesktopEnv(),
				))
			}
		}
		return findings
	}}
}

// NewReadMoreLinksCheck verifies article teaser links lead somewhere
func NewReadMoreLinksCheck() Check {
	spec := Spec{
		ID:       "read-more-links",
		Num:      13,
		Title:    "Read More button navigation issue",
		Category: CategoryFunctional,
		Severity: domain.SeverityHigh,
		Steps:    "1. Click 'Read More' on news cards and confirm full article opens.",
		Expected: "Read More navigates to full article page.",
		Shot:     "ReadMore",
	}
	return &snapshotCheck{spec: spec, inspect: func(ev *Evidence) []domain.Finding {
		snap := ev.Desktop
		if snap == nil {
			return nil
		}
		checked := 0
		inconsistent := false
		for _, link := range snap.Links {
			if !IsReadMoreLink(link) {
				continue
			}
			if checked >= config.ReadMoreLimit {
				break
			}
			checked++
			if link.Href == "" {
				inconsistent = true
				break
			}
			probe, ok := ev.Probes[link.Href]
			if !ok || probe.Broken() {
				inconsistent = true
				break
			}
		}
		if !inconsistent {
			return nil
		}
		f := spec.finding(
			"Some 'Read More' links are missing href or return error",
			snap.Viewport.Label, ev.DesktopEnv(),
		)
		return []domain.Finding{f}
	}}
}

// IsReadMoreLink matches teaser links by their text or class.
// The probe collector uses it to make sure teaser targets get probed.
func IsReadMoreLink(link domain.Link) bool {
	text := strings.ToLower(strings.TrimSpace(link.Text))
	return strings.Contains(text, "read more") || strings.Contains(link.Class, "read-more")
}

// NewSearchFunctionCheck drives the site search end to end
func NewSearchFunctionCheck() Check {
	spec := Spec{
		ID:       "search-function",
		Num:      11,
		Title:    "Search button not working",
		Category: CategoryFunctional,
		Severity: domain.SeverityHigh,
		Steps:    "1. Enter a common keyword into search field and click search button.",
		Expected: "Search returns relevant results or redirects to search results page.",
		Shot:     "SearchButton",
	}
	return &pageCheck{spec: spec, probe: func(ctx context.Context, d Driver, ev *Evidence) ([]domain.Finding, error) {
		hasInput := d.Count(searchInputSelector) > 0
		hasButton := d.Count(searchButtonSelector) > 0
		if !hasButton {
			hasButton = d.HasByText("button", "search")
		}
		if !hasInput || !hasButton {
			f := spec.titledFinding(
				"Search elements not found",
				"Search input/button not detected on page",
				config.DesktopLabel, ev.DesktopEnv(),
			)
			return []domain.Finding{f}, nil
		}

		if err := d.Type(ctx, searchInputSelector, "test"); err != nil {
			return nil, fmt.Errorf("type search keyword: %w", err)
		}
		if d.Count(searchButtonSelector) > 0 {
			if err := d.Click(ctx, searchButtonSelector); err != nil {
				return nil, fmt.Errorf("click search button: %w", err)
			}
		} else if !d.ClickByText(ctx, "button", "search") {
			return nil, fmt.Errorf("click search button: no clickable candidate")
		}
		d.Settle(ctx)

		cur, err := d.CurrentURL()
		if err != nil {
			return nil, fmt.Errorf("read current url: %w", err)
		}

		var findings []domain.Finding
		if !strings.Contains(strings.ToLower(cur), "search") && d.Count(searchResultsSelector) == 0 {
			findings = append(findings, spec.finding(
				"Search action did not produce results or navigate to results page",
				config.DesktopLabel, ev.DesktopEnv(),
			))
		}

		// Leave the page where the next check expects it
		if err := d.Navigate(ctx, ev.TargetURL); err != nil {
			return findings, fmt.Errorf("return to homepage: %w", err)
		}
		d.Settle(ctx)
		return findings, nil
	}}
}

// NewPaginationTerminalCheck follows Next links and verifies the control
// disappears on the last page
func NewPaginationTerminalCheck() Check {
	spec := Spec{
		ID:       "pagination-terminal",
		Num:      14,
		Title:    "Pagination Next button visible on last page",
		Category: CategoryFunctional,
		Severity: domain.SeverityMedium,
		Steps:    "1. Use pagination Next/Prev on article lists and check behavior at first/last pages.",
		Expected: "Pagination should hide/disable 'Next' on last page.",
		Shot:     "Pagination",
	}
	return &pageCheck{spec: spec, probe: func(ctx context.Context, d Driver, ev *Evidence) ([]domain.Finding, error) {
		if d.Count(paginationSelector) == 0 {
			return nil, nil
		}
		for i := 0; i < config.PaginationFollowLimit; i++ {
			if !d.VisibleEnabled(paginationSelector) {
				break
			}
			if err := d.Click(ctx, paginationSelector); err != nil {
				break
			}
			d.Settle(ctx)
			if d.Count(paginationSelector) == 0 {
				break
			}
		}

		var findings []domain.Finding
		if d.Count(paginationSelector) > 0 && d.VisibleEnabled(paginationSelector) {
			findings = append(findings, spec.finding(
				"Next button remains visible/enabled on last page",
				config.DesktopLabel, ev.DesktopEnv(),
			))
		}

		if err := d.Navigate(ctx, ev.TargetURL); err != nil {
			return findings, fmt.Errorf("return to homepage: %w", err)
		}
		d.Settle(ctx)
		return findings, nil
	}}
}
