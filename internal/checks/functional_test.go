package checks

import (
	"context"
	"strings"
	"testing"

	"webaudit/internal/domain"
)

// stubDriver fakes the browser surface for page check tests
type stubDriver struct {
	counts     map[string]int
	visible    map[string]bool
	hasSearch  bool
	currentURL string
	clickErr   error
	onClick    func(selector string)

	typed     []string
	clicked   []string
	navigated []string
}

func (d *stubDriver) Navigate(ctx context.Context, rawURL string) error {
	d.navigated = append(d.navigated, rawURL)
	return nil
}

func (d *stubDriver) CurrentURL() (string, error) { return d.currentURL, nil }

func (d *stubDriver) Count(selector string) int { return d.counts[selector] }

func (d *stubDriver) VisibleEnabled(selector string) bool { return d.visible[selector] }

func (d *stubDriver) Click(ctx context.Context, selector string) error {
	d.clicked = append(d.clicked, selector)
	if d.onClick != nil {
		d.onClick(selector)
	}
	return d.clickErr
}

func (d *stubDriver) Type(ctx context.Context, selector, text string) error {
	d.typed = append(d.typed, text)
	return nil
}

func (d *stubDriver) ClickByText(ctx context.Context, tag, substr string) bool { return d.hasSearch }

func (d *stubDriver) HasByText(tag, substr string) bool { return d.hasSearch }

func (d *stubDriver) Settle(ctx context.Context) {}

func runPage(t *testing.T, c Check, d Driver, ev *Evidence) []domain.Finding {
	t.Helper()
	pc, ok := c.(PageCheck)
	if !ok {
		t.Fatalf("%s is not a page check", c.Spec().ID)
	}
	findings, err := pc.Probe(context.Background(), d, ev)
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	return findings
}

func TestSocialLinksCheck(t *testing.T) {
	check := NewSocialLinksCheck()

	t.Run("real profiles pass", func(t *testing.T) {
		snap := &domain.Snapshot{
			Links: []domain.Link{
				{Href: "https://www.facebook.com/dailynews"},
				{Href: "https://twitter.com/dailynews"},
			},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("placeholder targets flagged", func(t *testing.T) {
		snap := &domain.Snapshot{
			Links: []domain.Link{
				{Href: "https://www.facebook.com/#"},
				{Href: "https://instagram.com/example.com/profile"},
			},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "facebook.com/#") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})

	t.Run("non social links ignored", func(t *testing.T) {
		snap := &domain.Snapshot{
			Links: []domain.Link{{Href: "https://example.com/article#"}},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}

func TestTwitterRedirectCheck(t *testing.T) {
	check := NewTwitterRedirectCheck()

	t.Run("twitter.com href passes", func(t *testing.T) {
		snap := &domain.Snapshot{
			Links: []domain.Link{{Href: "https://twitter.com/dailynews"}},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("x.com redirect flagged per link", func(t *testing.T) {
		snap := &domain.Snapshot{
			Links: []domain.Link{
				{Href: "https://x.com/dailynews"},
				{Href: "https://x.com/dailynews_sports"},
			},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 2 {
			t.Fatalf("expected 2 findings, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "instead of twitter.com") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})
}

func TestReadMoreLinksCheck(t *testing.T) {
	check := NewReadMoreLinksCheck()

	t.Run("working teasers pass", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{
				{Href: "https://example.org/article-1", Text: "Read More"},
			},
		})
		ev.Probes["https://example.org/article-1"] = domain.ProbeResult{URL: "https://example.org/article-1", Status: 200}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("missing href flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "", Text: "Read more"}},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
	})

	t.Run("broken teaser target flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "https://example.org/dead", Class: "btn read-more"}},
		})
		ev.Probes["https://example.org/dead"] = domain.ProbeResult{URL: "https://example.org/dead", Status: 500}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Errorf("expected 1 finding, got %d", len(findings))
		}
	})

	t.Run("plain links ignored", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "", Text: "Home"}},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}

func TestSearchFunctionCheck(t *testing.T) {
	check := NewSearchFunctionCheck()
	ev := desktopEvidence(&domain.Snapshot{})

	t.Run("missing search elements reported", func(t *testing.T) {
		d := &stubDriver{counts: map[string]int{}, visible: map[string]bool{}}
		findings := runPage(t, check, d, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if findings[0].Title != "Search elements not found" {
			t.Errorf("unexpected title %q", findings[0].Title)
		}
	})

	t.Run("search navigating to results passes", func(t *testing.T) {
		d := &stubDriver{
			counts: map[string]int{
				searchInputSelector:  1,
				searchButtonSelector: 1,
			},
			visible:    map[string]bool{},
			currentURL: "https://example.org/search?q=test",
		}
		findings := runPage(t, check, d, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
		if len(d.typed) != 1 || d.typed[0] != "test" {
			t.Errorf("expected search keyword to be typed, got %v", d.typed)
		}
		if len(d.navigated) != 1 || d.navigated[0] != ev.TargetURL {
			t.Errorf("expected return to homepage, got %v", d.navigated)
		}
	})

	t.Run("dead search flagged", func(t *testing.T) {
		d := &stubDriver{
			counts: map[string]int{
				searchInputSelector:  1,
				searchButtonSelector: 1,
			},
			visible:    map[string]bool{},
			currentURL: "https://example.org/",
		}
		findings := runPage(t, check, d, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "did not produce results") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})

	t.Run("results container counts as success", func(t *testing.T) {
		d := &stubDriver{
			counts: map[string]int{
				searchInputSelector:   1,
				searchButtonSelector:  1,
				searchResultsSelector: 4,
			},
			visible:    map[string]bool{},
			currentURL: "https://example.org/",
		}
		findings := runPage(t, check, d, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}

func TestPaginationTerminalCheck(t *testing.T) {
	check := NewPaginationTerminalCheck()
	ev := desktopEvidence(&domain.Snapshot{})

	t.Run("no pagination means nothing to verify", func(t *testing.T) {
		d := &stubDriver{counts: map[string]int{}, visible: map[string]bool{}}
		findings := runPage(t, check, d, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
		if len(d.navigated) != 0 {
			t.Errorf("expected no navigation, got %v", d.navigated)
		}
	})

	t.Run("next disappearing on last page passes", func(t *testing.T) {
		clicks := 0
		d := &stubDriver{
			counts:  map[string]int{paginationSelector: 1},
			visible: map[string]bool{paginationSelector: true},
		}
		d.onClick = func(selector string) {
			clicks++
			if clicks >= 2 {
				d.counts[paginationSelector] = 0
			}
		}
		findings := runPage(t, check, d, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
		if clicks != 2 {
			t.Errorf("expected 2 next clicks, got %d", clicks)
		}
		if len(d.navigated) != 1 {
			t.Errorf("expected return to homepage, got %v", d.navigated)
		}
	})

	t.Run("sticky next button flagged", func(t *testing.T) {
		d := &stubDriver{
			counts:  map[string]int{paginationSelector: 1},
			visible: map[string]bool{paginationSelector: true},
		}
		findings := runPage(t, check, d, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "remains visible/enabled") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
		if len(d.clicked) == 0 {
			t.Error("expected next button clicks before giving up")
		}
	})
}
