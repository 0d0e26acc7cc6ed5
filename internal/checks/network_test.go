package checks

import (
	"strings"
	"testing"

	"webaudit/internal/domain"
)

func TestBrokenLinksCheck(t *testing.T) {
	check := NewBrokenLinksCheck()

	t.Run("healthy links pass", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "https://example.org/about"}},
		})
		ev.Probes["https://example.org/about"] = domain.ProbeResult{URL: "https://example.org/about", Status: 200}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("404 and transport errors flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{
				{Href: "https://example.org/gone"},
				{Href: "https://example.org/unreachable"},
			},
		})
		ev.Probes["https://example.org/gone"] = domain.ProbeResult{URL: "https://example.org/gone", Status: 404}
		ev.Probes["https://example.org/unreachable"] = domain.ProbeResult{URL: "https://example.org/unreachable", Err: "connection refused"}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "404") {
			t.Errorf("expected status in actual, got %q", findings[0].Actual)
		}
		if !strings.Contains(findings[0].Actual, "connection refused") {
			t.Errorf("expected error in actual, got %q", findings[0].Actual)
		}
	})

	t.Run("non-http hrefs skipped", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "mailto:news@example.org"}, {Href: "#top"}},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("unprobed links skipped", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Links: []domain.Link{{Href: "https://example.org/not-probed"}},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}

func TestMissingThumbnailsCheck(t *testing.T) {
	check := NewMissingThumbnailsCheck()

	t.Run("reachable thumbnails pass", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/thumb.jpg", NaturalWidth: 320}},
		})
		ev.Probes["https://cdn.example.org/thumb.jpg"] = domain.ProbeResult{URL: "https://cdn.example.org/thumb.jpg", Status: 200}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("empty src flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{Images: []domain.Image{{Src: ""}}})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "empty-src") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})

	t.Run("broken thumbnail flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/missing.jpg"}},
		})
		ev.Probes["https://cdn.example.org/missing.jpg"] = domain.ProbeResult{URL: "https://cdn.example.org/missing.jpg", Status: 404}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Errorf("expected 1 finding, got %d", len(findings))
		}
	})
}

func TestUnloadedImagesCheck(t *testing.T) {
	check := NewUnloadedImagesCheck()

	t.Run("decoded images pass", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/a.jpg", NaturalWidth: 640}},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("zero naturalWidth flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{
				{Src: "https://cdn.example.org/a.jpg", NaturalWidth: 640},
				{Src: "https://cdn.example.org/broken.jpg", NaturalWidth: 0},
			},
		})
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "broken.jpg") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})
}

func TestImageWeightCheck(t *testing.T) {
	check := NewImageWeightCheck()

	t.Run("light images pass", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/small.jpg", NaturalWidth: 320}},
		})
		ev.Probes["https://cdn.example.org/small.jpg"] = domain.ProbeResult{
			URL:           "https://cdn.example.org/small.jpg",
			Status:        200,
			ContentLength: 48000,
		}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("heavy image flagged", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/hero.jpg", NaturalWidth: 1920}},
		})
		ev.Probes["https://cdn.example.org/hero.jpg"] = domain.ProbeResult{
			URL:           "https://cdn.example.org/hero.jpg",
			Status:        200,
			ContentLength: 412345,
		}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "hero.jpg") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})

	t.Run("broken probes not counted as heavy", func(t *testing.T) {
		ev := desktopEvidence(&domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/err.jpg"}},
		})
		ev.Probes["https://cdn.example.org/err.jpg"] = domain.ProbeResult{
			URL:           "https://cdn.example.org/err.jpg",
			Err:           "timeout",
			ContentLength: 999999,
		}
		findings := runSnapshot(t, check, ev)
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}
