package checks

import (
	"strings"
	"testing"

	"webaudit/internal/domain"
)

func TestHeadlinePlaceholdersCheck(t *testing.T) {
	check := NewHeadlinePlaceholdersCheck()

	t.Run("clean headlines pass", func(t *testing.T) {
		snap := &domain.Snapshot{
			Headings: []string{"Budget approved for 2026", "Local election results"},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("draft tokens flagged", func(t *testing.T) {
		snap := &domain.Snapshot{
			Headings: []string{"TODO: write headline", "Weather update"},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "TODO") {
			t.Errorf("expected token in actual, got %q", findings[0].Actual)
		}
	})

	t.Run("token match is case insensitive", func(t *testing.T) {
		snap := &domain.Snapshot{Headings: []string{"tbd - pending review"}}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 1 {
			t.Errorf("expected 1 finding, got %d", len(findings))
		}
	})
}

func TestPlaceholderTextCheck(t *testing.T) {
	check := NewPlaceholderTextCheck()

	t.Run("no placeholder hits", func(t *testing.T) {
		findings := runSnapshot(t, check, desktopEvidence(&domain.Snapshot{}))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("captured hits reported", func(t *testing.T) {
		snap := &domain.Snapshot{
			PlaceholderHits: []string{"[INSERT CONTACT EMAIL]", "[INSERT ADDRESS]"},
		}
		findings := runSnapshot(t, check, desktopEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "INSERT CONTACT EMAIL") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})
}
