package checks

import (
	"strings"
	"testing"

	"webaudit/internal/domain"
)

func TestResponsiveOverflowCheck(t *testing.T) {
	check := NewResponsiveOverflowCheck()

	t.Run("no overflowing elements", func(t *testing.T) {
		findings := runSnapshot(t, check, mobileEvidence(&domain.Snapshot{InnerWidth: 390}))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("widest offender reported", func(t *testing.T) {
		snap := &domain.Snapshot{
			InnerWidth:     390,
			OverflowWidths: []float64{420, 950, 600},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "950px") {
			t.Errorf("expected widest element in actual, got %q", findings[0].Actual)
		}
	})
}

func TestMobileMenuCollapseCheck(t *testing.T) {
	check := NewMobileMenuCollapseCheck()

	t.Run("hamburger present passes", func(t *testing.T) {
		snap := &domain.Snapshot{
			HasHamburger: true,
			NavBoxes:     []domain.Box{{Width: 390}},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("full width nav without hamburger flagged", func(t *testing.T) {
		snap := &domain.Snapshot{NavBoxes: []domain.Box{{Width: 350}}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
	})

	t.Run("narrow nav passes", func(t *testing.T) {
		snap := &domain.Snapshot{NavBoxes: []domain.Box{{Width: 100}}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}

func TestMobileImageResizeCheck(t *testing.T) {
	check := NewMobileImageResizeCheck()

	t.Run("images within viewport pass", func(t *testing.T) {
		snap := &domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/a.jpg", DisplayWidth: 390}},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("oversized image flagged", func(t *testing.T) {
		snap := &domain.Snapshot{
			Images: []domain.Image{{Src: "https://cdn.example.org/wide.jpg", DisplayWidth: 520}},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "wide.jpg") {
			t.Errorf("expected offending src in actual, got %q", findings[0].Actual)
		}
	})
}

func TestHorizontalScrollCheck(t *testing.T) {
	check := NewHorizontalScrollCheck()

	tests := []struct {
		name        string
		scrollWidth int
		innerWidth  int
		expected    int
	}{
		{name: "no horizontal scroll", scrollWidth: 390, innerWidth: 390, expected: 0},
		{name: "within slack", scrollWidth: 393, innerWidth: 390, expected: 0},
		{name: "page wider than viewport", scrollWidth: 600, innerWidth: 390, expected: 1},
		{name: "missing measurements skipped", scrollWidth: 0, innerWidth: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &domain.Snapshot{ScrollWidth: tt.scrollWidth, InnerWidth: tt.innerWidth}
			findings := runSnapshot(t, check, mobileEvidence(snap))
			if len(findings) != tt.expected {
				t.Errorf("expected %d findings, got %d", tt.expected, len(findings))
			}
		})
	}
}

func TestFooterStackingCheck(t *testing.T) {
	check := NewFooterStackingCheck()

	t.Run("stacked footer passes", func(t *testing.T) {
		snap := &domain.Snapshot{FooterChildWidths: []float64{390, 380}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("overflowing footer column flagged", func(t *testing.T) {
		snap := &domain.Snapshot{FooterChildWidths: []float64{390, 510}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Errorf("expected 1 finding, got %d", len(findings))
		}
	})
}

func TestMobileFontSizeCheck(t *testing.T) {
	check := NewMobileFontSizeCheck()

	t.Run("readable sizes pass", func(t *testing.T) {
		snap := &domain.Snapshot{ParagraphFontSizes: []float64{14, 16, 15.5}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("tiny paragraph text flagged", func(t *testing.T) {
		snap := &domain.Snapshot{ParagraphFontSizes: []float64{16, 12, 11.5}}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "12.0px") {
			t.Errorf("expected small size in actual, got %q", findings[0].Actual)
		}
	})
}

func TestMobileTextOverlapCheck(t *testing.T) {
	check := NewMobileTextOverlapCheck()

	t.Run("separated elements pass", func(t *testing.T) {
		snap := &domain.Snapshot{
			ElementBoxes: []domain.ElementBox{
				{Tag: "button", Box: domain.Box{X: 0, Y: 0, Width: 100, Height: 40}},
				{Tag: "p", Box: domain.Box{X: 0, Y: 100, Width: 100, Height: 40}},
			},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})

	t.Run("colliding boxes flagged", func(t *testing.T) {
		snap := &domain.Snapshot{
			ElementBoxes: []domain.ElementBox{
				{Tag: "button", Box: domain.Box{X: 0, Y: 0, Width: 100, Height: 40}},
				{Tag: "p", Box: domain.Box{X: 50, Y: 20, Width: 100, Height: 40}},
			},
		}
		findings := runSnapshot(t, check, mobileEvidence(snap))
		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if !strings.Contains(findings[0].Actual, "pairs sample: 1") {
			t.Errorf("unexpected actual %q", findings[0].Actual)
		}
	})
}
