package storage

import (
	"testing"
	"time"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutputDir:   t.TempDir(),
		ResultsFile: "audit-results.json",
	}
}

func testEvidence() *checks.Evidence {
	return &checks.Evidence{
		TargetURL: "https://example.org",
		Desktop: &domain.Snapshot{
			Viewport: domain.Viewport{Label: config.DesktopLabel, Width: 1366, Height: 768},
		},
		Mobile: &domain.Snapshot{
			Viewport: domain.Viewport{Label: config.MobileLabel, Width: 390, Height: 844, Mobile: true},
		},
	}
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	storage := NewJSONStorage(testConfig(t))

	results := []domain.CheckResult{
		{
			CheckID: "horizontal-scroll",
			Findings: []domain.Finding{
				{CheckID: "horizontal-scroll", BugID: "017", Title: "Horizontal scrolling on mobile", Severity: domain.SeverityHigh},
			},
		},
		{
			CheckID: "header-overlap",
			Findings: []domain.Finding{
				{CheckID: "header-overlap", BugID: "001", Title: "Header overlaps logo on desktop", Severity: domain.SeverityMedium},
			},
		},
		{CheckID: "search-function", Err: "element vanished"},
		{CheckID: "section-spacing"},
	}

	if err := storage.Save(results, testEvidence(), 90*time.Second, 4); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := storage.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	meta := output.Meta
	if meta.RunID == "" {
		t.Error("expected a run ID")
	}
	if meta.TargetURL != "https://example.org" {
		t.Errorf("unexpected target URL %q", meta.TargetURL)
	}
	if meta.ChecksRun != 4 {
		t.Errorf("expected 4 checks run, got %d", meta.ChecksRun)
	}
	if meta.ChecksErrored != 1 {
		t.Errorf("expected 1 errored check, got %d", meta.ChecksErrored)
	}
	if meta.TotalFindings != 2 {
		t.Errorf("expected 2 findings, got %d", meta.TotalFindings)
	}
	if meta.HighCount != 1 || meta.MediumCount != 1 || meta.LowCount != 0 {
		t.Errorf("unexpected severity counts: %d/%d/%d", meta.HighCount, meta.MediumCount, meta.LowCount)
	}
	if meta.Stability != domain.StabilityNeedsImprovement {
		t.Errorf("expected %q, got %q", domain.StabilityNeedsImprovement, meta.Stability)
	}
	if meta.Recommendation != domain.DefaultRecommendation {
		t.Errorf("unexpected recommendation %q", meta.Recommendation)
	}
	if meta.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", meta.Workers)
	}
	if meta.DurationSeconds != 90 {
		t.Errorf("expected 90 duration seconds, got %f", meta.DurationSeconds)
	}
	if len(meta.Viewports) != 2 || meta.Viewports[0] != "desktop 1366x768" || meta.Viewports[1] != "mobile 390x844" {
		t.Errorf("unexpected viewports %v", meta.Viewports)
	}

	// Findings come back sorted by bug ID
	if len(output.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(output.Findings))
	}
	if output.Findings[0].BugID != "001" || output.Findings[1].BugID != "017" {
		t.Errorf("expected findings sorted by bug ID, got %s then %s",
			output.Findings[0].BugID, output.Findings[1].BugID)
	}
}

func TestJSONStorage_SaveCleanRun(t *testing.T) {
	storage := NewJSONStorage(testConfig(t))

	results := []domain.CheckResult{
		{CheckID: "header-overlap"},
		{CheckID: "section-spacing"},
	}
	if err := storage.Save(results, testEvidence(), time.Second, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := storage.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if output.Meta.Stability != domain.StabilityStable {
		t.Errorf("expected %q, got %q", domain.StabilityStable, output.Meta.Stability)
	}
	if output.Meta.Recommendation != domain.CleanRecommendation {
		t.Errorf("unexpected recommendation %q", output.Meta.Recommendation)
	}
	if len(output.Findings) != 0 {
		t.Errorf("expected no findings, got %d", len(output.Findings))
	}
}

func TestJSONStorage_SaveOutputRoundTrip(t *testing.T) {
	storage := NewJSONStorage(testConfig(t))

	results := []domain.CheckResult{
		{
			CheckID: "broken-links",
			Findings: []domain.Finding{
				{CheckID: "broken-links", BugID: "007", Title: "Broken links found", Severity: domain.SeverityHigh},
			},
		},
	}
	if err := storage.Save(results, testEvidence(), time.Second, 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := storage.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Triage marks the finding resolved and writes the run back
	output.Findings[0].Resolved = true
	if err := storage.SaveOutput(output); err != nil {
		t.Fatalf("save output failed: %v", err)
	}

	reloaded, err := storage.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Findings[0].Resolved {
		t.Error("expected the resolved flag to persist")
	}
	if reloaded.Meta.RunID != output.Meta.RunID {
		t.Error("expected the run ID to be unchanged")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	storage := NewJSONStorage(testConfig(t))

	if _, err := storage.Load(); err == nil {
		t.Fatal("expected an error when no run is stored")
	}
}
