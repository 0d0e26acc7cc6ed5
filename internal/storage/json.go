package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"

	"webaudit/internal/checks"
	"webaudit/internal/domain"
)

// Save assembles the audit output from check results and writes it to the
// configured JSON output file.
func (s *JSONStorage) Save(results []domain.CheckResult, ev *checks.Evidence, duration time.Duration, workers int) error {
	output := s.assemble(results, ev, duration, workers)
	return s.SaveOutput(&output)
}

// Load reads the last audit run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.AuditOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.AuditOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g.
// after the review TUI resolved findings).
func (s *JSONStorage) SaveOutput(output *domain.AuditOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// assemble flattens check results into report rows and derives run metadata
func (s *JSONStorage) assemble(results []domain.CheckResult, ev *checks.Evidence, duration time.Duration, workers int) domain.AuditOutput {
	var findings []domain.Finding
	errored := 0
	for _, result := range results {
		if result.Err != "" {
			errored++
		}
		findings = append(findings, result.Findings...)
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].BugID != findings[j].BugID {
			return findings[i].BugID < findings[j].BugID
		}
		return findings[i].Title < findings[j].Title
	})

	high, medium, low := 0, 0, 0
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		case domain.SeverityLow:
			low++
		}
	}

	stability := domain.StabilityStable
	if high > 0 {
		stability = domain.StabilityNeedsImprovement
	}
	recommendation := domain.CleanRecommendation
	if len(findings) > 0 {
		recommendation = domain.DefaultRecommendation
	}

	browser := "Chrome (headless)"
	if s.cfg.Flags.Headful {
		browser = "Chrome"
	}

	var viewports []string
	targetURL := ""
	if ev != nil {
		targetURL = ev.TargetURL
		if ev.Desktop != nil {
			viewports = append(viewports, viewportLabel(ev.Desktop.Viewport))
		}
		if ev.Mobile != nil {
			viewports = append(viewports, viewportLabel(ev.Mobile.Viewport))
		}
	}

	return domain.AuditOutput{
		Meta: domain.RunMeta{
			RunID:           uuid.NewString(),
			TargetURL:       targetURL,
			Browser:         browser,
			Platform:        runtime.GOOS,
			Viewports:       viewports,
			ChecksRun:       len(results),
			ChecksErrored:   errored,
			TotalFindings:   len(findings),
			HighCount:       high,
			MediumCount:     medium,
			LowCount:        low,
			Stability:       stability,
			Recommendation:  recommendation,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Findings: findings,
	}
}

func viewportLabel(vp domain.Viewport) string {
	return fmt.Sprintf("%s %dx%d", vp.Label, vp.Width, vp.Height)
}
