package domain

import "time"

// CheckResult represents the outcome of evaluating one check
type CheckResult struct {
	CheckID  string        // ID of the check that was evaluated
	Findings []Finding     // Defects the check reported
	Err      string        // Evaluation error, if the check itself broke
	Duration time.Duration // Time taken to evaluate
}

// Failed reports whether the check produced findings or errored
func (r CheckResult) Failed() bool {
	return r.Err != "" || len(r.Findings) > 0
}

// RunMeta contains metadata about an audit run
type RunMeta struct {
	RunID           string   `json:"run_id"`
	TargetURL       string   `json:"target_url"`
	Browser         string   `json:"browser"`
	Platform        string   `json:"platform"`
	Viewports       []string `json:"viewports"`
	ChecksRun       int      `json:"checks_run"`
	ChecksErrored   int      `json:"checks_errored"`
	TotalFindings   int      `json:"total_findings"`
	HighCount       int      `json:"high_count"`
	MediumCount     int      `json:"medium_count"`
	LowCount        int      `json:"low_count"`
	Stability       string   `json:"stability"`
	Recommendation  string   `json:"recommendation"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Workers         int      `json:"workers"`
	Timestamp       string   `json:"timestamp"`
}

// AuditOutput is the complete persisted structure for an audit run
type AuditOutput struct {
	Meta     RunMeta   `json:"meta"`
	Findings []Finding `json:"findings"`
}

// Stability verdicts derived from the severity mix of a run
const (
	StabilityStable           = "Stable"
	StabilityNeedsImprovement = "Needs Improvement"
	DefaultRecommendation     = "Prioritize High severity issues; fix UI consistency; optimize images & JS; re-test"
	CleanRecommendation       = "No action required"
	StatusNew                 = "New"
	StatusPassed              = "Passed"
)
