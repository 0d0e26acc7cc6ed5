package domain

// Severity classifies how badly a finding affects the site
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
	SeverityInfo   Severity = "Info"
)

// Rank returns a sortable weight (higher is worse)
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// ParseSeverity maps a string to a Severity, defaulting to Info
func ParseSeverity(raw string) Severity {
	switch raw {
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	case string(SeverityLow):
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// Finding represents one reported defect
type Finding struct {
	CheckID     string   `json:"check_id"`
	BugID       string   `json:"bug_id"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Steps       string   `json:"steps"`
	Expected    string   `json:"expected"`
	Actual      string   `json:"actual"`
	Viewport    string   `json:"viewport,omitempty"`
	Screenshot  string   `json:"screenshot,omitempty"`
	Status      string   `json:"status"`
	Environment string   `json:"environment,omitempty"`
	Resolved    bool     `json:"resolved,omitempty"` // Track if finding is marked as resolved during triage
}
