package cli

import "webaudit/internal/config"

// Flags holds command-line flags
type Flags struct {
	URL         string
	Workers     int
	Filter      string
	Category    string
	FailFast    bool
	Screenshots bool
	Headful     bool
	Debug       bool
	JUnit       bool
	Workbook    bool
	OpenReview  bool
	Describe    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		URL:         f.URL,
		Workers:     f.Workers,
		Filter:      f.Filter,
		Category:    f.Category,
		FailFast:    f.FailFast,
		Screenshots: f.Screenshots,
		Headful:     f.Headful,
		Debug:       f.Debug,
		JUnit:       f.JUnit,
		Workbook:    f.Workbook,
		OpenReview:  f.OpenReview,
		Describe:    f.Describe,
	}
}
