package ui

import (
	"fmt"

	"github.com/fatih/color"
	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// Formatter formats and displays audit output
type Formatter struct {
	config   *config.Config
	registry *checks.Registry
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, registry *checks.Registry) *Formatter {
	return &Formatter{
		config:   cfg,
		registry: registry,
	}
}

// PrintSummary displays the statistics of a stored audit run
func (f *Formatter) PrintSummary(output *domain.AuditOutput) {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Website Audit Summary                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Target
	fmt.Printf("│ %-31s │ ", "Target")
	color.White("%-27s │\n", fit(meta.TargetURL, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Checks Run
	fmt.Printf("│ %-31s │ ", "Checks Run")
	color.White("%-27d │\n", meta.ChecksRun)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Checks Errored
	fmt.Printf("│ %-31s │ ", "Checks Errored")
	color.Red("%-27d │\n", meta.ChecksErrored)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Total Findings
	fmt.Printf("│ %-31s │ ", "Total Findings")
	color.White("%-27d │\n", meta.TotalFindings)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// High Severity
	fmt.Printf("│ %-31s │ ", "High Severity")
	color.Red("%-27d │\n", meta.HighCount)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Medium Severity
	fmt.Printf("│ %-31s │ ", "Medium Severity")
	color.Yellow("%-27d │\n", meta.MediumCount)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Low Severity
	fmt.Printf("│ %-31s │ ", "Low Severity")
	color.White("%-27d │\n", meta.LowCount)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Stability
	fmt.Printf("│ %-31s │ ", "Build Stability")
	if meta.Stability == domain.StabilityStable {
		color.Green("%-27s │\n", meta.Stability)
	} else {
		color.Red("%-27s │\n", fit(meta.Stability, 27))
	}
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Workers
	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", fit(meta.Timestamp, 27))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if meta.TotalFindings == 0 && meta.ChecksErrored == 0 {
		color.Green("✓ No defects found!")
	} else {
		if meta.TotalFindings > 0 {
			color.Red("✗ %d finding(s) reported (%d high, %d medium, %d low)", meta.TotalFindings, meta.HighCount, meta.MediumCount, meta.LowCount)
		}
		if meta.ChecksErrored > 0 {
			color.Yellow("! %d check(s) errored during the run", meta.ChecksErrored)
		}
		fmt.Println()
		f.printFindingsTree(output.Findings)
	}

	fmt.Println()
	color.White("Recommendation: %s", meta.Recommendation)
	color.White("Results: %s", f.config.GetOutputPath())
}

// checkGroup collects the report rows one check produced
type checkGroup struct {
	bugID string
	title string
	rows  []domain.Finding
}

// categoryGroup collects the flagged checks of one category
type categoryGroup struct {
	name   string
	checks []*checkGroup
}

// printFindingsTree prints findings grouped by category and check
func (f *Formatter) printFindingsTree(findings []domain.Finding) {
	if len(findings) == 0 {
		return
	}

	specByID := make(map[string]checks.Spec)
	for _, c := range f.registry.All() {
		specByID[c.Spec().ID] = c.Spec()
	}

	// Group findings into category -> check, keeping first-appearance order.
	// Findings arrive sorted by bug ID, so groups come out in report order.
	var categories []*categoryGroup
	catByName := make(map[string]*categoryGroup)
	groupByCheck := make(map[string]*checkGroup)

	for _, finding := range findings {
		catName := "other"
		title := finding.Title
		if spec, ok := specByID[finding.CheckID]; ok {
			catName = spec.Category
			title = spec.Title
		}

		cat := catByName[catName]
		if cat == nil {
			cat = &categoryGroup{name: catName}
			catByName[catName] = cat
			categories = append(categories, cat)
		}

		group := groupByCheck[finding.CheckID]
		if group == nil {
			group = &checkGroup{bugID: finding.BugID, title: title}
			groupByCheck[finding.CheckID] = group
			cat.checks = append(cat.checks, group)
		}
		group.rows = append(group.rows, finding)
	}

	for i, cat := range categories {
		isLastCat := i == len(categories)-1
		if isLastCat {
			color.Cyan("└── %s", cat.name)
		} else {
			color.Cyan("├── %s", cat.name)
		}

		catPrefix := "│   "
		if isLastCat {
			catPrefix = "    "
		}

		for j, group := range cat.checks {
			isLastCheck := j == len(cat.checks)-1
			if isLastCheck {
				color.Yellow("%s└── %s %s", catPrefix, group.bugID, group.title)
			} else {
				color.Yellow("%s├── %s %s", catPrefix, group.bugID, group.title)
			}

			checkPrefix := catPrefix + "│   "
			if isLastCheck {
				checkPrefix = catPrefix + "    "
			}

			for k, row := range group.rows {
				connector := "├── "
				if k == len(group.rows)-1 {
					connector = "└── "
				}
				fmt.Printf("%s%s%s %s\n", checkPrefix, connector, severityTag(row.Severity), findingLine(row))
			}
		}
	}
}

// findingLine renders one report row for the tree
func findingLine(row domain.Finding) string {
	if row.Viewport == "" {
		return row.Title
	}
	return fmt.Sprintf("%s (%s)", row.Title, row.Viewport)
}

// severityTag colors a severity marker for terminal output
func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return color.RedString("[%s]", s)
	case domain.SeverityMedium:
		return color.YellowString("[%s]", s)
	default:
		return color.WhiteString("[%s]", s)
	}
}

// PrintCheckList prints a list of checks, optionally with report details.
// flaggedIDs is optional; if set, checks in this set are marked with [F]
// in red (flagged by the last stored run).
func (f *Formatter) PrintCheckList(list []checks.Check, describe bool, flaggedIDs map[string]struct{}) {
	if describe {
		// Display tree view with report details
		color.Green("Found %d check(s) with details:\n", len(list))

		for i, check := range list {
			spec := check.Spec()

			failMarker := ""
			if len(flaggedIDs) > 0 {
				if _, ok := flaggedIDs[spec.ID]; ok {
					failMarker = " " + color.RedString("[F]")
				}
			}

			// Print check as root node
			isLastCheck := i == len(list)-1
			if isLastCheck {
				color.Cyan("└── %s %s%s", spec.BugID(), spec.ID, failMarker)
			} else {
				color.Cyan("├── %s %s%s", spec.BugID(), spec.ID, failMarker)
			}

			var titlePrefix, metaPrefix string
			if isLastCheck {
				titlePrefix = "    ├── "
				metaPrefix = "    └── "
			} else {
				titlePrefix = "│   ├── "
				metaPrefix = "│   └── "
			}

			fmt.Printf("%s%s\n", titlePrefix, color.YellowString(spec.Title))

			meta := fmt.Sprintf("%s / %s", spec.Category, spec.Severity)
			if _, ok := check.(checks.PageCheck); ok {
				meta += " / interactive"
			}
			fmt.Printf("%s%s\n", metaPrefix, meta)

			// Add spacing between checks (except for the last one)
			if i < len(list)-1 {
				fmt.Println()
			}
		}
	} else {
		// Display simple list of checks
		color.Green("Found %d check(s):\n", len(list))

		for i, check := range list {
			spec := check.Spec()

			failMarker := ""
			if len(flaggedIDs) > 0 {
				if _, ok := flaggedIDs[spec.ID]; ok {
					failMarker = " " + color.RedString("[F]")
				}
			}

			if i == len(list)-1 {
				color.Cyan("└── %s %s%s", spec.BugID(), spec.ID, failMarker)
			} else {
				color.Cyan("├── %s %s%s", spec.BugID(), spec.ID, failMarker)
			}
		}
	}
}

// fit truncates a value so it stays inside the summary box
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width > 3 {
		return string(r[:width-3]) + "..."
	}
	return string(r[:width])
}
