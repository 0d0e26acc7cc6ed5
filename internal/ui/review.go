package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"webaudit/internal/domain"
	"webaudit/internal/storage"
)

// Reviewer displays audit findings in an interactive triage TUI
type Reviewer struct {
	storage storage.Storage
}

// NewReviewer creates a new Reviewer
func NewReviewer(st storage.Storage) *Reviewer {
	return &Reviewer{storage: st}
}

// Review displays the stored findings for triage. Toggling a finding
// resolved writes the run back through the storage layer.
func (rv *Reviewer) Review(output *domain.AuditOutput) error {
	if len(output.Findings) == 0 {
		color.Green("✓ No findings to review!")
		return nil
	}

	// Track resolved findings (by index) - load from the stored run
	resolved := make(map[int]bool)
	for i, finding := range output.Findings {
		if finding.Resolved {
			resolved[i] = true
		}
	}

	// Function to persist resolved status back to the results file
	saveResolvedStatus := func() error {
		for i := range output.Findings {
			output.Findings[i].Resolved = resolved[i]
		}
		return rv.storage.SaveOutput(output)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for findings (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(index int) string {
		finding := output.Findings[index]
		title := finding.Title
		if title == "" {
			title = fmt.Sprintf("Finding %d", index+1)
		}

		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%s.[gray] %s[white]", finding.BugID, title)
		}
		return fmt.Sprintf("[yellow]%s.[white] %s", finding.BugID, title)
	}

	// Function to update list item display with resolved status
	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	// Add findings to the list with bug IDs and colors
	for i := range output.Findings {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows check and viewport info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for finding details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Count unresolved findings
	countUnresolved := func() int {
		count := 0
		for i := range output.Findings {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Function to update header
	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Audit Findings (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(output.Findings), unresolved)
		headerView.SetText(headerText)
	}

	// Set initial header
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Findings) {
			finding := output.Findings[index]
			statsView.SetText(rv.formatFindingStats(finding))
			detailsView.SetText(rv.formatFindingDetails(finding))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Findings) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFindingDetails formats a finding for display using tview color tags ([red], [cyan], etc.)
func (rv *Reviewer) formatFindingDetails(finding domain.Finding) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	// Title
	fmt.Fprintf(w, "[red]✗ %s[white]\n\n", finding.Title)

	// Check identity
	fmt.Fprintf(w, "[cyan]Check: %s (bug %s)[white]\n", finding.CheckID, finding.BugID)
	fmt.Fprintf(w, "Severity: %s\n", reviewSeverityTag(finding.Severity))
	if finding.Viewport != "" {
		fmt.Fprintf(w, "Viewport: %s\n", finding.Viewport)
	}
	if finding.Environment != "" {
		fmt.Fprintf(w, "Environment: %s\n", finding.Environment)
	}
	fmt.Fprintf(w, "\n")

	// Report body
	if finding.Steps != "" {
		fmt.Fprintf(w, "[yellow]Steps to Reproduce:[white]\n%s\n\n", finding.Steps)
	}
	if finding.Expected != "" {
		fmt.Fprintf(w, "[yellow]Expected:[white]\n%s\n\n", finding.Expected)
	}
	if finding.Actual != "" {
		fmt.Fprintf(w, "[yellow]Actual:[white]\n%s\n\n", finding.Actual)
	}

	if finding.Screenshot != "" {
		fmt.Fprintf(w, "[yellow]Screenshot:[white] %s\n", finding.Screenshot)
	}
	fmt.Fprintf(w, "[yellow]Status:[white] %s\n", finding.Status)

	w.Flush()
	return builder.String()
}

// formatFindingStats formats the stats header for a finding
func (rv *Reviewer) formatFindingStats(finding domain.Finding) string {
	var builder strings.Builder

	checkID := finding.CheckID
	if checkID == "" {
		checkID = "unknown-check"
	}

	statsLine := fmt.Sprintf("[cyan]check:[white] [yellow]%s[white]::[yellow]%s[white]", finding.BugID, checkID)
	if finding.Viewport != "" {
		statsLine += fmt.Sprintf(" [cyan]viewport:[white] [yellow]%s[white]", finding.Viewport)
	}
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}

// reviewSeverityTag colors a severity for tview rendering
func reviewSeverityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return fmt.Sprintf("[red]%s[white]", s)
	case domain.SeverityMedium:
		return fmt.Sprintf("[yellow]%s[white]", s)
	default:
		return string(s)
	}
}
