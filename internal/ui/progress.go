package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders the progress of one audit phase
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase string
}

// NewProgressBar creates a themed progress bar for the named phase
func NewProgressBar(count int, phase string) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describeCounts(phase, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, phase: phase}
}

// Update advances the bar and refreshes the clean and flagged counts
func (p *ProgressBar) Update(completed, clean, flagged int) {
	p.bar.Set(completed)
	p.bar.Describe(describeCounts(p.phase, clean, flagged))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describeCounts(phase string, clean, flagged int) string {
	return color.CyanString("%s: ", phase) +
		color.GreenString("[clean: %d", clean) +
		" | " +
		color.RedString("flagged: %d]", flagged)
}
