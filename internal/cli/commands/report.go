package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/export"
	"webaudit/internal/storage"
	"webaudit/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	registry  *checks.Registry
	storage   storage.Storage
	formatter *ui.Formatter
	junit     *export.JUnitWriter
	workbook  *export.WorkbookWriter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	registry *checks.Registry,
	st storage.Storage,
	formatter *ui.Formatter,
	junit *export.JUnitWriter,
	workbook *export.WorkbookWriter,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		registry:  registry,
		storage:   st,
		formatter: formatter,
		junit:     junit,
		workbook:  workbook,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	rc.formatter.PrintSummary(output)

	if rc.config.Flags.JUnit {
		if err := rc.junit.Write(output, rc.registry); err != nil {
			return fmt.Errorf("failed to write JUnit report: %w", err)
		}
		color.Green("✓ JUnit report written to %s", rc.config.GetJUnitPath())
	}

	if rc.config.Flags.Workbook {
		if err := rc.workbook.Write(output); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		color.Green("✓ Bug report written to %s", rc.config.GetWorkbookPath())
	}

	return nil
}
