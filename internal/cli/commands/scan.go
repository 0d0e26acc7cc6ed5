package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/execution"
	"webaudit/internal/export"
	"webaudit/internal/probe"
	"webaudit/internal/storage"
	"webaudit/internal/ui"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	config    *config.Config
	registry  *checks.Registry
	filter    *checks.Filter
	scheduler execution.Scheduler
	executor  execution.Executor
	open      execution.OpenBrowser
	storage   storage.Storage
	formatter *ui.Formatter
	junit     *export.JUnitWriter
	workbook  *export.WorkbookWriter
	reviewer  ui.Viewer
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(
	cfg *config.Config,
	registry *checks.Registry,
	filter *checks.Filter,
	scheduler execution.Scheduler,
	executor execution.Executor,
	open execution.OpenBrowser,
	st storage.Storage,
	formatter *ui.Formatter,
	junit *export.JUnitWriter,
	workbook *export.WorkbookWriter,
	reviewer ui.Viewer,
) *ScanCommand {
	return &ScanCommand{
		config:    cfg,
		registry:  registry,
		filter:    filter,
		scheduler: scheduler,
		executor:  executor,
		open:      open,
		storage:   st,
		formatter: formatter,
		junit:     junit,
		workbook:  workbook,
		reviewer:  reviewer,
	}
}

// Execute runs the command
func (sc *ScanCommand) Execute(cmd *cobra.Command, args []string) error {
	target := sc.config.GetTargetURL()
	if target == "" {
		return fmt.Errorf("no target URL: pass --url or set AUDIT_URL")
	}

	// Select checks
	selected := sc.filter.ByName(sc.registry.All(), sc.config.Flags.Filter)
	if len(selected) == 0 {
		color.Yellow("No checks selected")
		return nil
	}

	// The log sink depends on the --debug flag, so the browser-facing
	// pieces are wired here rather than in NewCommands
	logger, closeLog, err := NewDebugLogger(sc.config)
	if err != nil {
		return err
	}
	defer closeLog()

	prober := probe.NewProber(sc.config, logger)
	runner := probe.NewRunner(sc.config, prober, sc.scheduler, logger)
	pipeline := execution.NewPipeline(sc.config, sc.open, runner, sc.executor, logger)

	color.Cyan("Auditing %s with %d check(s)\n", target, len(selected))

	// Run the audit
	results, ev, duration, err := pipeline.Run(cmd.Context(), selected)
	if err != nil {
		return err
	}

	// Save results
	if err := sc.storage.Save(results, ev, duration, sc.config.Workers); err != nil {
		return fmt.Errorf("failed to save audit results: %w", err)
	}

	// Print stats from the stored run
	output, err := sc.storage.Load()
	if err != nil {
		return err
	}
	sc.formatter.PrintSummary(output)

	if sc.config.Flags.JUnit {
		if err := sc.junit.Write(output, sc.registry); err != nil {
			return fmt.Errorf("failed to write JUnit report: %w", err)
		}
		color.Green("✓ JUnit report written to %s", sc.config.GetJUnitPath())
	}

	if sc.config.Flags.Workbook {
		if err := sc.workbook.Write(output); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		color.Green("✓ Bug report written to %s", sc.config.GetWorkbookPath())
	}

	if sc.config.Flags.OpenReview && len(output.Findings) > 0 {
		return sc.reviewer.Review(output)
	}

	return nil
}
