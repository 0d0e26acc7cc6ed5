package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webaudit/internal/browser"
	"webaudit/internal/checks"
	"webaudit/internal/cli"
	"webaudit/internal/config"
	"webaudit/internal/domain"
	"webaudit/internal/execution"
	"webaudit/internal/export"
	"webaudit/internal/history"
	"webaudit/internal/storage"
	"webaudit/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Scan    *ScanCommand
	Checks  *ChecksCommand
	Report  *ReportCommand
	Review  *ReviewCommand
	Publish *PublishCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	registry := checks.NewRegistry()
	filter := checks.NewFilter()
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewPool(cfg, domain.SeverityHigh)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, registry)
	junitWriter := export.NewJUnitWriter(cfg)
	workbookWriter := export.NewWorkbookWriter(cfg)
	dbManager := history.NewDatabaseManager(cfg)
	publisher := history.NewPublisher(cfg, dbManager)
	reviewer := ui.NewReviewer(jsonStorage)

	open := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (execution.Browser, error) {
		return browser.Open(ctx, cfg, logger)
	}

	return &Commands{
		Scan:    NewScanCommand(cfg, registry, filter, scheduler, executor, open, jsonStorage, formatter, junitWriter, workbookWriter, reviewer),
		Checks:  NewChecksCommand(cfg, registry, filter, jsonStorage, formatter),
		Report:  NewReportCommand(cfg, registry, jsonStorage, formatter, junitWriter, workbookWriter),
		Review:  NewReviewCommand(cfg, jsonStorage, reviewer),
		Publish: NewPublishCommand(cfg, jsonStorage, publisher),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Scan command
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Run the website audit",
		Long:  "Capture the target page in desktop and mobile viewports, probe the URLs it references and evaluate all quality checks",
		RunE:  c.Scan.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	scanCmd.Flags().StringVarP(&flags.URL, "url", "u", "", "Target URL to audit (falls back to AUDIT_URL)")
	scanCmd.Flags().IntVarP(&flags.Workers, "workers", "p", 4, "Number of workers to use")
	scanCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by ID pattern (supports wildcards, e.g., 'mobile-*' or '*contrast*')")
	scanCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop evaluating on the first High severity finding")
	scanCmd.Flags().BoolVar(&flags.Screenshots, "screenshots", false, "Save a screenshot for every flagged viewport")
	scanCmd.Flags().BoolVar(&flags.Headful, "headful", false, "Run the browser with a visible window")
	scanCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Write debug details to the audit log file")
	scanCmd.Flags().BoolVar(&flags.JUnit, "junit", false, "Write a JUnit XML report after the audit")
	scanCmd.Flags().BoolVar(&flags.Workbook, "workbook", false, "Write an Excel bug report after the audit")
	scanCmd.Flags().BoolVar(&flags.OpenReview, "open-review", false, "Open the review TUI when the audit finds defects")
	rootCmd.AddCommand(scanCmd)

	// Checks command
	checksCmd := &cobra.Command{
		Use:   "checks",
		Short: "List registered checks",
		Long:  "List the built-in quality checks without running an audit",
		RunE:  c.Checks.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	checksCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by ID pattern (supports wildcards, e.g., 'mobile-*' or '*contrast*')")
	checksCmd.Flags().StringVar(&flags.Category, "category", "", "Keep only checks in the given category (layout, style, responsive, network, content, functional, performance)")
	checksCmd.Flags().BoolVarP(&flags.Describe, "describe", "d", false, "Show report details for every check")
	rootCmd.AddCommand(checksCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render the stored audit run",
		Long:  "Display the summary of the last stored audit run and optionally export it",
		RunE:  c.Report.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	reportCmd.Flags().BoolVar(&flags.JUnit, "junit", false, "Write a JUnit XML report")
	reportCmd.Flags().BoolVar(&flags.Workbook, "workbook", false, "Write an Excel bug report")
	rootCmd.AddCommand(reportCmd)

	// Review command
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Triage findings interactively",
		Long:  "Display the findings from the last audit run in an interactive viewer",
		RunE:  c.Review.Execute,
	}
	rootCmd.AddCommand(reviewCmd)

	// Publish command
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Push the stored run to the defect log",
		Long:  "Insert the last audit run and its findings into the MySQL defect log",
		RunE:  c.Publish.Execute,
	}
	rootCmd.AddCommand(publishCmd)
}
