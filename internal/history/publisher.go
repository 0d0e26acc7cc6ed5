package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

const insertRunQuery = "REPLACE INTO `%s`.audit_runs" +
	" (run_id, target_url, browser, platform, viewports, checks_run, checks_errored," +
	" total_findings, high_count, medium_count, low_count, stability, recommendation," +
	" duration_seconds, workers, run_at)" +
	" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

const insertFindingQuery = "INSERT INTO `%s`.audit_findings" +
	" (run_id, check_id, bug_id, title, severity, viewport, steps, expected, actual," +
	" screenshot, status, environment, resolved)" +
	" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// Publisher pushes a stored audit run into the defect log
type Publisher struct {
	config          *config.Config
	databaseManager *DatabaseManager
}

// NewPublisher creates a new Publisher
func NewPublisher(cfg *config.Config, dbManager *DatabaseManager) *Publisher {
	return &Publisher{
		config:          cfg,
		databaseManager: dbManager,
	}
}

// Publish inserts the run metadata and its finding rows into MySQL.
// Publishing the same run again replaces its earlier rows.
func (p *Publisher) Publish(ctx context.Context, output *domain.AuditOutput) error {
	color.Cyan("\n╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║              Publishing Audit To Defect Log                ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝\n")

	db, err := p.databaseManager.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := p.databaseManager.EnsureSchema(ctx, db); err != nil {
		return err
	}

	dbName := p.config.GetDatabaseName()
	meta := output.Meta

	color.White("Database: %s | Run: %s | Findings: %d\n\n", dbName, meta.RunID, len(output.Findings))

	if err := p.insertRun(ctx, db, dbName, meta); err != nil {
		return fmt.Errorf("failed to publish run %s: %w", meta.RunID, err)
	}

	deleteQuery := fmt.Sprintf("DELETE FROM `%s`.audit_findings WHERE run_id = ?", dbName)
	if _, err := db.ExecContext(ctx, deleteQuery, meta.RunID); err != nil {
		return fmt.Errorf("failed to clear earlier findings for run %s: %w", meta.RunID, err)
	}

	if len(output.Findings) == 0 {
		fmt.Print("\n")
		color.Green("✓ Published run %s with no findings\n", meta.RunID)
		return nil
	}

	if err := p.insertFindings(ctx, db, dbName, meta.RunID, output.Findings); err != nil {
		return fmt.Errorf("failed to publish findings for run %s: %w", meta.RunID, err)
	}

	fmt.Print("\n")
	color.Green("✓ Published %d finding(s) for run %s\n", len(output.Findings), meta.RunID)
	return nil
}

// insertRun writes the run metadata row
func (p *Publisher) insertRun(ctx context.Context, db *sql.DB, dbName string, meta domain.RunMeta) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(insertRunQuery, dbName),
		meta.RunID,
		meta.TargetURL,
		meta.Browser,
		meta.Platform,
		strings.Join(meta.Viewports, ", "),
		meta.ChecksRun,
		meta.ChecksErrored,
		meta.TotalFindings,
		meta.HighCount,
		meta.MediumCount,
		meta.LowCount,
		meta.Stability,
		meta.Recommendation,
		meta.DurationSeconds,
		meta.Workers,
		meta.Timestamp,
	)
	return err
}

// insertFindings writes one row per finding, tracking progress as it goes
func (p *Publisher) insertFindings(ctx context.Context, db *sql.DB, dbName, runID string, findings []domain.Finding) error {
	bar := progressbar.NewOptions(len(findings),
		progressbar.OptionSetDescription(
			color.CyanString("Publishing: ")+
				color.GreenString("[rows: 0/%d]", len(findings)),
		),
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

	stmt, err := db.PrepareContext(ctx, fmt.Sprintf(insertFindingQuery, dbName))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range findings {
		_, err := stmt.ExecContext(ctx,
			runID,
			f.CheckID,
			f.BugID,
			f.Title,
			string(f.Severity),
			f.Viewport,
			f.Steps,
			f.Expected,
			f.Actual,
			f.Screenshot,
			f.Status,
			f.Environment,
			f.Resolved,
		)
		if err != nil {
			return fmt.Errorf("row %d (%s): %w", i+1, f.BugID, err)
		}

		bar.Set(i + 1)
		bar.Describe(color.CyanString("Publishing: ") +
			color.GreenString("[rows: %d/%d]", i+1, len(findings)))
	}

	bar.Finish()
	return nil
}
