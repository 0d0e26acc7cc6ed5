package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// Workbook sheet names
const (
	sheetBugReport   = "Bug Report"
	sheetSummary     = "Summary"
	sheetEnvironment = "Environment"
)

// reportColumns are the Bug Report sheet headers, in column order
var reportColumns = []string{
	"Bug ID", "Bug Title", "Severity", "Steps to Reproduce",
	"Expected Result", "Actual Result", "Screenshot", "Status", "Environment",
}

// reportColumnWidths keeps the long text columns readable without opening
// every cell
var reportColumnWidths = []float64{8, 45, 10, 55, 40, 55, 30, 10, 24}

// WorkbookWriter renders an audit run as an XLSX bug report workbook
type WorkbookWriter struct {
	cfg *config.Config
}

// NewWorkbookWriter creates a WorkbookWriter
func NewWorkbookWriter(cfg *config.Config) *WorkbookWriter {
	return &WorkbookWriter{cfg: cfg}
}

// Write builds the three-sheet workbook and saves it to the configured
// workbook path.
func (w *WorkbookWriter) Write(output *domain.AuditOutput) error {
	f := excelize.NewFile()
	defer f.Close()

	b := &workbookBuilder{f: f}
	if err := f.SetSheetName("Sheet1", sheetBugReport); err != nil {
		return fmt.Errorf("create report sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetEnvironment); err != nil {
		return fmt.Errorf("create environment sheet: %w", err)
	}

	b.writeBugReport(output)
	b.writeSummary(output.Meta)
	b.writeEnvironment(output.Meta)
	if b.err != nil {
		return fmt.Errorf("build workbook: %w", b.err)
	}

	index, err := f.GetSheetIndex(sheetBugReport)
	if err != nil {
		return fmt.Errorf("activate report sheet: %w", err)
	}
	f.SetActiveSheet(index)

	path := w.cfg.GetWorkbookPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// workbookBuilder wraps excelize calls with a sticky error so sheet
// assembly reads as straight-line code
type workbookBuilder struct {
	f   *excelize.File
	err error
}

func (b *workbookBuilder) set(sheet, cell string, value interface{}) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellValue(sheet, cell, value)
}

func (b *workbookBuilder) headerRow(sheet string, titles []string) {
	for col, title := range titles {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			b.err = err
			return
		}
		b.set(sheet, cell, title)
	}
	if b.err != nil {
		return
	}
	style, err := b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		b.err = err
		return
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetCellStyle(sheet, "A1", last, style)
}

func (b *workbookBuilder) writeBugReport(output *domain.AuditOutput) {
	b.headerRow(sheetBugReport, reportColumns)
	for col, width := range reportColumnWidths {
		if b.err != nil {
			return
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			b.err = err
			return
		}
		b.err = b.f.SetColWidth(sheetBugReport, name, name, width)
	}

	rows := output.Findings
	if len(rows) == 0 {
		// Keep the sheet from being blank when the site came out clean
		b.findingRow(2, domain.Finding{
			BugID:       "N/A",
			Title:       "No issues detected (automated checks)",
			Severity:    domain.SeverityInfo,
			Steps:       "Automated run",
			Expected:    "No issues",
			Actual:      "No issues",
			Status:      domain.StatusPassed,
			Environment: output.Meta.Platform,
		})
		return
	}
	for i, finding := range rows {
		b.findingRow(i+2, finding)
	}
}

func (b *workbookBuilder) findingRow(row int, f domain.Finding) {
	values := []interface{}{
		f.BugID, f.Title, string(f.Severity), f.Steps,
		f.Expected, f.Actual, f.Screenshot, f.Status, f.Environment,
	}
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			b.err = err
			return
		}
		b.set(sheetBugReport, cell, value)
	}
}

func (b *workbookBuilder) writeSummary(meta domain.RunMeta) {
	b.headerRow(sheetSummary, []string{"Metric", "Value"})
	rows := []struct {
		metric string
		value  interface{}
	}{
		{"Total Bugs Reported", meta.TotalFindings},
		{"High Severity", meta.HighCount},
		{"Medium Severity", meta.MediumCount},
		{"Low Severity", meta.LowCount},
		{"Checks Run", meta.ChecksRun},
		{"Build Stability", meta.Stability},
		{"Recommendation", meta.Recommendation},
	}
	for i, r := range rows {
		b.set(sheetSummary, fmt.Sprintf("A%d", i+2), r.metric)
		b.set(sheetSummary, fmt.Sprintf("B%d", i+2), r.value)
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(sheetSummary, "A", "A", 22)
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(sheetSummary, "B", "B", 80)
	}
}

func (b *workbookBuilder) writeEnvironment(meta domain.RunMeta) {
	b.headerRow(sheetEnvironment, []string{"Environment", "Details"})
	rows := []struct {
		name  string
		value interface{}
	}{
		{"Browser", meta.Browser},
		{"OS", meta.Platform},
		{"Resolutions Tested", strings.Join(meta.Viewports, ", ")},
		{"Target URL", meta.TargetURL},
		{"Script Run Time (s)", meta.DurationSeconds},
		{"Run ID", meta.RunID},
		{"Audit Date", meta.Timestamp},
	}
	for i, r := range rows {
		b.set(sheetEnvironment, fmt.Sprintf("A%d", i+2), r.name)
		b.set(sheetEnvironment, fmt.Sprintf("B%d", i+2), r.value)
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(sheetEnvironment, "A", "A", 22)
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(sheetEnvironment, "B", "B", 60)
	}
}
