// Package export renders stored audit runs into external report formats:
// a JUnit XML file for CI systems and an XLSX workbook for manual triage.
package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// junitXML is the root testsuites document
type junitXML struct {
	XMLName    xml.Name     `xml:"testsuites"`
	Name       string       `xml:"name,attr"`
	Tests      int          `xml:"tests,attr"`
	Failures   int          `xml:"failures,attr"`
	Time       float64      `xml:"time,attr"`
	TestSuites []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	XMLName   xml.Name    `xml:"testsuite"`
	Name      string      `xml:"name,attr"`
	Tests     int         `xml:"tests,attr"`
	Failures  int         `xml:"failures,attr"`
	Errors    int         `xml:"errors,attr"`
	TestCases []junitCase `xml:"testcase"`
}

type junitCase struct {
	XMLName   xml.Name       `xml:"testcase"`
	Name      string         `xml:"name,attr"`
	ClassName string         `xml:"classname,attr"`
	Failures  []junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	XMLName xml.Name `xml:"failure"`
	Message string   `xml:"message,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

// JUnitWriter renders an audit run as a JUnit XML report, one suite per
// check category so CI dashboards group related failures together.
type JUnitWriter struct {
	cfg *config.Config
}

// NewJUnitWriter creates a JUnitWriter
func NewJUnitWriter(cfg *config.Config) *JUnitWriter {
	return &JUnitWriter{cfg: cfg}
}

// Write renders the stored run against the registered checks and writes
// the XML file to the configured JUnit path.
func (w *JUnitWriter) Write(output *domain.AuditOutput, registry *checks.Registry) error {
	doc := buildJUnit(output, registry)

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal junit report: %w", err)
	}

	path := w.cfg.GetJUnitPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	content := append([]byte(xml.Header), data...)
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write junit report: %w", err)
	}
	return nil
}

// buildJUnit maps checks to testcases and findings to failures. Checks
// without findings come out as passing cases so totals stay meaningful.
func buildJUnit(output *domain.AuditOutput, registry *checks.Registry) junitXML {
	findingsByCheck := make(map[string][]domain.Finding)
	for _, f := range output.Findings {
		findingsByCheck[f.CheckID] = append(findingsByCheck[f.CheckID], f)
	}

	var categories []string
	byCategory := make(map[string][]checks.Check)
	for _, c := range registry.All() {
		category := c.Spec().Category
		if _, seen := byCategory[category]; !seen {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], c)
	}

	doc := junitXML{
		Name: "webaudit",
		Time: output.Meta.DurationSeconds,
	}
	for _, category := range categories {
		suite := junitSuite{Name: category}
		for _, c := range byCategory[category] {
			spec := c.Spec()
			tc := junitCase{
				Name:      spec.ID,
				ClassName: "webaudit." + category,
			}
			for _, f := range findingsByCheck[spec.ID] {
				tc.Failures = append(tc.Failures, junitFailure{
					Message: f.Title,
					Value: fmt.Sprintf("Severity: %s\nExpected: %s\nActual: %s",
						f.Severity, f.Expected, f.Actual),
				})
			}
			suite.Tests++
			if len(tc.Failures) > 0 {
				suite.Failures++
			}
			suite.TestCases = append(suite.TestCases, tc)
		}
		doc.Tests += suite.Tests
		doc.Failures += suite.Failures
		doc.TestSuites = append(doc.TestSuites, suite)
	}
	return doc
}
