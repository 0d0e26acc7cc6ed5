package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	TargetURL   string
	DebuggerURL string // attach to a running Chrome instead of launching one

	// Output settings
	OutputDir      string
	ResultsFile    string
	WorkbookFile   string
	JUnitFile      string
	ScreenshotsDir string
	DebugLogFile   string

	// Execution settings
	Workers      int
	NavTimeout   time.Duration
	SettleDelay  time.Duration
	ProbeTimeout time.Duration

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TargetURL:      os.Getenv("AUDIT_URL"),
		DebuggerURL:    os.Getenv("AUDIT_DEBUGGER_URL"),
		OutputDir:      defaultOutputDir(),
		ResultsFile:    DefaultResultsFile,
		WorkbookFile:   DefaultWorkbookFile,
		JUnitFile:      DefaultJUnitFile,
		ScreenshotsDir: DefaultScreenshotsDir,
		DebugLogFile:   DefaultDebugLogFile,
		Workers:        DefaultWorkers,
		NavTimeout:     DefaultNavTimeout,
		SettleDelay:    DefaultSettleDelay,
		ProbeTimeout:   DefaultProbeTimeout,
		Flags:          Flags{Workers: DefaultWorkers},
	}
}

func defaultOutputDir() string {
	if dir := os.Getenv("AUDIT_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return DefaultOutputDir
}

// GetTargetURL returns the audit target, using the flag if provided.
// A bare host gets an https scheme so the browser accepts it.
func (c *Config) GetTargetURL() string {
	url := c.TargetURL
	if c.Flags.URL != "" {
		url = c.Flags.URL
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so scan, report and review always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	return c.absOutput(c.ResultsFile)
}

// GetWorkbookPath returns the full path to the XLSX report
func (c *Config) GetWorkbookPath() string {
	return c.absOutput(c.WorkbookFile)
}

// GetJUnitPath returns the full path to the JUnit XML report
func (c *Config) GetJUnitPath() string {
	return c.absOutput(c.JUnitFile)
}

// GetScreenshotsPath returns the directory screenshots are written to
func (c *Config) GetScreenshotsPath() string {
	return c.absOutput(c.ScreenshotsDir)
}

// GetDebugLogPath returns the file the debug logger writes to
func (c *Config) GetDebugLogPath() string {
	return c.absOutput(c.DebugLogFile)
}

func (c *Config) absOutput(name string) string {
	p := filepath.Join(c.OutputDir, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetDatabaseName returns the defect log database name
func (c *Config) GetDatabaseName() string {
	if name := os.Getenv("DB_DATABASE"); name != "" {
		return name
	}
	return DefaultDatabaseName
}
