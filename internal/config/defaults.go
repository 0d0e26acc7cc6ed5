package config

import "time"

const (
	// DefaultOutputDir is the default output directory
	DefaultOutputDir = "storage"
	// DefaultResultsFile is the default results JSON file name
	DefaultResultsFile = "audit-results.json"
	// DefaultWorkbookFile is the default XLSX report file name
	DefaultWorkbookFile = "bug-report.xlsx"
	// DefaultJUnitFile is the default JUnit XML report file name
	DefaultJUnitFile = "junit-report.xml"
	// DefaultScreenshotsDir is the directory screenshots land in, under the output dir
	DefaultScreenshotsDir = "screenshots"
	// DefaultDebugLogFile is the debug log file name, under the output dir
	DefaultDebugLogFile = "audit-debug.log"
	// DefaultDatabaseName is the defect log database
	DefaultDatabaseName = "qa_audit"
	// DefaultWorkers is the default number of workers
	DefaultWorkers = 4

	// DefaultNavTimeout bounds a single page navigation
	DefaultNavTimeout = 30 * time.Second
	// DefaultSettleDelay is how long the page gets to settle after load
	DefaultSettleDelay = 2 * time.Second
	// DefaultProbeTimeout bounds a single URL probe
	DefaultProbeTimeout = 5 * time.Second
	// ProbeRetryMax is how many times a probe retries on transport errors
	ProbeRetryMax = 2
)

// Emulated viewports, one desktop and one small phone
const (
	DesktopLabel  = "desktop"
	DesktopWidth  = 1366
	DesktopHeight = 768
	MobileLabel   = "mobile"
	MobileWidth   = 390
	MobileHeight  = 844
)

// Check thresholds and capture caps
const (
	// MinContrastRatio is the WCAG AA minimum for normal text
	MinContrastRatio = 4.5
	// LoadBudget is the slowest acceptable homepage load
	LoadBudget = 3 * time.Second
	// LongTaskBudgetMs flags main thread tasks longer than this
	LongTaskBudgetMs = 50.0
	// ImageWeightBudget flags images heavier than this many bytes
	ImageWeightBudget = 200000
	// MinMobileFontPx is the smallest readable body font on mobile
	MinMobileFontPx = 13.5
	// WidthSlackPx is the tolerance before an element counts as overflowing
	WidthSlackPx = 5.0
	// LinkProbeLimit caps how many anchors get probed
	LinkProbeLimit = 120
	// ImageProbeLimit caps how many image URLs get probed
	ImageProbeLimit = 60
	// ElementScanLimit caps elements collected for the overlap scan
	ElementScanLimit = 80
	// HeadingScanLimit caps how many headings are inspected
	HeadingScanLimit = 60
	// ParagraphSampleLimit caps sampled paragraphs
	ParagraphSampleLimit = 10
	// ButtonSampleLimit caps sampled button backgrounds
	ButtonSampleLimit = 8
	// LinkColorSampleLimit caps sampled link colors
	LinkColorSampleLimit = 10
	// SectionSampleLimit caps sampled page sections
	SectionSampleLimit = 12
	// ReadMoreLimit caps probed read-more links
	ReadMoreLimit = 8
	// PaginationFollowLimit caps how many next pages are followed
	PaginationFollowLimit = 6
)

// DefaultPlaceholderTokens are the draft markers hunted in page copy
var DefaultPlaceholderTokens = []string{"INSERT", "TODO", "TBD"}
