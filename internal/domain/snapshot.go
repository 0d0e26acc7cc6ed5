package domain

// Viewport describes one emulated screen size
type Viewport struct {
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mobile bool   `json:"mobile"`
}

// Box is an element bounding box in CSS pixels
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge of the box
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge of the box
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Intersects reports whether two boxes overlap in both axes.
// Touching edges count as overlap.
func (b Box) Intersects(o Box) bool {
	return !(o.X > b.Right() || o.Right() < b.X || o.Y > b.Bottom() || o.Bottom() < b.Y)
}

// ElementBox is a bounding box tagged with its element name
type ElementBox struct {
	Tag string `json:"tag"`
	Box
}

// Link is one anchor element captured from the page
type Link struct {
	Href  string `json:"href"`
	Text  string `json:"text"`
	Class string `json:"class"`
	Rel   string `json:"rel"`
}

// Image is one img element captured from the page
type Image struct {
	Src          string  `json:"src"`
	NaturalWidth int     `json:"natural_width"`
	DisplayWidth float64 `json:"display_width"`
}

// TextSample pairs a text element's color with its effective background
type TextSample struct {
	Color      string `json:"color"`
	Background string `json:"background"`
}

// ConsoleEntry is one browser console message
type ConsoleEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Snapshot is the structured evidence captured from one viewport.
// All element collections are capped at capture time so checks stay cheap.
type Snapshot struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Viewport Viewport `json:"viewport"`

	InnerWidth  int     `json:"inner_width"`
	ScrollWidth int     `json:"scroll_width"`
	LoadEventMs float64 `json:"load_event_ms"`

	HeaderBox      *Box         `json:"header_box,omitempty"`
	LogoBox        *Box         `json:"logo_box,omitempty"`
	NavBox         *Box         `json:"nav_box,omitempty"`
	NavBoxes       []Box        `json:"nav_boxes,omitempty"`
	HeaderChildren []ElementBox `json:"header_children,omitempty"`

	SectionBoxes      []Box     `json:"section_boxes,omitempty"`
	FooterChildWidths []float64 `json:"footer_child_widths,omitempty"`
	HasHamburger      bool      `json:"has_hamburger"`

	ButtonColors       []string     `json:"button_colors,omitempty"`
	LinkColors         []string     `json:"link_colors,omitempty"`
	TextSamples        []TextSample `json:"text_samples,omitempty"`
	H1Sizes            []float64    `json:"h1_sizes,omitempty"`
	H2Sizes            []float64    `json:"h2_sizes,omitempty"`
	ParagraphFontSizes []float64    `json:"paragraph_font_sizes,omitempty"`

	Headings        []string `json:"headings,omitempty"`
	PlaceholderHits []string `json:"placeholder_hits,omitempty"`

	Links  []Link  `json:"links,omitempty"`
	Images []Image `json:"images,omitempty"`

	OverflowWidths []float64    `json:"overflow_widths,omitempty"`
	ElementBoxes   []ElementBox `json:"element_boxes,omitempty"`

	ConsoleEntries []ConsoleEntry `json:"console_entries,omitempty"`
	LongTasks      []float64      `json:"long_tasks,omitempty"`
}
