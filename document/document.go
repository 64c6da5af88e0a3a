package document

// VerticalPosition describes the vertical placement of a run's text.
type VerticalPosition int

const (
	PositionNormal      VerticalPosition = iota // Regular baseline text
	PositionSuperscript                         // Raised text (exponents, ordinals)
	PositionSubscript                           // Lowered text (chemical formulas)
)

// String returns a human-readable representation of the vertical position.
func (v VerticalPosition) String() string {
	switch v {
	case PositionSuperscript:
		return "superscript"
	case PositionSubscript:
		return "subscript"
	default:
		return "normal"
	}
}

// VMergeState describes a cell's participation in a vertical merge.
type VMergeState int

const (
	VMergeNone     VMergeState = iota // Not part of a vertical merge
	VMergeRestart                     // Starts a new vertical merge
	VMergeContinue                    // Continues the merge started above
)

// String returns a human-readable representation of the merge state.
func (v VMergeState) String() string {
	switch v {
	case VMergeRestart:
		return "restart"
	case VMergeContinue:
		return "continue"
	default:
		return "none"
	}
}

// Run is the smallest unit of uniformly-formatted text within a paragraph.
//
// The formatting accessors are tri-state: a nil pointer means the source
// format does not specify the attribute, which renderers treat as false.
type Run interface {
	// Text returns the run's text content.
	Text() (string, error)

	// Bold reports whether the run is bold. Nil means unspecified.
	Bold() (*bool, error)

	// Italic reports whether the run is italic. Nil means unspecified.
	Italic() (*bool, error)

	// Strikethrough reports whether the run is struck through. Nil means unspecified.
	Strikethrough() (*bool, error)

	// VerticalPosition returns the run's vertical placement.
	VerticalPosition() (VerticalPosition, error)
}

// RunProperties is the result of a combined text+formatting extraction.
type RunProperties struct {
	Text          string
	Bold          bool
	Italic        bool
	Strikethrough bool
	Position      VerticalPosition
}

// PropertiesRun is an optional Run capability: providers whose underlying
// format can extract text and formatting in a single pass implement it so
// renderers avoid one accessor call per attribute.
type PropertiesRun interface {
	Run

	// Properties returns the run's text and formatting in one call.
	Properties() (RunProperties, error)
}

// Formula is a math payload attached to a run or paragraph. Markup is the
// source format's own math markup; Notation names the markup dialect and
// selects the converter used to produce LaTeX.
type Formula struct {
	Notation string
	Markup   string
}

// FormulaRun is an optional Run capability for inline math payloads.
type FormulaRun interface {
	Run

	// Formula returns the run's math payload, or nil when the run has none.
	Formula() (*Formula, error)
}

// Paragraph is an ordered sequence of runs with a plain-text view.
type Paragraph interface {
	// Text returns the paragraph's combined text content.
	Text() (string, error)

	// Runs returns the paragraph's runs in order.
	Runs() ([]Run, error)
}

// FormulaParagraph is an optional Paragraph capability for display-level
// math payloads (formulas that are direct children of the paragraph rather
// than of a run).
type FormulaParagraph interface {
	Paragraph

	// Formulas returns the paragraph's display-level math payloads in order.
	Formulas() ([]Formula, error)
}

// Cell is a single table cell with merge metadata.
type Cell interface {
	// Text returns the cell's text content.
	Text() (string, error)

	// GridSpan returns the number of grid columns the cell occupies (>= 1).
	GridSpan() int

	// VMerge returns the cell's vertical merge state.
	VMerge() VMergeState
}

// Row is an ordered sequence of cells.
type Row interface {
	// Cells returns the row's cells in order.
	Cells() ([]Cell, error)

	// CellCount returns the number of cells without materializing them.
	CellCount() int
}

// Table is an ordered sequence of rows.
type Table interface {
	// Rows returns the table's rows in order.
	Rows() ([]Row, error)
}

// Element is a tagged variant over the two document element kinds.
// Exactly one of Paragraph or Table is non-nil; insertion order is the
// rendering order.
type Element struct {
	Paragraph Paragraph
	Table     Table
}

// IsTable reports whether the element holds a table.
func (e Element) IsTable() bool {
	return e.Table != nil
}

// Document is an ordered sequence of elements with optional metadata.
type Document interface {
	// Elements returns paragraphs and tables in document order.
	Elements() ([]Element, error)

	// Metadata returns document metadata, or nil when the source has none.
	Metadata() (*Metadata, error)
}

// SlideText is the extracted text bundle for one presentation slide.
type SlideText struct {
	Number int // 1-indexed slide number
	Text   string
}

// Presentation exposes per-slide text bundles with optional metadata.
type Presentation interface {
	// SlideTexts returns slide text bundles in slide order.
	SlideTexts() ([]SlideText, error)

	// Metadata returns presentation metadata, or nil when the source has none.
	Metadata() (*Metadata, error)
}
