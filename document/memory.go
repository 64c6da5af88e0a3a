package document

import "strings"

// TextRun is the in-memory Run implementation. It also implements the
// PropertiesRun and FormulaRun capabilities, so it doubles as a test double
// for providers with a combined accessor.
type TextRun struct {
	text     string
	bold     *bool
	italic   *bool
	strike   *bool
	position VerticalPosition
	math     *Formula
}

// NewRun creates an in-memory run with the given text and no formatting.
func NewRun(text string) *TextRun {
	return &TextRun{text: text}
}

// WithBold sets the bold flag and returns the run for chaining.
func (r *TextRun) WithBold(b bool) *TextRun {
	r.bold = &b
	return r
}

// WithItalic sets the italic flag and returns the run for chaining.
func (r *TextRun) WithItalic(b bool) *TextRun {
	r.italic = &b
	return r
}

// WithStrikethrough sets the strikethrough flag and returns the run for chaining.
func (r *TextRun) WithStrikethrough(b bool) *TextRun {
	r.strike = &b
	return r
}

// WithVerticalPosition sets the vertical position and returns the run for chaining.
func (r *TextRun) WithVerticalPosition(pos VerticalPosition) *TextRun {
	r.position = pos
	return r
}

// WithFormula attaches an inline math payload and returns the run for chaining.
func (r *TextRun) WithFormula(f Formula) *TextRun {
	r.math = &f
	return r
}

// Text returns the run's text content.
func (r *TextRun) Text() (string, error) { return r.text, nil }

// Bold reports whether the run is bold. Nil means unspecified.
func (r *TextRun) Bold() (*bool, error) { return r.bold, nil }

// Italic reports whether the run is italic. Nil means unspecified.
func (r *TextRun) Italic() (*bool, error) { return r.italic, nil }

// Strikethrough reports whether the run is struck through. Nil means unspecified.
func (r *TextRun) Strikethrough() (*bool, error) { return r.strike, nil }

// VerticalPosition returns the run's vertical placement.
func (r *TextRun) VerticalPosition() (VerticalPosition, error) { return r.position, nil }

// Properties returns the run's text and formatting in one call.
func (r *TextRun) Properties() (RunProperties, error) {
	p := RunProperties{Text: r.text, Position: r.position}
	if r.bold != nil {
		p.Bold = *r.bold
	}
	if r.italic != nil {
		p.Italic = *r.italic
	}
	if r.strike != nil {
		p.Strikethrough = *r.strike
	}
	return p, nil
}

// Formula returns the run's inline math payload, or nil when there is none.
func (r *TextRun) Formula() (*Formula, error) { return r.math, nil }

// TextParagraph is the in-memory Paragraph implementation.
type TextParagraph struct {
	text     string
	runs     []Run
	formulas []Formula
}

// NewParagraph creates a paragraph from runs; its text is derived from them.
func NewParagraph(runs ...Run) *TextParagraph {
	return &TextParagraph{runs: runs}
}

// NewTextParagraph creates a paragraph with plain text and no runs. It
// exercises the renderer's direct-text fallback used by formats that do not
// expose runs.
func NewTextParagraph(text string) *TextParagraph {
	return &TextParagraph{text: text}
}

// WithFormula attaches a display-level math payload and returns the
// paragraph for chaining.
func (p *TextParagraph) WithFormula(f Formula) *TextParagraph {
	p.formulas = append(p.formulas, f)
	return p
}

// Text returns the paragraph's combined text content.
func (p *TextParagraph) Text() (string, error) {
	if p.text != "" || len(p.runs) == 0 {
		return p.text, nil
	}
	var sb strings.Builder
	for _, r := range p.runs {
		t, err := r.Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(t)
	}
	return sb.String(), nil
}

// Runs returns the paragraph's runs in order.
func (p *TextParagraph) Runs() ([]Run, error) { return p.runs, nil }

// Formulas returns the paragraph's display-level math payloads in order.
func (p *TextParagraph) Formulas() ([]Formula, error) { return p.formulas, nil }

// TableCell is the in-memory Cell implementation.
type TableCell struct {
	text     string
	gridSpan int
	vMerge   VMergeState
}

// NewCell creates a cell occupying a single grid column.
func NewCell(text string) *TableCell {
	return &TableCell{text: text, gridSpan: 1}
}

// WithGridSpan sets the number of grid columns the cell occupies and
// returns the cell for chaining. Values below 1 are treated as 1.
func (c *TableCell) WithGridSpan(n int) *TableCell {
	if n < 1 {
		n = 1
	}
	c.gridSpan = n
	return c
}

// WithVMerge sets the vertical merge state and returns the cell for chaining.
func (c *TableCell) WithVMerge(s VMergeState) *TableCell {
	c.vMerge = s
	return c
}

// Text returns the cell's text content.
func (c *TableCell) Text() (string, error) { return c.text, nil }

// GridSpan returns the number of grid columns the cell occupies.
func (c *TableCell) GridSpan() int { return c.gridSpan }

// VMerge returns the cell's vertical merge state.
func (c *TableCell) VMerge() VMergeState { return c.vMerge }

// TableRow is the in-memory Row implementation.
type TableRow struct {
	cells []Cell
}

// NewRow creates a row from cells.
func NewRow(cells ...Cell) *TableRow {
	return &TableRow{cells: cells}
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() ([]Cell, error) { return r.cells, nil }

// CellCount returns the number of cells in the row.
func (r *TableRow) CellCount() int { return len(r.cells) }

// MemoryTable is the in-memory Table implementation.
type MemoryTable struct {
	rows []Row
}

// NewTable creates a table from rows.
func NewTable(rows ...Row) *MemoryTable {
	return &MemoryTable{rows: rows}
}

// AddRow appends a row to the table.
func (t *MemoryTable) AddRow(r Row) {
	t.rows = append(t.rows, r)
}

// Rows returns the table's rows in order.
func (t *MemoryTable) Rows() ([]Row, error) { return t.rows, nil }

// MemoryDocument is the in-memory Document implementation.
type MemoryDocument struct {
	elements []Element
	meta     *Metadata
}

// NewDocument creates an empty in-memory document.
func NewDocument() *MemoryDocument {
	return &MemoryDocument{}
}

// AppendParagraph appends a paragraph element in document order.
func (d *MemoryDocument) AppendParagraph(p Paragraph) {
	d.elements = append(d.elements, Element{Paragraph: p})
}

// AppendTable appends a table element in document order.
func (d *MemoryDocument) AppendTable(t Table) {
	d.elements = append(d.elements, Element{Table: t})
}

// SetMetadata sets the document metadata.
func (d *MemoryDocument) SetMetadata(m *Metadata) {
	d.meta = m
}

// Elements returns paragraphs and tables in document order.
func (d *MemoryDocument) Elements() ([]Element, error) { return d.elements, nil }

// Metadata returns document metadata, or nil when none was set.
func (d *MemoryDocument) Metadata() (*Metadata, error) { return d.meta, nil }

// MemoryPresentation is the in-memory Presentation implementation.
type MemoryPresentation struct {
	slides []SlideText
	meta   *Metadata
}

// NewPresentation creates an empty in-memory presentation.
func NewPresentation() *MemoryPresentation {
	return &MemoryPresentation{}
}

// AppendSlide appends a slide text bundle, numbering it automatically.
func (p *MemoryPresentation) AppendSlide(text string) {
	p.slides = append(p.slides, SlideText{Number: len(p.slides) + 1, Text: text})
}

// SetMetadata sets the presentation metadata.
func (p *MemoryPresentation) SetMetadata(m *Metadata) {
	p.meta = m
}

// SlideTexts returns slide text bundles in slide order.
func (p *MemoryPresentation) SlideTexts() ([]SlideText, error) { return p.slides, nil }

// Metadata returns presentation metadata, or nil when none was set.
func (p *MemoryPresentation) Metadata() (*Metadata, error) { return p.meta, nil }
