package quill

import (
	"errors"

	"github.com/tsawler/quill/document"
	"github.com/tsawler/quill/markdown"
)

// ErrNoSource is returned by terminal operations on a Converter that was
// constructed without a document or presentation.
var ErrNoSource = errors.New("quill: no document or presentation to render")

// Converter provides a fluent interface for configuring and running a
// Markdown render. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method
// chaining.
type Converter struct {
	doc  document.Document
	pres document.Presentation

	options markdown.Options
}

// clone creates a copy of the Converter. Options are a value type, so the
// copy is independent of the original.
func (c *Converter) clone() *Converter {
	return &Converter{
		doc:     c.doc,
		pres:    c.pres,
		options: c.options,
	}
}

// WithOptions replaces the full option set.
//
// Example:
//
//	opts, _ := markdown.LoadOptions(f)
//	md, err := quill.From(doc).WithOptions(opts).Markdown()
func (c *Converter) WithOptions(opts markdown.Options) *Converter {
	newConv := c.clone()
	newConv.options = opts
	return newConv
}

// IncludeMetadata controls whether document metadata is rendered as a
// YAML front matter block. The default is true.
func (c *Converter) IncludeMetadata(include bool) *Converter {
	newConv := c.clone()
	newConv.options.IncludeMetadata = include
	return newConv
}

// PlainText disables inline formatting. Bold, italic, strikethrough and
// vertical position are dropped; text and structure are kept.
//
// Example:
//
//	md, err := quill.From(doc).PlainText().Markdown()
func (c *Converter) PlainText() *Converter {
	newConv := c.clone()
	newConv.options.IncludeStyles = false
	return newConv
}

// Sequential disables parallel rendering. Output is identical either way;
// sequential mode trades throughput on large documents for fewer
// goroutines.
func (c *Converter) Sequential() *Converter {
	newConv := c.clone()
	newConv.options.UseParallel = false
	return newConv
}

// TableStyle selects how tables are rendered. Tables with merged cells
// always render as HTML.
func (c *Converter) TableStyle(style markdown.TableStyle) *Converter {
	newConv := c.clone()
	newConv.options.TableStyle = style
	return newConv
}

// ScriptStyle selects how superscript and subscript runs are rendered.
func (c *Converter) ScriptStyle(style markdown.ScriptStyle) *Converter {
	newConv := c.clone()
	newConv.options.ScriptStyle = style
	return newConv
}

// StrikethroughStyle selects the strikethrough marker.
func (c *Converter) StrikethroughStyle(style markdown.StrikethroughStyle) *Converter {
	newConv := c.clone()
	newConv.options.StrikethroughStyle = style
	return newConv
}

// FormulaStyle selects the delimiters wrapped around converted formulas.
func (c *Converter) FormulaStyle(style markdown.FormulaStyle) *Converter {
	newConv := c.clone()
	newConv.options.FormulaStyle = style
	return newConv
}

// ListIndent sets the number of spaces that equal one list nesting level.
// Values below 1 are treated as 1.
func (c *Converter) ListIndent(spaces int) *Converter {
	newConv := c.clone()
	if spaces < 1 {
		spaces = 1
	}
	newConv.options.ListIndent = spaces
	return newConv
}

// HTMLTableIndent sets the indent width used by styled HTML tables.
func (c *Converter) HTMLTableIndent(spaces int) *Converter {
	newConv := c.clone()
	if spaces < 0 {
		spaces = 0
	}
	newConv.options.HTMLTableIndent = spaces
	return newConv
}

// Options returns the current option set.
func (c *Converter) Options() markdown.Options {
	return c.options
}

// Markdown runs the render and returns the result.
//
// Example:
//
//	md, err := quill.From(doc).Markdown()
func (c *Converter) Markdown() (string, error) {
	switch {
	case c.doc != nil:
		return markdown.RenderDocument(c.doc, c.options)
	case c.pres != nil:
		return markdown.RenderPresentation(c.pres, c.options)
	default:
		return "", ErrNoSource
	}
}
