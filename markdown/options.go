package markdown

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TableStyle selects how tables are rendered.
type TableStyle int

const (
	// TableStyleMarkdown emits pipe tables, falling back to HTML when the
	// table contains merged cells.
	TableStyleMarkdown TableStyle = iota
	// TableStyleMinimalHTML always emits compact HTML tables.
	TableStyleMinimalHTML
	// TableStyleStyledHTML always emits indented, readable HTML tables.
	TableStyleStyledHTML
)

// String returns a human-readable representation of the table style.
func (s TableStyle) String() string {
	switch s {
	case TableStyleMinimalHTML:
		return "minimal-html"
	case TableStyleStyledHTML:
		return "styled-html"
	default:
		return "markdown"
	}
}

// ScriptStyle selects how superscript and subscript runs are rendered.
type ScriptStyle int

const (
	// ScriptStyleHTML wraps scripts in <sup>/<sub> tags.
	ScriptStyleHTML ScriptStyle = iota
	// ScriptStyleUnicode transliterates to Unicode super/subscript characters,
	// falling back to HTML tags when a character has no equivalent.
	ScriptStyleUnicode
)

// String returns a human-readable representation of the script style.
func (s ScriptStyle) String() string {
	if s == ScriptStyleUnicode {
		return "unicode"
	}
	return "html"
}

// StrikethroughStyle selects how struck-through runs are rendered.
type StrikethroughStyle int

const (
	// StrikethroughMarkdown uses ~~ markers.
	StrikethroughMarkdown StrikethroughStyle = iota
	// StrikethroughHTML uses <del> tags.
	StrikethroughHTML
)

// String returns a human-readable representation of the strikethrough style.
func (s StrikethroughStyle) String() string {
	if s == StrikethroughHTML {
		return "html"
	}
	return "markdown"
}

// FormulaStyle selects the delimiters around converted math.
type FormulaStyle int

const (
	// FormulaStyleLaTeX uses \( \) inline and \[ \] display delimiters.
	FormulaStyleLaTeX FormulaStyle = iota
	// FormulaStyleDollar uses $ $ inline and $$ $$ display delimiters.
	FormulaStyleDollar
)

// String returns a human-readable representation of the formula style.
func (s FormulaStyle) String() string {
	if s == FormulaStyleDollar {
		return "dollar"
	}
	return "latex"
}

// Options holds configuration for Markdown rendering.
type Options struct {
	// IncludeMetadata prepends YAML front matter when the source has metadata.
	IncludeMetadata bool `yaml:"include_metadata"`

	// IncludeStyles renders run-level formatting (bold, italic, ...).
	// When false, paragraphs are rendered from their plain text in a single
	// extraction per paragraph.
	IncludeStyles bool `yaml:"include_styles"`

	// UseParallel enables fork-join rendering above the size thresholds.
	UseParallel bool `yaml:"use_parallel"`

	TableStyle         TableStyle         `yaml:"table_style"`
	ScriptStyle        ScriptStyle        `yaml:"script_style"`
	StrikethroughStyle StrikethroughStyle `yaml:"strikethrough_style"`
	FormulaStyle       FormulaStyle       `yaml:"formula_style"`

	// ListIndent is the number of spaces per list nesting level.
	ListIndent int `yaml:"list_indent"`

	// HTMLTableIndent is the indent width for styled HTML tables.
	HTMLTableIndent int `yaml:"html_table_indent"`
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		IncludeMetadata:    true,
		IncludeStyles:      true,
		UseParallel:        true,
		TableStyle:         TableStyleMarkdown,
		ScriptStyle:        ScriptStyleHTML,
		StrikethroughStyle: StrikethroughMarkdown,
		FormulaStyle:       FormulaStyleLaTeX,
		ListIndent:         2,
		HTMLTableIndent:    2,
	}
}

// LoadOptions reads YAML-encoded options, starting from the defaults so a
// partial document only overrides the keys it names.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	return opts, nil
}

// Save writes the options as YAML.
func (o Options) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	return enc.Close()
}

// MarshalYAML encodes the table style as its string form.
func (s TableStyle) MarshalYAML() (interface{}, error) { return s.String(), nil }

// UnmarshalYAML decodes the table style from its string form.
func (s *TableStyle) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "markdown":
		*s = TableStyleMarkdown
	case "minimal-html":
		*s = TableStyleMinimalHTML
	case "styled-html":
		*s = TableStyleStyledHTML
	default:
		return fmt.Errorf("markdown: unknown table style %q", value.Value)
	}
	return nil
}

// MarshalYAML encodes the script style as its string form.
func (s ScriptStyle) MarshalYAML() (interface{}, error) { return s.String(), nil }

// UnmarshalYAML decodes the script style from its string form.
func (s *ScriptStyle) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "html":
		*s = ScriptStyleHTML
	case "unicode":
		*s = ScriptStyleUnicode
	default:
		return fmt.Errorf("markdown: unknown script style %q", value.Value)
	}
	return nil
}

// MarshalYAML encodes the strikethrough style as its string form.
func (s StrikethroughStyle) MarshalYAML() (interface{}, error) { return s.String(), nil }

// UnmarshalYAML decodes the strikethrough style from its string form.
func (s *StrikethroughStyle) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "markdown":
		*s = StrikethroughMarkdown
	case "html":
		*s = StrikethroughHTML
	default:
		return fmt.Errorf("markdown: unknown strikethrough style %q", value.Value)
	}
	return nil
}

// MarshalYAML encodes the formula style as its string form.
func (s FormulaStyle) MarshalYAML() (interface{}, error) { return s.String(), nil }

// UnmarshalYAML decodes the formula style from its string form.
func (s *FormulaStyle) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "latex":
		*s = FormulaStyleLaTeX
	case "dollar":
		*s = FormulaStyleDollar
	default:
		return fmt.Errorf("markdown: unknown formula style %q", value.Value)
	}
	return nil
}
