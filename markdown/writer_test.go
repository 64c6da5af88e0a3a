package markdown

import (
	"testing"

	"github.com/tsawler/quill/document"
)

func TestRenderParagraphPlainText(t *testing.T) {
	p := document.NewParagraph(
		document.NewRun("Hello "),
		document.NewRun("world").WithBold(true),
		document.NewRun("!"),
	)

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "Hello **world**!"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphMinimalMarkers(t *testing.T) {
	// Consecutive runs with identical formatting share one marker pair.
	p := document.NewParagraph(
		document.NewRun("one ").WithBold(true),
		document.NewRun("two ").WithBold(true),
		document.NewRun("three").WithBold(true),
	)

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "**one two three**"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphNestedFormatting(t *testing.T) {
	p := document.NewParagraph(
		document.NewRun("a").WithBold(true),
		document.NewRun("b").WithBold(true).WithItalic(true),
		document.NewRun("c").WithBold(true),
	)

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	// Italic opens inside bold and closes before bold does.
	if want := "**a*b*c**"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphStrikethrough(t *testing.T) {
	p := document.NewParagraph(document.NewRun("gone").WithStrikethrough(true))

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "~~gone~~"; got != want {
		t.Errorf("markdown style: got %q, want %q", got, want)
	}

	opts := DefaultOptions()
	opts.StrikethroughStyle = StrikethroughHTML
	got, err = RenderParagraph(p, opts)
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "<del>gone</del>"; got != want {
		t.Errorf("html style: got %q, want %q", got, want)
	}
}

func TestRenderParagraphHTMLStrikethroughWithEmphasis(t *testing.T) {
	opts := DefaultOptions()
	opts.StrikethroughStyle = StrikethroughHTML

	tests := []struct {
		name string
		run  *document.TextRun
		want string
	}{
		{"bold", document.NewRun("x").WithStrikethrough(true).WithBold(true), "<del>**x**</del>"},
		{"italic", document.NewRun("x").WithStrikethrough(true).WithItalic(true), "<del>*x*</del>"},
		{"both", document.NewRun("x").WithStrikethrough(true).WithBold(true).WithItalic(true), "<del>***x***</del>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderParagraph(document.NewParagraph(tt.run), opts)
			if err != nil {
				t.Fatalf("RenderParagraph: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderParagraphHTMLStrikethroughClosesState(t *testing.T) {
	opts := DefaultOptions()
	opts.StrikethroughStyle = StrikethroughHTML

	// The open bold marker must close before the <del> block and reopen
	// for the following bold run.
	p := document.NewParagraph(
		document.NewRun("a").WithBold(true),
		document.NewRun("b").WithBold(true).WithStrikethrough(true),
		document.NewRun("c").WithBold(true),
	)

	got, err := RenderParagraph(p, opts)
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "**a**<del>**b**</del>**c**"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphScripts(t *testing.T) {
	tests := []struct {
		name  string
		style ScriptStyle
		pos   document.VerticalPosition
		text  string
		want  string
	}{
		{"html superscript", ScriptStyleHTML, document.PositionSuperscript, "2", "x<sup>2</sup>"},
		{"html subscript", ScriptStyleHTML, document.PositionSubscript, "2", "x<sub>2</sub>"},
		{"unicode superscript", ScriptStyleUnicode, document.PositionSuperscript, "2", "x²"},
		{"unicode subscript", ScriptStyleUnicode, document.PositionSubscript, "max", "xₘₐₓ"},
		{"unicode fallback", ScriptStyleUnicode, document.PositionSuperscript, "Xy", "x<sup>Xy</sup>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ScriptStyle = tt.style
			p := document.NewParagraph(
				document.NewRun("x"),
				document.NewRun(tt.text).WithVerticalPosition(tt.pos),
			)
			got, err := RenderParagraph(p, opts)
			if err != nil {
				t.Fatalf("RenderParagraph: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderParagraphScriptInsideFormatting(t *testing.T) {
	// A superscript fragment renders self-contained without disturbing the
	// surrounding bold state.
	p := document.NewParagraph(
		document.NewRun("E=mc").WithBold(true),
		document.NewRun("2").WithVerticalPosition(document.PositionSuperscript),
		document.NewRun(" holds").WithBold(true),
	)

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "**E=mc<sup>2</sup> holds**"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphListItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"ordered dot", "1. First", "1. First"},
		{"ordered paren", "1) First", "1. First"},
		{"ordered both parens", "(1) First", "1. First"},
		{"unordered dash", "- item", "- item"},
		{"unordered star", "* item", "- item"},
		{"unordered bullet", "• item", "- item"},
		{"nested", "  - nested", "  - nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := document.NewTextParagraph(tt.text)
			got, err := RenderParagraph(p, DefaultOptions())
			if err != nil {
				t.Fatalf("RenderParagraph: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderParagraphListItemKeepsRunFormatting(t *testing.T) {
	// The marker prefix is consumed from the runs; formatting on the
	// remaining text survives.
	p := document.NewParagraph(
		document.NewRun("1. "),
		document.NewRun("important").WithBold(true),
	)

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "1. **important**"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphListItemMarkerInsideRun(t *testing.T) {
	// A single run holding both marker and content contributes only the
	// content after the marker.
	p := document.NewParagraph(document.NewRun("2) Second item"))

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "2. Second item"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphWithoutStyles(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeStyles = false

	p := document.NewParagraph(
		document.NewRun("Hello "),
		document.NewRun("world").WithBold(true),
	)

	got, err := RenderParagraph(p, opts)
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "Hello world"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParagraphEmptyRunsFallsBackToText(t *testing.T) {
	p := document.NewTextParagraph("raw text only")

	got, err := RenderParagraph(p, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderParagraph: %v", err)
	}
	if want := "raw text only"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRun(t *testing.T) {
	got, err := RenderRun(document.NewRun("solo").WithItalic(true), DefaultOptions())
	if err != nil {
		t.Fatalf("RenderRun: %v", err)
	}
	if want := "*solo*"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
