package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/document"
)

// writer accumulates Markdown output for one render unit (a document, a
// single element, a table or a parallel shard). It tracks which inline
// markers are currently open so consecutive runs with identical formatting
// share a single marker pair.
//
// A writer is used once: create, write, finish.
type writer struct {
	buf  strings.Builder
	opts Options

	// open inline markers
	bold   bool
	italic bool
	strike bool
}

// newWriter creates a writer with the given options.
func newWriter(opts Options) *writer {
	w := &writer{opts: opts}
	w.buf.Grow(4096)
	return w
}

// finish returns the accumulated Markdown. The writer must not be used
// afterwards.
func (w *writer) finish() string {
	return w.buf.String()
}

// writeParagraph renders one paragraph including its trailing blank line.
func (w *writer) writeParagraph(p document.Paragraph) error {
	// Display formulas are direct children of the paragraph; when present
	// the paragraph renders text first, then each formula on its own line.
	if fp, ok := p.(document.FormulaParagraph); ok {
		formulas, err := fp.Formulas()
		if err != nil {
			return fmt.Errorf("reading paragraph formulas: %w", err)
		}
		if len(formulas) > 0 {
			if err := w.writeDisplayFormulaParagraph(fp, formulas); err != nil {
				return err
			}
			w.buf.WriteString("\n\n")
			return nil
		}
	}

	if w.opts.IncludeStyles {
		if err := w.writeStyledParagraph(p); err != nil {
			return err
		}
	} else {
		if err := w.writePlainParagraph(p); err != nil {
			return err
		}
	}

	// Markdown emphasis cannot span a paragraph break.
	w.closeFormatting()
	w.buf.WriteString("\n\n")
	return nil
}

// writeStyledParagraph renders a paragraph run by run, preserving inline
// formatting. Paragraph text is derived from the runs so the source is
// only extracted once; paragraphs without runs fall back to plain text.
func (w *writer) writeStyledParagraph(p document.Paragraph) error {
	runs, err := p.Runs()
	if err != nil {
		return fmt.Errorf("reading paragraph runs: %w", err)
	}

	if len(runs) == 0 {
		return w.writePlainParagraph(p)
	}

	text, err := w.textFromRuns(runs)
	if err != nil {
		return err
	}

	if info, ok := detectListItem(text, w.opts.ListIndent); ok {
		return w.writeListItemFromRuns(runs, info, len(text)-len(info.content))
	}

	for _, run := range runs {
		if err := w.writeRun(run); err != nil {
			return err
		}
	}
	return nil
}

// writePlainParagraph renders a paragraph from its plain text in a single
// extraction, normalizing list markers but ignoring run formatting.
func (w *writer) writePlainParagraph(p document.Paragraph) error {
	text, err := p.Text()
	if err != nil {
		return fmt.Errorf("reading paragraph text: %w", err)
	}
	if text == "" {
		return nil
	}

	info, ok := detectListItem(text, w.opts.ListIndent)
	if !ok {
		w.buf.WriteString(text)
		return nil
	}

	w.writeListMarker(info)
	w.buf.WriteString(info.content)
	return nil
}

// writeListMarker writes the indent and normalized marker for a list item,
// followed by a single space.
func (w *writer) writeListMarker(info listItemInfo) {
	for i := 0; i < info.level*w.opts.ListIndent; i++ {
		w.buf.WriteByte(' ')
	}
	if info.kind == listOrdered {
		w.buf.WriteString(normalizeOrderedMarker(info.marker))
	} else {
		w.buf.WriteByte('-')
	}
	w.buf.WriteByte(' ')
}

// writeListItemFromRuns renders a list item while preserving run
// formatting. markerEnd is the byte length of the indent and marker
// prefix; runs wholly inside it are dropped, and a run straddling the
// boundary contributes only the text after it.
func (w *writer) writeListItemFromRuns(runs []document.Run, info listItemInfo, markerEnd int) error {
	w.writeListMarker(info)

	consumed := 0

	for _, run := range runs {
		text, err := run.Text()
		if err != nil {
			return fmt.Errorf("reading run text: %w", err)
		}

		switch {
		case consumed+len(text) <= markerEnd:
			// Entirely inside the marker prefix.
		case consumed < markerEnd:
			// Straddles the marker boundary; keep the tail as plain text.
			w.buf.WriteString(text[markerEnd-consumed:])
		default:
			if err := w.writeRun(run); err != nil {
				return err
			}
		}
		consumed += len(text)
	}
	return nil
}

// writeRun renders one run, emitting the minimal marker transitions
// relative to the currently-open formatting state.
func (w *writer) writeRun(run document.Run) error {
	if md, ok, err := w.formulaFromRun(run); err != nil {
		return err
	} else if ok {
		w.buf.WriteString(md)
		return nil
	}

	props, err := runProperties(run)
	if err != nil {
		return err
	}
	if props.Text == "" {
		return nil
	}

	w.writeRunWithProperties(props)
	return nil
}

// runProperties extracts text and formatting from a run, using the
// provider's combined accessor when it has one and falling back to the
// individual accessors otherwise.
func runProperties(run document.Run) (document.RunProperties, error) {
	if pr, ok := run.(document.PropertiesRun); ok {
		props, err := pr.Properties()
		if err != nil {
			return document.RunProperties{}, fmt.Errorf("reading run properties: %w", err)
		}
		return props, nil
	}

	var props document.RunProperties
	text, err := run.Text()
	if err != nil {
		return props, fmt.Errorf("reading run text: %w", err)
	}
	props.Text = text

	bold, err := run.Bold()
	if err != nil {
		return props, fmt.Errorf("reading run bold: %w", err)
	}
	props.Bold = bold != nil && *bold

	italic, err := run.Italic()
	if err != nil {
		return props, fmt.Errorf("reading run italic: %w", err)
	}
	props.Italic = italic != nil && *italic

	strike, err := run.Strikethrough()
	if err != nil {
		return props, fmt.Errorf("reading run strikethrough: %w", err)
	}
	props.Strikethrough = strike != nil && *strike

	pos, err := run.VerticalPosition()
	if err != nil {
		return props, fmt.Errorf("reading run vertical position: %w", err)
	}
	props.Position = pos

	return props, nil
}

// writeRunWithProperties appends one formatted text fragment.
func (w *writer) writeRunWithProperties(props document.RunProperties) {
	needed := len(props.Text)
	if props.Position != document.PositionNormal {
		needed += 11 // <sup></sup> or <sub></sub>
	}
	if props.Strikethrough {
		needed += 11 // ~~ ~~ or <del></del>
	}
	if props.Bold && props.Italic {
		needed += 6
	} else if props.Bold || props.Italic {
		needed += 4
	}
	w.buf.Grow(needed)

	// Vertical position renders as a self-contained unit and bypasses the
	// marker state machine; bold/italic/strikethrough on such fragments is
	// ignored.
	if props.Position != document.PositionNormal {
		w.writeScript(props.Text, props.Position)
		return
	}

	// An HTML tag cannot be left open across fragments, so HTML-style
	// strikethrough also renders self-contained: close persistent state,
	// then wrap inline markers inside <del>.
	if props.Strikethrough && w.opts.StrikethroughStyle == StrikethroughHTML {
		w.closeFormatting()
		w.buf.WriteString("<del>")
		switch {
		case props.Bold && props.Italic:
			w.buf.WriteString("***")
			w.buf.WriteString(props.Text)
			w.buf.WriteString("***")
		case props.Bold:
			w.buf.WriteString("**")
			w.buf.WriteString(props.Text)
			w.buf.WriteString("**")
		case props.Italic:
			w.buf.WriteByte('*')
			w.buf.WriteString(props.Text)
			w.buf.WriteByte('*')
		default:
			w.buf.WriteString(props.Text)
		}
		w.buf.WriteString("</del>")
		return
	}

	w.applyFormatting(props.Bold, props.Italic, props.Strikethrough)
	w.buf.WriteString(props.Text)
}

// writeScript renders a superscript or subscript fragment, either as HTML
// tags or as a Unicode transliteration with HTML fallback.
func (w *writer) writeScript(text string, pos document.VerticalPosition) {
	table := superscripts
	openTag, closeTag := "<sup>", "</sup>"
	if pos == document.PositionSubscript {
		table = subscripts
		openTag, closeTag = "<sub>", "</sub>"
	}

	if w.opts.ScriptStyle == ScriptStyleUnicode && canConvertScript(text, table) {
		w.buf.WriteString(convertScript(text, table))
		return
	}

	w.buf.WriteString(openTag)
	w.buf.WriteString(text)
	w.buf.WriteString(closeTag)
}

// applyFormatting emits the minimal marker transitions from the current
// state to the desired one. Markers close inner-to-outer (strikethrough,
// italic, bold) and open outer-to-inner (bold, italic, strikethrough) so
// they always nest correctly even though runs are processed independently.
func (w *writer) applyFormatting(bold, italic, strike bool) {
	boldChanged := bold != w.bold
	italicChanged := italic != w.italic
	strikeChanged := strike != w.strike

	if !boldChanged && !italicChanged && !strikeChanged {
		return
	}

	if strikeChanged && w.strike {
		w.buf.WriteString("~~")
		w.strike = false
	}
	if italicChanged && w.italic {
		w.buf.WriteByte('*')
		w.italic = false
	}
	if boldChanged && w.bold {
		w.buf.WriteString("**")
		w.bold = false
	}

	if boldChanged && bold {
		w.buf.WriteString("**")
		w.bold = true
	}
	if italicChanged && italic {
		w.buf.WriteByte('*')
		w.italic = true
	}
	if strikeChanged && strike {
		w.buf.WriteString("~~")
		w.strike = true
	}
}

// closeFormatting closes all open markers, inner-to-outer.
func (w *writer) closeFormatting() {
	if w.strike {
		w.buf.WriteString("~~")
		w.strike = false
	}
	if w.italic {
		w.buf.WriteByte('*')
		w.italic = false
	}
	if w.bold {
		w.buf.WriteString("**")
		w.bold = false
	}
}

// textFromRuns concatenates run texts without re-extracting the paragraph.
func (w *writer) textFromRuns(runs []document.Run) (string, error) {
	var sb strings.Builder
	sb.Grow(len(runs) * 32)
	for _, run := range runs {
		text, err := run.Text()
		if err != nil {
			return "", fmt.Errorf("reading run text: %w", err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
