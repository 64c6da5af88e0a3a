package markdown

import (
	"strconv"
	"strings"

	"github.com/tsawler/quill/document"
)

// writeTable renders one table including its trailing blank line. Tables
// with merged cells cannot be expressed as pipe tables and fall back to
// HTML regardless of the configured style.
func (w *writer) writeTable(t document.Table) error {
	data, err := extractTableData(t, w.opts.UseParallel)
	if err != nil {
		return err
	}
	if data.rowCount() == 0 {
		return nil
	}

	if w.opts.TableStyle == TableStyleMarkdown && !hasMergedCells(data.meta) {
		w.writeMarkdownTable(data)
	} else {
		w.writeHTMLTable(data)
	}

	w.buf.WriteString("\n\n")
	return nil
}

// writeMarkdownTable renders a pipe table. The first row is the header;
// the separator uses a fixed-width dash run per column.
func (w *writer) writeMarkdownTable(data *tableData) {
	rows := data.texts
	if w.opts.UseParallel && len(rows) > tableParallelThreshold {
		w.buf.WriteString(renderIndexed(len(rows), func(i int) string {
			var sb strings.Builder
			writePipeRow(&sb, rows[i])
			if i == 0 {
				writePipeSeparator(&sb, len(rows[0]))
			}
			return sb.String()
		}))
		return
	}

	for i, row := range rows {
		writePipeRow(&w.buf, row)
		if i == 0 {
			writePipeSeparator(&w.buf, len(row))
		}
	}
}

func writePipeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		writeMarkdownEscaped(sb, cell)
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func writePipeSeparator(sb *strings.Builder, columns int) {
	sb.WriteString("|")
	for i := 0; i < columns; i++ {
		sb.WriteString("----------|")
	}
	sb.WriteString("\n")
}

// writeHTMLTable renders the table as an HTML fragment. The first row uses
// th cells, remaining rows td. Grid positions covered by a span are
// skipped; colspan and rowspan attributes appear only when greater than 1.
func (w *writer) writeHTMLTable(data *tableData) {
	spans := analyzeSpans(data.meta)
	styled := w.opts.TableStyle == TableStyleStyledHTML

	indent := ""
	if styled {
		indent = strings.Repeat(" ", w.opts.HTMLTableIndent)
	}

	rows := data.texts
	if w.opts.UseParallel && len(rows) > tableParallelThreshold {
		w.buf.WriteString("<table>")
		if styled {
			w.buf.WriteString("\n")
		}
		w.buf.WriteString(renderIndexed(len(rows), func(i int) string {
			var sb strings.Builder
			writeHTMLRow(&sb, rows[i], spans[i], i == 0, styled, indent)
			return sb.String()
		}))
		w.buf.WriteString("</table>")
		return
	}

	w.buf.WriteString("<table>")
	if styled {
		w.buf.WriteString("\n")
	}
	for i, row := range rows {
		writeHTMLRow(&w.buf, row, spans[i], i == 0, styled, indent)
	}
	w.buf.WriteString("</table>")
}

// writeHTMLRow renders one table row. Cell texts and the span grid have
// different widths when merges are present, so the walk keeps a grid
// cursor alongside the cell index: skipped grid positions are passed over
// without consuming a cell text, and each rendered cell advances the
// cursor by its colspan.
func writeHTMLRow(sb *strings.Builder, cells []string, spans []cellSpan, header, styled bool, indent string) {
	tag := "td"
	if header {
		tag = "th"
	}

	if styled {
		sb.WriteString(indent)
	}
	sb.WriteString("<tr>")
	if styled {
		sb.WriteString("\n")
	}

	gridCol := 0
	for _, cell := range cells {
		for gridCol < len(spans) && spans[gridCol].skip {
			gridCol++
		}

		span := cellSpan{colspan: 1, rowspan: 1}
		if gridCol < len(spans) {
			span = spans[gridCol]
		}

		if styled {
			sb.WriteString(indent)
			sb.WriteString(indent)
		}
		sb.WriteString("<")
		sb.WriteString(tag)
		if span.colspan > 1 {
			sb.WriteString(` colspan="`)
			sb.WriteString(strconv.Itoa(span.colspan))
			sb.WriteString(`"`)
		}
		if span.rowspan > 1 {
			sb.WriteString(` rowspan="`)
			sb.WriteString(strconv.Itoa(span.rowspan))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		writeHTMLEscaped(sb, cell)
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">")
		if styled {
			sb.WriteString("\n")
		}

		gridCol += span.colspan
	}

	if styled {
		sb.WriteString(indent)
	}
	sb.WriteString("</tr>")
	if styled {
		sb.WriteString("\n")
	}
}
