package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/document"
)

// documentParallelThreshold is the element count above which document
// rendering shards elements across goroutines.
const documentParallelThreshold = 50

// RenderDocument renders a document to Markdown. Elements appear in
// document order; output is byte-identical whether or not parallel
// rendering is enabled.
func RenderDocument(doc document.Document, opts Options) (string, error) {
	elements, err := doc.Elements()
	if err != nil {
		return "", fmt.Errorf("reading document elements: %w", err)
	}

	var front string
	if opts.IncludeMetadata {
		front, err = renderFrontMatter(doc, opts)
		if err != nil {
			return "", err
		}
	}

	var body string
	if opts.UseParallel && len(elements) > documentParallelThreshold {
		body, err = renderIndexedErr(len(elements), func(i int) (string, error) {
			return renderElement(elements[i], opts)
		})
	} else {
		var sb strings.Builder
		sb.Grow(len(elements) * 64)
		for _, el := range elements {
			s, rerr := renderElement(el, opts)
			if rerr != nil {
				err = rerr
				break
			}
			sb.WriteString(s)
		}
		if err == nil {
			body = sb.String()
		}
	}
	if err != nil {
		return "", err
	}

	return front + body, nil
}

func renderFrontMatter(doc document.Document, opts Options) (string, error) {
	meta, err := doc.Metadata()
	if err != nil {
		return "", fmt.Errorf("reading document metadata: %w", err)
	}
	w := newWriter(opts)
	if err := w.writeFrontMatter(meta); err != nil {
		return "", err
	}
	return w.finish(), nil
}

// renderElement renders one element with a fresh writer, so shards never
// share formatting state.
func renderElement(el document.Element, opts Options) (string, error) {
	w := newWriter(opts)
	if el.IsTable() {
		if err := w.writeTable(el.Table); err != nil {
			return "", err
		}
	} else {
		if err := w.writeParagraph(el.Paragraph); err != nil {
			return "", err
		}
	}
	return w.finish(), nil
}

// RenderParagraph renders a single paragraph to Markdown with the trailing
// blank line trimmed.
func RenderParagraph(p document.Paragraph, opts Options) (string, error) {
	w := newWriter(opts)
	if err := w.writeParagraph(p); err != nil {
		return "", err
	}
	return strings.TrimRight(w.finish(), "\n"), nil
}

// RenderTable renders a single table to Markdown with the trailing blank
// line trimmed.
func RenderTable(t document.Table, opts Options) (string, error) {
	w := newWriter(opts)
	if err := w.writeTable(t); err != nil {
		return "", err
	}
	return strings.TrimRight(w.finish(), "\n"), nil
}

// RenderRun renders a single run to Markdown. Formatting markers open and
// close within the fragment.
func RenderRun(r document.Run, opts Options) (string, error) {
	w := newWriter(opts)
	if err := w.writeRun(r); err != nil {
		return "", err
	}
	w.closeFormatting()
	return w.finish(), nil
}
