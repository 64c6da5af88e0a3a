package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tsawler/quill/document"
)

// Rendered output must parse as CommonMark with the GFM table and
// strikethrough extensions enabled.
func TestRenderedOutputParsesAsMarkdown(t *testing.T) {
	doc := document.NewDocument()
	doc.SetMetadata(&document.Metadata{Title: "Validation"})
	doc.AppendParagraph(document.NewParagraph(
		document.NewRun("Intro with "),
		document.NewRun("bold").WithBold(true),
		document.NewRun(" and "),
		document.NewRun("struck").WithStrikethrough(true),
		document.NewRun(" text."),
	))
	doc.AppendParagraph(document.NewTextParagraph("1. First"))
	doc.AppendParagraph(document.NewTextParagraph("2. Second"))
	doc.AppendTable(document.NewTable(
		rowOf("Name", "Value"),
		rowOf("alpha", "1"),
		rowOf("beta", "2"),
	))

	md, err := RenderDocument(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	gm := goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	var html bytes.Buffer
	if err := gm.Convert([]byte(md), &html); err != nil {
		t.Fatalf("goldmark rejected rendered output: %v\noutput:\n%s", err, md)
	}

	out := html.String()
	for _, want := range []string{"<strong>bold</strong>", "<del>struck</del>", "<table>", "<td>alpha</td>", "<ol>"} {
		if !strings.Contains(out, want) {
			t.Errorf("converted HTML missing %q:\n%s", want, out)
		}
	}
}
