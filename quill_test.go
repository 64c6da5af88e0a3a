package quill

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/quill/document"
	"github.com/tsawler/quill/markdown"
)

func sampleDocument() *document.MemoryDocument {
	doc := document.NewDocument()
	doc.SetMetadata(&document.Metadata{Title: "Sample"})
	doc.AppendParagraph(document.NewParagraph(
		document.NewRun("Hello "),
		document.NewRun("world").WithBold(true),
	))
	doc.AppendTable(document.NewTable(
		document.NewRow(document.NewCell("A"), document.NewCell("B")),
		document.NewRow(document.NewCell("C"), document.NewCell("D")),
	))
	return doc
}

func TestFromMarkdown(t *testing.T) {
	md, err := From(sampleDocument()).Markdown()
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	for _, want := range []string{"title: Sample", "Hello **world**", "| A | B |"} {
		if !strings.Contains(md, want) {
			t.Errorf("output missing %q:\n%s", want, md)
		}
	}
}

func TestFromPresentationMarkdown(t *testing.T) {
	pres := document.NewPresentation()
	pres.AppendSlide("Intro\nWelcome.")

	md, err := FromPresentation(pres).Markdown()
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(md, "# Slide 1 Intro") {
		t.Errorf("output missing slide heading:\n%s", md)
	}
}

func TestConverterImmutability(t *testing.T) {
	base := From(sampleDocument())
	styled := base.TableStyle(markdown.TableStyleStyledHTML).PlainText()

	if base.Options().TableStyle != markdown.TableStyleMarkdown {
		t.Error("chaining mutated the base converter's table style")
	}
	if !base.Options().IncludeStyles {
		t.Error("chaining mutated the base converter's style flag")
	}
	if styled.Options().TableStyle != markdown.TableStyleStyledHTML {
		t.Error("chained converter lost its table style")
	}
	if styled.Options().IncludeStyles {
		t.Error("chained converter lost PlainText")
	}
}

func TestConverterPlainText(t *testing.T) {
	md, err := From(sampleDocument()).PlainText().Markdown()
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.Contains(md, "**") {
		t.Errorf("plain text output contains markers:\n%s", md)
	}
	if !strings.Contains(md, "Hello world") {
		t.Errorf("plain text output missing text:\n%s", md)
	}
}

func TestConverterIncludeMetadata(t *testing.T) {
	md, err := From(sampleDocument()).IncludeMetadata(false).Markdown()
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.Contains(md, "title: Sample") {
		t.Errorf("metadata rendered despite being disabled:\n%s", md)
	}
}

func TestConverterSequentialMatchesParallel(t *testing.T) {
	doc := document.NewDocument()
	for i := 0; i < 60; i++ {
		doc.AppendParagraph(document.NewTextParagraph("paragraph text"))
	}

	par, err := From(doc).Markdown()
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	seq, err := From(doc).Sequential().Markdown()
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	if par != seq {
		t.Error("sequential output differs from parallel")
	}
}

func TestConverterListIndentClamps(t *testing.T) {
	c := From(sampleDocument()).ListIndent(0)
	if c.Options().ListIndent != 1 {
		t.Errorf("ListIndent = %d, want clamp to 1", c.Options().ListIndent)
	}
}

func TestMarkdownWithoutSource(t *testing.T) {
	c := &Converter{}
	if _, err := c.Markdown(); !errors.Is(err, ErrNoSource) {
		t.Errorf("err = %v, want ErrNoSource", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must("ok", nil); got != "ok" {
		t.Errorf("Must = %q, want %q", got, "ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must("", errors.New("boom"))
}
