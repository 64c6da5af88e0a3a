// Package quill provides a fluent API for rendering structured documents
// and presentations to Markdown.
//
// Basic usage:
//
//	md, err := quill.From(doc).Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	md, err := quill.From(doc).
//	    TableStyle(markdown.TableStyleStyledHTML).
//	    ScriptStyle(markdown.ScriptStyleUnicode).
//	    Markdown()
//
// Documents are supplied through the interfaces in the document package;
// any format parser that implements document.Document (or
// document.Presentation) can be rendered. The lower-level markdown
// package is also available for rendering individual elements.
package quill

import (
	"github.com/tsawler/quill/document"
	"github.com/tsawler/quill/markdown"
)

// From returns a Converter for the given document with default options.
//
// Example:
//
//	md, err := quill.From(doc).Markdown()
func From(doc document.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: markdown.DefaultOptions(),
	}
}

// FromPresentation returns a Converter for the given presentation with
// default options.
//
// Example:
//
//	md, err := quill.FromPresentation(pres).Markdown()
func FromPresentation(pres document.Presentation) *Converter {
	return &Converter{
		pres:    pres,
		options: markdown.DefaultOptions(),
	}
}

// Must panics if err is non-nil, otherwise returns md. It is intended for
// tests and program initialization where a render failure is fatal.
//
// Example:
//
//	md := quill.Must(quill.From(doc).Markdown())
func Must(md string, err error) string {
	if err != nil {
		panic(err)
	}
	return md
}
