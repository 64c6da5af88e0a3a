// Package markdown converts the format-agnostic document model to Markdown.
//
// The package renders paragraphs, styled runs, lists, tables (including
// merged cells, which fall back to HTML tables), math payloads, slides and
// YAML front matter. Large documents, tables and presentations are rendered
// with a fork-join strategy; output is byte-identical regardless of whether
// the sequential or the parallel path runs.
//
// Basic usage:
//
//	md, err := markdown.RenderDocument(doc, markdown.DefaultOptions())
package markdown
