// Package document defines the format-agnostic document and presentation
// model consumed by the markdown rendering engine.
//
// The package is an interface boundary: the core types (Paragraph, Run,
// Table, Row, Cell, Document, Presentation) are capability-style interfaces
// that any source-format parser can implement. Parsers themselves live
// outside this module; the package ships one concrete in-memory variant of
// every interface for callers that build documents programmatically and for
// tests.
//
// Optional capabilities (a combined text+properties accessor, inline and
// display math payloads) are modelled as extension interfaces. Consumers
// probe for them with a type assertion and fall back to the base interface
// when a provider does not implement them.
package document
