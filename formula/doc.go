// Package formula provides a registry of math-markup-to-LaTeX converters.
//
// The rendering core does not convert math itself; source formats carry
// math in their own markup dialects (OMML, MTEF, MathML, ...) and a
// converter for each dialect is an optional capability provider, registered
// at startup by whichever format or conversion packages are linked in:
//
//	formula.Register("omml", ommlConverter)
//
// When a document carries math in a dialect with no registered converter,
// the renderer substitutes a placeholder instead of failing the render.
package formula
