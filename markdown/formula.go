package markdown

import (
	"fmt"

	"github.com/tsawler/quill/document"
	"github.com/tsawler/quill/formula"
)

// Placeholder text substituted for formulas that cannot be rendered.
const (
	formulaUnsupportedText = "[Formula support disabled]"
	formulaErrorText       = "[Formula conversion error]"
)

// formulaFromRun probes the run for an embedded formula. The second
// return reports whether the run carried one; the string is its inline
// Markdown rendering (or a placeholder).
func (w *writer) formulaFromRun(run document.Run) (string, bool, error) {
	fr, ok := run.(document.FormulaRun)
	if !ok {
		return "", false, nil
	}
	f, err := fr.Formula()
	if err != nil {
		return "", false, fmt.Errorf("reading run formula: %w", err)
	}
	if f == nil {
		return "", false, nil
	}
	return w.renderFormula(*f, true), true, nil
}

// writeDisplayFormulaParagraph renders a paragraph whose formulas are
// display-level. The paragraph text appears first when non-empty, then
// each formula on its own line.
func (w *writer) writeDisplayFormulaParagraph(p document.FormulaParagraph, formulas []document.Formula) error {
	text, err := p.Text()
	if err != nil {
		return fmt.Errorf("reading paragraph text: %w", err)
	}
	if text != "" {
		w.buf.WriteString(text)
		w.buf.WriteByte('\n')
	}
	for i, f := range formulas {
		if i > 0 {
			w.buf.WriteByte('\n')
		}
		w.buf.WriteString(w.renderFormula(f, false))
	}
	return nil
}

// renderFormula converts a formula to LaTeX via the registered converter
// for its notation and wraps it in the configured delimiters. Missing
// converters and conversion failures degrade to placeholder text.
func (w *writer) renderFormula(f document.Formula, inline bool) string {
	conv, ok := formula.Lookup(f.Notation)
	if !ok {
		logger().WithField("notation", f.Notation).Warn("no formula converter registered")
		return formulaUnsupportedText
	}
	latex, err := conv.Convert(f.Markup)
	if err != nil {
		logger().WithField("notation", f.Notation).WithError(err).Warn("formula conversion failed")
		return formulaErrorText
	}
	return w.formatFormula(latex, inline)
}

// formatFormula wraps converted LaTeX in inline or display delimiters.
func (w *writer) formatFormula(latex string, inline bool) string {
	if w.opts.FormulaStyle == FormulaStyleDollar {
		if inline {
			return "$" + latex + "$"
		}
		return "$$" + latex + "$$"
	}
	if inline {
		return `\(` + latex + `\)`
	}
	return `\[` + latex + `\]`
}
