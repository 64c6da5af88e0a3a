package markdown

import "strings"

// writeMarkdownEscaped writes text into sb with pipe-table escaping applied:
// '|' becomes '\|' and newlines become spaces. Text without either character
// is copied through in one WriteString.
func writeMarkdownEscaped(sb *strings.Builder, text string) {
	start := 0
	for i := 0; i < len(text); i++ {
		var repl string
		switch text[i] {
		case '|':
			repl = "\\|"
		case '\n':
			repl = " "
		default:
			continue
		}
		sb.WriteString(text[start:i])
		sb.WriteString(repl)
		start = i + 1
	}
	sb.WriteString(text[start:])
}

// writeHTMLEscaped writes text into sb with HTML escaping applied: the
// characters &, < and > become entities and newlines become <br>.
func writeHTMLEscaped(sb *strings.Builder, text string) {
	start := 0
	for i := 0; i < len(text); i++ {
		var repl string
		switch text[i] {
		case '&':
			repl = "&amp;"
		case '<':
			repl = "&lt;"
		case '>':
			repl = "&gt;"
		case '\n':
			repl = "<br>"
		default:
			continue
		}
		sb.WriteString(text[start:i])
		sb.WriteString(repl)
		start = i + 1
	}
	sb.WriteString(text[start:])
}
