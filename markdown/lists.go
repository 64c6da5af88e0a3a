package markdown

import (
	"strings"
	"unicode"
)

// listKind is the type of a detected list item.
type listKind int

const (
	listOrdered listKind = iota
	listUnordered
)

// listItemInfo describes a paragraph recognized as a list item.
type listItemInfo struct {
	kind    listKind
	level   int    // nesting level, 0 = top
	marker  string // the marker as it appears in the source ("1.", "(2)", "-")
	content string // text after the marker
}

// unordered list marker characters followed by a space or tab
var unorderedMarkers = []string{"-", "*", "•"}

// detectListItem inspects paragraph text and extracts list information if
// it begins with an ordered or unordered list marker. indentWidth is the
// number of leading whitespace characters per nesting level.
func detectListItem(text string, indentWidth int) (listItemInfo, bool) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)

	if marker, content, ok := orderedMarker(trimmed); ok {
		return listItemInfo{
			kind:    listOrdered,
			level:   indentLevel(text, indentWidth),
			marker:  marker,
			content: content,
		}, true
	}

	if marker, content, ok := unorderedMarker(trimmed); ok {
		return listItemInfo{
			kind:    listUnordered,
			level:   indentLevel(text, indentWidth),
			marker:  marker,
			content: content,
		}, true
	}

	return listItemInfo{}, false
}

// orderedMarker matches "1. ", "2) " and "(3) " style prefixes.
func orderedMarker(text string) (marker, content string, ok bool) {
	if pos := strings.IndexByte(text, '.'); pos > 0 && allDigits(text[:pos]) {
		if len(text) > pos+1 && text[pos+1] == ' ' {
			return text[:pos+1], text[pos+2:], true
		}
	}

	if pos := strings.IndexByte(text, ')'); pos > 0 && allDigits(text[:pos]) {
		if len(text) > pos+1 && text[pos+1] == ' ' {
			return text[:pos+1], text[pos+2:], true
		}
	}

	if strings.HasPrefix(text, "(") {
		if end := strings.Index(text, ") "); end > 1 && allDigits(text[1:end]) {
			return text[:end+1], text[end+2:], true
		}
	}

	return "", "", false
}

// unorderedMarker matches "- ", "* " and "• " style prefixes (tab accepted
// in place of the space).
func unorderedMarker(text string) (marker, content string, ok bool) {
	for _, m := range unorderedMarkers {
		rest, found := strings.CutPrefix(text, m)
		if !found {
			continue
		}
		if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t") {
			return m, strings.TrimLeftFunc(rest, unicode.IsSpace), true
		}
	}
	return "", "", false
}

// normalizeOrderedMarker converts any recognized ordered marker surface
// form ("1.", "1)", "(1)") to the canonical Markdown form "1.".
func normalizeOrderedMarker(marker string) string {
	if strings.Contains(marker, ".") {
		return marker
	}
	if strings.HasPrefix(marker, "(") && strings.HasSuffix(marker, ")") {
		return marker[1:len(marker)-1] + "."
	}
	return strings.ReplaceAll(marker, ")", ".")
}

// indentLevel computes the nesting level from the untrimmed text's leading
// whitespace length divided by the configured indent width.
func indentLevel(text string, indentWidth int) int {
	if indentWidth < 1 {
		indentWidth = 1
	}
	leading := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	return leading / indentWidth
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
