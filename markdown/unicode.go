package markdown

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// superscripts maps characters to their Unicode superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', ' ': ' ',
}

// subscripts maps characters to their Unicode subscript forms.
var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ', ' ': ' ',
}

// canConvertScript reports whether every character of the NFC-normalized
// text has an entry in the given script map.
func canConvertScript(text string, table map[rune]rune) bool {
	for _, r := range norm.NFC.String(text) {
		if _, ok := table[r]; !ok {
			return false
		}
	}
	return true
}

// convertScript transliterates the NFC-normalized text through the given
// script map. Characters without an entry are kept unchanged; callers are
// expected to check canConvertScript first.
func convertScript(text string, table map[rune]rune) string {
	var sb strings.Builder
	for _, r := range norm.NFC.String(text) {
		if mapped, ok := table[r]; ok {
			sb.WriteRune(mapped)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
