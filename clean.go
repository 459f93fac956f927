package slidezone

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// allowedSymbols are the non-ASCII runes that survive Clean.
var allowedSymbols = map[rune]bool{
	'°': true,
	'€': true,
	'¥': true,
	'£': true,
	'±': true,
	'µ': true,
}

// Clean normalizes extracted text into a canonical printable form: NFKC
// normalization, non-breaking spaces turned into spaces, everything outside
// printable ASCII, newline, tab and a small symbol allowlist dropped, and
// whitespace runs collapsed to a single space.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isAllowed(r) {
			sb.WriteRune(r)
		}
	}

	return strings.Join(strings.FieldsFunc(sb.String(), unicode.IsSpace), " ")
}

func isAllowed(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x7e:
		return true
	case r == '\n' || r == '\t':
		return true
	default:
		return allowedSymbols[r]
	}
}
