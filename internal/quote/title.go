package quote

import (
	"strings"
	"unicode"
)

// Preview returns a single-line rendition of text at most maxLen runes long.
// Used for list rows and prompts where multi-line text would break layout.
func Preview(text string, maxLen int) string {
	return Truncate(Sanitize(text), maxLen)
}

// Truncate ensures s is at most maxLen runes.
// If truncation is needed, appends "..." to indicate truncation.
func Truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen < 3 {
		return strings.Repeat(".", max(maxLen, 0))
	}

	return string(runes[:maxLen-3]) + "..."
}

// Sanitize removes control characters and collapses whitespace.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
