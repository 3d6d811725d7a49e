package tui

import (
	"strings"
	"unicode"

	xansi "github.com/charmbracelet/x/ansi"
)

// WrapText wraps text to maxWidth terminal cells, breaking on word boundaries
// when possible. Newlines in text are kept as line breaks.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{}
	}

	var result []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			result = append(result, "")
			continue
		}
		if xansi.StringWidth(line) <= maxWidth {
			result = append(result, line)
			continue
		}
		result = append(result, wrapLine(line, maxWidth)...)
	}
	return result
}

// wrapLine greedily packs the words of a single line
func wrapLine(line string, maxWidth int) []string {
	var result []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if currentWidth > 0 {
			result = append(result, current.String())
			current.Reset()
			currentWidth = 0
		}
	}

	for _, word := range splitWords(line) {
		wordWidth := xansi.StringWidth(word)

		if wordWidth > maxWidth {
			flush()
			for xansi.StringWidth(word) > maxWidth {
				result = append(result, xansi.Cut(word, 0, maxWidth))
				word = xansi.Cut(word, maxWidth, xansi.StringWidth(word))
			}
			current.WriteString(word)
			currentWidth = xansi.StringWidth(word)
			continue
		}

		if currentWidth > 0 && currentWidth+1+wordWidth > maxWidth {
			flush()
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	flush()

	return result
}

// splitWords splits text on any run of whitespace
func splitWords(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}
