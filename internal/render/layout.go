package render

import (
	"math"
	"strings"
)

// Layout constants for the square card.
const (
	DefaultSize = 1080
	MinFontSize = 18
	Margin      = 70
	TagGap      = 18
	MinTagSize  = 14
)

// Measurer reports the advance width of s in pixels.
type Measurer interface {
	Width(s string, weight Weight, size float64) float64
}

// Layout is the resolved text placement for one card.
type Layout struct {
	FontSize   int
	Lines      []string
	LineHeight int
	StartX     int
	StartY     int // may be negative for very long text
	MaxWidth   int
	TagY       int
	TagSize    int
}

// MaxTextWidth returns the usable line width for a card of the given size.
func MaxTextWidth(size int) int {
	return size - 2*Margin
}

// Wrap breaks text into lines greedily on whitespace. A word joins the
// current line while the joined width stays within maxWidth. A single word
// wider than maxWidth gets a line of its own.
func Wrap(m Measurer, text string, fontSize int, maxWidth int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line == "" || m.Width(candidate, WeightBold, float64(fontSize)) <= float64(maxWidth) {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fit chooses the font size and line breaks for text on a size×size card.
// The font shrinks by 10% per step, never below MinFontSize, until the
// block height estimate fits in 60% of the card.
func Fit(m Measurer, text string, size int) Layout {
	maxWidth := MaxTextWidth(size)
	fontSize := size / 18
	lines := Wrap(m, text, fontSize, maxWidth)

	for tooTall(len(lines), fontSize, size) && fontSize > MinFontSize {
		fontSize = max(MinFontSize, int(math.Floor(float64(fontSize)*0.9)))
		lines = Wrap(m, text, fontSize, maxWidth)
	}

	lineHeight := int(math.Floor(float64(fontSize) * 1.2))
	block := len(lines) * lineHeight
	startY := int(math.Floor(float64(size)/2 - float64(block)/2))

	return Layout{
		FontSize:   fontSize,
		Lines:      lines,
		LineHeight: lineHeight,
		StartX:     Margin,
		StartY:     startY,
		MaxWidth:   maxWidth,
		TagY:       startY + block + TagGap,
		TagSize:    max(MinTagSize, fontSize/2),
	}
}

func tooTall(lines, fontSize, size int) bool {
	return float64(lines)*float64(fontSize)*1.15 > 0.6*float64(size)
}

// MaxFitSteps bounds the number of shrink steps Fit can take for a card size.
func MaxFitSteps(size int) int {
	start := size / 18
	if start <= MinFontSize {
		return 0
	}
	return int(math.Ceil(math.Log(float64(MinFontSize)/float64(start)) / math.Log(0.9)))
}

// clip drops trailing runes until s fits within maxWidth.
func clip(m Measurer, s string, weight Weight, size float64, maxWidth int) string {
	if m.Width(s, weight, size) <= float64(maxWidth) {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if m.Width(string(runes), weight, size) <= float64(maxWidth) {
			break
		}
	}
	return string(runes)
}
