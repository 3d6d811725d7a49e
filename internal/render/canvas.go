package render

import (
	"image/color"
	"io"
)

// Weight is a font weight in CSS units.
type Weight int

const (
	WeightMedium   Weight = 500
	WeightSemiBold Weight = 600
	WeightBold     Weight = 700
)

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TextStyle describes how a single text run is set.
type TextStyle struct {
	Weight Weight
	Size   float64
	Color  color.NRGBA
	Align  Align
}

// Canvas is a square drawing surface.
// Text positions use the top of the line box, not the baseline.
type Canvas interface {
	Measurer
	FillGradient(x0, y0, x1, y1 float64, from, to color.NRGBA) error
	FillCircle(x, y, r float64, c color.NRGBA) error
	DrawText(s string, x, y float64, style TextStyle)
	EncodePNG(w io.Writer) error
	Close() error
}

// SurfaceFunc creates a size×size canvas.
type SurfaceFunc func(size int) (Canvas, error)
