package render

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
)

var (
	fontsOnce sync.Once
	fonts     map[Weight]*text.FontSource
	fontsErr  error
)

func loadFonts() (map[Weight]*text.FontSource, error) {
	fontsOnce.Do(func() {
		bold, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("failed to load bold font: %w", err)
			return
		}
		medium, err := text.NewFontSource(gomedium.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("failed to load medium font: %w", err)
			return
		}
		fonts = map[Weight]*text.FontSource{
			WeightBold:     bold,
			WeightSemiBold: bold,
			WeightMedium:   medium,
		}
	})
	return fonts, fontsErr
}

type faceKey struct {
	weight Weight
	size   float64
}

// ggCanvas draws on a gogpu/gg raster context.
type ggCanvas struct {
	dc    *gg.Context
	fonts map[Weight]*text.FontSource
	faces map[faceKey]text.Face
}

// NewGGCanvas creates a size×size canvas backed by gogpu/gg.
func NewGGCanvas(size int) (Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", size)
	}
	sources, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &ggCanvas{
		dc:    gg.NewContext(size, size),
		fonts: sources,
		faces: make(map[faceKey]text.Face),
	}, nil
}

func (c *ggCanvas) face(weight Weight, size float64) text.Face {
	key := faceKey{weight, size}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src, ok := c.fonts[weight]
	if !ok {
		src = c.fonts[WeightBold]
	}
	f := src.Face(size)
	c.faces[key] = f
	return f
}

func (c *ggCanvas) Width(s string, weight Weight, size float64) float64 {
	if s == "" {
		return 0
	}
	return c.face(weight, size).Advance(s)
}

func (c *ggCanvas) FillGradient(x0, y0, x1, y1 float64, from, to color.NRGBA) error {
	c.dc.SetFillBrush(gg.NewLinearGradientBrush(x0, y0, x1, y1).
		AddColorStop(0, toRGBA(from)).
		AddColorStop(1, toRGBA(to)))
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	return c.dc.Fill()
}

func (c *ggCanvas) FillCircle(x, y, r float64, col color.NRGBA) error {
	setColor(c.dc, col)
	c.dc.DrawCircle(x, y, r)
	return c.dc.Fill()
}

func (c *ggCanvas) DrawText(s string, x, y float64, style TextStyle) {
	face := c.face(style.Weight, style.Size)
	if style.Align == AlignRight {
		x -= face.Advance(s)
	}
	setColor(c.dc, style.Color)
	c.dc.SetFont(face)
	c.dc.DrawString(s, x, y+face.Metrics().Ascent)
}

func (c *ggCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *ggCanvas) Close() error {
	return c.dc.Close()
}

func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func setColor(dc *gg.Context, c color.NRGBA) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
