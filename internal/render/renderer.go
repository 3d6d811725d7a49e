// Package render draws a quote onto a square PNG card.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/gogpu/gg"

	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/quote"
)

// ErrUnavailable is returned when no drawing surface can be created.
var ErrUnavailable = errors.New("image rendering unavailable")

// Watermark is stamped on cards unless premium is unlocked.
const Watermark = "QuoteGen • yoursite.com"

var (
	gradientFrom  = color.NRGBA{0xfd, 0xf2, 0xf8, 0xff}
	gradientTo    = color.NRGBA{0xee, 0xf2, 0xff, 0xff}
	circleColor   = color.NRGBA{0xff, 0xff, 0xff, 0x0f} // white at 6%
	textColor     = color.NRGBA{0x0f, 0x17, 0x2a, 0xff}
	tagColor      = color.NRGBA{0x47, 0x55, 0x69, 0xff}
	watermarkInk  = color.NRGBA{15, 23, 42, 153}
	circleCount   = 6
	watermarkSize = 14.0
)

// Options controls a single render.
type Options struct {
	Size        int // zero means DefaultSize
	NoWatermark bool
}

// Renderer produces quote cards.
type Renderer struct {
	surface SurfaceFunc
	log     *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSurface replaces the gogpu/gg canvas.
func WithSurface(f SurfaceFunc) Option {
	return func(r *Renderer) {
		r.surface = f
	}
}

// WithRand sets the source for the decorative circles.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) {
		r.rng = rng
	}
}

// WithLogger sets the logger. It is also handed to gogpu/gg.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.log = l
		gg.SetLogger(l)
	}
}

// New creates a new Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		surface: NewGGCanvas,
		log:     logging.Discard(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws q and returns the PNG encoding.
func (r *Renderer) Render(q quote.Quote, opts Options) ([]byte, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrUnavailable, size)
	}

	canvas, err := r.surface(size)
	if err != nil {
		r.log.Warn("failed to create canvas", "size", size, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer canvas.Close()

	opts.Size = size
	layout, err := r.Draw(canvas, q, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	r.log.Debug("rendered quote", "id", q.ID, "size", size, "font_size", layout.FontSize, "lines", len(layout.Lines))
	return buf.Bytes(), nil
}

// Draw paints q onto canvas and returns the text layout it used.
func (r *Renderer) Draw(canvas Canvas, q quote.Quote, opts Options) (Layout, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	fsize := float64(size)

	if err := canvas.FillGradient(0, 0, fsize, fsize, gradientFrom, gradientTo); err != nil {
		return Layout{}, fmt.Errorf("failed to fill background: %w", err)
	}

	for _, c := range r.circles(size) {
		if err := canvas.FillCircle(c.x, c.y, c.r, circleColor); err != nil {
			return Layout{}, fmt.Errorf("failed to draw circle: %w", err)
		}
	}

	layout := Fit(canvas, q.Text, size)
	body := TextStyle{Weight: WeightBold, Size: float64(layout.FontSize), Color: textColor}
	for i, line := range layout.Lines {
		line = clip(canvas, line, body.Weight, body.Size, layout.MaxWidth)
		y := layout.StartY + i*layout.LineHeight
		canvas.DrawText(line, float64(layout.StartX), float64(y), body)
	}

	canvas.DrawText(q.Tag(), float64(layout.StartX), float64(layout.TagY), TextStyle{
		Weight: WeightMedium,
		Size:   float64(layout.TagSize),
		Color:  tagColor,
	})

	if !opts.NoWatermark {
		canvas.DrawText(Watermark, fsize-20, fsize-28, TextStyle{
			Weight: WeightSemiBold,
			Size:   watermarkSize,
			Color:  watermarkInk,
			Align:  AlignRight,
		})
	}

	return layout, nil
}

type circle struct {
	x, y, r float64
}

func (r *Renderer) circles(size int) []circle {
	r.mu.Lock()
	defer r.mu.Unlock()

	fsize := float64(size)
	out := make([]circle, circleCount)
	for i := range out {
		radius := math.Floor(fsize * (0.08 + r.rng.Float64()*0.12))
		out[i] = circle{
			x: r.rng.Float64() * fsize,
			y: r.rng.Float64() * fsize,
			r: radius,
		}
	}
	return out
}
