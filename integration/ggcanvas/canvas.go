// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/linechart"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNilContext is returned when Wrap is given a nil gg.Context.
	ErrNilContext = errors.New("ggcanvas: nil gg.Context")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("ggcanvas: nil DeviceProvider")
)

// faceCacheLimit bounds the number of font sizes kept alive per canvas.
const faceCacheLimit = 32

// defaultFont parses Go Regular once per process.
var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

type options struct {
	fontData   []byte
	fontSource *text.FontSource
	background color.Color
}

// Option configures a Canvas.
type Option func(*options)

// WithFont sets the font from TTF or OTF data.
func WithFont(data []byte) Option {
	return func(o *options) { o.fontData = data }
}

// WithFontSource sets an already parsed font.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) { o.fontSource = src }
}

// WithBackground sets the color ClearRect paints. The default is white.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = c }
}

// Canvas implements linechart.Canvas on a gg.Context.
//
// gg keeps a single current color; Canvas tracks fill and stroke colors
// separately and applies the right one before each paint. Stroke and Fill
// preserve the path, as on an HTML canvas.
type Canvas struct {
	dc    *gg.Context
	owned bool

	source *text.FontSource
	faces  *text.Cache[float64, text.Face]

	fill, stroke color.Color
	background   color.Color
	fontSize     float64
	align        linechart.TextAlign

	closed bool
}

var _ linechart.Canvas = (*Canvas)(nil)

// New creates a Canvas backed by a new gg.Context of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	c, err := newCanvas(gg.NewContext(width, height), opts)
	if err != nil {
		return nil, err
	}
	c.owned = true
	return c, nil
}

// Wrap creates a Canvas drawing into an existing gg.Context. Closing the
// Canvas does not close dc.
func Wrap(dc *gg.Context, opts ...Option) (*Canvas, error) {
	if dc == nil {
		return nil, ErrNilContext
	}
	return newCanvas(dc, opts)
}

func newCanvas(dc *gg.Context, opts []Option) (*Canvas, error) {
	o := options{background: colornames.White}
	for _, opt := range opts {
		opt(&o)
	}

	src := o.fontSource
	if src == nil {
		var err error
		if o.fontData != nil {
			src, err = text.NewFontSource(o.fontData)
		} else {
			src, err = defaultFont()
		}
		if err != nil {
			return nil, fmt.Errorf("ggcanvas: load font: %w", err)
		}
	}

	linechart.Logger().Debug("ggcanvas: canvas created",
		"width", dc.Width(), "height", dc.Height(), "font", src.Name())

	return &Canvas{
		dc:         dc,
		source:     src,
		faces:      text.NewCache[float64, text.Face](faceCacheLimit),
		fill:       colornames.Black,
		stroke:     colornames.Black,
		background: o.background,
		fontSize:   10,
		align:      linechart.AlignLeft,
	}, nil
}

// ShareDevice hands the GPU device of a gogpu window to gg's accelerator.
// It is a no-op when no accelerator is registered.
func (c *Canvas) ShareDevice(provider gpucontext.DeviceProvider) error {
	if provider == nil {
		return ErrNilProvider
	}
	if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
		return fmt.Errorf("ggcanvas: share device: %w", err)
	}
	return nil
}

// Context returns the underlying gg context, or nil once closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.dc
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// ClearRect implements linechart.Canvas by painting the background color.
// It discards any path under construction.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.closed {
		return
	}
	c.dc.ClearPath()
	c.dc.SetColor(c.background)
	c.dc.DrawRectangle(x, y, w, h)
	if err := c.dc.Fill(); err != nil {
		linechart.Logger().Warn("ggcanvas: clear failed", "err", err)
	}
}

// BeginPath implements linechart.Canvas.
func (c *Canvas) BeginPath() {
	if c.closed {
		return
	}
	c.dc.ClearPath()
}

// ClosePath implements linechart.Canvas.
func (c *Canvas) ClosePath() {
	if c.closed {
		return
	}
	if _, _, ok := c.dc.GetCurrentPoint(); ok {
		c.dc.ClosePath()
	}
}

// MoveTo implements linechart.Canvas.
func (c *Canvas) MoveTo(x, y float64) {
	if c.closed {
		return
	}
	c.dc.MoveTo(x, y)
}

// LineTo implements linechart.Canvas.
func (c *Canvas) LineTo(x, y float64) {
	if c.closed {
		return
	}
	c.dc.LineTo(x, y)
}

// Rect implements linechart.Canvas.
func (c *Canvas) Rect(x, y, w, h float64) {
	if c.closed {
		return
	}
	c.dc.DrawRectangle(x, y, w, h)
}

// Arc implements linechart.Canvas. The arc is joined to the current point
// by a straight line, if there is one.
func (c *Canvas) Arc(x, y, r, angle1, angle2 float64) {
	if c.closed {
		return
	}
	sx, sy := x+r*math.Cos(angle1), y+r*math.Sin(angle1)
	if _, _, ok := c.dc.GetCurrentPoint(); ok {
		c.dc.LineTo(sx, sy)
	} else {
		c.dc.MoveTo(sx, sy)
	}
	c.dc.DrawArc(x, y, r, angle1, angle2)
}

// Stroke implements linechart.Canvas.
func (c *Canvas) Stroke() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.dc.SetColor(c.stroke)
	return c.dc.StrokePreserve()
}

// Fill implements linechart.Canvas.
func (c *Canvas) Fill() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.dc.SetColor(c.fill)
	return c.dc.FillPreserve()
}

// SetStrokeStyle implements linechart.Canvas.
func (c *Canvas) SetStrokeStyle(col color.Color) { c.stroke = col }

// SetFillStyle implements linechart.Canvas.
func (c *Canvas) SetFillStyle(col color.Color) { c.fill = col }

// FillStyle implements linechart.Canvas.
func (c *Canvas) FillStyle() color.Color { return c.fill }

// SetLineDash implements linechart.Canvas.
func (c *Canvas) SetLineDash(pattern []float64) {
	if c.closed {
		return
	}
	if len(pattern) == 0 {
		c.dc.ClearDash()
		return
	}
	c.dc.SetDash(pattern...)
}

// SetFontSize implements linechart.Canvas.
func (c *Canvas) SetFontSize(size float64) { c.fontSize = size }

// SetTextAlign implements linechart.Canvas.
func (c *Canvas) SetTextAlign(align linechart.TextAlign) { c.align = align }

// FillText implements linechart.Canvas. Text with a non-positive font size
// is not drawn.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.closed || s == "" || !(c.fontSize > 0) {
		return
	}
	c.dc.SetFont(c.face(c.fontSize))
	c.dc.SetColor(c.fill)
	c.dc.DrawStringAnchored(s, x, y, c.align.Anchor(), 0)
}

func (c *Canvas) face(size float64) text.Face {
	return c.faces.GetOrCreate(size, func() text.Face {
		return c.source.Face(size)
	})
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.dc.EncodePNG(w)
}

// Resize changes canvas dimensions. This clears the canvas.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("ggcanvas: context resize failed: %w", err)
	}
	return nil
}

// Close releases the canvas. A context created by New is closed too.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.faces.Clear()
	if c.owned {
		return c.dc.Close()
	}
	return nil
}
