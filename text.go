package linechart

import "image/color"

type textOptions struct {
	size  float64
	color color.Color
	align TextAlign
}

// TextOption configures DrawChartText.
type TextOption func(*textOptions)

// WithTextSize sets the font size in pixels.
func WithTextSize(size float64) TextOption {
	return func(o *textOptions) { o.size = size }
}

// WithTextColor sets the text color.
func WithTextColor(c color.Color) TextOption {
	return func(o *textOptions) { o.color = c }
}

// WithTextAlign sets the horizontal alignment.
func WithTextAlign(a TextAlign) TextOption {
	return func(o *textOptions) { o.align = a }
}

// DrawChartText draws one line of text at (x, y).
//
// Defaults: size is the chart width / 50 truncated to an integer, color is
// ColorTitle, alignment is centered. The previous fill style is restored and
// the alignment reset to left afterwards.
func (c *Chart) DrawChartText(cv Canvas, text string, x, y float64, opts ...TextOption) {
	o := textOptions{
		size:  float64(int(c.width / 50)),
		color: ColorTitle,
		align: AlignCenter,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cv.BeginPath()
	prev := cv.FillStyle()
	cv.SetFillStyle(o.color)
	cv.SetFontSize(o.size)
	cv.SetTextAlign(o.align)
	cv.FillText(text, x, y)
	cv.SetTextAlign(AlignLeft)
	cv.SetFillStyle(prev)
	cv.ClosePath()
}
