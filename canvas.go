package linechart

import "image/color"

// TextAlign is the horizontal alignment of text relative to its anchor.
type TextAlign uint8

const (
	// AlignLeft puts the anchor at the start of the text.
	AlignLeft TextAlign = iota
	// AlignCenter puts the anchor in the middle of the text.
	AlignCenter
	// AlignRight puts the anchor at the end of the text.
	AlignRight
)

// String returns the CSS name of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Anchor returns the fraction of the text width that lies left of the
// anchor point: 0 for left, 0.5 for center, 1 for right.
func (a TextAlign) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Canvas is the 2D drawing surface a Chart renders onto. It follows the
// HTML canvas model: a current path built with MoveTo, LineTo, Rect and
// Arc, painted by Stroke or Fill with independent stroke and fill styles.
// Stroke and Fill keep the path; BeginPath discards it.
//
// The chart borrows a Canvas for the duration of Draw and never retains it.
//
// Implementations: integration/ggcanvas (raster, gg-backed) and
// recording (command capture for tests and playback).
type Canvas interface {
	// ClearRect resets the rectangle to the surface background.
	ClearRect(x, y, w, h float64)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	// Arc adds a circular arc centered at (x, y), angles in radians.
	Arc(x, y, r, angle1, angle2 float64)

	Stroke() error
	Fill() error

	SetStrokeStyle(c color.Color)
	SetFillStyle(c color.Color)
	FillStyle() color.Color
	// SetLineDash sets the dash pattern for strokes. Empty means solid.
	SetLineDash(pattern []float64)

	SetFontSize(size float64)
	SetTextAlign(align TextAlign)
	// FillText draws text with its baseline at y, aligned on x, in the
	// current fill style.
	FillText(text string, x, y float64)
}
