package linechart

import (
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Colors used by the chart.
var (
	ColorBorder    color.Color = colornames.Black
	ColorLabel     color.Color = colornames.Black
	ColorTitle     color.Color = colornames.Orange
	ColorReference color.Color = colornames.Green
)

// Hue rotation for series. Lines and markers cycle independently.
const (
	lineHueStart  = 300
	lineHueStep   = 100
	pointHueStart = 200
	pointHueStep  = 50
	hueModulus    = 361
)

// HSL returns the color for hue h in degrees, saturation s and
// lightness l in [0, 1], as CSS hsl() would.
func HSL(h, s, l float64) color.Color {
	return gg.HSL(h, s, l).Color()
}

// SeriesColors returns the line and marker colors of the series at index.
func SeriesColors(index int) (line, point color.Color) {
	lh, ph := seriesHues(index)
	return HSL(float64(lh), 1, 0.5), HSL(float64(ph), 1, 0.5)
}

func seriesHues(index int) (line, point int) {
	line, point = lineHueStart, pointHueStart
	for range index {
		line = (line + lineHueStep) % hueModulus
		point = (point + pointHueStep) % hueModulus
	}
	return line, point
}
