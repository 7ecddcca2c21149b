package linechart

import (
	"errors"
	"math"
	"strconv"
)

// Axis annotation limits and styling.
const (
	maxReferenceLinesY = 26
	maxLabelsX         = 20
	markerRadius       = 2
	labelOffsetY       = 20 // from Left to the y value labels
	labelOffsetX       = 15 // from EndY down to the x value labels
)

var referenceDash = []float64{1, 12}

// Draw renders the chart onto cv: border, titles, axes, reference lines,
// axis values, then every series as connected segments with markers.
//
// Draw does not modify the chart. Canvas errors do not stop drawing; they
// are joined and returned.
func (c *Chart) Draw(cv Canvas) error {
	var errs []error
	b, p, s := c.bounds, c.plot, c.stats

	cv.ClearRect(b.Left, b.Bottom, c.width, c.height)
	cv.BeginPath()
	cv.SetStrokeStyle(ColorBorder)
	cv.Rect(b.Left, b.Bottom, c.width, c.height)
	errs = append(errs, cv.Stroke())
	cv.ClosePath()

	centerX := (b.Left + b.Right) / 2
	c.DrawChartText(cv, c.title, centerX, b.Bottom+p.StartY/4, WithTextSize(c.height/15))
	c.DrawChartText(cv, c.labelX, centerX, b.Top+40, WithTextSize(c.height/25), WithTextColor(ColorLabel))
	c.DrawChartText(cv, c.labelY, b.Left+10, b.Bottom+p.StartY/2,
		WithTextSize(c.height/25), WithTextColor(ColorLabel), WithTextAlign(AlignLeft))

	// Axes
	cv.BeginPath()
	cv.SetStrokeStyle(ColorBorder)
	cv.MoveTo(p.StartX, p.StartY)
	cv.LineTo(p.StartX, p.EndY)
	cv.MoveTo(p.StartX, p.EndY)
	cv.LineTo(p.EndX, p.EndY)
	errs = append(errs, cv.Stroke())
	cv.ClosePath()

	// Without data the extrema are still infinite and there is no scale
	// to annotate.
	cv.SetStrokeStyle(ColorReference)
	cv.SetLineDash(referenceDash)
	if isFinite(s.MinY) && isFinite(s.MaxY) {
		errs = append(errs, c.drawValuesY(cv)...)
	}
	if isFinite(s.MinX) && isFinite(s.MaxX) {
		c.drawValuesX(cv)
	}
	cv.SetLineDash(nil)

	for k, series := range c.data {
		errs = append(errs, c.drawSeries(cv, k, series)...)
	}

	cv.SetStrokeStyle(ColorBorder)
	return errors.Join(errs...)
}

// drawValuesY draws the dashed horizontal reference lines, bottom to top,
// each annotated with its y value.
func (c *Chart) drawValuesY(cv Canvas) []error {
	var errs []error
	p, s := c.plot, c.stats

	rangeY := s.MaxY - s.MinY
	divisions := math.Min(maxReferenceLinesY, rangeY)
	stepCoor := (p.EndY - p.StartY) / divisions
	stepValue := orOne(math.Max(rangeY/divisions, 1))
	fontSize := valueFontSize(s.MaxY)

	yy, val := p.EndY, s.MinY
	for i := 0; i <= maxReferenceLinesY && yy > p.StartY-1; i++ {
		if i > 0 {
			cv.BeginPath()
			cv.MoveTo(p.StartX, yy)
			cv.LineTo(p.EndX, yy)
			errs = append(errs, cv.Stroke())
			cv.ClosePath()
		}
		c.DrawChartText(cv, formatValue(val), c.bounds.Left+labelOffsetY, yy,
			WithTextSize(fontSize), WithTextColor(ColorLabel))

		// A degenerate step would never leave the loop.
		if !(stepCoor > 0) || math.IsInf(stepCoor, 0) {
			break
		}
		yy -= stepCoor
		val += stepValue
	}
	return errs
}

// drawValuesX draws the x value labels under the X axis, left to right.
//
// The pixel step divides the plot width by the longest series length.
// The value step divides the x range by the series count, unless the
// chart aligns its labels, in which case both use the same division.
func (c *Chart) drawValuesX(cv Canvas) {
	p, s := c.plot, c.stats

	divisions := math.Min(maxLabelsX, float64(s.MaxSeriesLength))
	stepCoor := (p.EndX - p.StartX) / divisions

	var stepValue float64
	if c.alignX {
		stepValue = (s.MaxX - s.MinX) / math.Max(divisions, 1)
		if !isFinite(stepValue) {
			stepValue = 0
		}
	} else {
		stepValue = orOne(math.Max((s.MaxX-s.MinX)/math.Min(maxLabelsX, float64(len(c.data))), 1))
	}
	fontSize := valueFontSize(s.MaxX)

	xx, val := p.StartX, s.MinX
	for i := 0; i <= maxLabelsX && xx <= p.EndX; i++ {
		c.DrawChartText(cv, formatValue(val), xx, p.EndY+labelOffsetX,
			WithTextSize(fontSize), WithTextColor(ColorLabel))

		if !(stepCoor > 0) || math.IsInf(stepCoor, 0) {
			break
		}
		xx += stepCoor
		val += stepValue
	}
}

// drawSeries draws the k-th series: a segment from each point to the next
// and a marker on every ActualStepValueX-th point. Points that map outside
// finite surface coordinates are skipped and break the line.
func (c *Chart) drawSeries(cv Canvas, k int, series Series) []error {
	var errs []error
	lineColor, pointColor := SeriesColors(k)
	stride := c.stats.ActualStepValueX

	var prevX, prevY float64
	joined := false
	for i, pt := range series {
		x, y := c.Map(pt)
		if !isFinite(x) || !isFinite(y) {
			joined = false
			continue
		}

		if joined {
			cv.BeginPath()
			cv.SetStrokeStyle(lineColor)
			cv.MoveTo(prevX, prevY)
			cv.LineTo(x, y)
			errs = append(errs, cv.Stroke())
			cv.ClosePath()
		}

		if i == 0 || int(math.Mod(float64(i), stride)) == 0 {
			cv.BeginPath()
			cv.SetFillStyle(pointColor)
			cv.Arc(x, y, markerRadius, 0, 2*math.Pi)
			errs = append(errs, cv.Fill())
			cv.ClosePath()
		}

		prevX, prevY = x, y
		joined = true
	}
	return errs
}

// valueFontSize shrinks axis value labels as the magnitude grows.
func valueFontSize(maxValue float64) float64 {
	switch {
	case maxValue >= 100000:
		return 8
	case maxValue >= 1000:
		return 10
	default:
		return 12
	}
}

// formatValue rounds to the nearest integer, halves toward +Inf.
func formatValue(v float64) string {
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', -1, 64)
}
