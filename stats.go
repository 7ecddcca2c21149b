package linechart

import "math"

// updateStat derives the plot area from the bounds and the scale factors
// from the aggregate extrema. None of the step values it produces is ever
// 0, NaN or infinite.
func (c *Chart) updateStat() {
	b := c.bounds
	c.plot = PlotArea{
		StartX: b.Left + insetLeft,
		EndX:   b.Right - insetRight,
		StartY: b.Bottom + insetBottom,
		EndY:   b.Top + insetTop,
	}

	s := &c.stats
	rangeX := s.MaxX - s.MinX
	rangeY := s.MaxY - s.MinY

	s.ActualStepValueX = orOne(math.Max(float64(s.MaxSeriesLength)/rangeX, 1))
	s.CoordinateStepValueX = orOne((c.plot.EndX - c.plot.StartX) / rangeX)
	s.CoordinateStepValueY = orOne((c.plot.EndY - c.plot.StartY) / rangeY)

	c.logger().Debug("linechart: stats updated",
		"minX", s.MinX, "maxX", s.MaxX, "minY", s.MinY, "maxY", s.MaxY,
		"maxSeriesLength", s.MaxSeriesLength)
}

// orOne clamps degenerate step values to 1.
func orOne(v float64) float64 {
	if v == 0 || !isFinite(v) {
		return 1
	}
	return v
}

// UpdateMax recomputes the aggregate extrema and the longest series length
// from every series currently held, then refreshes the scale factors.
// Unlike the incremental paths it can shrink the extrema, e.g. after Reset
// or a ReplaceData that dropped the outermost points.
func (c *Chart) UpdateMax() {
	s := &c.stats
	s.MinX, s.MaxX = math.Inf(1), math.Inf(-1)
	s.MinY, s.MaxY = math.Inf(1), math.Inf(-1)
	s.MaxSeriesLength = 0
	for _, series := range c.data {
		s.MaxSeriesLength = max(s.MaxSeriesLength, len(series))
		for _, p := range series {
			s.MinX, s.MaxX = math.Min(s.MinX, p.X), math.Max(s.MaxX, p.X)
			s.MinY, s.MaxY = math.Min(s.MinY, p.Y), math.Max(s.MaxY, p.Y)
		}
	}
	c.updateStat()
}

// Map converts a data point to surface coordinates.
func (c *Chart) Map(p Point) (px, py float64) {
	s := c.stats
	px = (p.X-s.MinX)*s.CoordinateStepValueX + c.plot.StartX
	py = c.plot.EndY - (p.Y-s.MinY)*s.CoordinateStepValueY
	return px, py
}
