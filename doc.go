// Package linechart provides a line chart widget for gogpu applications.
//
// # Overview
//
// A Chart holds one or more series of (x, y) points, keeps aggregate
// extrema and pixel scale factors up to date as data arrives, and draws
// itself onto any [Canvas]: border, title and axis labels, axes, dashed
// reference lines with value labels, and one colored line with point
// markers per series. It is meant to be embedded in a larger application
// such as a game HUD and owns no data source, input handling or storage.
//
// # Quick Start
//
//	chart := linechart.New(
//	    linechart.WithSize(640, 480),
//	    linechart.WithTitle("Frame time"),
//	    linechart.WithLabels("frame", "ms"),
//	    linechart.WithData([]linechart.Entry{{1, 16}, {2, 17}, {3, 15}}),
//	)
//
//	// Feed live values
//	_ = chart.AddEntry(0, linechart.Entry{4, 18})
//
//	// Draw with the gg raster backend
//	cv, _ := ggcanvas.New(640, 480)
//	_ = chart.Draw(cv)
//	_ = cv.SavePNG("chart.png")
//
// # Mutations
//
// AddData, AddEntry and ReplaceData validate their input before touching
// the chart. On failure they return ErrEmptyData, ErrInvalidEntry or
// ErrInvalidIndex (test with errors.Is), log the rejection at Warn level,
// and leave the chart unchanged.
//
// AddData replaces the aggregate extrema with those of the new series
// unless the chart was built WithMergedStats. AddEntry only ever widens
// them. UpdateMax recomputes them from scratch.
//
// # Coordinate System
//
// Surface coordinates are y-down. The chart anchor (x, y) is the upper left
// corner; Bounds.Bottom holds y and Bounds.Top holds y+height. A data point
// maps to
//
//	px = (x - minX) * CoordinateStepValueX + StartX
//	py = EndY - (y - minY) * CoordinateStepValueY
//
// # Backends
//
//   - integration/ggcanvas: raster rendering with github.com/gogpu/gg
//   - recording: captures draw calls as typed commands for tests and replay
package linechart
