package linechart_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/linechart"
	"github.com/gogpu/linechart/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, c *linechart.Chart) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder(1000, 1000)
	require.NoError(t, c.Draw(rec))
	return rec.FinishRecording()
}

// textsAt returns the recorded text commands drawn at the given x.
func textsAt(r *recording.Recording, x float64) []recording.FillTextCommand {
	var out []recording.FillTextCommand
	for _, cmd := range recording.Find[recording.FillTextCommand](r) {
		if cmd.X == x {
			out = append(out, cmd)
		}
	}
	return out
}

func dashed(r *recording.Recording) []recording.StrokePathCommand {
	var out []recording.StrokePathCommand
	for _, cmd := range recording.Find[recording.StrokePathCommand](r) {
		if cmd.Dash != nil {
			out = append(out, cmd)
		}
	}
	return out
}

func fourPoints() []linechart.Entry {
	return []linechart.Entry{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
}

func TestDrawFrame(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	r := record(t, c)

	cmds := r.Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, recording.ClearRectCommand{X: 0, Y: 0, W: 800, H: 600}, cmds[0])

	strokes := recording.Find[recording.StrokePathCommand](r)
	require.GreaterOrEqual(t, len(strokes), 2)

	border := strokes[0]
	assert.Equal(t, linechart.ColorBorder, border.Color)
	assert.Equal(t, recording.Path{{Op: recording.OpRect, X: 0, Y: 0, W: 800, H: 600}}, border.Path)

	axes := strokes[1]
	assert.Equal(t, recording.Path{
		{Op: recording.OpMoveTo, X: 35, Y: 100},
		{Op: recording.OpLineTo, X: 35, Y: 606},
		{Op: recording.OpMoveTo, X: 35, Y: 606},
		{Op: recording.OpLineTo, X: 775, Y: 606},
	}, axes.Path)
	assert.Nil(t, axes.Dash)
}

func TestDrawTitles(t *testing.T) {
	c := linechart.New(
		linechart.WithTitle("Ping"),
		linechart.WithLabels("time", "ms"),
		linechart.WithData(fourPoints()),
	)
	r := record(t, c)

	texts := recording.Find[recording.FillTextCommand](r)
	require.GreaterOrEqual(t, len(texts), 3)

	assert.Equal(t, recording.FillTextCommand{
		Text: "Ping", X: 400, Y: 25, Size: 40, Align: linechart.AlignCenter, Color: linechart.ColorTitle,
	}, texts[0])
	assert.Equal(t, recording.FillTextCommand{
		Text: "time", X: 400, Y: 640, Size: 24, Align: linechart.AlignCenter, Color: linechart.ColorLabel,
	}, texts[1])
	assert.Equal(t, recording.FillTextCommand{
		Text: "ms", X: 10, Y: 50, Size: 24, Align: linechart.AlignLeft, Color: linechart.ColorLabel,
	}, texts[2])
}

func TestDrawValueLabelsY(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	r := record(t, c)

	labels := textsAt(r, 20)
	require.Len(t, labels, 4)
	for i, want := range []string{"0", "1", "2", "3"} {
		assert.Equal(t, want, labels[i].Text)
		assert.Equal(t, 12.0, labels[i].Size)
	}
	assert.Equal(t, 606.0, labels[0].Y)
	assert.InDelta(t, 100.0, labels[3].Y, 1e-9)

	refs := dashed(r)
	require.Len(t, refs, 3, "one reference line per label above the axis")
	for _, ref := range refs {
		assert.Equal(t, []float64{1, 12}, ref.Dash)
		assert.Equal(t, linechart.ColorReference, ref.Color)
		assert.Equal(t, 35.0, ref.Path[0].X)
		assert.Equal(t, 775.0, ref.Path[1].X)
	}
}

func TestDrawValueLabelsX(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	r := record(t, c)

	var labels []recording.FillTextCommand
	for _, cmd := range recording.Find[recording.FillTextCommand](r) {
		if cmd.Y == 621 {
			labels = append(labels, cmd)
		}
	}
	// Pixel steps divide the width by the longest series (4). Value steps
	// divide the x range by the series count (1), so they run past maxX.
	require.Len(t, labels, 5)
	wantX := []float64{35, 220, 405, 590, 775}
	wantText := []string{"0", "3", "6", "9", "12"}
	for i := range labels {
		assert.Equal(t, wantX[i], labels[i].X)
		assert.Equal(t, wantText[i], labels[i].Text)
	}
}

func labelsX(r *recording.Recording, endY float64) []recording.FillTextCommand {
	var out []recording.FillTextCommand
	for _, cmd := range recording.Find[recording.FillTextCommand](r) {
		if cmd.Y == endY+15 {
			out = append(out, cmd)
		}
	}
	return out
}

func ramp(n int) []linechart.Entry {
	entries := make([]linechart.Entry, n)
	for i := range entries {
		entries[i] = linechart.Entry{float64(i), float64(i)}
	}
	return entries
}

func TestDrawValueLabelsXAligned(t *testing.T) {
	c := linechart.New(linechart.WithAlignedLabelsX(), linechart.WithData(ramp(101)))
	labels := labelsX(record(t, c), c.PlotArea().EndY)

	require.Len(t, labels, 21)
	assert.Equal(t, "0", labels[0].Text)
	assert.Equal(t, 35.0, labels[0].X)
	assert.Equal(t, "100", labels[20].Text)
	assert.Equal(t, 775.0, labels[20].X)

	for k, l := range labels {
		px, _ := c.Map(linechart.Point{X: float64(5 * k)})
		assert.InDelta(t, px, l.X, 1e-9, "label %d sits over x=%d", k, 5*k)
	}
}

func TestDrawValueLabelsXDefaultStep(t *testing.T) {
	c := linechart.New(linechart.WithData(ramp(101)))
	labels := labelsX(record(t, c), c.PlotArea().EndY)

	require.Len(t, labels, 21)
	assert.Equal(t, 775.0, labels[20].X)
	assert.Equal(t, "2000", labels[20].Text)
}

func TestDrawValueLabelsXAlignedFlatAxis(t *testing.T) {
	c := linechart.New(linechart.WithAlignedLabelsX(), linechart.WithData([]linechart.Entry{{7, 1}}))
	labels := labelsX(record(t, c), c.PlotArea().EndY)

	require.Len(t, labels, 2)
	for _, l := range labels {
		assert.Equal(t, "7", l.Text)
	}
}

func TestDrawValueFontShrinks(t *testing.T) {
	tests := []struct {
		max  float64
		size float64
	}{
		{999, 12},
		{1000, 10},
		{99999, 10},
		{100000, 8},
	}
	for _, tt := range tests {
		c := linechart.New(linechart.WithData([]linechart.Entry{{0, 0}, {1, tt.max}}))
		labels := textsAt(record(t, c), 20)
		require.NotEmpty(t, labels)
		assert.Equal(t, tt.size, labels[0].Size, "maxY %v", tt.max)
	}
}

func TestDrawSeries(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	r := record(t, c)

	lineColor, pointColor := linechart.SeriesColors(0)

	var segments []recording.StrokePathCommand
	for _, s := range recording.Find[recording.StrokePathCommand](r) {
		if s.Color == lineColor {
			segments = append(segments, s)
		}
	}
	require.Len(t, segments, 3)
	for i, seg := range segments {
		x0, y0 := c.Map(linechart.Point{X: float64(i), Y: float64(i)})
		x1, y1 := c.Map(linechart.Point{X: float64(i + 1), Y: float64(i + 1)})
		assert.Equal(t, recording.Path{
			{Op: recording.OpMoveTo, X: x0, Y: y0},
			{Op: recording.OpLineTo, X: x1, Y: y1},
		}, seg.Path)
	}

	// Stride is 4/3: int(i mod 4/3) is 0 at indices 0, 2 and 3.
	markers := recording.Find[recording.FillPathCommand](r)
	require.Len(t, markers, 3)
	for _, m := range markers {
		assert.Equal(t, pointColor, m.Color)
		assert.Equal(t, recording.OpArc, m.Path[0].Op)
		assert.Equal(t, 2.0, m.Path[0].R)
		assert.Equal(t, 2*math.Pi, m.Path[0].Angle2)
	}
	x3, y3 := c.Map(linechart.Point{X: 3, Y: 3})
	assert.Equal(t, x3, markers[2].Path[0].X)
	assert.Equal(t, y3, markers[2].Path[0].Y)
}

func TestDrawSeriesColorsRotate(t *testing.T) {
	c := linechart.New(linechart.WithMergedStats(), linechart.WithData(
		[]linechart.Entry{{0, 0}, {1, 1}},
		[]linechart.Entry{{0, 1}, {1, 0}},
	))
	r := record(t, c)

	line0, point0 := linechart.SeriesColors(0)
	line1, point1 := linechart.SeriesColors(1)
	assert.Equal(t, linechart.HSL(300, 1, 0.5), line0)
	assert.Equal(t, linechart.HSL(200, 1, 0.5), point0)
	assert.Equal(t, linechart.HSL(39, 1, 0.5), line1)
	assert.Equal(t, linechart.HSL(250, 1, 0.5), point1)

	fillColors := map[color.Color]int{}
	for _, f := range recording.Find[recording.FillPathCommand](r) {
		fillColors[f.Color]++
	}
	// Stride 2 over two points: only the first point gets a marker.
	assert.Equal(t, 1, fillColors[point0])
	assert.Equal(t, 1, fillColors[point1])
}

func TestDrawEmptyChart(t *testing.T) {
	c := linechart.New()
	r := record(t, c)

	assert.Equal(t, 1, r.Count(recording.CmdClearRect))
	assert.Equal(t, 2, r.Count(recording.CmdStrokePath), "border and axes only")
	assert.Equal(t, 0, r.Count(recording.CmdFillPath))
	assert.Equal(t, 0, r.Count(recording.CmdFillText))
}

func TestDrawSinglePointTerminates(t *testing.T) {
	c := linechart.New()
	require.NoError(t, c.AddEntry(0, linechart.Entry{5, 5}))
	r := record(t, c)

	assert.Len(t, textsAt(r, 20), 1, "a flat y axis gets one label")
	assert.Empty(t, dashed(r))
	assert.Equal(t, 1, r.Count(recording.CmdFillPath))
}

func TestDrawAfterResize(t *testing.T) {
	c := linechart.New(linechart.WithPosition(10, 10), linechart.WithData(fourPoints()))
	c.Resize(300, 200)
	r := record(t, c)

	assert.Equal(t, recording.ClearRectCommand{X: 10, Y: 10, W: 300, H: 200}, r.Commands()[0])
	border := recording.Find[recording.StrokePathCommand](r)[0]
	assert.Equal(t, recording.Path{{Op: recording.OpRect, X: 10, Y: 10, W: 300, H: 200}}, border.Path)

	p := c.PlotArea()
	assert.Equal(t, linechart.PlotArea{StartX: 45, EndX: 285, StartY: 110, EndY: 216}, p)
	markers := recording.Find[recording.FillPathCommand](r)
	require.NotEmpty(t, markers)
	for _, m := range markers {
		x, y := m.Path[0].X, m.Path[0].Y
		assert.True(t, x > p.StartX-1e-9 && x < p.EndX+1e-9, "marker x %v outside plot", x)
		assert.True(t, y > p.StartY-1e-9 && y < p.EndY+1e-9, "marker y %v outside plot", y)
	}
}

func assertFinitePaths(t *testing.T, r *recording.Recording) {
	t.Helper()
	var paths []recording.Path
	for _, s := range recording.Find[recording.StrokePathCommand](r) {
		paths = append(paths, s.Path)
	}
	for _, f := range recording.Find[recording.FillPathCommand](r) {
		paths = append(paths, f.Path)
	}
	for _, p := range paths {
		for _, e := range p {
			for _, v := range []float64{e.X, e.Y, e.W, e.H, e.R} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite %v in %v", v, e)
			}
		}
	}
	for _, txt := range recording.Find[recording.FillTextCommand](r) {
		assert.False(t, math.IsInf(txt.X, 0) || math.IsInf(txt.Y, 0), "text %q at %v,%v", txt.Text, txt.X, txt.Y)
	}
}

func TestDrawAfterEmptySeriesOverwritesStats(t *testing.T) {
	c := linechart.New(linechart.WithData([]linechart.Entry{{0, 0}, {1, 1}, {2, 2}}))
	require.NoError(t, c.AddData([]linechart.Entry{}))
	require.True(t, math.IsInf(c.Stats().MinX, 1))

	r := record(t, c)
	assertFinitePaths(t, r)

	assert.Equal(t, 2, r.Count(recording.CmdStrokePath), "border and axes only")
	assert.Equal(t, 0, r.Count(recording.CmdFillPath))
}

func TestDrawSkipsOverflowingPoints(t *testing.T) {
	c := linechart.New(linechart.WithMergedStats(), linechart.WithData(
		[]linechart.Entry{{-math.MaxFloat64, 0}, {0, 1}, {math.MaxFloat64, 2}},
	))
	r := record(t, c)
	assertFinitePaths(t, r)
}

func TestDrawDoesNotMutate(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	stats, bounds, plot := c.Stats(), c.Bounds(), c.PlotArea()
	series, _ := c.Series(0)

	record(t, c)

	assert.Equal(t, stats, c.Stats())
	assert.Equal(t, bounds, c.Bounds())
	assert.Equal(t, plot, c.PlotArea())
	after, _ := c.Series(0)
	assert.Equal(t, series, after)
}

func TestDrawRestoresState(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	rec := recording.NewRecorder(800, 800)
	require.NoError(t, c.Draw(rec))

	assert.Equal(t, linechart.ColorBorder, rec.StrokeStyle())
	assert.Equal(t, linechart.AlignLeft, rec.TextAlign())

	// Dash is reset before the series are drawn.
	for _, s := range recording.Find[recording.StrokePathCommand](rec.FinishRecording()) {
		if s.Color != linechart.ColorReference {
			assert.Nil(t, s.Dash)
		}
	}
}

type failingCanvas struct {
	*recording.Recorder
}

var errBroken = errors.New("broken")

func (failingCanvas) Stroke() error { return errBroken }

func TestDrawJoinsCanvasErrors(t *testing.T) {
	c := linechart.New(linechart.WithData(fourPoints()))
	rec := recording.NewRecorder(800, 800)

	err := c.Draw(failingCanvas{rec})
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, 3, rec.FinishRecording().Count(recording.CmdFillPath), "drawing continues after errors")
}

func TestDrawChartText(t *testing.T) {
	c := linechart.New(linechart.WithSize(500, 300))
	rec := recording.NewRecorder(500, 300)
	rec.SetFillStyle(color.White)

	c.DrawChartText(rec, "hud", 10, 20)
	c.DrawChartText(rec, "right", 30, 40,
		linechart.WithTextSize(18),
		linechart.WithTextColor(color.Black),
		linechart.WithTextAlign(linechart.AlignRight))

	texts := recording.Find[recording.FillTextCommand](rec.FinishRecording())
	require.Len(t, texts, 2)
	assert.Equal(t, recording.FillTextCommand{
		Text: "hud", X: 10, Y: 20, Size: 10, Align: linechart.AlignCenter, Color: linechart.ColorTitle,
	}, texts[0])
	assert.Equal(t, recording.FillTextCommand{
		Text: "right", X: 30, Y: 40, Size: 18, Align: linechart.AlignRight, Color: color.Black,
	}, texts[1])

	assert.Equal(t, color.Color(color.White), rec.FillStyle(), "fill style restored")
	assert.Equal(t, linechart.AlignLeft, rec.TextAlign(), "alignment reset to left")
}

func TestDrawChartTextDefaultSizeTruncates(t *testing.T) {
	c := linechart.New(linechart.WithSize(649, 300))
	rec := recording.NewRecorder(649, 300)
	c.DrawChartText(rec, "x", 0, 0)

	texts := recording.Find[recording.FillTextCommand](rec.FinishRecording())
	require.Len(t, texts, 1)
	assert.Equal(t, 12.0, texts[0].Size)
}
