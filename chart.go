package linechart

import (
	"fmt"
	"log/slog"
	"math"
)

// Bounds is the outer rectangle of a chart in surface coordinates.
//
// Bottom holds the anchor y and Top the anchor y plus height, so on a
// y-down surface Bottom is the visually upper edge.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// PlotArea is the region inside Bounds where data is plotted, inset to
// leave room for titles and axis labels. The X axis runs along EndY and
// the Y axis along StartX.
type PlotArea struct {
	StartX, EndX, StartY, EndY float64
}

// Plot-area insets from the outer bounds.
const (
	insetLeft   = 35
	insetRight  = 25
	insetBottom = 100
	insetTop    = 6
)

// Stats is a snapshot of the aggregate statistics and scale factors.
type Stats struct {
	MinX, MaxX, MinY, MaxY float64

	// MaxSeriesLength is the length of the longest series ever held.
	MaxSeriesLength int

	// ActualStepValueX is the marker stride: a marker is drawn at every
	// point whose index is a multiple of it.
	ActualStepValueX float64

	// CoordinateStepValueX and CoordinateStepValueY are pixels per data unit.
	CoordinateStepValueX float64
	CoordinateStepValueY float64
}

// Chart is a line chart widget. It owns its geometry and series and draws
// itself onto a Canvas.
//
// Chart is NOT safe for concurrent use. Mutations and Draw are expected
// to run on one rendering goroutine.
type Chart struct {
	x, y          float64
	width, height float64

	title, labelX, labelY string

	bounds Bounds
	plot   PlotArea
	data   []Series

	stats      Stats
	mergeStats bool
	alignX     bool
	log        *slog.Logger
}

// New creates a Chart from options. See Config for defaults.
func New(opts ...Option) *Chart {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Chart from an explicit Config.
// Invalid initial series are logged and skipped.
func NewWithConfig(cfg Config) *Chart {
	cfg.setDefaults()

	c := &Chart{
		x:          cfg.X,
		y:          cfg.Y,
		width:      cfg.Width,
		height:     cfg.Height,
		title:      cfg.Title,
		labelX:     cfg.LabelX,
		labelY:     cfg.LabelY,
		mergeStats: cfg.MergeStats,
		alignX:     cfg.AlignLabelsX,
		log:        cfg.Logger,
	}
	c.UpdateCoordinate(c.x, c.y)
	c.stats = Stats{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
	c.updateStat()

	for _, series := range cfg.Data {
		// AddData logs the rejection itself.
		_ = c.AddData(series)
	}
	return c
}

func (c *Chart) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// reject logs a refused mutation and returns err unchanged.
func (c *Chart) reject(op string, err error, attrs ...any) error {
	c.logger().Warn("linechart: mutation rejected", append([]any{"op", op, "err", err}, attrs...)...)
	return err
}

// Reset removes every series. Geometry, labels and the aggregate
// statistics are kept until the next mutation replaces them.
func (c *Chart) Reset() {
	c.data = nil
}

// UpdateCoordinate recomputes the outer bounds for an anchor at (x, y)
// using the current width and height.
func (c *Chart) UpdateCoordinate(x, y float64) {
	c.bounds = Bounds{
		Top:    y + c.height,
		Right:  x + c.width,
		Left:   x,
		Bottom: y,
	}
}

// AddData appends entries as a new series.
//
// Every entry must be valid, otherwise nothing is added. On success the
// aggregate extrema are replaced by the extrema of this series (or merged
// into them when the chart was built WithMergedStats).
func (c *Chart) AddData(entries []Entry) error {
	if entries == nil {
		return c.reject("AddData", ErrEmptyData)
	}

	series := make(Series, 0, len(entries))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, e := range entries {
		if !e.Valid() {
			return c.reject("AddData", fmt.Errorf("%w: entry %d: %v", ErrInvalidEntry, i, []float64(e)), "entry", i)
		}
		p := e.Point()
		series = append(series, p)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	c.data = append(c.data, series)
	if c.mergeStats {
		minX, maxX = math.Min(minX, c.stats.MinX), math.Max(maxX, c.stats.MaxX)
		minY, maxY = math.Min(minY, c.stats.MinY), math.Max(maxY, c.stats.MaxY)
	}
	c.stats.MinX, c.stats.MaxX = minX, maxX
	c.stats.MinY, c.stats.MaxY = minY, maxY
	c.stats.MaxSeriesLength = max(c.stats.MaxSeriesLength, len(series))
	c.updateStat()
	return nil
}

// AddEntry appends one entry to the series at index. An index equal to
// SeriesCount creates a new series. The aggregate extrema only ever grow.
func (c *Chart) AddEntry(index int, e Entry) error {
	if err := c.addEntry(index, e); err != nil {
		return c.reject("AddEntry", err, "index", index)
	}
	return nil
}

func (c *Chart) addEntry(index int, e Entry) error {
	if index < 0 || index > len(c.data) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, index, len(c.data))
	}
	if !e.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, []float64(e))
	}
	if index == len(c.data) {
		c.data = append(c.data, Series{})
	}

	p := e.Point()
	c.data[index] = append(c.data[index], p)

	s := &c.stats
	s.MaxX, s.MaxY = math.Max(p.X, s.MaxX), math.Max(p.Y, s.MaxY)
	s.MinX, s.MinY = math.Min(p.X, s.MinX), math.Min(p.Y, s.MinY)
	s.MaxSeriesLength = max(s.MaxSeriesLength, len(c.data[index]))
	c.updateStat()
	return nil
}

// ReplaceData replaces the series at index with entries, atomically: if any
// entry is invalid the previous series and statistics are restored and
// ErrInvalidEntry is returned. An index equal to SeriesCount appends.
func (c *Chart) ReplaceData(index int, entries []Entry) error {
	if index < 0 || index > len(c.data) {
		return c.reject("ReplaceData", fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, index, len(c.data)), "index", index)
	}

	appended := index == len(c.data)
	var old Series
	if appended {
		c.data = append(c.data, Series{})
	} else {
		old = c.data[index]
		c.data[index] = Series{}
	}
	oldStats := c.stats

	for i, e := range entries {
		if err := c.addEntry(index, e); err != nil {
			if appended {
				c.data = c.data[:index]
			} else {
				c.data[index] = old
			}
			c.stats = oldStats
			return c.reject("ReplaceData", fmt.Errorf("entry %d: %w", i, err), "index", index, "entry", i)
		}
	}
	return nil
}

// Resize changes the chart size, keeping the original anchor, and
// recomputes the plot area and scale. Call it whenever the drawing
// surface changes size.
func (c *Chart) Resize(width, height float64) {
	c.width = width
	c.height = height
	c.UpdateCoordinate(c.x, c.y)
	c.updateStat()
}

// Update is the per-frame hook called by the host loop. It does nothing.
func (c *Chart) Update() {}

// SeriesCount returns the number of series held.
func (c *Chart) SeriesCount() int { return len(c.data) }

// Series returns a copy of the series at index.
func (c *Chart) Series(index int) (Series, bool) {
	if index < 0 || index >= len(c.data) {
		return nil, false
	}
	return c.data[index].Clone(), true
}

// Bounds returns the outer rectangle.
func (c *Chart) Bounds() Bounds { return c.bounds }

// PlotArea returns the inset plotting region.
func (c *Chart) PlotArea() PlotArea { return c.plot }

// Stats returns the current aggregate statistics and scale factors.
func (c *Chart) Stats() Stats { return c.stats }

// Position returns the chart anchor.
func (c *Chart) Position() (x, y float64) { return c.x, c.y }

// Size returns the chart width and height.
func (c *Chart) Size() (width, height float64) { return c.width, c.height }

// Title returns the chart title.
func (c *Chart) Title() string { return c.title }

// LabelX returns the x axis label.
func (c *Chart) LabelX() string { return c.labelX }

// LabelY returns the y axis label.
func (c *Chart) LabelY() string { return c.labelY }

// SetTitle sets the chart title.
func (c *Chart) SetTitle(title string) { c.title = title }

// SetLabels sets the x and y axis labels.
func (c *Chart) SetLabels(labelX, labelY string) {
	c.labelX, c.labelY = labelX, labelY
}
