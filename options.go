package linechart

import "log/slog"

// Default geometry used when a Config leaves it unset.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config holds the construction parameters of a Chart.
//
// The zero value is usable: the chart is anchored at (0, 0), has
// DefaultWidth x DefaultHeight, no data and no labels.
type Config struct {
	// X and Y anchor the chart on the drawing surface.
	X, Y float64

	// Width and Height of the chart. Non-positive values fall back to
	// DefaultWidth and DefaultHeight.
	Width, Height float64

	// Data holds initial series, each a sequence of entries.
	Data [][]Entry

	Title  string
	LabelX string
	LabelY string

	// MergeStats makes AddData merge the new series' extrema into the
	// aggregate instead of overwriting it.
	MergeStats bool

	// AlignLabelsX steps the x value labels by the same division as their
	// pixel positions, so each label names the x found under it. By default
	// the value step divides the x range by the series count.
	AlignLabelsX bool

	// Logger overrides the package logger for this chart.
	Logger *slog.Logger
}

// Option configures a Chart.
type Option func(*Config)

// WithPosition sets the chart anchor.
func WithPosition(x, y float64) Option {
	return func(c *Config) {
		c.X, c.Y = x, y
	}
}

// WithSize sets the chart width and height.
func WithSize(width, height float64) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}

// WithData appends initial series.
func WithData(series ...[]Entry) Option {
	return func(c *Config) {
		c.Data = append(c.Data, series...)
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithLabels sets the x and y axis labels.
func WithLabels(labelX, labelY string) Option {
	return func(c *Config) {
		c.LabelX, c.LabelY = labelX, labelY
	}
}

// WithMergedStats makes every AddData widen the aggregate extrema rather
// than replace them, so all series share one scale.
func WithMergedStats() Option {
	return func(c *Config) {
		c.MergeStats = true
	}
}

// WithAlignedLabelsX makes the x value labels agree with the x positions
// the data is plotted at.
func WithAlignedLabelsX() Option {
	return func(c *Config) {
		c.AlignLabelsX = true
	}
}

// WithLogger sets a chart-specific logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func (c *Config) setDefaults() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
}
