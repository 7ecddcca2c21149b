package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/admpub/json5"
	"github.com/gogpu/linechart"
)

// fileConfig is the JSON5 document read by -config.
//
//	{
//	  // comments and unquoted keys are allowed
//	  title: "Frame time",
//	  labelX: "frame", labelY: "ms",
//	  width: 640, height: 480,
//	  mergeStats: true,
//	  series: [
//	    [[0, 16], [1, 17], [2, 15]],
//	  ],
//	}
type fileConfig struct {
	Title      string    `json:"title"`
	LabelX     string    `json:"labelX"`
	LabelY     string    `json:"labelY"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	MergeStats bool      `json:"mergeStats"`
	Series     [][][]any `json:"series"`
}

var errBadSeries = errors.New("bad series")

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*fileConfig, error) {
	var fc fileConfig
	if err := json5.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// entries converts the raw series to chart entries. Any entry the chart
// would reject is reported with its position.
func (fc *fileConfig) entries() ([][]linechart.Entry, error) {
	out := make([][]linechart.Entry, 0, len(fc.Series))
	for k, raw := range fc.Series {
		series := make([]linechart.Entry, 0, len(raw))
		for i, values := range raw {
			e := linechart.NewEntry(values...)
			if !e.Valid() {
				return nil, fmt.Errorf("%w: series %d entry %d: %v", errBadSeries, k, i, values)
			}
			series = append(series, e)
		}
		out = append(out, series)
	}
	return out, nil
}

// options turns the file into chart options. Flags override the size when
// set.
func (fc *fileConfig) options(width, height float64) ([]linechart.Option, error) {
	data, err := fc.entries()
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		width = fc.Width
	}
	if height <= 0 {
		height = fc.Height
	}
	opts := []linechart.Option{
		linechart.WithSize(width, height),
		linechart.WithTitle(fc.Title),
		linechart.WithLabels(fc.LabelX, fc.LabelY),
		linechart.WithData(data...),
	}
	if fc.MergeStats {
		opts = append(opts, linechart.WithMergedStats())
	}
	return opts, nil
}

// demoConfig is rendered when no -config is given.
func demoConfig() *fileConfig {
	fc := &fileConfig{
		Title:      "Demo",
		LabelX:     "t",
		LabelY:     "value",
		MergeStats: true,
	}
	a := make([][]any, 0, 40)
	b := make([][]any, 0, 40)
	for i := range 40 {
		a = append(a, []any{i, 50 + (40-i)*((i%7)-3)})
		b = append(b, []any{i, 20 + i*i/16})
	}
	fc.Series = [][][]any{a, b}
	return fc
}
