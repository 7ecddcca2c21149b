// Command linechart renders a line chart described by a JSON5 file to PNG.
//
// Usage:
//
//	linechart -config chart.json5 -output chart.png
//
// Without -config a built-in demo chart is rendered.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/linechart"
	"github.com/gogpu/linechart/integration/ggcanvas"
)

func main() {
	var (
		config  = flag.String("config", "", "JSON5 chart description")
		width   = flag.Int("width", 0, "image width (default from config, then 800)")
		height  = flag.Int("height", 0, "image height (default from config, then 600)")
		output  = flag.String("output", "chart.png", "output file")
		font    = flag.String("font", "", "TrueType font file for labels")
		verbose = flag.Bool("v", false, "log chart updates to stderr")
	)
	flag.Parse()

	if *verbose {
		linechart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*config, *output, *font, *width, *height); err != nil {
		log.Fatalf("linechart: %v", err)
	}
}

func run(configPath, output, fontPath string, width, height int) error {
	fc := demoConfig()
	if configPath != "" {
		var err error
		if fc, err = loadConfig(configPath); err != nil {
			return err
		}
	}

	opts, err := fc.options(float64(width), float64(height))
	if err != nil {
		return err
	}
	chart := linechart.New(opts...)
	w, h := chart.Size()

	var canvasOpts []ggcanvas.Option
	if fontPath != "" {
		ttf, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		canvasOpts = append(canvasOpts, ggcanvas.WithFont(ttf))
	}

	cv, err := ggcanvas.New(int(w), int(h), canvasOpts...)
	if err != nil {
		return err
	}
	defer cv.Close()

	if err := chart.Draw(cv); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := cv.SavePNG(output); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	log.Printf("Chart saved to %s (%dx%d, %d series)\n", output, int(w), int(h), chart.SeriesCount())
	return nil
}
