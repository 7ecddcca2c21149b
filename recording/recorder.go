package recording

import (
	"errors"
	"image/color"
	"slices"

	"github.com/gogpu/linechart"
	"golang.org/x/image/colornames"
)

// Canvas defaults, matching a fresh HTML canvas.
const defaultFontSize = 10

// Recorder captures canvas operations as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// Only operations with a visible result produce a command: a Stroke or Fill
// of an empty path and FillText of an empty string are dropped. Style
// changes are folded into the commands that use them.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	path Path

	fill, stroke color.Color
	dash         []float64
	fontSize     float64
	align        linechart.TextAlign
}

var _ linechart.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given dimensions.
// It starts with black fill and stroke, solid lines, 10px left-aligned text.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		fill:     colornames.Black,
		stroke:   colornames.Black,
		fontSize: defaultFontSize,
		align:    linechart.AlignLeft,
	}
}

// Width returns the surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height.
func (r *Recorder) Height() int { return r.height }

// FinishRecording returns an immutable Recording of all commands so far.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// ClearRect implements linechart.Canvas.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.commands = append(r.commands, ClearRectCommand{X: x, Y: y, W: w, H: h})
}

// BeginPath implements linechart.Canvas.
func (r *Recorder) BeginPath() { r.path = r.path[:0] }

// ClosePath implements linechart.Canvas. It is a no-op on an empty path.
func (r *Recorder) ClosePath() {
	if len(r.path) == 0 {
		return
	}
	r.path = append(r.path, PathElement{Op: OpClose})
}

// MoveTo implements linechart.Canvas.
func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, PathElement{Op: OpMoveTo, X: x, Y: y})
}

// LineTo implements linechart.Canvas.
func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, PathElement{Op: OpLineTo, X: x, Y: y})
}

// Rect implements linechart.Canvas.
func (r *Recorder) Rect(x, y, w, h float64) {
	r.path = append(r.path, PathElement{Op: OpRect, X: x, Y: y, W: w, H: h})
}

// Arc implements linechart.Canvas.
func (r *Recorder) Arc(x, y, radius, angle1, angle2 float64) {
	r.path = append(r.path, PathElement{Op: OpArc, X: x, Y: y, R: radius, Angle1: angle1, Angle2: angle2})
}

// Stroke implements linechart.Canvas.
func (r *Recorder) Stroke() error {
	if !r.hasGeometry() {
		return nil
	}
	r.commands = append(r.commands, StrokePathCommand{
		Path:  r.path.Clone(),
		Color: r.stroke,
		Dash:  slices.Clone(r.dash),
	})
	return nil
}

// Fill implements linechart.Canvas.
func (r *Recorder) Fill() error {
	if !r.hasGeometry() {
		return nil
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.path.Clone(),
		Color: r.fill,
	})
	return nil
}

func (r *Recorder) hasGeometry() bool {
	return slices.ContainsFunc(r.path, func(e PathElement) bool { return e.Op != OpClose })
}

// SetStrokeStyle implements linechart.Canvas.
func (r *Recorder) SetStrokeStyle(c color.Color) { r.stroke = c }

// SetFillStyle implements linechart.Canvas.
func (r *Recorder) SetFillStyle(c color.Color) { r.fill = c }

// FillStyle implements linechart.Canvas.
func (r *Recorder) FillStyle() color.Color { return r.fill }

// StrokeStyle returns the current stroke color.
func (r *Recorder) StrokeStyle() color.Color { return r.stroke }

// SetLineDash implements linechart.Canvas.
func (r *Recorder) SetLineDash(pattern []float64) {
	if len(pattern) == 0 {
		r.dash = nil
		return
	}
	r.dash = slices.Clone(pattern)
}

// SetFontSize implements linechart.Canvas.
func (r *Recorder) SetFontSize(size float64) { r.fontSize = size }

// SetTextAlign implements linechart.Canvas.
func (r *Recorder) SetTextAlign(align linechart.TextAlign) { r.align = align }

// TextAlign returns the current text alignment.
func (r *Recorder) TextAlign() linechart.TextAlign { return r.align }

// FillText implements linechart.Canvas.
func (r *Recorder) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, FillTextCommand{
		Text:  s,
		X:     x,
		Y:     y,
		Size:  r.fontSize,
		Align: r.align,
		Color: r.fill,
	})
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Find returns every command of concrete type T, in order.
func Find[T Command](r *Recording) []T {
	var out []T
	for _, cmd := range r.commands {
		if c, ok := cmd.(T); ok {
			out = append(out, c)
		}
	}
	return out
}

// Playback replays the recording onto c. Errors from c are joined and
// returned after every command has been replayed. The fill style of c is
// restored after each text command.
func (r *Recording) Playback(c linechart.Canvas) error {
	var errs []error
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case ClearRectCommand:
			c.ClearRect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case StrokePathCommand:
			c.BeginPath()
			cmd.Path.replay(c)
			c.SetStrokeStyle(cmd.Color)
			c.SetLineDash(cmd.Dash)
			errs = append(errs, c.Stroke())
		case FillPathCommand:
			c.BeginPath()
			cmd.Path.replay(c)
			c.SetFillStyle(cmd.Color)
			errs = append(errs, c.Fill())
		case FillTextCommand:
			prev := c.FillStyle()
			c.SetFillStyle(cmd.Color)
			c.SetFontSize(cmd.Size)
			c.SetTextAlign(cmd.Align)
			c.FillText(cmd.Text, cmd.X, cmd.Y)
			c.SetFillStyle(prev)
		}
	}
	c.SetLineDash(nil)
	return errors.Join(errs...)
}
