package recording

import (
	"image/color"

	"github.com/gogpu/linechart"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClearRect  CommandType = iota // Reset a rectangle to the background
	CmdStrokePath                    // Stroke a path
	CmdFillPath                      // Fill a path
	CmdFillText                      // Draw text
)

var commandTypeNames = [...]string{
	CmdClearRect:  "ClearRect",
	CmdStrokePath: "StrokePath",
	CmdFillPath:   "FillPath",
	CmdFillText:   "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// PathOp identifies the kind of a path element.
type PathOp uint8

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpRect
	OpArc
	OpClose
)

var pathOpNames = [...]string{
	OpMoveTo: "MoveTo",
	OpLineTo: "LineTo",
	OpRect:   "Rect",
	OpArc:    "Arc",
	OpClose:  "Close",
}

// String returns the string representation of a PathOp.
func (op PathOp) String() string {
	if int(op) < len(pathOpNames) {
		return pathOpNames[op]
	}
	return "Unknown"
}

// PathElement is one step of a recorded path. Which fields are meaningful
// depends on Op:
//   - OpMoveTo, OpLineTo: X, Y
//   - OpRect: X, Y, W, H
//   - OpArc: X, Y (center), R, Angle1, Angle2
//   - OpClose: none
type PathElement struct {
	Op             PathOp
	X, Y           float64
	W, H           float64
	R              float64
	Angle1, Angle2 float64
}

// Path is a recorded path.
type Path []PathElement

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// replay rebuilds the path on c.
func (p Path) replay(c linechart.Canvas) {
	for _, e := range p {
		switch e.Op {
		case OpMoveTo:
			c.MoveTo(e.X, e.Y)
		case OpLineTo:
			c.LineTo(e.X, e.Y)
		case OpRect:
			c.Rect(e.X, e.Y, e.W, e.H)
		case OpArc:
			c.Arc(e.X, e.Y, e.R, e.Angle1, e.Angle2)
		case OpClose:
			c.ClosePath()
		}
	}
}

// --------------------------------------------------------------------------
// Commands
// --------------------------------------------------------------------------

// ClearRectCommand resets a rectangle to the background.
type ClearRectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path  Path
	Color color.Color
	// Dash is the dash pattern in effect; nil for solid lines.
	Dash []float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path  Path
	Color color.Color
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// FillTextCommand draws one line of text.
type FillTextCommand struct {
	Text  string
	X, Y  float64
	Size  float64
	Align linechart.TextAlign
	Color color.Color
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }
