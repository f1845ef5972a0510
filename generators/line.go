package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// LineOptions configures a straight-line stroke with timing control.
//
// With StrokeTime < 1 the pen draws only during that fraction of each
// cycle and sits idle at one end for the rest — chained with a rotation
// this produces discrete rays instead of a connected fan.
//
// Fields:
//   - Length    — starting line length; used when End is left at zero.
//   - EndLength — final length for grow/shrink; ≤ 0 means "same".
//   - Start     — line start point.
//   - End       — line end point; zero value means Start + (Length, 0).
//   - Cycles    — strokes per drawing (> 0).
//   - StrokeTime — fraction of each cycle spent drawing, in (0, 1].
//   - IdleAtEnd — idle at the line's end instead of its start.
type LineOptions struct {
	Length     float64
	EndLength  float64
	Start, End plane.Point
	Cycles     float64
	StrokeTime float64
	IdleAtEnd  bool
}

// DefaultLineOptions returns a continuous 100-unit horizontal stroke.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Length:     100.0,
		Cycles:     1,
		StrokeTime: 1.0,
	}
}

// Line generates repeated straight strokes.
type Line struct {
	start      plane.Point
	ux, uy     float64 // unit direction
	len0, len1 float64
	cycles     float64
	strokeTime float64
	idleAtEnd  bool
}

// NewLine validates opts and resolves the direction vector. A zero-length
// direction (Start == End with Length 0) is a configuration error.
func NewLine(opts LineOptions) (*Line, error) {
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewLine: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	if opts.StrokeTime <= 0 || opts.StrokeTime > 1 {
		return nil, fmt.Errorf("NewLine: stroke_time=%g: %w", opts.StrokeTime, ErrBadStrokeTime)
	}

	end := opts.End
	if end == (plane.Point{}) && opts.Start == (plane.Point{}) {
		end = plane.Pt(opts.Length, 0)
	}
	dx := end.X - opts.Start.X
	dy := end.Y - opts.Start.Y
	dist := math.Hypot(dx, dy)
	if dist <= 0 {
		return nil, fmt.Errorf("NewLine: zero-length direction vector: %w", ErrNonPositive)
	}

	len0 := dist
	if opts.Length > 0 {
		len0 = opts.Length
	}
	len1 := opts.EndLength
	if len1 <= 0 {
		len1 = len0
	}

	return &Line{
		start:      opts.Start,
		ux:         dx / dist,
		uy:         dy / dist,
		len0:       len0,
		len1:       len1,
		cycles:     opts.Cycles,
		strokeTime: opts.StrokeTime,
		idleAtEnd:  opts.IdleAtEnd,
	}, nil
}

// Evaluate traces the strokes. Length growth uses the unwrapped global
// time; stroke progress wraps per cycle.
func (l *Line) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		frac := grid.Local(i, l.cycles)
		length := lerp(l.len0, l.len1, grid.Global(i))

		var progress float64
		switch {
		case l.strokeTime >= 1:
			progress = frac
		case l.idleAtEnd:
			// Draw first, then park at the far end.
			if frac < l.strokeTime {
				progress = frac / l.strokeTime
			} else {
				progress = 1
			}
		default:
			// Park at the start, then draw in the final stroke window.
			idle := 1 - l.strokeTime
			if frac < idle {
				progress = 0
			} else {
				progress = (frac - idle) / l.strokeTime
			}
		}

		seq.X[i] = l.start.X + progress*length*l.ux
		seq.Y[i] = l.start.Y + progress*length*l.uy
	}

	return seq
}
