package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// CircleOptions configures a circle, optionally growing or shrinking
// from Radius to EndRadius over the drawing.
type CircleOptions struct {
	Radius    float64
	EndRadius float64 // ≤ 0 means "same as Radius"
	Cycles    float64
}

// DefaultCircleOptions returns a unit-pattern 50-radius circle.
func DefaultCircleOptions() CircleOptions {
	return CircleOptions{Radius: 50.0, Cycles: 1}
}

// Circle is the simplest generator and the reference case for the
// identity-pipeline property: one cycle reproduces the closed form
// (r·cos 2πt, r·sin 2πt) exactly.
type Circle struct {
	r0, r1 float64
	cycles float64
}

// NewCircle validates opts.
func NewCircle(opts CircleOptions) (*Circle, error) {
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("NewCircle: radius=%g: %w", opts.Radius, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewCircle: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	r1 := opts.EndRadius
	if r1 <= 0 {
		r1 = opts.Radius
	}

	return &Circle{r0: opts.Radius, r1: r1, cycles: opts.Cycles}, nil
}

// Evaluate traces the circle across the grid.
func (c *Circle) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		r := lerp(c.r0, c.r1, grid.Global(i))
		angle := grid.Local(i, c.cycles) * twoPi

		seq.X[i] = r * math.Cos(angle)
		seq.Y[i] = r * math.Sin(angle)
	}

	return seq
}
