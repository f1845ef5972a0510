package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// SpiralOptions configures an Archimedean spiral: the radius grows
// linearly from StartRadius to EndRadius within each cycle while the
// angle sweeps Turns revolutions.
type SpiralOptions struct {
	StartRadius float64
	EndRadius   float64
	Turns       float64
	Direction   int // +1 counter-clockwise, −1 clockwise
	Cycles      float64
}

// DefaultSpiralOptions returns three outward turns.
func DefaultSpiralOptions() SpiralOptions {
	return SpiralOptions{
		StartRadius: 0,
		EndRadius:   50.0,
		Turns:       3.0,
		Direction:   1,
		Cycles:      1,
	}
}

// Spiral generates Archimedean spirals.
type Spiral struct {
	r0, r1    float64
	turns     float64
	direction float64
	cycles    float64
}

// NewSpiral validates opts.
func NewSpiral(opts SpiralOptions) (*Spiral, error) {
	if opts.StartRadius < 0 {
		return nil, fmt.Errorf("NewSpiral: start_radius=%g: %w", opts.StartRadius, ErrNegative)
	}
	if opts.Turns <= 0 {
		return nil, fmt.Errorf("NewSpiral: turns=%g: %w", opts.Turns, ErrNonPositive)
	}
	if opts.Direction != 1 && opts.Direction != -1 {
		return nil, fmt.Errorf("NewSpiral: direction=%d: %w", opts.Direction, ErrBadDirection)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewSpiral: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}

	return &Spiral{
		r0:        opts.StartRadius,
		r1:        opts.EndRadius,
		turns:     opts.Turns,
		direction: float64(opts.Direction),
		cycles:    opts.Cycles,
	}, nil
}

// Evaluate traces the spiral; both radius and angle run on the wrapped
// phase, so every cycle retraces the same spiral arm.
func (sp *Spiral) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		frac := grid.Local(i, sp.cycles)
		r := lerp(sp.r0, sp.r1, frac)
		angle := sp.direction * frac * sp.turns * twoPi

		seq.X[i] = r * math.Cos(angle)
		seq.Y[i] = r * math.Sin(angle)
	}

	return seq
}
