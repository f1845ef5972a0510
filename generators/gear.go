package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// GearOptions configures the classic two-gear spirograph.
//
// Gear size scales with tooth count: circumference = teeth × pitch, so
// radius = teeth × pitch / 2π. More teeth means a proportionally larger
// gear, as on the physical toy.
//
// Fields:
//   - FixedTeeth   — teeth on the stationary gear (≥ 1).
//   - RollingTeeth — teeth on the rolling gear (≥ 1).
//   - ToothPitch   — distance per tooth (> 0); sets the absolute scale.
//   - HolePosition — pen hole as a fraction of the rolling gear radius
//     (0 = center, 1 = rim; ≥ 0, may exceed 1 for a pen arm).
//   - Rotations    — traversals of the fixed gear per cycle. ≤ 0 means
//     auto: RollingTeeth / gcd(FixedTeeth, RollingTeeth), the count that
//     closes the curve.
//   - Inside       — true traces a hypotrochoid (gear rolls inside),
//     false an epitrochoid (gear rolls outside).
//   - Cycles       — times the full pattern is drawn (> 0).
type GearOptions struct {
	FixedTeeth   int
	RollingTeeth int
	ToothPitch   float64
	HolePosition float64
	Rotations    int
	Inside       bool
	Cycles       float64
}

// DefaultGearOptions mirrors the classic 96/36 wheel set.
func DefaultGearOptions() GearOptions {
	return GearOptions{
		FixedTeeth:   96,
		RollingTeeth: 36,
		ToothPitch:   1.0,
		HolePosition: 0.7,
		Rotations:    0,
		Inside:       true,
		Cycles:       1,
	}
}

// Gear generates hypotrochoid/epitrochoid curves:
//
//	inside:  z = (R−r)·e^{iθ} + d·e^{−i(R−r)θ/r}
//	outside: z = (R+r)·e^{iθ} + d·e^{+i(R+r)θ/r}
type Gear struct {
	rotations    int
	cycles       float64
	centerRadius float64 // R−r or R+r
	speedRatio   float64 // centerRadius / r
	direction    float64 // −1 inside (counter-rotating), +1 outside
	pen          float64 // d, pen distance from the rolling center
}

// NewGear validates opts and derives the gear geometry.
//
// Errors: ErrTeethCount, ErrNonPositive (pitch), ErrNegative (hole),
// ErrBadCycles.
func NewGear(opts GearOptions) (*Gear, error) {
	if opts.FixedTeeth < 1 {
		return nil, fmt.Errorf("NewGear: fixed_teeth=%d: %w", opts.FixedTeeth, ErrTeethCount)
	}
	if opts.RollingTeeth < 1 {
		return nil, fmt.Errorf("NewGear: rolling_teeth=%d: %w", opts.RollingTeeth, ErrTeethCount)
	}
	if opts.ToothPitch <= 0 {
		return nil, fmt.Errorf("NewGear: tooth_pitch=%g: %w", opts.ToothPitch, ErrNonPositive)
	}
	if opts.HolePosition < 0 {
		return nil, fmt.Errorf("NewGear: hole_position=%g: %w", opts.HolePosition, ErrNegative)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewGear: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}

	bigR := float64(opts.FixedTeeth) * opts.ToothPitch / twoPi
	r := float64(opts.RollingTeeth) * opts.ToothPitch / twoPi

	rotations := opts.Rotations
	if rotations <= 0 {
		// The reduced tooth ratio decides closure: the rolling gear must
		// go around rolling/gcd times before the pen returns home.
		rotations = opts.RollingTeeth / gcd(opts.FixedTeeth, opts.RollingTeeth)
	}

	g := &Gear{
		rotations: rotations,
		cycles:    opts.Cycles,
		pen:       opts.HolePosition * r,
	}
	if opts.Inside {
		g.centerRadius = bigR - r
		g.direction = -1
	} else {
		g.centerRadius = bigR + r
		g.direction = 1
	}
	g.speedRatio = g.centerRadius / r

	return g, nil
}

// Evaluate traces the gear curve across the grid.
func (g *Gear) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		theta := grid.Local(i, g.cycles) * float64(g.rotations) * twoPi

		// Rolling gear center plus pen offset.
		penAngle := g.direction * g.speedRatio * theta
		seq.X[i] = g.centerRadius*math.Cos(theta) + g.pen*math.Cos(penAngle)
		seq.Y[i] = g.centerRadius*math.Sin(theta) + g.pen*math.Sin(penAngle)
	}

	return seq
}
