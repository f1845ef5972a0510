package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// RailOptions configures a gear rolling along a straight rail (the
// linear rack base of a spirograph set). Motion is back-and-forth: each
// pass alternates direction, while the gear keeps rolling without
// slipping, so the rotation angle follows the cumulative distance.
//
// Fields:
//   - RailLength   — rail length (> 0), centered on the origin.
//   - GearTeeth    — teeth on the rolling gear (≥ 1).
//   - ToothPitch   — distance per tooth (> 0).
//   - HolePosition — pen hole as a fraction of the gear radius (≥ 0).
//   - Passes       — complete passes along the rail per cycle (≥ 1).
//   - Scale        — output scale factor (> 0).
//   - RailAngle    — rail orientation in degrees (0 = horizontal).
//   - Cycles       — times the pattern is drawn (> 0).
type RailOptions struct {
	RailLength   float64
	GearTeeth    int
	ToothPitch   float64
	HolePosition float64
	Passes       int
	Scale        float64
	RailAngle    float64
	Cycles       float64
}

// DefaultRailOptions returns the stock rail setup.
func DefaultRailOptions() RailOptions {
	return RailOptions{
		RailLength:   200.0,
		GearTeeth:    40,
		ToothPitch:   1.0,
		HolePosition: 0.6,
		Passes:       2,
		Scale:        1.0,
		RailAngle:    0,
		Cycles:       1,
	}
}

// Rail generates the translated trochoid of a gear rolling on a rail.
type Rail struct {
	railLength float64
	gearRadius float64
	pen        float64
	passes     float64
	scale      float64
	cycles     float64
	dirX, dirY float64 // unit vector along the rail
	prpX, prpY float64 // unit vector perpendicular to the rail
}

// NewRail validates opts and derives the gear geometry.
func NewRail(opts RailOptions) (*Rail, error) {
	if opts.RailLength <= 0 {
		return nil, fmt.Errorf("NewRail: rail_length=%g: %w", opts.RailLength, ErrNonPositive)
	}
	if opts.GearTeeth < 1 {
		return nil, fmt.Errorf("NewRail: gear_teeth=%d: %w", opts.GearTeeth, ErrTeethCount)
	}
	if opts.ToothPitch <= 0 {
		return nil, fmt.Errorf("NewRail: tooth_pitch=%g: %w", opts.ToothPitch, ErrNonPositive)
	}
	if opts.HolePosition < 0 {
		return nil, fmt.Errorf("NewRail: hole_position=%g: %w", opts.HolePosition, ErrNegative)
	}
	if opts.Passes < 1 {
		return nil, fmt.Errorf("NewRail: passes=%d: %w", opts.Passes, ErrNonPositive)
	}
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("NewRail: scale=%g: %w", opts.Scale, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewRail: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}

	gearRadius := float64(opts.GearTeeth) * opts.ToothPitch / twoPi
	angle := opts.RailAngle * degToRad
	sin, cos := math.Sincos(angle)

	return &Rail{
		railLength: opts.RailLength,
		gearRadius: gearRadius,
		pen:        opts.HolePosition * gearRadius,
		passes:     float64(opts.Passes),
		scale:      opts.Scale,
		cycles:     opts.Cycles,
		dirX:       cos,
		dirY:       sin,
		prpX:       -sin,
		prpY:       cos,
	}, nil
}

// Evaluate traces the rail trochoid across the grid.
func (r *Rail) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		frac := grid.Local(i, r.cycles)

		// Cumulative rolling distance over all passes of this cycle.
		raw := frac * r.railLength * r.passes

		// Back-and-forth position along the rail: odd passes run backward.
		passNum := math.Floor(raw / r.railLength)
		within := raw - passNum*r.railLength
		pos := within
		if int(passNum)%2 == 1 {
			pos = r.railLength - within
		}
		centered := pos - r.railLength/2

		// Rolling without slipping: angle tracks cumulative distance,
		// not rail position, so the gear keeps spinning through turns.
		gearAngle := raw / r.gearRadius
		penX := r.pen * math.Cos(gearAngle)
		penY := r.pen * math.Sin(gearAngle)

		// Gear center sits one radius off the rail; the pen offset is
		// rotated into the rail orientation.
		x := centered*r.dirX + r.gearRadius*r.prpX + penX*r.dirX - penY*r.dirY
		y := centered*r.dirY + r.gearRadius*r.prpY + penX*r.dirY + penY*r.dirX

		seq.X[i] = x * r.scale
		seq.Y[i] = y * r.scale
	}

	return seq
}
