package transforms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// BendOptions configures the polar warp: each input point's x-coordinate
// becomes an angle and its y-coordinate a radius offset,
//
//	angle  = start + (x / xRange)·sweep
//	radius = Radius + Direction·y
//	out    = Center + radius·(cos angle, sin angle)
//
// like wrapping a flat sheet around a cylinder. This alters the shape's
// geometry: a horizontal input line of length xRange becomes a literal
// circular arc of SweepDegrees at the configured radius.
//
// XRange ≤ 0 auto-fits so that arc length matches input length:
// xRange = Radius·|sweep in radians|.
type BendOptions struct {
	Radius       float64
	StartDegrees float64
	SweepDegrees float64
	XRange       float64
	Center       plane.Point
	Direction    int // +1 convex (y away from center), −1 concave
}

// DefaultBendOptions returns a quarter-turn bend of radius 200.
func DefaultBendOptions() BendOptions {
	return BendOptions{
		Radius:       200.0,
		StartDegrees: 0,
		SweepDegrees: 90.0,
		Direction:    1,
	}
}

// Bend warps x→angle, y→radius.
type Bend struct {
	radius    float64
	startRad  float64
	sweepRad  float64
	xRange    float64
	center    plane.Point
	direction float64
}

// NewBend validates opts and resolves the auto x-range.
//
// Errors: ErrNonPositive (radius, or sweep of zero with auto range),
// ErrBadDirection.
func NewBend(opts BendOptions) (*Bend, error) {
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("NewBend: radius=%g: %w", opts.Radius, ErrNonPositive)
	}
	if opts.Direction != 1 && opts.Direction != -1 {
		return nil, fmt.Errorf("NewBend: direction=%d: %w", opts.Direction, ErrBadDirection)
	}
	sweepRad := opts.SweepDegrees * degToRad
	xRange := opts.XRange
	if xRange <= 0 {
		xRange = opts.Radius * math.Abs(sweepRad)
		if xRange == 0 {
			return nil, fmt.Errorf("NewBend: sweep_angle=0 with auto x_range: %w", ErrNonPositive)
		}
	}

	return &Bend{
		radius:    opts.Radius,
		startRad:  opts.StartDegrees * degToRad,
		sweepRad:  sweepRad,
		xRange:    xRange,
		center:    opts.Center,
		direction: float64(opts.Direction),
	}, nil
}

// Apply warps every point; the time grid is unused — bend is a pure
// coordinate remap.
func (b *Bend) Apply(in *plane.Sequence, _ *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		angle := b.startRad + in.X[i]/b.xRange*b.sweepRad
		radius := b.radius + b.direction*in.Y[i]
		sin, cos := math.Sincos(angle)

		out.X[i] = b.center.X + radius*cos
		out.Y[i] = b.center.Y + radius*sin
	}

	return out
}

// BendVerticalOptions is Bend rotated a quarter turn: y maps to angle
// and x to radius, for bending vertical patterns into arcs.
type BendVerticalOptions struct {
	Radius       float64
	StartDegrees float64
	SweepDegrees float64
	YRange       float64
	Center       plane.Point
	Direction    int // +1 bend rightward, −1 leftward
}

// DefaultBendVerticalOptions starts pointing down and sweeps a quarter
// turn.
func DefaultBendVerticalOptions() BendVerticalOptions {
	return BendVerticalOptions{
		Radius:       200.0,
		StartDegrees: -90.0,
		SweepDegrees: 90.0,
		Direction:    1,
	}
}

// BendVertical warps y→angle, x→radius.
type BendVertical struct {
	radius    float64
	startRad  float64
	sweepRad  float64
	yRange    float64
	center    plane.Point
	direction float64
}

// NewBendVertical validates opts and resolves the auto y-range.
func NewBendVertical(opts BendVerticalOptions) (*BendVertical, error) {
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("NewBendVertical: radius=%g: %w", opts.Radius, ErrNonPositive)
	}
	if opts.Direction != 1 && opts.Direction != -1 {
		return nil, fmt.Errorf("NewBendVertical: direction=%d: %w", opts.Direction, ErrBadDirection)
	}
	sweepRad := opts.SweepDegrees * degToRad
	yRange := opts.YRange
	if yRange <= 0 {
		yRange = opts.Radius * math.Abs(sweepRad)
		if yRange == 0 {
			return nil, fmt.Errorf("NewBendVertical: sweep_angle=0 with auto y_range: %w", ErrNonPositive)
		}
	}

	return &BendVertical{
		radius:    opts.Radius,
		startRad:  opts.StartDegrees * degToRad,
		sweepRad:  sweepRad,
		yRange:    yRange,
		center:    opts.Center,
		direction: float64(opts.Direction),
	}, nil
}

// Apply warps every point.
func (b *BendVertical) Apply(in *plane.Sequence, _ *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		angle := b.startRad + in.Y[i]/b.yRange*b.sweepRad
		radius := b.radius + b.direction*in.X[i]
		sin, cos := math.Sincos(angle)

		out.X[i] = b.center.X + radius*cos
		out.Y[i] = b.center.Y + radius*sin
	}

	return out
}
