package transforms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// ArcSlideOptions configures a rigid slide along a circular arc: the
// running frame is displaced by a point moving on the arc, sweeping
// SweepDegrees over the grid. The shape's internal geometry is
// untouched — a straight input segment stays straight, merely displaced.
// Contrast with Bend, which warps the segment into an arc.
type ArcSlideOptions struct {
	Radius       float64
	StartDegrees float64
	SweepDegrees float64
	Center       plane.Point
}

// DefaultArcSlideOptions returns a half-circle slide of radius 100.
func DefaultArcSlideOptions() ArcSlideOptions {
	return ArcSlideOptions{
		Radius:       100.0,
		StartDegrees: 0,
		SweepDegrees: 180.0,
	}
}

// ArcSlide carries the shape along an arc.
type ArcSlide struct {
	radius   float64
	startRad float64
	sweepRad float64
	center   plane.Point
}

// NewArcSlide validates opts.
//
// Errors: ErrNonPositive (radius).
func NewArcSlide(opts ArcSlideOptions) (*ArcSlide, error) {
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("NewArcSlide: radius=%g: %w", opts.Radius, ErrNonPositive)
	}

	return &ArcSlide{
		radius:   opts.Radius,
		startRad: opts.StartDegrees * degToRad,
		sweepRad: opts.SweepDegrees * degToRad,
		center:   opts.Center,
	}, nil
}

// Apply adds the arc position at Global(t) to every point.
func (a *ArcSlide) Apply(in *plane.Sequence, grid *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		angle := a.startRad + grid.Global(i)*a.sweepRad
		sin, cos := math.Sincos(angle)

		out.X[i] = in.X[i] + a.center.X + a.radius*cos
		out.Y[i] = in.Y[i] + a.center.Y + a.radius*sin
	}

	return out
}

// SpiralArcOptions configures an arc-slide whose radius itself grows
// linearly from InnerRadius to OuterRadius over the grid, spiraling the
// carried shape outward (or inward when Outer < Inner).
type SpiralArcOptions struct {
	InnerRadius  float64
	OuterRadius  float64
	StartDegrees float64
	SweepDegrees float64
	Center       plane.Point
}

// DefaultSpiralArcOptions returns two outward turns from 50 to 150.
func DefaultSpiralArcOptions() SpiralArcOptions {
	return SpiralArcOptions{
		InnerRadius:  50.0,
		OuterRadius:  150.0,
		StartDegrees: 0,
		SweepDegrees: 720.0,
	}
}

// SpiralArc carries the shape along a spiral trajectory.
type SpiralArc struct {
	r0, r1   float64
	startRad float64
	sweepRad float64
	center   plane.Point
}

// NewSpiralArc validates opts.
//
// Errors: ErrNonPositive (a negative inner radius).
func NewSpiralArc(opts SpiralArcOptions) (*SpiralArc, error) {
	if opts.InnerRadius < 0 {
		return nil, fmt.Errorf("NewSpiralArc: inner_radius=%g: %w", opts.InnerRadius, ErrNonPositive)
	}

	return &SpiralArc{
		r0:       opts.InnerRadius,
		r1:       opts.OuterRadius,
		startRad: opts.StartDegrees * degToRad,
		sweepRad: opts.SweepDegrees * degToRad,
		center:   opts.Center,
	}, nil
}

// Apply adds the spiral position at Global(t) to every point.
func (s *SpiralArc) Apply(in *plane.Sequence, grid *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		t := grid.Global(i)
		angle := s.startRad + t*s.sweepRad
		radius := s.r0 + t*(s.r1-s.r0)
		sin, cos := math.Sincos(angle)

		out.X[i] = in.X[i] + s.center.X + radius*cos
		out.Y[i] = in.Y[i] + s.center.Y + radius*sin
	}

	return out
}
