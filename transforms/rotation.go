package transforms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// RotationOptions configures a continuous surface rotation: the whole
// running frame turns about Origin by an angle growing linearly with the
// unwrapped time, reaching TotalDegrees at the end of the grid.
//
// This simulates slowly spinning the paper while drawing. Because the
// angle never wraps with generator cycles, a cycles=N generator behind a
// rotation lands N copies of the figure spread evenly across the total
// sweep — the moiré tiling effect.
type RotationOptions struct {
	TotalDegrees float64
	Origin       plane.Point
}

// DefaultRotationOptions returns one full turn about the origin.
func DefaultRotationOptions() RotationOptions {
	return RotationOptions{TotalDegrees: 360.0}
}

// Rotation rotates every point about a fixed center.
type Rotation struct {
	totalRad float64
	origin   plane.Point
}

// NewRotation builds the transform. Zero TotalDegrees is legal (an
// identity stage), so there is nothing to validate.
func NewRotation(opts RotationOptions) (*Rotation, error) {
	return &Rotation{
		totalRad: opts.TotalDegrees * degToRad,
		origin:   opts.Origin,
	}, nil
}

// Apply rotates each point by θ(t) = Global(t)·total about the origin.
func (r *Rotation) Apply(in *plane.Sequence, grid *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		sin, cos := math.Sincos(grid.Global(i) * r.totalRad)
		dx := in.X[i] - r.origin.X
		dy := in.Y[i] - r.origin.Y

		out.X[i] = r.origin.X + dx*cos - dy*sin
		out.Y[i] = r.origin.Y + dx*sin + dy*cos
	}

	return out
}

// OscillateOptions configures a pendulum-like back-and-forth rotation:
// θ(t) = Amplitude·sin(2π·Oscillations·t) about Center.
type OscillateOptions struct {
	AmplitudeDegrees float64
	Oscillations     float64
	Center           plane.Point
}

// DefaultOscillateOptions returns one ±45° swing.
func DefaultOscillateOptions() OscillateOptions {
	return OscillateOptions{
		AmplitudeDegrees: 45.0,
		Oscillations:     1,
	}
}

// Oscillate rotates back and forth instead of continuously.
type Oscillate struct {
	ampRad       float64
	oscillations float64
	center       plane.Point
}

// NewOscillate validates opts.
//
// Errors: ErrBadOscillations.
func NewOscillate(opts OscillateOptions) (*Oscillate, error) {
	if opts.Oscillations <= 0 {
		return nil, fmt.Errorf("NewOscillate: oscillations=%g: %w", opts.Oscillations, ErrBadOscillations)
	}

	return &Oscillate{
		ampRad:       opts.AmplitudeDegrees * degToRad,
		oscillations: opts.Oscillations,
		center:       opts.Center,
	}, nil
}

// Apply swings each point about the center on a sinusoidal angle.
func (o *Oscillate) Apply(in *plane.Sequence, grid *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		theta := o.ampRad * math.Sin(twoPi*o.oscillations*grid.Global(i))
		sin, cos := math.Sincos(theta)
		dx := in.X[i] - o.center.X
		dy := in.Y[i] - o.center.Y

		out.X[i] = o.center.X + dx*cos - dy*sin
		out.Y[i] = o.center.Y + dx*sin + dy*cos
	}

	return out
}
