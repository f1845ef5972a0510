package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// EllipseOptions configures an axis-aligned ellipse with an optional
// whole-figure rotation and grow/shrink animation per semi-axis.
type EllipseOptions struct {
	RadiusX, RadiusY       float64
	EndRadiusX, EndRadiusY float64 // ≤ 0 means "same as start"
	Rotation               float64 // degrees
	Cycles                 float64
}

// DefaultEllipseOptions returns a 50×30 ellipse.
func DefaultEllipseOptions() EllipseOptions {
	return EllipseOptions{
		RadiusX: 50.0,
		RadiusY: 30.0,
		Cycles:  1,
	}
}

// Ellipse generates ellipses.
type Ellipse struct {
	rx0, rx1 float64
	ry0, ry1 float64
	sinR     float64
	cosR     float64
	cycles   float64
}

// NewEllipse validates opts.
func NewEllipse(opts EllipseOptions) (*Ellipse, error) {
	if opts.RadiusX <= 0 {
		return nil, fmt.Errorf("NewEllipse: radius_x=%g: %w", opts.RadiusX, ErrNonPositive)
	}
	if opts.RadiusY <= 0 {
		return nil, fmt.Errorf("NewEllipse: radius_y=%g: %w", opts.RadiusY, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewEllipse: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	rx1, ry1 := opts.EndRadiusX, opts.EndRadiusY
	if rx1 <= 0 {
		rx1 = opts.RadiusX
	}
	if ry1 <= 0 {
		ry1 = opts.RadiusY
	}
	sin, cos := math.Sincos(opts.Rotation * degToRad)

	return &Ellipse{
		rx0:    opts.RadiusX,
		rx1:    rx1,
		ry0:    opts.RadiusY,
		ry1:    ry1,
		sinR:   sin,
		cosR:   cos,
		cycles: opts.Cycles,
	}, nil
}

// Evaluate traces the ellipse across the grid.
func (e *Ellipse) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		tn := grid.Global(i)
		angle := grid.Local(i, e.cycles) * twoPi

		x := lerp(e.rx0, e.rx1, tn) * math.Cos(angle)
		y := lerp(e.ry0, e.ry1, tn) * math.Sin(angle)

		// Rotate the whole figure.
		seq.X[i] = x*e.cosR - y*e.sinR
		seq.Y[i] = x*e.sinR + y*e.cosR
	}

	return seq
}
