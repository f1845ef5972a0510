package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// MinPolygonSides is the smallest closed polygon.
const MinPolygonSides = 3

// PolygonOptions configures a regular polygon traced edge by edge.
// Unlike the trigonometric generators, the phase is quantized: an edge
// index is picked from floor(frac·sides) and the point interpolates
// linearly within that edge.
type PolygonOptions struct {
	Sides     int
	Radius    float64 // circumradius
	EndRadius float64 // ≤ 0 means "same as Radius"
	Rotation  float64 // initial rotation, degrees
	Cycles    float64
}

// DefaultPolygonOptions returns a square.
func DefaultPolygonOptions() PolygonOptions {
	return PolygonOptions{
		Sides:  4,
		Radius: 50.0,
		Cycles: 1,
	}
}

// Polygon generates regular polygons.
type Polygon struct {
	sides    float64
	r0, r1   float64
	rotation float64
	cycles   float64
}

// NewPolygon validates opts.
func NewPolygon(opts PolygonOptions) (*Polygon, error) {
	if opts.Sides < MinPolygonSides {
		return nil, fmt.Errorf("NewPolygon: sides=%d < min=%d: %w", opts.Sides, MinPolygonSides, ErrBadSides)
	}
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("NewPolygon: radius=%g: %w", opts.Radius, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewPolygon: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	r1 := opts.EndRadius
	if r1 <= 0 {
		r1 = opts.Radius
	}

	return &Polygon{
		sides:    float64(opts.Sides),
		r0:       opts.Radius,
		r1:       r1,
		rotation: opts.Rotation * degToRad,
		cycles:   opts.Cycles,
	}, nil
}

// Evaluate walks the perimeter edge by edge.
func (pg *Polygon) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		r := lerp(pg.r0, pg.r1, grid.Global(i))

		progress := grid.Local(i, pg.cycles) * pg.sides
		edge := math.Floor(progress)
		frac := progress - edge

		a1 := pg.rotation + edge/pg.sides*twoPi
		a2 := pg.rotation + (edge+1)/pg.sides*twoPi
		v1 := plane.Pt(r*math.Cos(a1), r*math.Sin(a1))
		v2 := plane.Pt(r*math.Cos(a2), r*math.Sin(a2))

		seq.Set(i, v1.Lerp(v2, frac))
	}

	return seq
}
