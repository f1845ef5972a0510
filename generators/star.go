package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// MinStarPoints is the smallest pointed star.
const MinStarPoints = 2

// defaultInnerRatio is the golden-ratio-based inner radius fallback.
const defaultInnerRatio = 0.382

// StarOptions configures a pointed star: Points outer tips alternating
// with Points inner vertices, traced vertex to vertex.
type StarOptions struct {
	Points         int
	OuterRadius    float64
	InnerRadius    float64 // ≤ 0 means defaultInnerRatio·OuterRadius
	EndOuterRadius float64 // ≤ 0 means "same as OuterRadius"
	EndInnerRadius float64 // ≤ 0 means "same as InnerRadius"
	Rotation       float64 // degrees; −90 points the star up
	Cycles         float64
}

// DefaultStarOptions returns the classic five-pointed star, point up.
func DefaultStarOptions() StarOptions {
	return StarOptions{
		Points:      5,
		OuterRadius: 50.0,
		Rotation:    -90.0,
		Cycles:      1,
	}
}

// Star generates pointed stars.
type Star struct {
	vertices   float64 // 2·points
	out0, out1 float64
	in0, in1   float64
	rotation   float64
	cycles     float64
}

// NewStar validates opts and resolves the inner-radius defaults.
func NewStar(opts StarOptions) (*Star, error) {
	if opts.Points < MinStarPoints {
		return nil, fmt.Errorf("NewStar: points=%d < min=%d: %w", opts.Points, MinStarPoints, ErrBadSides)
	}
	if opts.OuterRadius <= 0 {
		return nil, fmt.Errorf("NewStar: outer_radius=%g: %w", opts.OuterRadius, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewStar: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	in0 := opts.InnerRadius
	if in0 <= 0 {
		in0 = opts.OuterRadius * defaultInnerRatio
	}
	out1 := opts.EndOuterRadius
	if out1 <= 0 {
		out1 = opts.OuterRadius
	}
	in1 := opts.EndInnerRadius
	if in1 <= 0 {
		in1 = in0
	}

	return &Star{
		vertices: float64(2 * opts.Points),
		out0:     opts.OuterRadius,
		out1:     out1,
		in0:      in0,
		in1:      in1,
		rotation: opts.Rotation * degToRad,
		cycles:   opts.Cycles,
	}, nil
}

// Evaluate walks the alternating outer/inner vertices.
func (st *Star) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		tn := grid.Global(i)
		outer := lerp(st.out0, st.out1, tn)
		inner := lerp(st.in0, st.in1, tn)

		progress := grid.Local(i, st.cycles) * st.vertices
		vertex := math.Floor(progress)
		frac := progress - vertex

		// Even vertices are tips, odd are inner notches.
		r1, r2 := outer, inner
		if int(vertex)%2 == 1 {
			r1, r2 = inner, outer
		}

		a1 := st.rotation + vertex/st.vertices*twoPi
		a2 := st.rotation + (vertex+1)/st.vertices*twoPi
		v1 := plane.Pt(r1*math.Cos(a1), r1*math.Sin(a1))
		v2 := plane.Pt(r2*math.Cos(a2), r2*math.Sin(a2))

		seq.Set(i, v1.Lerp(v2, frac))
	}

	return seq
}
