package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
	"github.com/katalvlaran/spiro/transforms"
)

func grid(t *testing.T, samples int) *timegrid.Grid {
	t.Helper()
	g, err := timegrid.New(timegrid.Options{Samples: samples})
	require.NoError(t, err)

	return g
}

// constant builds a sequence holding one point at every sample.
func constant(p plane.Point, n int) *plane.Sequence {
	return plane.Repeat(p, n)
}

// TestRotation_AngleTracksGlobalTime verifies θ(t) = t·total about the
// origin: a fixed input point sweeps the rotation arc.
func TestRotation_AngleTracksGlobalTime(t *testing.T) {
	r, err := transforms.NewRotation(transforms.RotationOptions{TotalDegrees: 360})
	require.NoError(t, err)

	g := grid(t, 4)
	out := r.Apply(constant(plane.Pt(10, 0), 4), g)

	// t=0 untouched; t=0.25 is a quarter turn; t=0.5 a half turn.
	assert.InDelta(t, 10.0, out.X[0], 1e-9)
	assert.InDelta(t, 0.0, out.X[1], 1e-9)
	assert.InDelta(t, 10.0, out.Y[1], 1e-9)
	assert.InDelta(t, -10.0, out.X[2], 1e-9)
}

// TestRotation_AboutOffCenterOrigin verifies the rotation center.
func TestRotation_AboutOffCenterOrigin(t *testing.T) {
	r, err := transforms.NewRotation(transforms.RotationOptions{
		TotalDegrees: 360,
		Origin:       plane.Pt(5, 5),
	})
	require.NoError(t, err)

	g := grid(t, 4)
	out := r.Apply(constant(plane.Pt(6, 5), 4), g)

	// Half turn about (5,5) lands (6,5) on (4,5).
	assert.InDelta(t, 4.0, out.X[2], 1e-9)
	assert.InDelta(t, 5.0, out.Y[2], 1e-9)
}

// TestRotation_PreservesDistanceFromCenter verifies rigidity: rotation
// never changes a point's distance to its center.
func TestRotation_PreservesDistanceFromCenter(t *testing.T) {
	r, err := transforms.NewRotation(transforms.RotationOptions{TotalDegrees: 537})
	require.NoError(t, err)

	g := grid(t, 100)
	in := plane.NewSequence(100)
	for i := 0; i < 100; i++ {
		in.Set(i, plane.Pt(float64(i), float64(100-i)/3))
	}

	out := r.Apply(in, g)
	center := plane.Pt(0, 0)
	for i := 0; i < 100; i++ {
		require.InDelta(t, in.At(i).Distance(center), out.At(i).Distance(center), 1e-9)
	}
}

// TestOscillate_SwingsAndReturns verifies θ(t) = amp·sin(2π·osc·t): the
// swing is zero at t=0 and back near zero after a full oscillation.
func TestOscillate_SwingsAndReturns(t *testing.T) {
	o, err := transforms.NewOscillate(transforms.OscillateOptions{
		AmplitudeDegrees: 90,
		Oscillations:     1,
	})
	require.NoError(t, err)

	g := grid(t, 4)
	out := o.Apply(constant(plane.Pt(10, 0), 4), g)

	assert.InDelta(t, 10.0, out.X[0], 1e-9, "no swing at t=0")
	// Peak swing at t=0.25: sin=1, so a full 90° rotation.
	assert.InDelta(t, 0.0, out.X[1], 1e-9)
	assert.InDelta(t, 10.0, out.Y[1], 1e-9)
	// t=0.5: sin=0, back to the input.
	assert.InDelta(t, 10.0, out.X[2], 1e-9)
	assert.InDelta(t, 0.0, out.Y[2], 1e-9)
}

// TestOscillate_Validation rejects non-positive oscillation counts.
func TestOscillate_Validation(t *testing.T) {
	_, err := transforms.NewOscillate(transforms.OscillateOptions{AmplitudeDegrees: 45, Oscillations: 0})
	assert.ErrorIs(t, err, transforms.ErrBadOscillations)
}

// TestTranslation_LinearOffset verifies the offset interpolates from
// Start to End over the unwrapped time.
func TestTranslation_LinearOffset(t *testing.T) {
	tr, err := transforms.NewTranslation(transforms.TranslationOptions{
		Start: plane.Pt(0, 10),
		End:   plane.Pt(100, 10),
	})
	require.NoError(t, err)

	g := grid(t, 4)
	out := tr.Apply(constant(plane.Pt(1, 1), 4), g)

	assert.Equal(t, plane.Pt(1, 11), out.At(0))
	assert.Equal(t, plane.Pt(26, 11), out.At(1))
	assert.Equal(t, plane.Pt(76, 11), out.At(3))
}

// TestTranslation_ZeroDisplacement verifies the identity stage is legal.
func TestTranslation_ZeroDisplacement(t *testing.T) {
	tr, err := transforms.NewTranslation(transforms.TranslationOptions{})
	require.NoError(t, err)

	g := grid(t, 3)
	out := tr.Apply(constant(plane.Pt(7, -3), 3), g)
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, plane.Pt(7, -3), out.At(i), "zero displacement leaves points untouched")
	}
}

// TestRotationTranslation_OrderMatters verifies stage order is
// semantic: rotating then translating differs from translating then
// rotating whenever both are active.
func TestRotationTranslation_OrderMatters(t *testing.T) {
	r, err := transforms.NewRotation(transforms.RotationOptions{TotalDegrees: 360})
	require.NoError(t, err)
	tr, err := transforms.NewTranslation(transforms.TranslationOptions{End: plane.Pt(100, 0)})
	require.NoError(t, err)

	g := grid(t, 16)
	in := constant(plane.Pt(10, 0), 16)

	rotateFirst := tr.Apply(r.Apply(in, g), g)
	translateFirst := r.Apply(tr.Apply(in, g), g)

	differs := false
	for i := 0; i < 16; i++ {
		if rotateFirst.At(i).Distance(translateFirst.At(i)) > 1e-6 {
			differs = true

			break
		}
	}
	assert.True(t, differs, "the two orderings must produce different traces")
}

// TestTranslation_Composition verifies composing two translations sums
// their offsets: equal-and-opposite stages cancel exactly.
func TestTranslation_Composition(t *testing.T) {
	fwd, err := transforms.NewTranslation(transforms.TranslationOptions{End: plane.Pt(40, -30)})
	require.NoError(t, err)
	back, err := transforms.NewTranslation(transforms.TranslationOptions{End: plane.Pt(-40, 30)})
	require.NoError(t, err)

	g := grid(t, 20)
	in := constant(plane.Pt(2, 3), 20)

	out := back.Apply(fwd.Apply(in, g), g)
	for i := 0; i < 20; i++ {
		require.InDelta(t, 2.0, out.X[i], 1e-9, "opposite slides cancel at sample %d", i)
		require.InDelta(t, 3.0, out.Y[i], 1e-9)
	}
}

// TestArcSlide_RigidCarry verifies the slide is rigid: consecutive input
// differences survive, only the arc offset moves.
func TestArcSlide_RigidCarry(t *testing.T) {
	a, err := transforms.NewArcSlide(transforms.ArcSlideOptions{
		Radius:       100,
		SweepDegrees: 180,
	})
	require.NoError(t, err)

	g := grid(t, 4)
	out := a.Apply(constant(plane.Pt(0, 0), 4), g)

	// The carried origin traces the arc itself.
	assert.InDelta(t, 100.0, out.X[0], 1e-9, "t=0 at angle 0")
	assert.InDelta(t, 0.0, out.Y[0], 1e-9)
	// t=0.5: halfway through the 180° sweep, angle=90°.
	assert.InDelta(t, 0.0, out.X[2], 1e-9)
	assert.InDelta(t, 100.0, out.Y[2], 1e-9)
}

// TestArcSlide_ShapeUntouched verifies internal geometry is preserved:
// the difference between two simultaneously carried points is constant.
func TestArcSlide_ShapeUntouched(t *testing.T) {
	a, err := transforms.NewArcSlide(transforms.DefaultArcSlideOptions())
	require.NoError(t, err)

	g := grid(t, 50)
	p := a.Apply(constant(plane.Pt(3, 4), 50), g)
	q := a.Apply(constant(plane.Pt(0, 0), 50), g)

	for i := 0; i < 50; i++ {
		require.InDelta(t, 3.0, p.X[i]-q.X[i], 1e-9, "rigid slide keeps relative X at sample %d", i)
		require.InDelta(t, 4.0, p.Y[i]-q.Y[i], 1e-9)
	}
}

// TestSpiralArc_RadiusInterpolates verifies the carried radius runs
// inner→outer over the grid.
func TestSpiralArc_RadiusInterpolates(t *testing.T) {
	s, err := transforms.NewSpiralArc(transforms.SpiralArcOptions{
		InnerRadius:  50,
		OuterRadius:  150,
		SweepDegrees: 720,
	})
	require.NoError(t, err)

	g := grid(t, 1000)
	out := s.Apply(constant(plane.Pt(0, 0), 1000), g)

	assert.InDelta(t, 50.0, math.Hypot(out.X[0], out.Y[0]), 1e-9)
	last := math.Hypot(out.X[999], out.Y[999])
	assert.InDelta(t, 150.0, last, 0.2, "radius approaches the outer value")
}

// TestBend_LineBecomesArc verifies the polar warp: a horizontal segment
// of exactly xRange maps onto a circular arc of the configured radius
// and sweep.
func TestBend_LineBecomesArc(t *testing.T) {
	sweep := 90.0
	radius := 200.0
	xRange := radius * sweep * math.Pi / 180 // auto rule, spelled out

	b, err := transforms.NewBend(transforms.BendOptions{
		Radius:       radius,
		SweepDegrees: sweep,
		Direction:    1,
	})
	require.NoError(t, err)

	// A flat line along X from 0 to xRange, y=0.
	n := 100
	in := plane.NewSequence(n)
	for i := 0; i < n; i++ {
		in.Set(i, plane.Pt(xRange*float64(i)/float64(n-1), 0))
	}

	out := b.Apply(in, grid(t, n))
	for i := 0; i < n; i++ {
		require.InDelta(t, radius, math.Hypot(out.X[i], out.Y[i]), 1e-9,
			"warped line point %d sits on the bend circle", i)
	}
	// Endpoints land at the sweep's boundary angles.
	assert.InDelta(t, radius, out.X[0], 1e-9)
	assert.InDelta(t, 0.0, out.X[n-1], 1e-9)
	assert.InDelta(t, radius, out.Y[n-1], 1e-9)
}

// TestBend_DirectionOffsetsRadius verifies y maps to a radius offset
// with the configured sign.
func TestBend_DirectionOffsetsRadius(t *testing.T) {
	convex, err := transforms.NewBend(transforms.BendOptions{Radius: 200, SweepDegrees: 90, Direction: 1})
	require.NoError(t, err)
	concave, err := transforms.NewBend(transforms.BendOptions{Radius: 200, SweepDegrees: 90, Direction: -1})
	require.NoError(t, err)

	in := plane.NewSequence(1)
	in.Set(0, plane.Pt(0, 10))

	up := convex.Apply(in, nil)
	down := concave.Apply(in, nil)
	assert.InDelta(t, 210.0, math.Hypot(up.X[0], up.Y[0]), 1e-9, "+1 pushes outward")
	assert.InDelta(t, 190.0, math.Hypot(down.X[0], down.Y[0]), 1e-9, "-1 pulls inward")
}

// TestBend_Validation covers radius, direction and the zero-sweep auto
// range.
func TestBend_Validation(t *testing.T) {
	_, err := transforms.NewBend(transforms.BendOptions{Radius: 0, SweepDegrees: 90, Direction: 1})
	assert.ErrorIs(t, err, transforms.ErrNonPositive)

	_, err = transforms.NewBend(transforms.BendOptions{Radius: 100, SweepDegrees: 90, Direction: 2})
	assert.ErrorIs(t, err, transforms.ErrBadDirection)

	_, err = transforms.NewBend(transforms.BendOptions{Radius: 100, SweepDegrees: 0, Direction: 1})
	assert.ErrorIs(t, err, transforms.ErrNonPositive, "zero sweep cannot auto-fit x_range")
}

// TestBendVertical_MapsYToAngle verifies the quarter-turn sibling: y
// drives the angle and x the radius.
func TestBendVertical_MapsYToAngle(t *testing.T) {
	b, err := transforms.NewBendVertical(transforms.BendVerticalOptions{
		Radius:       100,
		StartDegrees: 0,
		SweepDegrees: 90,
		YRange:       100,
		Direction:    1,
	})
	require.NoError(t, err)

	in := plane.NewSequence(2)
	in.Set(0, plane.Pt(0, 0))
	in.Set(1, plane.Pt(0, 100)) // full y-range: end of the sweep

	out := b.Apply(in, nil)
	assert.InDelta(t, 100.0, out.X[0], 1e-9, "y=0 at the start angle")
	assert.InDelta(t, 0.0, out.Y[0], 1e-9)
	assert.InDelta(t, 0.0, out.X[1], 1e-9, "y=yRange at the sweep's end")
	assert.InDelta(t, 100.0, out.Y[1], 1e-9)
}
