package resample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/resample"
)

// spiralSequence builds a curve whose parametric speed varies strongly,
// the worst case for uniform-in-t sampling.
func spiralSequence(n int) *plane.Sequence {
	seq := plane.NewSequence(n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		r := 1 + 99*t
		angle := t * 6 * math.Pi
		seq.X[i] = r * math.Cos(angle)
		seq.Y[i] = r * math.Sin(angle)
	}

	return seq
}

// TestCumulativeLengths verifies the running path length on a unit
// staircase.
func TestCumulativeLengths(t *testing.T) {
	seq := plane.NewSequence(4)
	seq.Set(0, plane.Pt(0, 0))
	seq.Set(1, plane.Pt(1, 0))
	seq.Set(2, plane.Pt(1, 1))
	seq.Set(3, plane.Pt(4, 5))

	lengths := resample.CumulativeLengths(seq)
	require.Len(t, lengths, 4)
	assert.Equal(t, 0.0, lengths[0], "index 0 is always zero")
	assert.Equal(t, 1.0, lengths[1])
	assert.Equal(t, 2.0, lengths[2])
	assert.Equal(t, 7.0, lengths[3], "3-4-5 segment adds five")
}

// TestResample_Validation covers both input errors.
func TestResample_Validation(t *testing.T) {
	_, _, err := resample.Resample(plane.NewSequence(1), resample.DefaultOptions())
	assert.ErrorIs(t, err, resample.ErrTooFewInput)

	_, _, err = resample.Resample(spiralSequence(100), resample.Options{OutputSamples: 1, UseArcLength: true})
	assert.ErrorIs(t, err, resample.ErrTooFewOutput)
}

// TestResample_EndpointsPreserved verifies the first and last output
// points equal the dense endpoints exactly.
func TestResample_EndpointsPreserved(t *testing.T) {
	dense := spiralSequence(5000)
	out, warnings, err := resample.Resample(dense, resample.Options{OutputSamples: 200, UseArcLength: true})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 200, out.Len())

	assert.Equal(t, dense.At(0), out.At(0), "first point survives exactly")
	assert.Equal(t, dense.At(4999), out.At(199), "last point survives exactly")
}

// TestResample_EvenSpacing verifies the headline property: output
// segments have near-uniform length even when the dense curve's
// parametric speed varies by two orders of magnitude.
func TestResample_EvenSpacing(t *testing.T) {
	dense := spiralSequence(100000)
	out, _, err := resample.Resample(dense, resample.Options{OutputSamples: 500, UseArcLength: true})
	require.NoError(t, err)

	gaps := make([]float64, out.Len()-1)
	mean := 0.0
	for i := range gaps {
		gaps[i] = out.At(i).Distance(out.At(i + 1))
		mean += gaps[i]
	}
	mean /= float64(len(gaps))

	variance := 0.0
	for _, gap := range gaps {
		variance += (gap - mean) * (gap - mean)
	}
	stddev := math.Sqrt(variance / float64(len(gaps)))

	assert.Less(t, stddev/mean, 0.05, "coefficient of variation of segment lengths stays small")
}

// TestResample_StrideMode verifies UseArcLength=false picks dense points
// uniformly in t.
func TestResample_StrideMode(t *testing.T) {
	dense := spiralSequence(101)
	out, warnings, err := resample.Resample(dense, resample.Options{OutputSamples: 11, UseArcLength: false})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 11, out.Len())

	for j := 0; j < 11; j++ {
		assert.Equal(t, dense.At(j*10), out.At(j), "stride picks every tenth dense point")
	}
}

// TestResample_ZeroLengthFallsBack verifies a fully degenerate curve
// (all points coincident) warns and falls back to stride subsampling.
func TestResample_ZeroLengthFallsBack(t *testing.T) {
	dense := plane.Repeat(plane.Pt(3, 3), 100)
	out, warnings, err := resample.Resample(dense, resample.Options{OutputSamples: 10, UseArcLength: true})
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, "resample", warnings[0].Stage)
	assert.Contains(t, warnings[0].Message, "zero total arc length")

	require.Equal(t, 10, out.Len())
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, plane.Pt(3, 3), out.At(i))
	}
}

// TestResample_ZeroSegmentsSkipped verifies repeated dense points (an
// idling pen) do not break interpolation.
func TestResample_ZeroSegmentsSkipped(t *testing.T) {
	dense := plane.NewSequence(6)
	dense.Set(0, plane.Pt(0, 0))
	dense.Set(1, plane.Pt(0, 0)) // pen idle
	dense.Set(2, plane.Pt(0, 0))
	dense.Set(3, plane.Pt(10, 0))
	dense.Set(4, plane.Pt(10, 0)) // idle again
	dense.Set(5, plane.Pt(20, 0))

	out, warnings, err := resample.Resample(dense, resample.Options{OutputSamples: 5, UseArcLength: true})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Total length 20; targets 0,5,10,15,20 on the x-axis.
	for j, wantX := range []float64{0, 5, 10, 15, 20} {
		assert.InDelta(t, wantX, out.X[j], 1e-9, "target %d evenly spaced through idle runs", j)
		assert.Zero(t, out.Y[j])
	}
}
