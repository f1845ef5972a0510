package resample

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spiro/pipeline"
	"github.com/katalvlaran/spiro/plane"
)

// MinOutputSamples is the smallest meaningful output: both endpoints.
const MinOutputSamples = 2

// stageName tags resampler warnings in run diagnostics.
const stageName = "resample"

// Sentinel errors.
var (
	// ErrTooFewOutput indicates OutputSamples < MinOutputSamples.
	ErrTooFewOutput = errors.New("resample: output samples below minimum")
	// ErrTooFewInput indicates a dense sequence with fewer than two points.
	ErrTooFewInput = errors.New("resample: dense sequence must contain at least two points")
)

// Options configures resampling.
//
// Fields:
//   - OutputSamples — points in the output sequence (≥ 2).
//   - UseArcLength  — false selects plain stride subsampling of the
//     dense sequence (uniform in t, not in path length).
type Options struct {
	OutputSamples int
	UseArcLength  bool
}

// DefaultOptions returns 10_000 arc-length samples, matching the
// sampling defaults used by the config layer.
func DefaultOptions() Options {
	return Options{OutputSamples: 10000, UseArcLength: true}
}

// CumulativeLengths returns the running Euclidean path length at each
// index; index 0 is always 0 and the last entry is the total length.
func CumulativeLengths(seq *plane.Sequence) []float64 {
	n := seq.Len()
	lengths := make([]float64, n)
	for i := 1; i < n; i++ {
		lengths[i] = lengths[i-1] + seq.At(i-1).Distance(seq.At(i))
	}

	return lengths
}

// Resample produces the evenly spaced output sequence.
//
// Errors:
//   - ErrTooFewInput  — dense has fewer than two points.
//   - ErrTooFewOutput — opts.OutputSamples < MinOutputSamples.
func Resample(dense *plane.Sequence, opts Options) (*plane.Sequence, []pipeline.Warning, error) {
	if dense.Len() < 2 {
		return nil, nil, fmt.Errorf("Resample: %d dense points: %w", dense.Len(), ErrTooFewInput)
	}
	if opts.OutputSamples < MinOutputSamples {
		return nil, nil, fmt.Errorf("Resample: output_samples=%d < min=%d: %w",
			opts.OutputSamples, MinOutputSamples, ErrTooFewOutput)
	}

	if !opts.UseArcLength {
		return subsample(dense, opts.OutputSamples), nil, nil
	}

	lengths := CumulativeLengths(dense)
	total := lengths[len(lengths)-1]
	if total == 0 {
		// All points coincide; even spacing is meaningless.
		warn := pipeline.Warning{
			Stage:   stageName,
			Message: "zero total arc length, falling back to stride subsampling",
		}

		return subsample(dense, opts.OutputSamples), []pipeline.Warning{warn}, nil
	}

	n := dense.Len()
	m := opts.OutputSamples
	out := plane.NewSequence(m)

	// Sweep the monotone length axis once; k brackets the current target
	// between lengths[k] and lengths[k+1].
	k := 0
	for j := 0; j < m; j++ {
		target := total * float64(j) / float64(m-1)
		for k < n-2 && lengths[k+1] < target {
			k++
		}

		seg := lengths[k+1] - lengths[k]
		var u float64
		if seg > 0 {
			u = (target - lengths[k]) / seg
		}
		// Zero-length segments take the left endpoint (u = 0) instead of
		// dividing by zero.
		out.Set(j, dense.At(k).Lerp(dense.At(k+1), u))
	}

	// Endpoint invariant: targets 0 and total resolve to the exact first
	// and last dense points; pin them against rounding drift anyway.
	out.Set(0, dense.At(0))
	out.Set(m-1, dense.At(n-1))

	return out, nil, nil
}

// subsample picks evenly strided dense indices, endpoints included.
func subsample(dense *plane.Sequence, m int) *plane.Sequence {
	n := dense.Len()
	out := plane.NewSequence(m)
	for j := 0; j < m; j++ {
		idx := int(float64(j) * float64(n-1) / float64(m-1))
		out.Set(j, dense.At(idx))
	}

	return out
}
