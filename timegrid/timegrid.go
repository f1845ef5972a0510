package timegrid

import (
	"errors"
	"fmt"
	"math"
)

// MinSamples is the smallest usable grid: one segment needs two samples.
const MinSamples = 2

// Sentinel errors for grid construction.
var (
	// ErrTooFewSamples indicates Samples < MinSamples.
	ErrTooFewSamples = errors.New("timegrid: samples below minimum")
	// ErrNonMonotonic indicates a warp produced a decreasing time axis.
	ErrNonMonotonic = errors.New("timegrid: warped axis must be monotonically non-decreasing")
	// ErrOutOfRange indicates a warp produced values outside [0, 1).
	ErrOutOfRange = errors.New("timegrid: warped axis must stay within [0, 1)")
)

// WarpFunc remaps the uniform axis; it must be monotone on [0, 1) and map
// into [0, 1). A nil warp keeps the grid uniform.
type WarpFunc func(t float64) float64

// Options configures grid construction.
//
// Fields:
//   - Samples — number of grid values (initial_samples). Typical range is
//     1e4–1e6; must be at least MinSamples.
//   - Warp    — optional arc-length pre-weighting remap. nil = uniform.
type Options struct {
	Samples int
	Warp    WarpFunc
}

// DefaultOptions returns Options with a uniform 100_000-sample grid,
// matching the sampling defaults used by the config layer.
func DefaultOptions() Options {
	return Options{Samples: 100000, Warp: nil}
}

// Grid is an immutable time axis. Values span [0, 1), endpoint excluded,
// so cycle boundaries never duplicate their first sample.
type Grid struct {
	t []float64
}

// New builds a grid from opts.
//
// Errors:
//   - ErrTooFewSamples — opts.Samples < MinSamples.
//   - ErrNonMonotonic, ErrOutOfRange — a misbehaving Warp.
func New(opts Options) (*Grid, error) {
	if opts.Samples < MinSamples {
		return nil, fmt.Errorf("New: samples=%d < min=%d: %w", opts.Samples, MinSamples, ErrTooFewSamples)
	}

	t := make([]float64, opts.Samples)
	inv := 1.0 / float64(opts.Samples)
	for i := range t {
		v := float64(i) * inv
		if opts.Warp != nil {
			v = opts.Warp(v)
		}
		t[i] = v
	}

	if opts.Warp != nil {
		for i := range t {
			if t[i] < 0 || t[i] >= 1 {
				return nil, fmt.Errorf("New: warp(%d)=%g: %w", i, t[i], ErrOutOfRange)
			}
			if i > 0 && t[i] < t[i-1] {
				return nil, fmt.Errorf("New: warp decreases at index %d: %w", i, ErrNonMonotonic)
			}
		}
	}

	return &Grid{t: t}, nil
}

// Len returns the number of samples.
func (g *Grid) Len() int {
	return len(g.t)
}

// Global returns the unwrapped time value at index i. Cumulative effects
// (rotation angle, translation distance, grow/shrink interpolation) must
// use this value.
func (g *Grid) Global(i int) float64 {
	return g.t[i]
}

// Local returns the wrapped phase frac(t_i * cycles) in [0, 1). Shape
// evaluation must use this value so the base figure retraces each cycle.
func (g *Grid) Local(i int, cycles float64) float64 {
	v := g.t[i] * cycles

	return v - math.Floor(v)
}

// Values returns a copy of the time axis.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.t))
	copy(out, g.t)

	return out
}
