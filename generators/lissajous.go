package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// LissajousOptions configures x = Ax·sin(fx·θ + φ), y = Ay·sin(fy·θ).
//
// Fields:
//   - FreqX, FreqY — integer frequency ratio (≥ 1 each). 1:2 is the
//     figure-eight, 3:2 the pretzel.
//   - AmplitudeX/Y — starting semi-axes.
//   - EndAmplitudeX/Y — final semi-axes; ≤ 0 means "same as start".
//     Interpolated over global time for grow/shrink.
//   - Phase  — phase difference in degrees.
//   - Cycles — times the closed figure is traced (> 0).
type LissajousOptions struct {
	FreqX, FreqY                 int
	AmplitudeX, AmplitudeY       float64
	EndAmplitudeX, EndAmplitudeY float64
	Phase                        float64
	Cycles                       float64
}

// DefaultLissajousOptions returns the 3:2 pretzel.
func DefaultLissajousOptions() LissajousOptions {
	return LissajousOptions{
		FreqX:      3,
		FreqY:      2,
		AmplitudeX: 50.0,
		AmplitudeY: 50.0,
		Phase:      90.0,
		Cycles:     1,
	}
}

// Lissajous generates oscilloscope figures.
type Lissajous struct {
	freqX, freqY  float64
	ax0, ay0      float64
	ax1, ay1      float64
	phase         float64
	closureCycles float64 // θ sweeps closureCycles·2π to close the figure
	cycles        float64
}

// NewLissajous validates opts and computes the closure count
// FreqY / gcd(FreqX, FreqY).
func NewLissajous(opts LissajousOptions) (*Lissajous, error) {
	if opts.FreqX < 1 {
		return nil, fmt.Errorf("NewLissajous: freq_x=%d: %w", opts.FreqX, ErrBadFrequency)
	}
	if opts.FreqY < 1 {
		return nil, fmt.Errorf("NewLissajous: freq_y=%d: %w", opts.FreqY, ErrBadFrequency)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewLissajous: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	ax1, ay1 := opts.EndAmplitudeX, opts.EndAmplitudeY
	if ax1 <= 0 {
		ax1 = opts.AmplitudeX
	}
	if ay1 <= 0 {
		ay1 = opts.AmplitudeY
	}

	return &Lissajous{
		freqX:         float64(opts.FreqX),
		freqY:         float64(opts.FreqY),
		ax0:           opts.AmplitudeX,
		ay0:           opts.AmplitudeY,
		ax1:           ax1,
		ay1:           ay1,
		phase:         opts.Phase * degToRad,
		closureCycles: float64(opts.FreqY / gcd(opts.FreqX, opts.FreqY)),
		cycles:        opts.Cycles,
	}, nil
}

// Evaluate traces the figure across the grid. Amplitudes interpolate on
// the unwrapped global time; the figure phase wraps per cycle.
func (l *Lissajous) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		tn := grid.Global(i)
		theta := grid.Local(i, l.cycles) * l.closureCycles * twoPi

		seq.X[i] = lerp(l.ax0, l.ax1, tn) * math.Sin(l.freqX*theta+l.phase)
		seq.Y[i] = lerp(l.ay0, l.ay1, tn) * math.Sin(l.freqY*theta)
	}

	return seq
}
