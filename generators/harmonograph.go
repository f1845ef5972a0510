package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// Pendulum is one damped sinusoid contribution. A zero Freq disables the
// pendulum entirely.
//
// Fields:
//   - Freq  — oscillation frequency in cycles per simulated second.
//   - Amp   — amplitude in drawing units.
//   - Phase — phase offset in degrees.
//   - Decay — exponential damping rate; amplitude is multiplied by
//     exp(−Decay·time), the "friction" that spirals the trace inward.
type Pendulum struct {
	Freq, Amp, Phase, Decay float64
}

// HarmonographOptions configures a 2–4 pendulum harmonograph. Pendulums
// 1 and 3 sum into X, pendulums 2 and 4 into Y, the classic lateral
// table / lateral pen arrangement.
//
// Frequencies at near-integer ratios (say 2.000 against 2.002) beat
// slowly and suit long-duration patterns.
type HarmonographOptions struct {
	Pendulums [4]Pendulum
	Duration  float64 // simulated seconds per cycle (> 0)
	Cycles    float64
}

// DefaultHarmonographOptions returns an undamped 2:3 figure.
func DefaultHarmonographOptions() HarmonographOptions {
	return HarmonographOptions{
		Pendulums: [4]Pendulum{
			{Freq: 2.0, Amp: 100.0, Phase: 0},
			{Freq: 3.0, Amp: 100.0, Phase: 90.0},
		},
		Duration: 60.0,
		Cycles:   1,
	}
}

// LateralPreset is the classic two-pendulum lateral harmonograph with
// light damping.
func LateralPreset() HarmonographOptions {
	o := DefaultHarmonographOptions()
	o.Pendulums[0].Decay = 0.02
	o.Pendulums[1].Decay = 0.02

	return o
}

// RotaryPreset detunes a pair of equal-frequency pendulums and adds a
// double-frequency term, imitating a rotary table.
func RotaryPreset(baseFreq, detune float64) HarmonographOptions {
	return HarmonographOptions{
		Pendulums: [4]Pendulum{
			{Freq: baseFreq, Amp: 100.0, Phase: 0, Decay: 0.01},
			{Freq: baseFreq + detune, Amp: 100.0, Phase: 90.0, Decay: 0.01},
			{Freq: baseFreq * 2, Amp: 30.0, Phase: 45.0, Decay: 0.02},
		},
		Duration: 60.0,
		Cycles:   1,
	}
}

// ComplexPreset activates all four pendulums with slight detuning.
func ComplexPreset() HarmonographOptions {
	return HarmonographOptions{
		Pendulums: [4]Pendulum{
			{Freq: 2.0, Amp: 80.0, Phase: 0, Decay: 0.01},
			{Freq: 3.0, Amp: 80.0, Phase: 90.0, Decay: 0.01},
			{Freq: 2.01, Amp: 40.0, Phase: 60.0, Decay: 0.015},
			{Freq: 3.01, Amp: 40.0, Phase: 30.0, Decay: 0.015},
		},
		Duration: 60.0,
		Cycles:   1,
	}
}

// Harmonograph sums damped sinusoids per axis.
type Harmonograph struct {
	pend     [4]pendulum
	duration float64
	cycles   float64
}

// pendulum carries the precomputed radian phase.
type pendulum struct {
	freq, amp, phase, decay float64
}

// NewHarmonograph validates opts.
//
// Errors: ErrNonPositive (duration), ErrNegative (decay or a negative
// frequency), ErrBadCycles.
func NewHarmonograph(opts HarmonographOptions) (*Harmonograph, error) {
	if opts.Duration <= 0 {
		return nil, fmt.Errorf("NewHarmonograph: duration=%g: %w", opts.Duration, ErrNonPositive)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewHarmonograph: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	h := &Harmonograph{duration: opts.Duration, cycles: opts.Cycles}
	for i, p := range opts.Pendulums {
		if p.Freq < 0 {
			return nil, fmt.Errorf("NewHarmonograph: freq%d=%g: %w", i+1, p.Freq, ErrNegative)
		}
		if p.Decay < 0 {
			return nil, fmt.Errorf("NewHarmonograph: decay%d=%g: %w", i+1, p.Decay, ErrNegative)
		}
		h.pend[i] = pendulum{
			freq:  p.Freq,
			amp:   p.Amp,
			phase: p.Phase * degToRad,
			decay: p.Decay,
		}
	}

	return h, nil
}

// Evaluate sums the active pendulums at each grid sample.
func (h *Harmonograph) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		time := grid.Local(i, h.cycles) * h.duration

		// Pendulums 1+3 drive X, 2+4 drive Y.
		seq.X[i] = h.pend[0].at(time) + h.pend[2].at(time)
		seq.Y[i] = h.pend[1].at(time) + h.pend[3].at(time)
	}

	return seq
}

// at evaluates one damped sinusoid; disabled pendulums contribute zero.
func (p pendulum) at(time float64) float64 {
	if p.freq <= 0 {
		return 0
	}
	v := p.amp * math.Sin(p.freq*twoPi*time+p.phase)
	if p.decay > 0 {
		v *= math.Exp(-p.decay * time)
	}

	return v
}
