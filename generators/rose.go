package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// RoseOptions configures the rhodonea curve r = R·cos(k·θ) with
// k = KNum/KDen.
//
// Petal count follows the classic rule: integer k gives k petals when
// odd and 2k when even; fractional k = p/q closes after q or 2q turns
// depending on parity.
type RoseOptions struct {
	KNum, KDen int
	Radius     float64
	EndRadius  float64 // ≤ 0 means "same as Radius"
	Cycles     float64
}

// DefaultRoseOptions returns the trifolium (k = 3).
func DefaultRoseOptions() RoseOptions {
	return RoseOptions{
		KNum:   3,
		KDen:   1,
		Radius: 50.0,
		Cycles: 1,
	}
}

// Rose generates rhodonea (rose) curves.
type Rose struct {
	k             float64
	r0, r1        float64
	closureCycles float64
	cycles        float64
}

// NewRose validates opts and derives the closure turn count from the
// reduced petal ratio.
func NewRose(opts RoseOptions) (*Rose, error) {
	if opts.KNum < 1 {
		return nil, fmt.Errorf("NewRose: k_num=%d: %w", opts.KNum, ErrBadFrequency)
	}
	if opts.KDen < 1 {
		return nil, fmt.Errorf("NewRose: k_den=%d: %w", opts.KDen, ErrBadFrequency)
	}
	if opts.Cycles <= 0 {
		return nil, fmt.Errorf("NewRose: cycles=%g: %w", opts.Cycles, ErrBadCycles)
	}
	r1 := opts.EndRadius
	if r1 <= 0 {
		r1 = opts.Radius
	}

	var closure int
	if opts.KDen == 1 {
		closure = 2
		if opts.KNum%2 == 1 {
			closure = 1
		}
	} else {
		g := gcd(opts.KNum, opts.KDen)
		p, q := opts.KNum/g, opts.KDen/g
		closure = 2 * q
		if (p*q)%2 == 1 {
			closure = q
		}
	}

	return &Rose{
		k:             float64(opts.KNum) / float64(opts.KDen),
		r0:            opts.Radius,
		r1:            r1,
		closureCycles: float64(closure),
		cycles:        opts.Cycles,
	}, nil
}

// Evaluate traces the rose across the grid.
func (ro *Rose) Evaluate(grid *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(grid.Len())
	for i := 0; i < grid.Len(); i++ {
		theta := grid.Local(i, ro.cycles) * ro.closureCycles * twoPi
		r := lerp(ro.r0, ro.r1, grid.Global(i)) * math.Cos(ro.k*theta)

		seq.X[i] = r * math.Cos(theta)
		seq.Y[i] = r * math.Sin(theta)
	}

	return seq
}
