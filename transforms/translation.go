package transforms

import (
	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// TranslationOptions configures a single-pass linear slide: the offset
// interpolates from Start to End over the unwrapped time. The shape is
// carried, never warped, and the motion never oscillates — compose two
// translations with opposite directions for a back-and-forth sweep.
type TranslationOptions struct {
	Start plane.Point
	End   plane.Point
}

// DefaultTranslationOptions returns a 100-unit slide along +X.
func DefaultTranslationOptions() TranslationOptions {
	return TranslationOptions{End: plane.Pt(100.0, 0)}
}

// Translation slides the running frame along a straight line.
type Translation struct {
	start plane.Point
	dx    float64
	dy    float64
}

// NewTranslation builds the transform; a zero-length displacement is a
// legal identity stage.
func NewTranslation(opts TranslationOptions) (*Translation, error) {
	return &Translation{
		start: opts.Start,
		dx:    opts.End.X - opts.Start.X,
		dy:    opts.End.Y - opts.Start.Y,
	}, nil
}

// Apply adds the interpolated offset to every point.
func (tr *Translation) Apply(in *plane.Sequence, grid *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		t := grid.Global(i)
		out.X[i] = in.X[i] + tr.start.X + t*tr.dx
		out.Y[i] = in.Y[i] + tr.start.Y + t*tr.dy
	}

	return out
}
