package pipeline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiro/pipeline"
	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// unitCircle is a minimal test generator: a unit circle traced once.
type unitCircle struct{}

func (unitCircle) Evaluate(g *timegrid.Grid) *plane.Sequence {
	seq := plane.NewSequence(g.Len())
	for i := 0; i < g.Len(); i++ {
		angle := g.Local(i, 1) * 2 * math.Pi
		seq.X[i] = math.Cos(angle)
		seq.Y[i] = math.Sin(angle)
	}

	return seq
}

// shift is a minimal test transform adding a constant offset.
type shift struct{ dx, dy float64 }

func (s shift) Apply(in *plane.Sequence, _ *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len())
	for i := 0; i < in.Len(); i++ {
		out.X[i] = in.X[i] + s.dx
		out.Y[i] = in.Y[i] + s.dy
	}

	return out
}

// truncate violates the same-length contract on purpose.
type truncate struct{}

func (truncate) Apply(in *plane.Sequence, _ *timegrid.Grid) *plane.Sequence {
	out := plane.NewSequence(in.Len() - 1)
	copy(out.X, in.X[:out.Len()])
	copy(out.Y, in.Y[:out.Len()])

	return out
}

// poison emits NaN at a fixed index.
type poison struct{ at int }

func (p poison) Apply(in *plane.Sequence, _ *timegrid.Grid) *plane.Sequence {
	out := in.Clone()
	out.X[p.at] = math.NaN()

	return out
}

func grid(t *testing.T, samples int) *timegrid.Grid {
	t.Helper()
	g, err := timegrid.New(timegrid.Options{Samples: samples})
	require.NoError(t, err)

	return g
}

// TestNew_Validation covers every construction error.
func TestNew_Validation(t *testing.T) {
	gen := pipeline.Stage{Name: "base", Generator: unitCircle{}}
	tr := pipeline.Stage{Name: "move", Transform: shift{1, 0}}

	_, err := pipeline.New(plane.Pt(0, 0))
	assert.ErrorIs(t, err, pipeline.ErrEmptyPipeline, "no stages must error")

	_, err = pipeline.New(plane.Pt(0, 0), pipeline.Stage{Name: "both", Generator: unitCircle{}, Transform: shift{}})
	assert.ErrorIs(t, err, pipeline.ErrInvalidStage, "a stage carries exactly one module")

	_, err = pipeline.New(plane.Pt(0, 0), pipeline.Stage{Name: "neither"})
	assert.ErrorIs(t, err, pipeline.ErrInvalidStage)

	_, err = pipeline.New(plane.Pt(0, 0), pipeline.Stage{Generator: unitCircle{}})
	assert.ErrorIs(t, err, pipeline.ErrEmptyName, "stages need names for diagnostics")

	_, err = pipeline.New(plane.Pt(0, 0), gen, pipeline.Stage{Name: "base", Transform: shift{}})
	assert.ErrorIs(t, err, pipeline.ErrDuplicateName, "stage names are unique")

	_, err = pipeline.New(plane.Pt(0, 0), tr, gen)
	assert.ErrorIs(t, err, pipeline.ErrGeneratorPosition, "generators run only at the pipeline head")
}

// TestRun_GeneratorThenTransform verifies the basic chain: the circle
// shifted right by one.
func TestRun_GeneratorThenTransform(t *testing.T) {
	p, err := pipeline.New(plane.Pt(0, 0),
		pipeline.Stage{Name: "base", Generator: unitCircle{}},
		pipeline.Stage{Name: "move", Transform: shift{1, 0}},
	)
	require.NoError(t, err)

	out, warnings, err := p.Run(grid(t, 4))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 4, out.Len())

	// t=0 on the unit circle is (1,0); shifted to (2,0).
	assert.InDelta(t, 2.0, out.X[0], 1e-12)
	assert.InDelta(t, 0.0, out.Y[0], 1e-12)
}

// TestRun_TransformFirstStartsFromOrigin verifies the degenerate start:
// with no generator, stage 0 sees the origin repeated across the grid.
func TestRun_TransformFirstStartsFromOrigin(t *testing.T) {
	p, err := pipeline.New(plane.Pt(5, 5),
		pipeline.Stage{Name: "move", Transform: shift{1, 2}},
	)
	require.NoError(t, err)

	out, _, err := p.Run(grid(t, 3))
	require.NoError(t, err)
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, plane.Pt(6, 7), out.At(i), "origin plus the constant shift at every sample")
	}
}

// TestRun_LengthMismatch verifies the contract violation is fatal and
// names the failing stage.
func TestRun_LengthMismatch(t *testing.T) {
	p, err := pipeline.New(plane.Pt(0, 0),
		pipeline.Stage{Name: "base", Generator: unitCircle{}},
		pipeline.Stage{Name: "chop", Transform: truncate{}},
	)
	require.NoError(t, err)

	_, _, err = p.Run(grid(t, 10))
	assert.ErrorIs(t, err, pipeline.ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"chop"`, "the failing stage is named")
}

// TestRun_NonFiniteWarning verifies degenerate points are attributed to
// the stage that introduced them and dropped only after the final stage.
func TestRun_NonFiniteWarning(t *testing.T) {
	p, err := pipeline.New(plane.Pt(0, 0),
		pipeline.Stage{Name: "base", Generator: unitCircle{}},
		pipeline.Stage{Name: "bad", Transform: poison{at: 2}},
		pipeline.Stage{Name: "move", Transform: shift{1, 1}},
	)
	require.NoError(t, err)

	out, warnings, err := p.Run(grid(t, 6))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "bad", warnings[0].Stage, "warning names the stage that introduced the NaN")
	assert.Equal(t, 5, out.Len(), "exactly the poisoned point is dropped")
}

// TestRun_AllPointsDegenerate verifies the run fails when nothing
// finite survives.
func TestRun_AllPointsDegenerate(t *testing.T) {
	p, err := pipeline.New(plane.Pt(math.NaN(), 0),
		pipeline.Stage{Name: "move", Transform: shift{1, 1}},
	)
	require.NoError(t, err)

	_, _, err = p.Run(grid(t, 4))
	assert.ErrorIs(t, err, pipeline.ErrNoFinitePoints)
}

// TestRegistry covers registration, lookup and the build path.
func TestRegistry(t *testing.T) {
	r := pipeline.NewRegistry()
	builder := func(name string, _ pipeline.Params) (pipeline.Stage, error) {
		return pipeline.Stage{Name: name, Generator: unitCircle{}}, nil
	}

	require.NoError(t, r.Register("circle", builder))
	assert.ErrorIs(t, r.Register("circle", builder), pipeline.ErrDuplicateType, "double registration must error")
	assert.Equal(t, 1, r.Types())

	_, err := r.Lookup("nope")
	assert.ErrorIs(t, err, pipeline.ErrUnknownType)

	st, err := r.Build("base", "circle", pipeline.NewParams(nil))
	require.NoError(t, err)
	assert.Equal(t, "base", st.Name, "builder receives the configured module name")

	_, err = r.Build("base", "nope", pipeline.NewParams(nil))
	assert.ErrorIs(t, err, pipeline.ErrUnknownType)
	assert.Contains(t, err.Error(), `module "base"`, "build errors carry the module name")
}
