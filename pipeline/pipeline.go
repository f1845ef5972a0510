package pipeline

import (
	"fmt"

	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/timegrid"
)

// Generator produces a point sequence from scratch; one point per grid
// sample, pure in its options and time.
type Generator interface {
	Evaluate(g *timegrid.Grid) *plane.Sequence
}

// Transform reshapes or relocates the running sequence; output length
// must equal input length.
type Transform interface {
	Apply(in *plane.Sequence, g *timegrid.Grid) *plane.Sequence
}

// Stage is one configured module instance. Exactly one of Generator or
// Transform is non-nil; Name is unique within a pipeline and used only
// for diagnostics.
type Stage struct {
	Name      string
	Generator Generator
	Transform Transform
}

// Warning reports a recovered, non-fatal numeric degeneracy.
type Warning struct {
	Stage   string
	Message string
}

// String renders the warning for log output.
func (w Warning) String() string {
	return fmt.Sprintf("stage %q: %s", w.Stage, w.Message)
}

// Pipeline is an immutable ordered stage list plus the single global
// origin that anchors absolute position.
type Pipeline struct {
	stages []Stage
	origin plane.Point
}

// New validates and assembles a pipeline.
//
// Errors:
//   - ErrEmptyPipeline     — no stages.
//   - ErrInvalidStage      — a stage without exactly one module.
//   - ErrEmptyName         — a stage with an empty name.
//   - ErrDuplicateName     — two stages sharing a name.
//   - ErrGeneratorPosition — a generator anywhere but stage 0.
func New(origin plane.Point, stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyPipeline)
	}
	seen := make(map[string]struct{}, len(stages))
	for i, st := range stages {
		if (st.Generator == nil) == (st.Transform == nil) {
			return nil, fmt.Errorf("New: stage %d: %w", i, ErrInvalidStage)
		}
		if st.Name == "" {
			return nil, fmt.Errorf("New: stage %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[st.Name]; dup {
			return nil, fmt.Errorf("New: stage %d (%q): %w", i, st.Name, ErrDuplicateName)
		}
		seen[st.Name] = struct{}{}
		if st.Generator != nil && i > 0 {
			return nil, fmt.Errorf("New: stage %d (%q): %w", i, st.Name, ErrGeneratorPosition)
		}
	}

	own := make([]Stage, len(stages))
	copy(own, stages)

	return &Pipeline{stages: own, origin: origin}, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Origin returns the pipeline's global origin point.
func (p *Pipeline) Origin() plane.Point {
	return p.origin
}

// Names returns the stage names in pipeline order.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.stages))
	for i, st := range p.stages {
		out[i] = st.Name
	}

	return out
}

// Run threads the grid through every stage and returns the final dense
// sequence with any non-finite points removed.
//
// If stage 0 is a transform, the run starts from the origin repeated
// across the grid. Each stage's output length is checked against the
// grid before the next stage sees it. Non-finite points are recorded as
// Warnings against the first stage that produced them and dropped only
// after the final stage, so intermediate index alignment is preserved.
//
// Errors:
//   - ErrLengthMismatch — wrapped with the failing stage's name.
//   - ErrNoFinitePoints — every final point was degenerate.
func (p *Pipeline) Run(g *timegrid.Grid) (*plane.Sequence, []Warning, error) {
	n := g.Len()
	var warnings []Warning

	seq := plane.Repeat(p.origin, n)
	seen := 0 // non-finite points already attributed to an earlier stage

	for i, st := range p.stages {
		if st.Generator != nil {
			seq = st.Generator.Evaluate(g)
		} else {
			seq = st.Transform.Apply(seq, g)
		}
		if seq.Len() != n {
			return nil, warnings, fmt.Errorf("Run: stage %d (%q): got %d points for %d grid samples: %w",
				i, st.Name, seq.Len(), n, ErrLengthMismatch)
		}
		if bad := seq.CountNonFinite(); bad > seen {
			warnings = append(warnings, Warning{
				Stage:   st.Name,
				Message: fmt.Sprintf("%d non-finite point(s) introduced", bad-seen),
			})
			seen = bad
		}
	}

	if seen > 0 {
		seq = seq.Finite()
		if seq.Len() == 0 {
			return nil, warnings, fmt.Errorf("Run: %w", ErrNoFinitePoints)
		}
	}

	return seq, warnings, nil
}
