package pipeline

import "errors"

// Sentinel errors. Callers branch with errors.Is; run errors carry the
// failing stage name via %w wrapping.
var (
	// ErrEmptyPipeline indicates a pipeline with no stages.
	ErrEmptyPipeline = errors.New("pipeline: at least one stage is required")
	// ErrInvalidStage indicates a stage with neither or both of a
	// generator and a transform.
	ErrInvalidStage = errors.New("pipeline: stage must hold exactly one of generator or transform")
	// ErrEmptyName indicates a stage without a diagnostic name.
	ErrEmptyName = errors.New("pipeline: stage name must be non-empty")
	// ErrDuplicateName indicates two stages sharing a name.
	ErrDuplicateName = errors.New("pipeline: stage names must be unique")
	// ErrGeneratorPosition indicates a generator configured after stage 0.
	ErrGeneratorPosition = errors.New("pipeline: generators may only start a pipeline")
	// ErrLengthMismatch indicates a stage broke the sequence/grid
	// alignment invariant. Always fatal, never repaired.
	ErrLengthMismatch = errors.New("pipeline: stage output length differs from grid length")
	// ErrNoFinitePoints indicates every point of the final sequence was
	// numerically degenerate.
	ErrNoFinitePoints = errors.New("pipeline: no finite points produced")

	// ErrUnknownType indicates a registry lookup for an unregistered
	// module type name.
	ErrUnknownType = errors.New("pipeline: unknown module type")
	// ErrDuplicateType indicates a second registration of a type name.
	ErrDuplicateType = errors.New("pipeline: module type already registered")
	// ErrBadParam indicates a module parameter that failed to parse.
	ErrBadParam = errors.New("pipeline: malformed parameter value")
)
