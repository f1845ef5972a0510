// Package pipeline threads a time grid and a running point sequence
// through an ordered list of configured modules.
//
// Contracts:
//
//   - Generator: Evaluate(grid) → sequence. Pure function of its options
//     and time; may only head a pipeline. If the pipeline starts with a
//     transform instead, the executor starts from the global origin
//     repeated across the grid.
//   - Transform: Apply(sequence, grid) → sequence of equal length,
//     operating on the running coordinate frame it receives. Stages never
//     re-zero: only the single global origin anchors absolute position.
//
// Stages run strictly in order; within a stage every point is a pure
// function of its own coordinates, its own time value and stage-global
// parameters, so a stage could be evaluated as a parallel map. The
// executor keeps the simple sequential loop — the dominant cost is the
// two live point buffers, not CPU.
//
// A stage returning a sequence of the wrong length is an internal
// invariant violation and fails the run (ErrLengthMismatch); it is never
// padded or truncated. NaN/Inf points are non-fatal: they are reported as
// Warnings naming the offending stage and dropped after the final stage.
package pipeline
