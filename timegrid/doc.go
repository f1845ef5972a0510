// Package timegrid builds the normalized time axis every pipeline stage
// evaluates over.
//
// A Grid holds initial_samples values spanning [0, 1) with the endpoint
// excluded, monotonically non-decreasing, and of fixed length for one
// pipeline run. The grid is uniform unless an arc-length pre-weighting
// warp is supplied.
//
// The one subtlety the whole system hangs on is the split between the
// wrapped local phase and the unwrapped global phase:
//
//   - Local(i, cycles) = frac(t_i * cycles) drives a module's SHAPE: the
//     generator's own parametric phase, which wraps every cycle so the base
//     figure is retraced.
//   - Global(i) = t_i drives anything CUMULATIVE: rotation angle,
//     translation distance, radius or amplitude growth. It never wraps.
//
// Repeating identical samples per cycle would make cycles > 1 a visual
// no-op. Advancing the global coordinate while the local phase wraps is
// what turns repeated traces into moiré interference.
package timegrid
