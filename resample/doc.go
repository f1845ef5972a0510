// Package resample converts the pipeline's dense, non-uniformly spaced
// point sequence into an output sequence with visually even spacing.
//
// The dense parametric samples cluster wherever the curve moves slowly
// in t — the inner turns of a spiral, the cusps of a trochoid. Arc-length
// reparameterization fixes that: cumulative Euclidean path length forms a
// monotone axis, output_samples target lengths are spread evenly between
// 0 and the total, and each target is located on the axis by a bracketing
// pair of dense indices and resolved by linear interpolation.
//
// Degenerate inputs recover locally instead of failing: zero-length
// segments (coincident dense samples) are skipped rather than divided
// by, and a curve with zero total length falls back to plain stride
// subsampling with a warning. Resampling never changes endpoints — first
// and last output points equal first and last dense points.
package resample
