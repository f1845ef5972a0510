// Package plane provides the 2D primitives shared by every pipeline stage:
// the Point value type and the Sequence point buffer.
//
// A Sequence stores its coordinates as two parallel float64 slices
// (structure-of-arrays) so that per-point stage loops stay cache-friendly
// and trivially parallelizable. Sequences are index-aligned 1:1 with a
// timegrid.Grid; the pipeline enforces that alignment, plane only provides
// the storage and the handful of geometric helpers the stages and the
// resampler need.
//
// No closing segment is ever implied: a Sequence is an open polyline, and
// first/last points are not treated as a loop anywhere in this module.
package plane
