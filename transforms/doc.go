// Package transforms implements the pipeline's sequence-reshaping
// modules: rotation, oscillating rotation, translation, arc-slide, bend
// (horizontal and vertical) and spiral-arc.
//
// Transforms come in two observably different families:
//
//   - Sliding: rotation, translation, arcslide, spiralarc carry the
//     incoming shape as a rigid body along a path. Pairwise distances
//     between input points are preserved (rotation/arcslide exactly,
//     translation trivially). A straight input segment stays straight.
//   - Warping: bend re-maps each point's coordinates (x → angle,
//     y → radius), altering the geometry itself. The same straight
//     segment becomes a literal circular arc.
//
// Cumulative motion — rotation angle, translation offset, arc sweep —
// always advances on the unwrapped global time: it reaches its total at
// the end of the grid no matter how many generator cycles occurred, so
// chained cycles smear across the full range instead of retracing.
// Translation in particular is single-pass by contract; a back-and-forth
// sweep is expressed by composing two translations with opposite
// directions, never by a parameter on one stage.
package transforms
