// Package spiro renders mathematical curves by composing independent
// modules into a pipeline: generators produce a parametric point
// sequence from scratch, transforms reshape or relocate the sequence an
// earlier stage produced.
//
// 🚀 What is spiro?
//
//	A small, deterministic curve engine that brings together:
//		• Generators: two-gear spirograph, rail trochoid, harmonograph,
//		  Lissajous, rose, polygon, star, Archimedean spiral, line,
//		  circle, ellipse
//		• Transforms: rotation (continuous & oscillating), translation,
//		  arc-slide, bend (polar warp), spiral-arc
//		• A pipeline executor keeping one coherent coordinate frame
//		• Arc-length resampling for visually even point density
//		• INI configuration, SVG and PNG output
//
// ✨ Why the pipeline shape?
//
//   - Any module may appear more than once with different parameters —
//     two independent rotations are a first-class use case
//   - Each stage sees the previous stage's output untouched; only the
//     single global origin anchors absolute position
//   - The wrapped-local / unwrapped-global phase split (see timegrid)
//     turns repeated generator cycles into moiré interference instead of
//     retraced ink
//
// Everything is organized under focused subpackages:
//
//	plane/      — Point & structure-of-arrays point sequences
//	timegrid/   — the normalized time axis and the cycle-phase split
//	generators/ — curve-producing modules
//	transforms/ — sequence-reshaping modules
//	pipeline/   — stage contracts, registry, executor
//	resample/   — arc-length reparameterization
//	render/     — drawing frame, SVG (svgo) and PNG (gg) writers
//	config/     — INI loading into a runnable pipeline
//	cmd/spiro/  — the command-line entry point
//
// This package itself carries only the default module registry: the
// startup-time table from configured type names ("circle", "rotation",
// "spirograph_gear", ...) to validated module constructors.
//
//	go get github.com/katalvlaran/spiro
package spiro
