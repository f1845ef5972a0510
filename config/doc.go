// Package config loads a renderable pipeline description from an INI
// file.
//
// The file names its stages once, in order, and gives each stage its own
// section:
//
//	[pipeline]
//	modules  = base, spin.1, spin.2
//	origin_x = 0
//	origin_y = 0
//
//	[base]
//	type   = circle
//	radius = 120
//
//	[spin.1]
//	type          = rotation
//	total_degrees = 360
//
//	[spin.2]
//	type          = rotation
//	total_degrees = -1080
//
// A section's "type" key selects the module implementation from the
// registry; when the key is absent the section name up to the first dot
// is used, so [circle.1] and [circle.2] need no explicit type. Every
// remaining key in the section is handed to the module's builder
// untouched.
//
// Two optional sections tune the run: [sampling] controls the dense
// evaluation grid and the resampler, [output] controls the canvas,
// stroke styling and the output filename. Both fall back to package
// defaults when absent.
package config
