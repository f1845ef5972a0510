// Package render is the thin adapter between the pipeline core and image
// files: the drawing Frame, the fit-to-canvas normalization, and SVG/PNG
// writers.
//
// The Frame is established once, before the pipeline runs, and no module
// ever mutates it; all modules draw in one shared untransformed
// coordinate space and only Normalize maps that space into device
// coordinates (centered, margin-scaled, Y flipped for screen
// conventions).
//
// SVG output goes through github.com/ajstarks/svgo; PNG rasterization
// through github.com/fogleman/gg.
package render
