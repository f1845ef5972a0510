// Package generators implements the pipeline's curve-producing modules:
// spirograph gear and rail, harmonograph, Lissajous, rose, polygon, star,
// Archimedean spiral, line, circle and ellipse.
//
// Every generator follows the same shape: an Options struct with
// documented defaults, a validating constructor returning sentinel
// errors, and an Evaluate method that is a pure function of the options
// and a timegrid.Grid. One file per module.
//
// All generators honor the wrapped/unwrapped phase split (see timegrid):
// the shape phase is grid.Local(i, cycles) and wraps each cycle, while
// grow/shrink interpolation of radii, amplitudes and lengths advances on
// grid.Global(i) across the whole drawing. With cycles > 1 the figure is
// retraced while its cumulative parameters keep moving — the source of
// moiré interference once a transform stage is chained behind.
package generators
