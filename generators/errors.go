package generators

import "errors"

// Sentinel errors shared by all generator constructors. Constructors wrap
// these with the offending parameter via %w; callers branch with errors.Is.
var (
	// ErrTeethCount indicates a gear with fewer than one tooth.
	ErrTeethCount = errors.New("generators: tooth count must be at least 1")
	// ErrNonPositive indicates a length-like parameter that must be > 0.
	ErrNonPositive = errors.New("generators: parameter must be positive")
	// ErrNegative indicates a parameter that must be >= 0.
	ErrNegative = errors.New("generators: parameter must not be negative")
	// ErrBadCycles indicates cycles <= 0.
	ErrBadCycles = errors.New("generators: cycles must be positive")
	// ErrBadFrequency indicates a frequency ratio term below 1.
	ErrBadFrequency = errors.New("generators: frequency term must be at least 1")
	// ErrBadSides indicates a polygon with fewer than 3 sides or a star
	// with fewer than 2 points.
	ErrBadSides = errors.New("generators: too few sides or points")
	// ErrBadDirection indicates a direction flag other than +1 or -1.
	ErrBadDirection = errors.New("generators: direction must be +1 or -1")
	// ErrBadStrokeTime indicates stroke_time outside (0, 1].
	ErrBadStrokeTime = errors.New("generators: stroke time must be in (0, 1]")
	// ErrBadPreset indicates an unknown harmonograph preset name.
	ErrBadPreset = errors.New("generators: unknown preset")
)
