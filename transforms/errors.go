package transforms

import "errors"

// Sentinel errors shared by transform constructors.
var (
	// ErrNonPositive indicates a length-like parameter that must be > 0.
	ErrNonPositive = errors.New("transforms: parameter must be positive")
	// ErrBadDirection indicates a direction flag other than +1 or -1.
	ErrBadDirection = errors.New("transforms: direction must be +1 or -1")
	// ErrBadOscillations indicates oscillations <= 0.
	ErrBadOscillations = errors.New("transforms: oscillations must be positive")
)
