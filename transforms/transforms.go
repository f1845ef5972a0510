package transforms

import "math"

// Shared numeric constants.
const (
	twoPi    = 2 * math.Pi
	degToRad = math.Pi / 180
)
