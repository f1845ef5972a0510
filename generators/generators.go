package generators

import "math"

// Shared numeric constants; no magic numbers in module bodies.
const (
	twoPi    = 2 * math.Pi
	degToRad = math.Pi / 180
)

// gcd returns the greatest common divisor of two positive ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lerp interpolates a -> b as u goes 0 -> 1.
func lerp(a, b, u float64) float64 {
	return a + u*(b-a)
}
