// Package plane defines the Point and Sequence types used across spiro.
package plane

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for plane operations.
var (
	// ErrEmptySequence indicates an operation that needs at least one point.
	ErrEmptySequence = errors.New("plane: sequence must contain at least one point")
)

// Point is a position in the shared, untransformed coordinate space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders the point for diagnostics.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Lerp linearly interpolates between p and o; u=0 yields p, u=1 yields o.
func (p Point) Lerp(o Point, u float64) Point {
	return Point{
		X: p.X + u*(o.X-p.X),
		Y: p.Y + u*(o.Y-p.Y),
	}
}

// IsFinite reports whether both coordinates are finite (no NaN, no ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Sequence is an ordered point buffer in structure-of-arrays layout.
// X and Y always have equal length. Stages create a fresh Sequence per
// run; nothing in spiro mutates a Sequence it did not allocate.
type Sequence struct {
	X, Y []float64
}

// NewSequence allocates a zeroed sequence of n points.
func NewSequence(n int) *Sequence {
	return &Sequence{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// Repeat returns a sequence of n copies of p. Used for the degenerate
// pipeline start when no generator heads the pipeline.
func Repeat(p Point, n int) *Sequence {
	s := NewSequence(n)
	for i := 0; i < n; i++ {
		s.X[i] = p.X
		s.Y[i] = p.Y
	}

	return s
}

// Len returns the number of points.
func (s *Sequence) Len() int {
	return len(s.X)
}

// At returns point i. The caller is responsible for bounds.
func (s *Sequence) At(i int) Point {
	return Point{X: s.X[i], Y: s.Y[i]}
}

// Set stores p at index i.
func (s *Sequence) Set(i int, p Point) {
	s.X[i] = p.X
	s.Y[i] = p.Y
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	c := NewSequence(s.Len())
	copy(c.X, s.X)
	copy(c.Y, s.Y)

	return c
}

// CountNonFinite returns how many points contain a NaN or infinite
// coordinate. Zero means the sequence is numerically sound.
func (s *Sequence) CountNonFinite() int {
	var bad int
	for i := range s.X {
		if !s.At(i).IsFinite() {
			bad++
		}
	}

	return bad
}

// Finite returns a copy of s with every non-finite point removed.
// The original is untouched. The result may be shorter than s.
func (s *Sequence) Finite() *Sequence {
	out := &Sequence{
		X: make([]float64, 0, s.Len()),
		Y: make([]float64, 0, s.Len()),
	}
	for i := range s.X {
		if s.At(i).IsFinite() {
			out.X = append(out.X, s.X[i])
			out.Y = append(out.Y, s.Y[i])
		}
	}

	return out
}

// Bounds returns the axis-aligned bounding box of the sequence.
// Returns ErrEmptySequence for a zero-length sequence.
func (s *Sequence) Bounds() (min, max Point, err error) {
	if s.Len() == 0 {
		return Point{}, Point{}, ErrEmptySequence
	}
	min = s.At(0)
	max = s.At(0)
	for i := 1; i < s.Len(); i++ {
		p := s.At(i)
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	return min, max, nil
}
