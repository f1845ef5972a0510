package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spiro/plane"
)

// Sentinel errors for frame handling.
var (
	// ErrBadCanvas indicates a non-positive canvas dimension.
	ErrBadCanvas = errors.New("render: canvas dimensions must be positive")
	// ErrBadMargin indicates a margin fraction outside [0, 0.5).
	ErrBadMargin = errors.New("render: margin must be in [0, 0.5)")
)

// Frame is the drawing frame: global origin, canvas geometry and stroke
// styling. It is immutable for the duration of a run.
type Frame struct {
	Width, Height   float64
	Margin          float64 // fraction of each canvas dimension
	StrokeWidth     float64
	StrokeColor     string // hex, e.g. "#000000"
	BackgroundColor string
	Origin          plane.Point // pipeline's global start point
}

// DefaultFrame returns an 800×800 canvas with a 10% margin and a thin
// black stroke on white.
func DefaultFrame() Frame {
	return Frame{
		Width:           800,
		Height:          800,
		Margin:          0.1,
		StrokeWidth:     0.5,
		StrokeColor:     "#000000",
		BackgroundColor: "#ffffff",
	}
}

// Validate checks the frame geometry.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("Validate: %gx%g: %w", f.Width, f.Height, ErrBadCanvas)
	}
	if f.Margin < 0 || f.Margin >= 0.5 {
		return fmt.Errorf("Validate: margin=%g: %w", f.Margin, ErrBadMargin)
	}

	return nil
}

// Normalize maps a sequence from drawing space into canvas coordinates:
// centered on the canvas, uniformly scaled to fit inside the margin, and
// flipped on Y (drawing space is y-up, canvases are y-down).
//
// A sequence with zero extent along an axis is treated as one unit wide
// along that axis so a single point or a flat line still lands centered
// instead of dividing by zero.
func Normalize(seq *plane.Sequence, f Frame) (*plane.Sequence, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	min, max, err := seq.Bounds()
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	dw := max.X - min.X
	dh := max.Y - min.Y
	if dw == 0 {
		dw = 1
	}
	if dh == 0 {
		dh = 1
	}

	availW := f.Width * (1 - 2*f.Margin)
	availH := f.Height * (1 - 2*f.Margin)
	scale := math.Min(availW/dw, availH/dh)

	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2

	out := plane.NewSequence(seq.Len())
	for i := 0; i < seq.Len(); i++ {
		x := (seq.X[i]-cx)*scale + f.Width/2
		y := (seq.Y[i]-cy)*scale + f.Height/2
		out.X[i] = x
		out.Y[i] = f.Height - y
	}

	return out, nil
}
