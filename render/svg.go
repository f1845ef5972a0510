package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/spiro/plane"
)

// pathStyle renders stroke styling for the svgo path element.
const pathStyle = "fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round"

// errWriter remembers the first write failure so the svgo canvas, whose
// API returns nothing, can still surface I/O errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}

	return n, err
}

// WriteSVG emits the normalized sequence as a single open SVG path on a
// styled background. The path is never closed: first and last points are
// not an implied loop.
func WriteSVG(w io.Writer, seq *plane.Sequence, f Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if seq.Len() == 0 {
		return fmt.Errorf("WriteSVG: %w", plane.ErrEmptySequence)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := int(f.Width)
	height := int(f.Height)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+f.BackgroundColor)
	canvas.Path(pathData(seq), fmt.Sprintf(pathStyle, f.StrokeColor, f.StrokeWidth))
	canvas.End()

	return ew.err
}

// pathData builds the M/L command string.
func pathData(seq *plane.Sequence) string {
	var b strings.Builder
	for i := 0; i < seq.Len(); i++ {
		cmd := byte('L')
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%.4f %.4f ", cmd, seq.X[i], seq.Y[i])
	}

	return strings.TrimRight(b.String(), " ")
}
