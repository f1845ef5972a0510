package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/spiro/plane"
)

// WritePNG rasterizes the normalized sequence at width×height pixels.
// The sequence is in frame coordinates; when the pixel size differs from
// the frame size the path is scaled to match.
func WritePNG(w io.Writer, seq *plane.Sequence, f Frame, width, height int) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if seq.Len() == 0 {
		return fmt.Errorf("WritePNG: %w", plane.ErrEmptySequence)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("WritePNG: %dx%d: %w", width, height, ErrBadCanvas)
	}

	sx := float64(width) / f.Width
	sy := float64(height) / f.Height

	dc := gg.NewContext(width, height)
	dc.SetHexColor(f.BackgroundColor)
	dc.Clear()

	dc.SetHexColor(f.StrokeColor)
	dc.SetLineWidth(f.StrokeWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	dc.MoveTo(seq.X[0]*sx, seq.Y[0]*sy)
	for i := 1; i < seq.Len(); i++ {
		dc.LineTo(seq.X[i]*sx, seq.Y[i]*sy)
	}
	dc.Stroke()

	return dc.EncodePNG(w)
}
