package screenshot

import (
	"context"

	"github.com/guxi11/reddot/detector"
)

// Source captures the current foreground window for the event loop. It
// implements eventloop.FrameSource.
type Source struct{}

func NewSource() *Source { return &Source{} }

// Capture resolves the foreground window, requests a capture at the
// window's physical pixel resolution, and returns the buffer together with
// the window rectangle in logical screen coordinates.
func (s *Source) Capture(ctx context.Context) (*detector.PixelBuffer, detector.Rect, error) {
	if err := ctx.Err(); err != nil {
		return nil, detector.Rect{}, err
	}

	region, scale, err := ForegroundWindow()
	if err != nil {
		return nil, detector.Rect{}, err
	}

	pixelW := int(float64(region.Width) * scale)
	pixelH := int(float64(region.Height) * scale)
	buf, err := CaptureRegion(region, pixelW, pixelH)
	if err != nil {
		return nil, detector.Rect{}, err
	}

	win := detector.Rect{
		X:      float64(region.X),
		Y:      float64(region.Y),
		Width:  float64(region.Width),
		Height: float64(region.Height),
	}
	return buf, win, nil
}
