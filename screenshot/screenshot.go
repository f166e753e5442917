// Package screenshot is the frame source: it resolves the foreground window
// and captures its contents as a BGRA pixel buffer for the detector.
// All rectangles are virtual-screen coordinates with a top-left origin, the
// same convention the input injector uses.
package screenshot

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
	xdraw "golang.org/x/image/draw"

	"github.com/guxi11/reddot/detector"
)

// Region is a screen rectangle in logical (point) coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CaptureRegion captures a screen region and returns it as a BGRA buffer of
// exactly pixelW x pixelH pixels. On high-density displays callers pass
// pixelW = region width * device scale so badge geometry stays at its native
// pixel size; when the OS hands back a different resolution the image is
// rescaled to the requested one.
func CaptureRegion(region Region, pixelW, pixelH int) (*detector.PixelBuffer, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, fmt.Errorf("invalid region dimensions: width=%d, height=%d", region.Width, region.Height)
	}
	if pixelW <= 0 || pixelH <= 0 {
		return nil, fmt.Errorf("invalid capture resolution: %dx%d", pixelW, pixelH)
	}

	bounds := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}

	if img.Bounds().Dx() != pixelW || img.Bounds().Dy() != pixelH {
		scaled := image.NewRGBA(image.Rect(0, 0, pixelW, pixelH))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}

	return toBGRA(img), nil
}

// GetDisplayBounds returns the bounds of the primary display.
func GetDisplayBounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	return screenshot.GetDisplayBounds(0), nil
}

// toBGRA repacks an RGBA image into the detector's BGRA channel order. The
// row stride carries over unchanged, so any capture padding is preserved.
func toBGRA(img *image.RGBA) *detector.PixelBuffer {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	pix := make([]byte, len(img.Pix))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		out := pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			out[i] = row[i+2]
			out[i+1] = row[i+1]
			out[i+2] = row[i]
			out[i+3] = row[i+3]
		}
	}
	return &detector.PixelBuffer{Pix: pix, Width: w, Height: h, Stride: img.Stride}
}
