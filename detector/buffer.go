package detector

import "fmt"

// PixelBuffer is a read-only view of a captured frame in BGRA byte order
// (4 bytes per pixel). Stride is the length of one row in bytes and may be
// larger than Width*4 when the capture service pads rows. The buffer is owned
// by the caller for the duration of one Detect call and is never retained.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// BGRA returns the color channels of the pixel at (x, y).
// Bounds are the caller's responsibility; the hot loops in this package
// index Pix directly and only use this helper outside of them.
func (b *PixelBuffer) BGRA(x, y int) (blue, green, red, alpha uint8) {
	i := y*b.Stride + x*4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// validate rejects buffers the pipeline cannot safely scan: zero dimensions,
// a stride shorter than one row of pixels, or a Pix slice too small for the
// declared geometry.
func (b *PixelBuffer) validate() error {
	if b == nil {
		return fmt.Errorf("nil pixel buffer")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("degenerate buffer dimensions: %dx%d", b.Width, b.Height)
	}
	if b.Stride < b.Width*4 {
		return fmt.Errorf("stride %d too small for width %d", b.Stride, b.Width)
	}
	if need := (b.Height-1)*b.Stride + b.Width*4; len(b.Pix) < need {
		return fmt.Errorf("pixel data too short: have %d bytes, need %d", len(b.Pix), need)
	}
	return nil
}
