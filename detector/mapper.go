package detector

// Rect is a window rectangle in screen coordinates. Origin convention is
// top-left throughout this module: the capture source, this mapper, and the
// input injector all speak virtual-screen coordinates with Y growing down.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ScreenPoint is a badge center mapped into screen coordinates, the unit
// handed to the overlay and the input injector.
type ScreenPoint struct {
	X, Y float64
}

// mapToScreen rescales image-space centers into screen space. The capture is
// imgW x imgH pixels covering the window rectangle win; on high-density
// displays imgW is the logical width times the device scale factor, so the
// per-axis scale undoes that multiple.
func mapToScreen(markers []Marker, imgW, imgH int, win Rect) []ScreenPoint {
	scaleX := win.Width / float64(imgW)
	scaleY := win.Height / float64(imgH)

	points := make([]ScreenPoint, len(markers))
	for i, m := range markers {
		points[i] = ScreenPoint{
			X: win.X + m.X*scaleX,
			Y: win.Y + m.Y*scaleY,
		}
	}
	return points
}
