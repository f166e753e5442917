//go:build !windows

package screenshot

import "fmt"

// ForegroundWindow is only implemented on Windows. Other platforms fall back
// to treating the primary display as the capture target.
func ForegroundWindow() (Region, float64, error) {
	bounds, err := GetDisplayBounds()
	if err != nil {
		return Region{}, 0, fmt.Errorf("foreground window resolution unsupported: %v", err)
	}
	return Region{
		X:      bounds.Min.X,
		Y:      bounds.Min.Y,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, 1.0, nil
}
