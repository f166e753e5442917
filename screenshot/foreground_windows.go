//go:build windows

package screenshot

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWnd = user32.NewProc("GetForegroundWindow")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procGetDpiForWindow  = user32.NewProc("GetDpiForWindow")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

// ForegroundWindow returns the on-screen rectangle of the focused window and
// the device scale factor of the monitor it sits on. GetWindowRect reports
// physical pixels with a top-left origin, so the logical region is the rect
// divided by the scale.
func ForegroundWindow() (Region, float64, error) {
	hwnd, _, _ := procGetForegroundWnd.Call()
	if hwnd == 0 {
		return Region{}, 0, fmt.Errorf("no foreground window")
	}

	var r winRect
	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Region{}, 0, fmt.Errorf("GetWindowRect failed: %v", err)
	}

	scale := 1.0
	if dpi, _, _ := procGetDpiForWindow.Call(hwnd); dpi != 0 {
		scale = float64(dpi) / 96.0
	}

	region := Region{
		X:      int(float64(r.Left) / scale),
		Y:      int(float64(r.Top) / scale),
		Width:  int(float64(r.Right-r.Left) / scale),
		Height: int(float64(r.Bottom-r.Top) / scale),
	}
	if region.Width <= 0 || region.Height <= 0 {
		return Region{}, 0, fmt.Errorf("foreground window has empty rect: %+v", region)
	}
	return region, scale, nil
}
