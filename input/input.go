// Package input injects synthetic pointer events. Coordinates are
// virtual-screen, top-left origin, matching the capture source.
package input

import (
	"time"

	"github.com/go-vgo/robotgo"
)

// Injector moves the pointer and clicks at screen points. The event loop
// hovers with MoveTo before it clicks; Robotgo below is the real
// implementation.
type Injector interface {
	// MoveTo positions the pointer over the target and lets any
	// hover-sensitive UI react before a click follows.
	MoveTo(x, y int)
	// Click presses and releases the primary button at the point.
	Click(x, y int)
}

// Robotgo drives the OS input stream through robotgo. The delays matter:
// real UI elements want a hover before the click and a press/release pair
// that is temporally distinguishable from a single instantaneous event.
type Robotgo struct {
	// HoverDelay runs between moving to the target and pressing.
	HoverDelay time.Duration
	// PressDelay runs between press and release.
	PressDelay time.Duration
}

func NewRobotgo() *Robotgo {
	return &Robotgo{
		HoverDelay: 50 * time.Millisecond,
		PressDelay: 60 * time.Millisecond,
	}
}

func (r *Robotgo) MoveTo(x, y int) {
	robotgo.Move(x, y)
	time.Sleep(r.HoverDelay)
}

func (r *Robotgo) Click(x, y int) {
	robotgo.Move(x, y)
	robotgo.Toggle("left")
	time.Sleep(r.PressDelay)
	robotgo.Toggle("left", "up")
}
