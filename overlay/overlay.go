// Package overlay draws hint labels and status text on top of every other
// window. The event loop only talks to the Renderer interface; the fyne
// implementation lives in fyne.go and a no-op one below covers headless use.
package overlay

import "time"

// Hint is one label to draw at a screen position. The renderer receives
// values, never a live reference to the controller's hint set.
type Hint struct {
	Label string
	X, Y  int
}

// Renderer displays and dismisses overlay content. Implementations must be
// safe to call from the event loop goroutine.
type Renderer interface {
	// ShowHints displays all hints at once, replacing any visible set.
	ShowHints(hints []Hint)
	// ShowStatus displays a transient status message that dismisses itself
	// after the given duration.
	ShowStatus(text string, autoDismiss time.Duration)
	// DismissAll removes all visible overlay content. Idempotent.
	DismissAll()
}

// Noop is a Renderer that draws nothing, for headless runs and tests.
type Noop struct{}

func (Noop) ShowHints([]Hint)                 {}
func (Noop) ShowStatus(string, time.Duration) {}
func (Noop) DismissAll()                      {}
