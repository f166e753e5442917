package hotkey

import (
	"testing"

	gohook "github.com/robotn/gohook"
)

func keyDown(rawcode uint16) gohook.Event {
	return gohook.Event{Kind: gohook.KeyDown, Rawcode: rawcode}
}

func keyUp(rawcode uint16) gohook.Event {
	return gohook.Event{Kind: gohook.KeyUp, Rawcode: rawcode}
}

func TestComboFiresTrigger(t *testing.T) {
	l := New("Ctrl+Shift+Space")

	fired := 0
	l.Start(func() { fired++ }, nil)

	// Left ctrl, left shift, then space completes the combination.
	l.handleEvent(keyDown(162))
	l.handleEvent(keyDown(160))
	if fired != 0 {
		t.Fatalf("trigger fired before combination completed")
	}
	l.handleEvent(keyDown(32))
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// Completion resets the tracker: the final key alone must not re-fire.
	l.handleEvent(keyDown(32))
	if fired != 1 {
		t.Fatalf("fired = %d after lone re-press, want 1", fired)
	}
}

func TestKeyUpClearsComboState(t *testing.T) {
	l := New("Ctrl+Space")

	fired := 0
	l.Start(func() { fired++ }, nil)

	l.handleEvent(keyDown(162))
	l.handleEvent(keyUp(162))
	l.handleEvent(keyDown(32))
	if fired != 0 {
		t.Fatalf("trigger fired although ctrl was released before space")
	}
}

func TestInterceptRoutesKeysToCallback(t *testing.T) {
	l := New("Ctrl+Space")

	var keys []uint16
	fired := 0
	l.Start(func() { fired++ }, func(ev KeyEvent) { keys = append(keys, ev.Rawcode) })

	l.SetIntercept(true)
	l.handleEvent(keyDown(162))
	l.handleEvent(keyDown(32))
	if fired != 0 {
		t.Fatalf("combo tracking ran while interception was on")
	}
	if len(keys) != 2 || keys[0] != 162 || keys[1] != 32 {
		t.Fatalf("intercepted keys = %v, want [162 32]", keys)
	}

	// Switching interception off restores combo tracking.
	l.SetIntercept(false)
	l.handleEvent(keyDown(162))
	l.handleEvent(keyDown(32))
	if fired != 1 {
		t.Fatalf("fired = %d after interception off, want 1", fired)
	}
}

func TestEventsBeforeStartAreSafe(t *testing.T) {
	// Events must be harmless on a listener whose callbacks are not yet
	// attached: New and Start are separate so the callback targets can be
	// constructed in between.
	l := New("Ctrl+Space")
	l.SetIntercept(true)
	l.handleEvent(keyDown(65))
	l.SetIntercept(false)
	l.handleEvent(keyDown(162))
	l.handleEvent(keyDown(32))
}

func TestUnparsableComboStaysInert(t *testing.T) {
	l := New("nosuchkey")
	fired := 0
	l.Start(func() { fired++ }, nil)
	l.handleEvent(keyDown(32))
	if fired != 0 {
		t.Fatalf("trigger fired for an unparsable combination")
	}
}
