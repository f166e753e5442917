// Package hotkey owns the global keyboard hook: it watches for the trigger
// combination and, while hint mode is active, forwards every key press to
// the event loop. The hook observes the OS key stream but cannot suppress
// it, so intercepted presses still reach the focused application; hint
// labels are bare letters precisely because a stray unmodified letter is
// harmless to most targets.
package hotkey

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"

	gohook "github.com/robotn/gohook"
)

// KeyEvent is one intercepted key press, identified by its OS rawcode.
type KeyEvent struct {
	Rawcode uint16
}

type keyState struct {
	name     string
	rawcodes []uint16
	pressed  bool
}

// Listener runs the gohook event loop in its own goroutine. The hook
// callback path must stay fast: it only inspects atomic state, posts onto
// buffered channels with non-blocking sends, and returns. All decisions
// about what a key means happen in the event loop.
//
// Construction and hook startup are separate steps: New parses the combo,
// Start attaches the callbacks and registers the hook. That lets the
// callback targets be built in between, so no event can observe a
// half-wired listener.
type Listener struct {
	combo     string
	intercept atomic.Bool
	onTrigger func()
	onKey     func(KeyEvent)
	stopOnce  sync.Once

	mu        sync.Mutex
	keyStates []keyState
}

// New parses the trigger combination (e.g. "Ctrl+Shift+Space") and returns
// a listener that is not yet hooked into the OS. Call Start to begin
// delivering events.
func New(combo string) *Listener {
	l := &Listener{combo: combo}

	keys := parseHotkey(combo)
	log.Printf("Parsed hotkey configuration: %v", keys)

	for _, keyName := range keys {
		rawcodes := keyNameToRawcodes(keyName)
		if len(rawcodes) == 0 {
			log.Printf("ERROR: Cannot map key '%s' to rawcodes, hotkey may not work correctly", keyName)
			continue
		}
		l.keyStates = append(l.keyStates, keyState{name: keyName, rawcodes: rawcodes})
	}
	if len(l.keyStates) == 0 {
		log.Printf("ERROR: No valid keys in hotkey configuration '%s'", combo)
	}
	return l
}

// Start attaches the callbacks and registers the global hook. onTrigger
// fires when the combination is pressed; onKey fires for every key press
// while interception is enabled. Both callbacks must not block.
func (l *Listener) Start(onTrigger func(), onKey func(KeyEvent)) {
	l.onTrigger = onTrigger
	l.onKey = onKey

	if len(l.keyStates) == 0 {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: gohook.Start() returned nil channel")
			return
		}
		log.Printf("Global hook started for %s", l.combo)

		for ev := range evChan {
			l.handleEvent(ev)
		}
		log.Printf("Hook event channel closed")
	}()
}

// handleEvent routes one raw hook event: intercepted presses go to onKey,
// everything else feeds the combo tracker.
func (l *Listener) handleEvent(ev gohook.Event) {
	if ev.Kind != gohook.KeyDown && ev.Kind != gohook.KeyUp {
		return
	}

	if ev.Kind == gohook.KeyUp {
		l.mu.Lock()
		for i := range l.keyStates {
			for _, rc := range l.keyStates[i].rawcodes {
				if ev.Rawcode == rc {
					l.keyStates[i].pressed = false
					break
				}
			}
		}
		l.mu.Unlock()
		return
	}

	// Hint-mode interception takes precedence over combo tracking: while
	// active every key press goes to the loop.
	if l.intercept.Load() {
		if l.onKey != nil {
			l.onKey(KeyEvent{Rawcode: ev.Rawcode})
		}
		return
	}

	l.mu.Lock()
	for i := range l.keyStates {
		for _, rc := range l.keyStates[i].rawcodes {
			if ev.Rawcode == rc {
				l.keyStates[i].pressed = true
				break
			}
		}
	}
	allPressed := true
	for i := range l.keyStates {
		if !l.keyStates[i].pressed {
			allPressed = false
			break
		}
	}
	if allPressed {
		for i := range l.keyStates {
			l.keyStates[i].pressed = false
		}
	}
	l.mu.Unlock()

	if allPressed {
		log.Printf("Hotkey combination detected: %s", l.combo)
		if l.onTrigger != nil {
			l.onTrigger()
		}
	}
}

// SetIntercept switches modal key capture on or off. Called by the event
// loop when it enters or leaves the active hint state.
func (l *Listener) SetIntercept(on bool) {
	l.intercept.Store(on)
}

// Stop tears down the global hook. Idempotent.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		gohook.End()
	})
}

// parseHotkey converts a hotkey string like "Ctrl+Shift+Space" to
// normalized key names.
func parseHotkey(hotkeyConfig string) []string {
	parts := strings.Split(strings.ToLower(hotkeyConfig), "+")
	var keys []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			keys = append(keys, "ctrl")
		case "alt":
			keys = append(keys, "alt")
		case "shift":
			keys = append(keys, "shift")
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}
	return keys
}
