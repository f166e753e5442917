// Package eventloop is the single-threaded coordinator for hint selection.
// One goroutine owns the controller state machine (Idle -> Detecting ->
// Active -> Dispatching); the global hook and the detection workers only
// post messages onto its channels and never touch state directly.
package eventloop

import (
	"context"
	"log"
	"time"

	"github.com/guxi11/reddot/detector"
	"github.com/guxi11/reddot/hotkey"
	"github.com/guxi11/reddot/input"
	"github.com/guxi11/reddot/overlay"
	"github.com/guxi11/reddot/worker"
)

// State is the controller's position in the hint-selection cycle.
type State int

const (
	// StateIdle: no hints visible, trigger accepted.
	StateIdle State = iota
	// StateDetecting: a capture+detect job is in flight.
	StateDetecting
	// StateActive: hints are on screen and keys are intercepted.
	StateActive
	// StateDispatching: a click is being injected.
	StateDispatching
)

// Hint binds one letter to one detected badge for the lifetime of an
// Active set.
type Hint struct {
	Label rune
	Point detector.ScreenPoint
}

// maxHints caps the label alphabet. Detections beyond the 26th stay in the
// detector's output order but get no letter and cannot be selected.
const maxHints = 26

// FrameSource supplies one captured frame of the current foreground window.
// The capture is the only blocking wait in a detection.
type FrameSource interface {
	Capture(ctx context.Context) (*detector.PixelBuffer, detector.Rect, error)
}

// Interceptor toggles modal key capture. Implemented by hotkey.Listener.
type Interceptor interface {
	SetIntercept(on bool)
}

// Config carries the controller's timing and mode knobs.
type Config struct {
	// Persistent re-enters detection automatically after each successful
	// selection instead of returning to idle.
	Persistent bool
	// Deadline bounds one capture+detect job.
	Deadline time.Duration
	// SettleDelay runs after a dispatched click before a persistent-mode
	// re-detection, letting the target application repaint.
	SettleDelay time.Duration
	// StatusDuration is how long transient status text stays up.
	StatusDuration time.Duration
}

func (c *Config) applyDefaults() {
	if c.Deadline <= 0 {
		c.Deadline = 3 * time.Second
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = 400 * time.Millisecond
	}
	if c.StatusDuration <= 0 {
		c.StatusDuration = 800 * time.Millisecond
	}
}

// Deps are the controller's collaborators. All of them are interfaces (or a
// value detector) so tests run against fakes.
type Deps struct {
	Frames      FrameSource
	Detector    *detector.Detector
	Renderer    overlay.Renderer
	Injector    input.Injector
	Interceptor Interceptor
}

type detectResult struct {
	gen    uint64
	points []detector.ScreenPoint
	err    error
}

type dispatchDone struct {
	gen uint64
}

// Loop is the hint-selection controller. Exactly one exists per process;
// Run owns all mutable state, so none of it needs locking.
type Loop struct {
	cfg  Config
	deps Deps
	pool *worker.Pool

	state State
	hints []Hint
	// gen stamps each detection request; results carrying an older stamp
	// are discarded on receipt. This is the only cancellation mechanism a
	// superseded detection has.
	gen        uint64
	persistent bool

	triggerCh  chan struct{}
	keyCh      chan hotkey.KeyEvent
	results    chan detectResult
	dispatched chan dispatchDone
	persistCh  chan bool
}

// New creates the controller. Call Run to start it.
func New(cfg Config, deps Deps) *Loop {
	cfg.applyDefaults()
	l := &Loop{
		cfg:        cfg,
		deps:       deps,
		persistent: cfg.Persistent,
		triggerCh:  make(chan struct{}, 4),
		keyCh:      make(chan hotkey.KeyEvent, 16),
		results:    make(chan detectResult, 1),
		dispatched: make(chan dispatchDone, 1),
		persistCh:  make(chan bool, 4),
	}
	l.pool = worker.New(1, l.detect)
	return l
}

// Trigger requests hint mode. Safe to call from the hook callback: it posts
// and returns, dropping the event if the loop is backed up.
func (l *Loop) Trigger() {
	select {
	case l.triggerCh <- struct{}{}:
	default:
	}
}

// Key delivers an intercepted key press. Same fast-return contract as
// Trigger.
func (l *Loop) Key(ev hotkey.KeyEvent) {
	select {
	case l.keyCh <- ev:
	default:
	}
}

// SetPersistent flips persistent mode for subsequent selections.
func (l *Loop) SetPersistent(on bool) {
	select {
	case l.persistCh <- on:
	default:
	}
}

// Run processes events until ctx is cancelled. It always leaves the system
// idle on the way out: hints dismissed, interception off.
func (l *Loop) Run(ctx context.Context) error {
	defer l.pool.Close()
	defer l.forceIdle()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.triggerCh:
			l.handleTrigger(ctx)
		case ev := <-l.keyCh:
			l.handleKey(ctx, ev)
		case res := <-l.results:
			l.handleResult(res)
		case d := <-l.dispatched:
			l.handleDispatched(ctx, d)
		case on := <-l.persistCh:
			l.persistent = on
			log.Printf("Persistent mode: %v", on)
		}
	}
}

// detect runs on a worker goroutine: wait for a frame, then run the
// pipeline to completion without further suspension.
func (l *Loop) detect(ctx context.Context) ([]detector.ScreenPoint, error) {
	buf, win, err := l.deps.Frames.Capture(ctx)
	if err != nil {
		return nil, err
	}
	return l.deps.Detector.Detect(buf, win)
}

// handleTrigger starts a detection, but only from Idle: a trigger while
// detecting, active, or dispatching is ignored outright.
func (l *Loop) handleTrigger(ctx context.Context) {
	if l.state != StateIdle {
		log.Printf("Trigger ignored in state %d", l.state)
		return
	}
	l.startDetection(ctx)
}

func (l *Loop) startDetection(ctx context.Context) {
	l.state = StateDetecting
	l.gen++
	gen := l.gen

	jobCtx, cancel := context.WithTimeout(ctx, l.cfg.Deadline)
	ok := l.pool.Submit(jobCtx, func(points []detector.ScreenPoint, err error) {
		cancel()
		l.results <- detectResult{gen: gen, points: points, err: err}
	})
	if !ok {
		cancel()
		log.Printf("Detection worker busy, dropping trigger")
		l.state = StateIdle
	}
}

// handleResult consumes a finished detection. A result whose generation is
// not current, or that arrives when the loop is no longer waiting, belongs
// to a superseded request and is silently discarded.
func (l *Loop) handleResult(res detectResult) {
	if res.gen != l.gen || l.state != StateDetecting {
		log.Printf("Discarding stale detection result (gen %d, current %d)", res.gen, l.gen)
		return
	}

	if res.err != nil {
		// Capture denied, no target window, degenerate frame: all of it
		// converges to "nothing to select", never a hard failure.
		log.Printf("Detection failed: %v", res.err)
		l.state = StateIdle
		l.deps.Renderer.ShowStatus("no badges", l.cfg.StatusDuration)
		return
	}
	if len(res.points) == 0 {
		l.state = StateIdle
		l.deps.Renderer.ShowStatus("no badges", l.cfg.StatusDuration)
		return
	}

	n := len(res.points)
	if n > maxHints {
		n = maxHints
	}
	l.hints = l.hints[:0]
	shown := make([]overlay.Hint, 0, n)
	for i := 0; i < n; i++ {
		label := rune('a' + i)
		l.hints = append(l.hints, Hint{Label: label, Point: res.points[i]})
		shown = append(shown, overlay.Hint{
			Label: string(label),
			X:     int(res.points[i].X),
			Y:     int(res.points[i].Y),
		})
	}
	l.state = StateActive
	l.deps.Renderer.ShowHints(shown)
	l.deps.Interceptor.SetIntercept(true)
	log.Printf("Hint mode active with %d of %d detections", n, len(res.points))
}

// handleKey resolves an intercepted key while hints are up. Everything that
// is not the cancel key or an assigned label is swallowed with no state
// change: hint mode is deliberately modal.
func (l *Loop) handleKey(ctx context.Context, ev hotkey.KeyEvent) {
	if l.state != StateActive {
		return
	}

	if hotkey.IsCancel(ev.Rawcode) {
		l.hints = l.hints[:0]
		l.state = StateIdle
		l.deps.Interceptor.SetIntercept(false)
		l.deps.Renderer.DismissAll()
		return
	}

	letter, ok := hotkey.LetterForRawcode(ev.Rawcode)
	if !ok {
		return
	}
	var target *Hint
	for i := range l.hints {
		if l.hints[i].Label == letter {
			target = &l.hints[i]
			break
		}
	}
	if target == nil {
		return
	}

	point := target.Point
	l.hints = l.hints[:0]
	l.state = StateDispatching
	l.deps.Interceptor.SetIntercept(false)
	l.deps.Renderer.DismissAll()

	gen := l.gen
	persistent := l.persistent
	go func() {
		l.deps.Injector.MoveTo(int(point.X), int(point.Y))
		l.deps.Injector.Click(int(point.X), int(point.Y))
		if persistent {
			time.Sleep(l.cfg.SettleDelay)
		}
		l.dispatched <- dispatchDone{gen: gen}
	}()
}

func (l *Loop) handleDispatched(ctx context.Context, d dispatchDone) {
	if l.state != StateDispatching || d.gen != l.gen {
		return
	}
	if l.persistent {
		l.state = StateIdle
		l.startDetection(ctx)
		return
	}
	l.state = StateIdle
}

// forceIdle drops any pending hint state and returns the system to idle.
// Safe to call repeatedly and from any state.
func (l *Loop) forceIdle() {
	l.hints = nil
	l.state = StateIdle
	l.deps.Interceptor.SetIntercept(false)
	l.deps.Renderer.DismissAll()
}
