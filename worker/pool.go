package worker

import (
	"context"
	"log"
	"sync"

	"github.com/guxi11/reddot/detector"
)

// DetectFunc performs one full detection: wait for a captured frame, run the
// pipeline, return screen points. It is the only suspension point in the
// system; everything downstream of the capture is synchronous CPU work.
type DetectFunc func(ctx context.Context) ([]detector.ScreenPoint, error)

// ResultCallback is invoked on completion from a worker goroutine. The event
// loop passes a closure that posts the result back onto its own channel.
type ResultCallback func(points []detector.ScreenPoint, err error)

// Pool runs detection jobs off the input-interception path. The queue is a
// single slot: the event loop never has more than one detection in flight,
// and a Submit that finds the slot occupied is dropped (returns false).
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup
}

type job struct {
	ctx context.Context
	cb  ResultCallback
}

// New creates a pool of size workers running detect. Size defaults to 1;
// detection requests are serialized by the controller anyway, so one worker
// is the normal configuration.
func New(size int, detect DetectFunc) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{jobs: make(chan job, 1)}
	p.start(size, detect)
	return p
}

func (p *Pool) start(n int, detect DetectFunc) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				points, err := detectWithContext(j.ctx, detect)
				log.Printf("Worker: detection completed, points=%d, err=%v", len(points), err)
				j.cb(points, err)
			}
		}()
	}
}

// Submit enqueues a detection if the single-slot queue is free. Returns
// false if dropped.
func (p *Pool) Submit(ctx context.Context, cb ResultCallback) bool {
	select {
	case p.jobs <- job{ctx: ctx, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

// detectWithContext runs detect honoring the ctx deadline. The capture call
// inside detect may not be interruptible, so on timeout the underlying work
// is left to finish in the background and its result is ignored.
func detectWithContext(ctx context.Context, detect DetectFunc) ([]detector.ScreenPoint, error) {
	if _, ok := ctx.Deadline(); !ok {
		return detect(ctx)
	}
	resCh := make(chan struct {
		points []detector.ScreenPoint
		err    error
	}, 1)
	go func() {
		points, err := detect(ctx)
		resCh <- struct {
			points []detector.ScreenPoint
			err    error
		}{points, err}
	}()
	select {
	case r := <-resCh:
		return r.points, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
