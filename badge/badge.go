// Package badge polls application badge counters. This is the simple
// companion to the pixel detector: instead of looking at a window image it
// asks a per-platform Reader for the counter of each configured taskbar
// application, and publishes the total. Failures are logged and skipped;
// polling never stops the rest of the system.
package badge

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Reader fetches the badge counter for one application, identified by its
// process name. Implementations are platform specific; tests use fakes.
type Reader interface {
	Count(ctx context.Context, app string) (int, error)
}

// Poller periodically reads badge counters for the configured apps and
// reports the total through OnTotal.
type Poller struct {
	Apps     []string
	Interval time.Duration
	Reader   Reader
	// OnTotal receives the summed badge count after each poll. Called from
	// the poller goroutine.
	OnTotal func(total int)

	// running reports whether a process with the given name exists; it is
	// swapped out in tests.
	running func(ctx context.Context, app string) bool
}

func NewPoller(apps []string, interval time.Duration, reader Reader, onTotal func(int)) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		Apps:     apps,
		Interval: interval,
		Reader:   reader,
		OnTotal:  onTotal,
		running:  processRunning,
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately.
func (p *Poller) Run(ctx context.Context) error {
	if len(p.Apps) == 0 || p.Reader == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	total := 0
	for _, app := range p.Apps {
		if !p.running(ctx, app) {
			continue
		}
		n, err := p.Reader.Count(ctx, app)
		if err != nil {
			log.Printf("Badge read failed for %s: %v", app, err)
			continue
		}
		if n > 0 {
			total += n
		}
	}
	if p.OnTotal != nil {
		p.OnTotal(total)
	}
}

// processRunning checks whether an app's process is alive before asking for
// its badge, so dead apps do not produce read errors every interval.
func processRunning(ctx context.Context, app string) bool {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		log.Printf("Process enumeration failed: %v", err)
		return false
	}
	target := strings.ToLower(app)
	for _, proc := range procs {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if strings.ToLower(name) == target {
			return true
		}
	}
	return false
}
