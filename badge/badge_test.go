package badge

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type fakeReader struct {
	counts map[string]int
	errs   map[string]error
}

func (r *fakeReader) Count(ctx context.Context, app string) (int, error) {
	if err := r.errs[app]; err != nil {
		return 0, err
	}
	return r.counts[app], nil
}

func newTestPoller(reader Reader, apps []string, onTotal func(int)) *Poller {
	p := NewPoller(apps, time.Hour, reader, onTotal)
	p.running = func(ctx context.Context, app string) bool { return app != "stopped.exe" }
	return p
}

func TestPollSumsRunningApps(t *testing.T) {
	reader := &fakeReader{counts: map[string]int{
		"mail.exe": 3,
		"chat.exe": 5,
	}}
	var got int
	p := newTestPoller(reader, []string{"mail.exe", "chat.exe"}, func(total int) { got = total })

	p.poll(context.Background())
	if got != 8 {
		t.Errorf("total = %d, expected 8", got)
	}
}

func TestPollSkipsStoppedApps(t *testing.T) {
	reader := &fakeReader{counts: map[string]int{
		"mail.exe":    3,
		"stopped.exe": 100,
	}}
	var got int
	p := newTestPoller(reader, []string{"mail.exe", "stopped.exe"}, func(total int) { got = total })

	p.poll(context.Background())
	if got != 3 {
		t.Errorf("total = %d, expected stopped app to be skipped", got)
	}
}

func TestPollToleratesReadErrors(t *testing.T) {
	reader := &fakeReader{
		counts: map[string]int{"mail.exe": 2},
		errs:   map[string]error{"chat.exe": fmt.Errorf("no badge endpoint")},
	}
	var got int
	p := newTestPoller(reader, []string{"chat.exe", "mail.exe"}, func(total int) { got = total })

	p.poll(context.Background())
	if got != 2 {
		t.Errorf("total = %d, expected failing app to be skipped", got)
	}
}

func TestRunWithoutAppsWaitsForCancel(t *testing.T) {
	p := NewPoller(nil, time.Millisecond, nil, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := p.Run(ctx); err != context.DeadlineExceeded {
		t.Errorf("Run returned %v, expected context deadline", err)
	}
}
