package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"golang.org/x/sync/errgroup"

	"github.com/guxi11/reddot/badge"
	"github.com/guxi11/reddot/config"
	"github.com/guxi11/reddot/detector"
	"github.com/guxi11/reddot/eventloop"
	"github.com/guxi11/reddot/hotkey"
	"github.com/guxi11/reddot/input"
	"github.com/guxi11/reddot/logutil"
	"github.com/guxi11/reddot/overlay"
	"github.com/guxi11/reddot/screenshot"
	"github.com/guxi11/reddot/tray"
	"github.com/guxi11/reddot/worker"
)

const pidFile = "reddot.pid"

func main() {
	detectOnce := flag.Bool("detect-once", false, "Run one detection on the foreground window, print points, and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *detectOnce {
		runDetectOnce(cfg)
		return
	}

	ensureSingleInstance()
	defer os.Remove(pidFile)

	logutil.Setup(cfg.EnableFileLogging)
	log.Printf("reddot starting, hotkey=%s persistent=%v", cfg.Hotkey, cfg.Persistent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := fyneapp.New()
	renderer := overlay.NewFyneRenderer(fyneApp)

	listener := hotkey.New(cfg.Hotkey)
	defer listener.Stop()

	loop := eventloop.New(eventloop.Config{
		Persistent:     cfg.Persistent,
		Deadline:       time.Duration(cfg.DetectDeadlineSec) * time.Second,
		StatusDuration: 800 * time.Millisecond,
	}, eventloop.Deps{
		Frames:      screenshot.NewSource(),
		Detector:    detector.New(cfg.Detector),
		Renderer:    renderer,
		Injector:    input.NewRobotgo(),
		Interceptor: listener,
	})

	// The loop exists before the hook goroutine starts, so the first
	// hotkey press can never observe a half-wired process.
	listener.Start(loop.Trigger, func(ev hotkey.KeyEvent) { loop.Key(ev) })

	trayIcon := tray.New(tray.Config{
		Title:      "reddot",
		Tooltip:    fmt.Sprintf("reddot — press %s to select a badge", cfg.Hotkey),
		Persistent: cfg.Persistent,
		OnTogglePersistent: func(on bool) {
			loop.SetPersistent(on)
		},
		OnExit: cancel,
	})
	go trayIcon.Run()
	defer trayIcon.Quit()

	poller := badge.NewPoller(
		cfg.BadgeApps,
		time.Duration(cfg.BadgePollSec)*time.Second,
		badge.NewSystemReader(),
		trayIcon.UpdateBadgeTotal,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error { return poller.Run(gctx) })
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			log.Printf("Shutting down on signal %v", sig)
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	// The overlay toolkit owns the main thread; everything else supervises
	// itself in the errgroup and quits the toolkit on the way out.
	go func() {
		if err := g.Wait(); err != nil && err != context.Canceled {
			log.Printf("Shutdown: %v", err)
		}
		fyneApp.Quit()
	}()
	fyneApp.Run()
}

// runDetectOnce captures the foreground window, runs the pipeline once, and
// prints the detected badge centers.
func runDetectOnce(cfg *config.Config) {
	logutil.Setup(false)
	frames := screenshot.NewSource()
	det := detector.New(cfg.Detector)
	pool := worker.New(1, func(ctx context.Context) ([]detector.ScreenPoint, error) {
		buf, win, err := frames.Capture(ctx)
		if err != nil {
			return nil, err
		}
		return det.Detect(buf, win)
	})
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DetectDeadlineSec)*time.Second)
	defer cancel()

	done := make(chan struct{})
	if !pool.Submit(ctx, func(points []detector.ScreenPoint, err error) {
		defer close(done)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
			return
		}
		fmt.Printf("%d badge(s) detected\n", len(points))
		for i, p := range points {
			if i < 26 {
				fmt.Printf("  %c: (%.1f, %.1f)\n", 'a'+i, p.X, p.Y)
			} else {
				fmt.Printf("  -: (%.1f, %.1f)\n", p.X, p.Y)
			}
		}
	}) {
		fmt.Fprintln(os.Stderr, "Detection worker busy")
		return
	}
	<-done
}

// ensureSingleInstance kills a previous resident instance recorded in the
// PID file and records this one.
func ensureSingleInstance() {
	if pidBytes, err := os.ReadFile(pidFile); err == nil {
		if oldPid, err := strconv.Atoi(string(pidBytes)); err == nil {
			if proc, err := os.FindProcess(oldPid); err == nil {
				log.Printf("Found existing instance with PID %d, stopping it", oldPid)
				proc.Kill()
				proc.Wait()
			}
		}
	}
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(pidFile, []byte(pid), 0644); err != nil {
		log.Printf("Warning: could not write PID file: %v", err)
	}
}
