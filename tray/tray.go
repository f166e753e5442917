// Package tray shows the resident status icon: a persistent-mode toggle,
// the badge-counter total in the tooltip, and Quit.
package tray

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"

	"github.com/getlantern/systray"
)

type Config struct {
	Title      string
	Tooltip    string
	Persistent bool
	// OnTogglePersistent is invoked from the tray goroutine when the user
	// flips persistent mode.
	OnTogglePersistent func(on bool)
	OnExit             func()
}

type Tray struct {
	cfg Config
}

func New(cfg Config) *Tray {
	return &Tray{cfg: cfg}
}

// Run blocks inside the systray loop. Call from its own goroutine.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit tears the icon down and unblocks Run.
func (t *Tray) Quit() {
	systray.Quit()
}

// UpdateTooltip replaces the tray tooltip, used for badge-count totals.
func UpdateTooltip(text string) {
	systray.SetTooltip(text)
}

func (t *Tray) onReady() {
	systray.SetIcon(dotIcon())
	systray.SetTitle(t.cfg.Title)
	systray.SetTooltip(t.cfg.Tooltip)

	mPersistent := systray.AddMenuItemCheckbox(
		"Persistent mode", "Keep selecting badges after each click", t.cfg.Persistent)
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	go func() {
		for {
			select {
			case <-mPersistent.ClickedCh:
				on := !mPersistent.Checked()
				if on {
					mPersistent.Check()
				} else {
					mPersistent.Uncheck()
				}
				if t.cfg.OnTogglePersistent != nil {
					t.cfg.OnTogglePersistent(on)
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
			}
		}
	}()
}

func (t *Tray) onExit() {
	if t.cfg.OnExit != nil {
		t.cfg.OnExit()
	}
}

// UpdateBadgeTotal renders the polled badge total into the tooltip.
func (t *Tray) UpdateBadgeTotal(total int) {
	if total > 0 {
		UpdateTooltip(fmt.Sprintf("%s — %d unread", t.cfg.Tooltip, total))
	} else {
		UpdateTooltip(t.cfg.Tooltip)
	}
}

// dotIcon draws the 16x16 red-dot icon at startup rather than shipping an
// asset file.
func dotIcon() []byte {
	const size = 16
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	const radius = 6.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, color.NRGBA{R: 0xE5, G: 0x3E, B: 0x3E, A: 0xFF})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("Icon encode failed: %v", err)
		return nil
	}
	return buf.Bytes()
}
