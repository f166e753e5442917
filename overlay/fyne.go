package overlay

import (
	"image/color"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	hintBubbleSize = 22
	statusPadding  = 16
)

var (
	hintBackground   = color.NRGBA{R: 0xE5, G: 0x3E, B: 0x3E, A: 0xFF}
	hintText         = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	statusBackground = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xE0}
)

// FyneRenderer draws hints into a borderless full-screen window. All fyne
// calls are funneled through fyne.Do so the Renderer methods may be invoked
// from the event loop goroutine.
type FyneRenderer struct {
	app fyne.App

	mu          sync.Mutex
	hintWin     fyne.Window
	statusWin   fyne.Window
	statusTimer *time.Timer
}

func NewFyneRenderer(app fyne.App) *FyneRenderer {
	return &FyneRenderer{app: app}
}

// newFloatingWindow creates a borderless always-on-top window. Splash
// windows are the only undecorated window type the desktop driver offers.
func (r *FyneRenderer) newFloatingWindow() fyne.Window {
	if drv, ok := r.app.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	w := r.app.NewWindow("")
	w.SetPadded(false)
	return w
}

func (r *FyneRenderer) ShowHints(hints []Hint) {
	local := append([]Hint(nil), hints...)
	fyne.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.closeHintsLocked()
		if len(local) == 0 {
			return
		}

		content := container.NewWithoutLayout()
		for _, h := range local {
			bg := canvas.NewRectangle(hintBackground)
			bg.CornerRadius = 5
			bg.Resize(fyne.NewSize(hintBubbleSize, hintBubbleSize))
			bg.Move(fyne.NewPos(float32(h.X)-hintBubbleSize/2, float32(h.Y)-hintBubbleSize/2))

			txt := canvas.NewText(strings.ToUpper(h.Label), hintText)
			txt.TextStyle.Bold = true
			txt.Alignment = fyne.TextAlignCenter
			txt.Resize(fyne.NewSize(hintBubbleSize, hintBubbleSize))
			txt.Move(fyne.NewPos(float32(h.X)-hintBubbleSize/2, float32(h.Y)-hintBubbleSize/2))

			content.Add(bg)
			content.Add(txt)
		}

		w := r.newFloatingWindow()
		w.SetContent(content)
		w.SetFullScreen(true)
		w.Show()
		r.hintWin = w
	})
}

func (r *FyneRenderer) ShowStatus(text string, autoDismiss time.Duration) {
	fyne.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.closeStatusLocked()

		bg := canvas.NewRectangle(statusBackground)
		bg.CornerRadius = 8
		txt := canvas.NewText(text, hintText)
		txt.Alignment = fyne.TextAlignCenter

		w := r.newFloatingWindow()
		w.SetContent(container.NewStack(bg, container.NewCenter(txt)))
		w.Resize(fyne.NewSize(
			txt.MinSize().Width+2*statusPadding,
			txt.MinSize().Height+2*statusPadding,
		))
		w.Show()
		r.statusWin = w

		if autoDismiss > 0 {
			r.statusTimer = time.AfterFunc(autoDismiss, func() {
				fyne.Do(func() {
					r.mu.Lock()
					defer r.mu.Unlock()
					r.closeStatusLocked()
				})
			})
		}
	})
}

func (r *FyneRenderer) DismissAll() {
	fyne.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.closeHintsLocked()
		r.closeStatusLocked()
	})
}

func (r *FyneRenderer) closeHintsLocked() {
	if r.hintWin != nil {
		r.hintWin.Close()
		r.hintWin = nil
	}
}

func (r *FyneRenderer) closeStatusLocked() {
	if r.statusTimer != nil {
		r.statusTimer.Stop()
		r.statusTimer = nil
	}
	if r.statusWin != nil {
		r.statusWin.Close()
		r.statusWin = nil
	}
}
