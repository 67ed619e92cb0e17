// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termrender

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Navigation step sizes for the keyboard.
const (
	OrbitStep     = 5    // degrees
	PanStep       = .05  // fraction of the distance to the target
	ZoomStep      = .1   // fraction of the distance to the target
	MaxSpeed      = 64   // animation speed limit
	FocusDuration = time.Second
)

// HandleEvent applies a tcell event, returning true when the user asked
// to quit.
func (rd *Renderer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		rd.Resize(ev.Size())
		rd.Screen.Sync()
	case *tcell.EventKey:
		return rd.HandleKey(ev.Key(), ev.Rune())
	}
	return false
}

// HandleKey applies one key press, returning true for the quit keys.
// For [tcell.KeyRune], r is the character typed.
func (rd *Renderer) HandleKey(key tcell.Key, r rune) (quit bool) {
	vc := rd.Viewport
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		vc.Orbit(OrbitStep, 0)
	case tcell.KeyRight:
		vc.Orbit(-OrbitStep, 0)
	case tcell.KeyUp:
		vc.Orbit(0, OrbitStep)
	case tcell.KeyDown:
		vc.Orbit(0, -OrbitStep)
	case tcell.KeyRune:
		return rd.handleRune(r)
	}
	return false
}

func (rd *Renderer) handleRune(r rune) (quit bool) {
	vc := rd.Viewport
	pan := PanStep * vc.Goal.Distance()
	an := rd.Animator
	switch {
	case r == 'q':
		return true
	case r == 'a':
		vc.Pan(-pan, 0)
	case r == 'd':
		vc.Pan(pan, 0)
	case r == 'w':
		vc.Pan(0, pan)
	case r == 's':
		vc.Pan(0, -pan)
	case r == '+' || r == '=':
		vc.Zoom(-ZoomStep)
	case r == '-':
		vc.Zoom(ZoomStep)
	case r == 'r':
		rd.focused = ""
		vc.Reset()
	case r >= '0' && r <= '9':
		rd.FocusBody(int(r - '0'))
	case an == nil:
	case r == ' ':
		an.Paused = !an.Paused
	case r == ']':
		an.Speed = math32.Min(an.Speed*2, MaxSpeed)
	case r == '[':
		an.Speed = math32.Max(an.Speed/2, 1.0/MaxSpeed)
	}
	return false
}

// FocusBody starts a focus transition to the current position of the
// body at the given index in composition order. Out of range is ignored.
func (rd *Renderer) FocusBody(index int) {
	bds := rd.System.Bodies
	if index < 0 || index >= len(bds) {
		return
	}
	bd := bds[index]
	rd.focused = bd.Name()
	rd.Viewport.Focus(bd.Mesh.WorldPos(), FocusDuration)
}

// Tick advances the animation and camera by one frame of the given
// duration and draws it.
func (rd *Renderer) Tick(dt time.Duration) {
	if rd.Animator != nil {
		rd.Animator.Advance()
	}
	rd.Viewport.Update(dt)
	rd.Viewport.Step()
	rd.Draw()
	rd.Screen.Show()
}

// Run draws frames at the given rate and handles terminal events until
// the user quits or the context is done. Run finalizes the screen
// before returning.
func (rd *Renderer) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan tcell.Event, 100)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := rd.Screen.PollEvent()
			if ev == nil { // screen finalized
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer rd.Screen.Fini()
		defer cancel()
		dt := time.Second / time.Duration(fps)
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		slog.Info("terminal rendering started", "fps", fps)
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if rd.HandleEvent(ev) {
					return nil
				}
			case <-ticker.C:
				rd.Tick(dt)
			}
		}
	})
	return g.Wait()
}
