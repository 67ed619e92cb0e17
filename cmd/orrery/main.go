// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery shows an animated model of the solar system,
// in a GPU window or on a character terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/system"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/termrender"
	"cogentcore.org/orrery/xyzrender"
	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the orrery command.
type Config struct {

	// Catalog is a TOML or YAML file listing the bodies to show.
	// The built-in solar system is used if it is empty.
	Catalog string `posarg:"0" required:"-"`

	// Textures is the directory that texture paths are relative to.
	Textures string `default:"textures"`

	// MaxTextureSize is the largest width or height a texture is
	// loaded at; larger images are scaled down. 0 means no limit.
	MaxTextureSize int `default:"2048"`

	// Stars is the number of background stars.
	Stars int `default:"1000"`

	// Seed seeds the star positions.
	Seed int64 `default:"1"`

	// Background is the hex color behind the scene.
	Background string `default:"#000020"`

	// Focus is the name of a body to center the view on at start.
	Focus string `flag:"f,focus"`

	// Speed multiplies every rotation rate.
	Speed float32 `default:"1"`

	// Damping is the fraction of the remaining camera movement made on
	// each frame. 1 moves the camera at once.
	Damping float32 `default:"0.1"`

	// FPS is the frame rate of terminal rendering.
	FPS int `cmd:"term" default:"30"`

	// LogFile is where logs go while the terminal is in use.
	// They are discarded if it is empty.
	LogFile string `cmd:"term"`

	// Verbose logs debug messages.
	Verbose bool `flag:"v,verbose"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("orrery", "An animated model of the solar system.")
	cli.Run(opts, &Config{}, Run, Term, Validate)
}

// Sensitivity of mouse navigation in the window.
const (
	OrbitPerPixel = .25   // degrees
	PanPerPixel   = .002  // fraction of the distance to the target
	ZoomPerScroll = .0025 // fraction of the distance to the target
	FocusDuration = time.Second
)

// Run shows the system in a window.
func Run(c *Config) error { //cli:cmd -root
	failed := make(chan error, 16)
	ap, err := newApp(c, func(path string, err error) {
		select {
		case failed <- fmt.Errorf("texture %s: %w", path, err):
		default:
		}
	})
	if err != nil {
		return err
	}
	defer ap.close()
	an, vc := ap.animator, ap.viewport

	b := core.NewBody("Orrery")
	bar := core.NewFrame(b)
	bar.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Gap.X.Dp(8)
	})
	pause := core.NewButton(bar).SetText("Pause").SetIcon(icons.Pause)
	pause.OnClick(func(e events.Event) {
		an.Paused = !an.Paused
		if an.Paused {
			pause.SetText("Play").SetIcon(icons.PlayArrow)
		} else {
			pause.SetText("Pause").SetIcon(icons.Pause)
		}
		pause.Update()
	})
	speed := core.NewSlider(bar).SetMin(0).SetMax(8).SetValue(an.Speed)
	speed.SetTooltip("Animation speed")
	speed.OnChange(func(e events.Event) {
		an.Speed = speed.Value
	})
	core.NewButton(bar).SetText("Reset view").SetIcon(icons.Refresh).OnClick(func(e events.Event) {
		vc.Reset()
	})
	names := make([]string, len(ap.system.Bodies))
	for i, bd := range ap.system.Bodies {
		names[i] = bd.Name()
	}
	focus := core.NewChooser(bar).SetStrings(names...)
	focus.SetTooltip("Center the view on a body")
	focus.OnChange(func(e events.Event) {
		errors.Log(ap.focus(focus.CurrentItem.Value.(string), FocusDuration))
	})

	sw := xyzcore.NewScene(b)
	sw.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})
	rd := xyzrender.NewRenderer(sw.XYZ, vc)
	vc.Surface = rd
	if err := rd.Build(ap.system); err != nil {
		return err
	}

	sw.On(events.SlideMove, func(e events.Event) {
		del := e.PrevDelta()
		if e.HasAnyModifier(key.Shift) {
			pan := PanPerPixel * vc.Goal.Distance()
			vc.Pan(float32(del.X)*pan, -float32(del.Y)*pan)
		} else {
			vc.Orbit(-float32(del.X)*OrbitPerPixel, -float32(del.Y)*OrbitPerPixel)
		}
		e.SetHandled()
	})
	sw.On(events.Scroll, func(e events.Event) {
		se := e.(*events.MouseScroll)
		vc.Zoom(se.Delta.Y * ZoomPerScroll)
		e.SetHandled()
	})

	sw.Animate(func(a *core.Animation) {
		sz := sw.Geom.Size.Actual.Content.ToPointFloor()
		vc.Resize(sz.X, sz.Y)
		if scr := system.TheApp.Screen(0); scr != nil {
			vc.SetPixelDensity(scr.DevicePixelRatio)
		}
		for len(failed) > 0 {
			core.ErrorSnackbar(sw, <-failed)
		}
		ap.tick(frameTime(a.Dt))
		rd.Sync()
		sw.NeedsRender()
	})
	b.RunMainWindow()
	return nil
}

// frameTime converts an animation step in milliseconds to a duration.
func frameTime(ms float32) time.Duration {
	return time.Duration(float64(ms) * float64(time.Millisecond))
}

// Term shows the system on the terminal.
func Term(c *Config) error {
	logTo := io.Discard
	if c.LogFile != "" {
		f, err := os.Create(c.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logTo = f
	}
	slog.SetDefault(newLogger(c, logTo))

	ap, err := newApp(c, nil)
	if err != nil {
		return err
	}
	defer ap.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	rd := termrender.NewRenderer(screen, ap.system, ap.viewport, ap.animator)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rd.Run(ctx, c.FPS)
}

// Validate checks the catalog and the textures it names, and prints
// the bodies in the order they are composed.
func Validate(c *Config) error {
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	textures, err := homedir.Expand(c.Textures)
	if err != nil {
		return err
	}
	ld := assets.NewLoader(os.DirFS(textures), LoadLimit)
	ld.MaxSize = c.MaxTextureSize
	defer ld.Close()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tORBIT RADIUS\tORBIT RATE\tSPIN RATE\tRING\tTEXTURE")
	bodies := cat.Sorted()
	txs := make([]*assets.Texture, len(bodies))
	for i, bs := range bodies {
		txs[i] = ld.Load(bs.Texture)
		if bs.Ring != nil {
			ld.Load(bs.Ring.Texture)
		}
	}
	ld.Wait()
	for i, bs := range bodies {
		ring := "-"
		if bs.Ring != nil {
			ring = fmt.Sprintf("%g-%g (%s)", bs.Ring.Inner, bs.Ring.Outer, ld.Texture(bs.Ring.Texture).State())
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%s\t%s (%s)\n", bs.Name, bs.Size, bs.OrbitRadius,
			bs.OrbitRate, bs.SpinRate, ring, bs.Texture, txs[i].State())
	}
	return tw.Flush()
}
