// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/colors"
	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/catalog"
	"cogentcore.org/orrery/orrery"
	"cogentcore.org/orrery/viewport"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mitchellh/go-homedir"
)

// LoadLimit is the number of textures decoded at the same time.
const LoadLimit = 4

// app holds everything shared by the front ends.
type app struct {
	config   *Config
	system   *orrery.System
	animator *orrery.Animator
	viewport *viewport.Controller
	loader   *assets.Loader
}

// newApp loads and composes the catalog named in the config.
// Texture failures are reported to onError, which may be nil.
func newApp(c *Config, onError func(path string, err error)) (*app, error) {
	setLogLevel(c)
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}
	bg, err := colors.FromHex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q: %w", c.Background, err)
	}

	textures, err := homedir.Expand(c.Textures)
	if err != nil {
		return nil, err
	}

	ap := &app{config: c}
	ap.loader = assets.NewLoader(os.DirFS(textures), LoadLimit)
	ap.loader.MaxSize = c.MaxTextureSize
	ap.loader.OnError = onError

	cp := orrery.NewComposer(ap.loader)
	cp.Options.Background = bg
	cp.Options.Stars = c.Stars
	cp.Options.Seed = c.Seed
	ap.system, err = cp.Compose(cat)
	if err != nil {
		ap.loader.Close()
		return nil, err
	}
	ap.animator = orrery.NewAnimator(ap.system)
	ap.animator.Speed = c.Speed
	ap.viewport = viewport.NewController(nil)
	ap.viewport.Damping = c.Damping
	if c.Focus != "" {
		if err := ap.focus(c.Focus, 0); err != nil {
			ap.loader.Close()
			return nil, err
		}
	}
	return ap, nil
}

func setLogLevel(c *Config) {
	if c.Verbose {
		logx.UserLevel = slog.LevelDebug
	}
}

// newLogger returns a text logger writing to w that follows
// [logx.UserLevel], as set from the config.
func newLogger(c *Config, w io.Writer) *slog.Logger {
	setLogLevel(c)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &logx.UserLevel}))
}

func loadCatalog(c *Config) (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	fn, err := homedir.Expand(c.Catalog)
	if err != nil {
		return nil, err
	}
	return catalog.OpenFile(fn)
}

// focus starts a transition to the current position of the named body.
func (ap *app) focus(name string, d time.Duration) error {
	bd := ap.system.Body(name)
	if bd == nil {
		if alt := closestBody(ap.system, name); alt != "" {
			return fmt.Errorf("no body named %q; did you mean %q?", name, alt)
		}
		return fmt.Errorf("no body named %q", name)
	}
	ap.viewport.Focus(bd.Mesh.WorldPos(), d)
	return nil
}

// closestBody returns the name of the body most similar to name,
// or "" if none is close.
func closestBody(sy *orrery.System, name string) string {
	best, score := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, bd := range sy.Bodies {
		if sim := strutil.Similarity(name, bd.Name(), lev); sim > score {
			best, score = bd.Name(), sim
		}
	}
	return best
}

// tick advances the animation and camera by one frame.
func (ap *app) tick(dt time.Duration) {
	ap.animator.Advance()
	ap.viewport.Update(dt)
	ap.viewport.Step()
}

// close stops texture loading.
func (ap *app) close() {
	ap.loader.Close()
}
