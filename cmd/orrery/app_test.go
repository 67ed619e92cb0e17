// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cogentcore.org/core/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	return &Config{
		Textures:   t.TempDir(),
		Stars:      10,
		Seed:       1,
		Background: "#102030",
		Speed:      1,
		Damping:    0.1,
	}
}

func TestNewApp(t *testing.T) {
	c := testConfig(t)
	var mu sync.Mutex
	var failed []string
	ap, err := newApp(c, func(path string, err error) {
		mu.Lock()
		failed = append(failed, path)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer ap.close()

	assert.Len(t, ap.system.Bodies, 10)
	assert.Len(t, ap.system.Stars.Points, 10)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, ap.system.Scene.Background)
	assert.Equal(t, float32(.1), ap.viewport.Damping)

	ap.loader.Wait()
	mu.Lock()
	assert.Contains(t, failed, "earth.jpg")
	assert.Contains(t, failed, "saturn ring.png")
	mu.Unlock()

	ap.tick(time.Second / 60)
	ap.tick(time.Second / 60)
	assert.Equal(t, 2, ap.animator.Frames())
}

func TestNewAppErrors(t *testing.T) {
	c := testConfig(t)
	c.Background = "not a color"
	_, err := newApp(c, nil)
	assert.Error(t, err)

	c = testConfig(t)
	c.Focus = "vulcan"
	_, err = newApp(c, nil)
	assert.ErrorContains(t, err, "vulcan")

	c = testConfig(t)
	c.Focus = "satrun"
	_, err = newApp(c, nil)
	assert.ErrorContains(t, err, `did you mean "saturn"`)

	c = testConfig(t)
	c.Catalog = filepath.Join(t.TempDir(), "missing.toml")
	_, err = newApp(c, nil)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	prev := logx.UserLevel
	defer func() { logx.UserLevel = prev }()

	var buf bytes.Buffer
	c := testConfig(t)
	c.Verbose = true
	lg := newLogger(c, &buf)
	lg.Debug("texture requested", "path", "mars.jpg")
	assert.Contains(t, buf.String(), "path=mars.jpg")

	logx.UserLevel = slog.LevelInfo
	buf.Reset()
	lg = newLogger(testConfig(t), &buf)
	lg.Debug("texture requested")
	assert.Empty(t, buf.String())
	lg.Info("composed scene")
	assert.Contains(t, buf.String(), "composed scene")
}

func TestFrameTime(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, frameTime(16))
	assert.Equal(t, 1500*time.Microsecond, frameTime(1.5))
	assert.Zero(t, frameTime(0))
}

func TestNewAppFocus(t *testing.T) {
	c := testConfig(t)
	c.Focus = "jupiter"
	c.Damping = 1
	ap, err := newApp(c, nil)
	require.NoError(t, err)
	defer ap.close()
	jupiter := ap.system.Body("jupiter").Mesh.WorldPos()
	assert.False(t, ap.viewport.Focusing())
	assert.InDelta(t, jupiter.X, ap.viewport.Goal.Target.X, 1e-3)
	assert.InDelta(t, jupiter.Z, ap.viewport.Goal.Target.Z, 1e-3)
	ap.tick(0)
	assert.InDelta(t, jupiter.X, ap.viewport.Camera.Target.X, 1e-3)
}

func TestCatalogFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pair.toml")
	err := os.WriteFile(fn, []byte(`
[[bodies]]
name = "sun"
star = true
size = 16
texture = "sun.jpg"

[[bodies]]
name = "rock"
size = 2
texture = "rock.png"
orbit_radius = 40
orbit_rate = 0.01
`), 0o644)
	require.NoError(t, err)
	c := testConfig(t)
	c.Catalog = fn
	ap, err := newApp(c, nil)
	require.NoError(t, err)
	defer ap.close()
	require.Len(t, ap.system.Bodies, 2)
	assert.Equal(t, "rock", ap.system.Bodies[1].Name())
	assert.NoError(t, Validate(c))
}
