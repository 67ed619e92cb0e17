// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type errorRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (er *errorRecorder) record(path string, err error) {
	er.mu.Lock()
	er.paths = append(er.paths, path)
	er.mu.Unlock()
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"earth.png": {Data: pngBytes(t, 8, 4)}}
	er := &errorRecorder{}
	ld := NewLoader(fsys, 2)
	ld.OnError = er.record

	tx := ld.Load("earth.png")
	require.NotNil(t, tx)
	assert.Same(t, tx, ld.Load("earth.png"))
	ld.Wait()

	assert.Equal(t, Loaded, tx.State())
	require.NotNil(t, tx.Image())
	assert.Equal(t, image.Pt(8, 4), tx.Image().Bounds().Size())
	assert.NoError(t, tx.Err())
	assert.Empty(t, er.paths)
}

func TestLoadFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"garbage.jpg": {Data: []byte("this is not an image")},
	}
	er := &errorRecorder{}
	ld := NewLoader(fsys, 1)
	ld.OnError = er.record

	mars := ld.Load("mars.jpg")
	ld.Load("mars.jpg")
	bad := ld.Load("garbage.jpg")
	ld.Wait()

	assert.Equal(t, Failed, mars.State())
	assert.Nil(t, mars.Image())
	assert.Error(t, mars.Err())
	assert.Equal(t, Failed, bad.State())
	assert.ErrorIs(t, bad.Err(), ErrUnsupported)
	assert.ElementsMatch(t, []string{"mars.jpg", "garbage.jpg"}, er.paths)
}

func TestLoadAfterClose(t *testing.T) {
	er := &errorRecorder{}
	ld := NewLoader(fstest.MapFS{}, 1)
	ld.OnError = er.record
	ld.Close()

	tx := ld.Load("mars.jpg")
	ld.Wait()
	assert.Equal(t, Canceled, tx.State())
	assert.Empty(t, er.paths)
	assert.Same(t, tx, ld.Texture("mars.jpg"))
	assert.Nil(t, ld.Texture("venus.jpg"))
}

func TestDecodeScales(t *testing.T) {
	img, err := Decode(pngBytes(t, 64, 16), 32)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(32, 8), img.Bounds().Size())

	img, err = Decode(pngBytes(t, 16, 64), 32)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 32), img.Bounds().Size())

	img, err = Decode(pngBytes(t, 16, 16), 0)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 16), img.Bounds().Size())
}

func TestNewTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	tx := NewTexture("inline", img)
	assert.Equal(t, Loaded, tx.State())
	assert.Same(t, img, tx.Image())
	assert.Equal(t, "Texture(inline: Loaded)", tx.String())

	var none *Texture
	assert.Nil(t, none.Image())
	assert.Equal(t, Failed, none.State())
	assert.NoError(t, none.Err())
	assert.Equal(t, "Texture(nil)", none.String())
}

func TestStates(t *testing.T) {
	assert.Equal(t, "Canceled", Canceled.String())
	assert.Equal(t, StatesN, States(len(StatesValues())))
	var st States
	require.NoError(t, st.SetString("Failed"))
	assert.Equal(t, Failed, st)
	assert.Error(t, st.SetString("Lost"))
	b, err := Loaded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Loaded", string(b))
}

// closeOnLog closes a loader when it sees the given log message,
// between a failed read and the error callback.
type closeOnLog struct {
	ld  *Loader
	msg string
}

func (h *closeOnLog) Enabled(context.Context, slog.Level) bool { return true }
func (h *closeOnLog) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *closeOnLog) WithGroup(string) slog.Handler             { return h }

func (h *closeOnLog) Handle(_ context.Context, r slog.Record) error {
	if r.Message == h.msg {
		h.ld.Close()
	}
	return nil
}

func TestCloseDuringFailure(t *testing.T) {
	er := &errorRecorder{}
	ld := NewLoader(fstest.MapFS{}, 1)
	ld.OnError = er.record

	prev := slog.Default()
	slog.SetDefault(slog.New(&closeOnLog{ld: ld, msg: "texture load failed"}))
	defer slog.SetDefault(prev)

	tx := ld.Load("mars.jpg")
	ld.Wait()
	assert.Equal(t, Canceled, tx.State())
	assert.Empty(t, er.paths)
}
