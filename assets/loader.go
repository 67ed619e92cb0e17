// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads surface textures asynchronously. A load never blocks
// the caller: the returned [Texture] is usable immediately and its image
// appears once decoding finishes.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
)

// ErrUnsupported is returned for files that are not a decodable image.
var ErrUnsupported = errors.New("unsupported texture format")

// Loader loads textures from a filesystem on background goroutines.
// Each distinct path is loaded at most once; repeated requests return
// the same [Texture].
type Loader struct {

	// FS is the filesystem textures are read from.
	FS fs.FS

	// OnError, if set, is called exactly once for each failed load, with the
	// requested path. It is called from a loading goroutine, never after
	// Close has returned, and must not call Close itself.
	OnError func(path string, err error)

	// MaxSize is the maximum width or height of a loaded image. Larger
	// images are scaled down, keeping their aspect ratio. 0 means no limit.
	MaxSize int

	sem      *semaphore.Weighted
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	textures map[string]*Texture

	// closeMu orders load completions against Close.
	closeMu sync.Mutex
	closed  bool
}

// NewLoader returns a new loader reading from the given filesystem,
// decoding at most limit images at a time (at least 1).
func NewLoader(fsys fs.FS, limit int) *Loader {
	ld := &Loader{FS: fsys}
	ld.sem = semaphore.NewWeighted(int64(max(limit, 1)))
	ld.ctx, ld.cancel = context.WithCancel(context.Background())
	ld.textures = map[string]*Texture{}
	return ld
}

// Load requests the texture at the given path and returns its handle
// without waiting for it to load.
func (ld *Loader) Load(path string) *Texture {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	if tx, ok := ld.textures[path]; ok {
		return tx
	}
	tx := &Texture{Path: path}
	ld.textures[path] = tx
	if ld.ctx.Err() != nil {
		tx.state.Store(int32(Canceled))
		return tx
	}
	ld.wg.Add(1)
	go ld.load(tx)
	return tx
}

func (ld *Loader) load(tx *Texture) {
	defer ld.wg.Done()
	if err := ld.sem.Acquire(ld.ctx, 1); err != nil {
		tx.state.Store(int32(Canceled))
		return
	}
	img, err := ld.read(tx.Path)
	ld.sem.Release(1)
	if err != nil && ld.ctx.Err() == nil {
		slog.Error("texture load failed", "path", tx.Path, "err", err)
	}

	ld.closeMu.Lock()
	defer ld.closeMu.Unlock()
	if ld.closed {
		tx.state.Store(int32(Canceled))
		return
	}
	if err != nil {
		tx.fail(err)
		if ld.OnError != nil {
			ld.OnError(tx.Path, err)
		}
		return
	}
	tx.set(img)
	slog.Debug("texture loaded", "path", tx.Path, "size", img.Bounds().Size())
}

func (ld *Loader) read(path string) (*image.RGBA, error) {
	if ld.FS == nil {
		return nil, errors.New("no texture filesystem")
	}
	b, err := fs.ReadFile(ld.FS, path)
	if err != nil {
		return nil, err
	}
	return Decode(b, ld.MaxSize)
}

// Texture returns the texture previously requested for the given path,
// or nil if it was never requested.
func (ld *Loader) Texture(path string) *Texture {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.textures[path]
}

// Wait blocks until all requested loads have finished.
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// Close stops the loader. Loads that finish afterward are discarded
// without calling OnError, and new loads are not started. It waits for
// an OnError call in progress to return.
func (ld *Loader) Close() {
	ld.closeMu.Lock()
	ld.closed = true
	ld.closeMu.Unlock()
	ld.cancel()
}

// Decode decodes image file contents into an RGBA image, scaling it down
// so neither side exceeds maxSize when maxSize > 0.
func Decode(b []byte, maxSize int) (*image.RGBA, error) {
	if !filetype.IsImage(b) {
		kind, _ := filetype.Match(b)
		if kind == filetype.Unknown {
			return nil, ErrUnsupported
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind.MIME.Value)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	sz := img.Bounds().Size()
	if maxSize > 0 && (sz.X > maxSize || sz.Y > maxSize) {
		w, h := maxSize, maxSize
		if sz.X > sz.Y {
			h = max(1, sz.Y*maxSize/sz.X)
		} else {
			w = max(1, sz.X*maxSize/sz.Y)
		}
		return transform.Resize(img, w, h, transform.Linear), nil
	}
	return clone.AsRGBA(img), nil
}
