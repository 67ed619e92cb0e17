// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"image"
	"sync/atomic"
)

//go:generate core generate

// States are the states of a [Texture] load.
type States int32 //enums:enum

const (
	// Pending means the load has been requested but has not finished.
	Pending States = iota

	// Loaded means the image is available.
	Loaded

	// Failed means the load failed; the texture stays without an image.
	Failed

	// Canceled means the loader was closed before the load finished.
	Canceled
)

// Texture is a handle to a surface image that may still be loading.
// The image is written once by the loader and can be read at any time
// from the frame loop.
type Texture struct {

	// Path is the path the image is loaded from.
	Path string

	img   atomic.Pointer[image.RGBA]
	state atomic.Int32
	err   atomic.Pointer[error]
}

// NewTexture returns a texture handle that already holds the given image.
func NewTexture(path string, img *image.RGBA) *Texture {
	tx := &Texture{Path: path}
	tx.set(img)
	return tx
}

// Image returns the loaded image, or nil if the texture is not loaded.
func (tx *Texture) Image() *image.RGBA {
	if tx == nil {
		return nil
	}
	return tx.img.Load()
}

// State returns the current load state.
func (tx *Texture) State() States {
	if tx == nil {
		return Failed
	}
	return States(tx.state.Load())
}

// Err returns the load error, if the texture has failed.
func (tx *Texture) Err() error {
	if tx == nil {
		return nil
	}
	if ep := tx.err.Load(); ep != nil {
		return *ep
	}
	return nil
}

func (tx *Texture) String() string {
	if tx == nil {
		return "Texture(nil)"
	}
	return fmt.Sprintf("Texture(%s: %s)", tx.Path, tx.State())
}

func (tx *Texture) set(img *image.RGBA) {
	tx.img.Store(img)
	tx.state.Store(int32(Loaded))
}

func (tx *Texture) fail(err error) {
	tx.err.Store(&err)
	tx.state.Store(int32(Failed))
}
