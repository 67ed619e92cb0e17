// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a renderer-independent 3D scene graph:
// groups, solids, point clouds and lights, positioned by poses.
// Renderers read a [Scene] each frame and draw it in their own way.
package scene

import (
	"image/color"
)

// Scene is the root of the spatial graph. Its children are the top-level
// nodes; lights are held separately.
type Scene struct {
	Group

	// Background is the color behind everything in the scene.
	Background color.RGBA

	// Lights are all the lights in the scene.
	Lights []Light
}

// NewScene returns a new empty scene.
func NewScene(name string) *Scene {
	sc := &Scene{}
	initNode(sc, name)
	sc.Background = color.RGBA{0, 0, 0x20, 0xff}
	return sc
}

// AddLight adds the given light to the scene.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// Groups returns the top-level groups of the scene.
func (sc *Scene) Groups() []*Group {
	var gps []*Group
	for _, k := range sc.Children {
		if gp, ok := k.(*Group); ok {
			gps = append(gps, gp)
		}
	}
	return gps
}
