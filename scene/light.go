// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light is a source of illumination. Lights belong to the [Scene]
// and are not part of the node hierarchy.
type Light interface {
	// AsLightBase returns the common light data.
	AsLightBase() *LightBase
}

// LightBase provides the common data for all lights.
type LightBase struct {

	// Name of the light.
	Name string

	// On turns the light on or off.
	On bool

	// Lumens is the brightness of the light.
	Lumens float32

	// Color of the light.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// AmbientLight provides uniform, non-attenuating light on all surfaces.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new ambient light of the given color.
func NewAmbientLight(name string, lumens float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	return lt
}

// PointLight is an omnidirectional light at a position in the scene.
type PointLight struct {
	LightBase

	// Pos is the position of the light in scene coordinates.
	Pos math32.Vector3
}

// NewPointLight returns a new point light of the given color
// at the given position.
func NewPointLight(name string, lumens float32, clr color.RGBA, pos math32.Vector3) *PointLight {
	lt := &PointLight{Pos: pos}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	return lt
}
