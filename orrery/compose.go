// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orrery composes an animated solar-system scene from a catalog:
// it builds the bodies, lights and starfield into a [scene.Scene], and
// advances body rotations once per displayed frame.
package orrery

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/catalog"
	"cogentcore.org/orrery/scene"
)

// Lighting constants.
const (
	AmbientLumens = 1
	PointLumens   = 2
)

// Rand is a source of random numbers, as provided by *rand.Rand.
type Rand interface {
	Float32() float32
}

// PointLightPos is where the point light is placed.
var PointLightPos = math32.Vec3(100, 100, 100)

// Options are the cosmetic settings of a composed scene.
type Options struct {

	// Background is the scene background color.
	Background color.RGBA

	// Stars is the number of starfield points.
	Stars int

	// StarExtent is the half-extent of the cube the stars are scattered in.
	StarExtent float32

	// StarColor is the color of the stars; alpha gives their opacity.
	StarColor color.RGBA

	// StarSize is the rendered size of each star.
	StarSize float32

	// Rand is the source for star positions. If nil, a new
	// source seeded from Seed is used.
	Rand Rand

	// Seed seeds the star positions when Rand is nil.
	Seed int64
}

// Defaults sets the default options.
func (op *Options) Defaults() {
	op.Background = color.RGBA{0, 0, 0x20, 0xff}
	op.Stars = 1000
	op.StarExtent = 1000
	op.StarColor = color.RGBA{0xff, 0xff, 0xff, 0xcc}
	op.StarSize = 1
}

// System is a composed scene together with its bodies.
type System struct {

	// Scene is the root of the spatial graph.
	Scene *scene.Scene

	// Bodies are the bodies in composition order: the star first,
	// then the planets by increasing orbit radius.
	Bodies []*Body

	// Stars is the starfield.
	Stars *scene.Points
}

// Body returns the body with the given name, or nil.
func (sy *System) Body(name string) *Body {
	for _, bd := range sy.Bodies {
		if bd.Name() == name {
			return bd
		}
	}
	return nil
}

// Composer assembles systems from catalogs.
type Composer struct {

	// Factory builds each body.
	Factory BodyFactory

	// Options are the cosmetic settings.
	Options Options
}

// NewComposer returns a composer with default options,
// loading textures with the given loader, which may be nil.
func NewComposer(textures TextureLoader) *Composer {
	cp := &Composer{}
	cp.Factory.Textures = textures
	cp.Options.Defaults()
	return cp
}

// Compose validates the catalog and builds a new system from it.
// Each call returns an independent system. A catalog defect is an error
// and nothing is returned.
func (cp *Composer) Compose(cat *catalog.Catalog) (*System, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	op := &cp.Options
	sy := &System{Scene: scene.NewScene("orrery")}
	sy.Scene.Background = op.Background

	for _, bs := range cat.Sorted() {
		bd, err := cp.Factory.Build(bs)
		if err != nil {
			return nil, fmt.Errorf("orrery: composing %s: %w", bs.Name, err)
		}
		sy.Scene.Add(bd.Group)
		sy.Bodies = append(sy.Bodies, bd)
	}

	sy.Scene.AddLight(scene.NewAmbientLight("ambient", AmbientLumens, colors.White))
	sy.Scene.AddLight(scene.NewPointLight("point", PointLumens, colors.White, PointLightPos))

	rnd := op.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(op.Seed), 0))
	}
	sy.Stars = Starfield(op.Stars, op.StarExtent, rnd)
	sy.Stars.Material.Color = op.StarColor
	sy.Stars.Size = op.StarSize
	sy.Scene.Add(sy.Stars)

	slog.Info("composed scene", "groups", len(sy.Scene.Groups()), "bodies", len(sy.Bodies), "stars", len(sy.Stars.Points))
	return sy, nil
}

// Starfield returns a point cloud of n points, each coordinate uniformly
// random in [-extent, extent).
func Starfield(n int, extent float32, rnd Rand) *scene.Points {
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = math32.Vec3(starCoord(extent, rnd), starCoord(extent, rnd), starCoord(extent, rnd))
	}
	return scene.NewPoints("stars", pts)
}

func starCoord(extent float32, rnd Rand) float32 {
	return (rnd.Float32()*2 - 1) * extent
}
