// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"fmt"
	"log/slog"

	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/catalog"
	"cogentcore.org/orrery/scene"
)

const (
	// SphereSegments is the tessellation used for every body sphere,
	// so every body has the same vertex count.
	SphereSegments = 30

	// RingSegments is the number of angular segments of a ring.
	RingSegments = 32

	// RingOffset is the distance a ring is pushed outward along the
	// orbit axis from its body, so the two surfaces do not z-fight.
	RingOffset = 0.1
)

// Body is a celestial body in a composed scene.
type Body struct {

	// Spec is the catalog entry the body was built from.
	Spec catalog.BodySpec

	// Group is the orbit group: rotating it revolves the body
	// around the origin.
	Group *scene.Group

	// Mesh is the sphere solid, offset from the group origin by the orbit radius.
	Mesh *scene.Solid

	// Ring is the ring solid, or nil if the body has no ring.
	Ring *scene.Solid

	// Texture is the handle of the surface image.
	Texture *assets.Texture

	// RingTexture is the handle of the ring image, if there is a ring.
	RingTexture *assets.Texture
}

// Name returns the name of the body.
func (bd *Body) Name() string {
	return bd.Spec.Name
}

// TextureLoader requests textures without blocking. [*assets.Loader]
// implements it.
type TextureLoader interface {
	Load(path string) *assets.Texture
}

// BodyFactory builds bodies from catalog specs.
type BodyFactory struct {

	// Textures loads body and ring textures. If nil, bodies are untextured.
	Textures TextureLoader
}

// Build returns a new body for the given spec: an orbit group holding a
// sphere placed at x = OrbitRadius, and a ring solid if the spec has one.
// Invalid geometry is an error; texture problems never are.
func (bf *BodyFactory) Build(bs catalog.BodySpec) (*Body, error) {
	if !(bs.Size > 0) {
		return nil, fmt.Errorf("orrery: %s: size must be positive, got %g", bs.Name, bs.Size)
	}
	if !(bs.OrbitRadius >= 0) {
		return nil, fmt.Errorf("orrery: %s: orbit radius must not be negative, got %g", bs.Name, bs.OrbitRadius)
	}
	var ring *scene.Ring
	if bs.Ring != nil {
		var err error
		ring, err = scene.NewRing(bs.Ring.Inner, bs.Ring.Outer, RingSegments)
		if err != nil {
			return nil, fmt.Errorf("orrery: %s: %w", bs.Name, err)
		}
	}

	bd := &Body{Spec: bs}
	bd.Group = scene.NewGroup(bs.Name + "-orbit")
	bd.Mesh = scene.NewSolid(bs.Name, &scene.Sphere{Radius: bs.Size, Segments: SphereSegments})
	bd.Mesh.Pose.Pos.Set(bs.OrbitRadius, 0, 0)
	bd.Mesh.Material.Unlit = bs.Star
	bd.Texture = bf.load(bs.Texture)
	bd.Mesh.Material.Texture = bd.Texture
	bd.Group.Add(bd.Mesh)

	if ring != nil {
		bd.Ring = scene.NewSolid(bs.Name+"-ring", ring)
		bd.Ring.Pose.Pos.Set(bs.OrbitRadius+RingOffset, 0, 0)
		bd.Ring.Pose.SetAxisRotation(1, 0, 0, -90)
		bd.Ring.Material.Unlit = true
		bd.Ring.Material.DoubleSided = true
		bd.RingTexture = bf.load(bs.Ring.Texture)
		bd.Ring.Material.Texture = bd.RingTexture
		bd.Group.Add(bd.Ring)
	}
	return bd, nil
}

func (bf *BodyFactory) load(path string) *assets.Texture {
	if bf.Textures == nil || path == "" {
		return nil
	}
	tx := bf.Textures.Load(path)
	slog.Debug("texture requested", "path", path)
	return tx
}
