// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
)

// Shape is the geometry of a [Solid]. Shapes are descriptions only;
// renderers generate their own vertex data from them.
type Shape interface {
	// Extent returns the radius of the smallest origin-centered
	// sphere containing the shape.
	Extent() float32
}

// Sphere is a UV sphere centered on the origin.
type Sphere struct {

	// Radius of the sphere.
	Radius float32

	// Segments is the number of width and height segments.
	Segments int
}

func (sp *Sphere) Extent() float32 { return sp.Radius }

// Ring is a flat annulus in the local XY plane, centered on the origin.
type Ring struct {

	// Inner radius, less than Outer.
	Inner float32

	// Outer radius.
	Outer float32

	// Segments is the number of angular segments.
	Segments int
}

// NewRing returns a new ring shape, or an error if the radii do not
// describe an annulus.
func NewRing(inner, outer float32, segments int) (*Ring, error) {
	if !(inner < outer) {
		return nil, fmt.Errorf("scene: ring inner radius %g must be less than outer radius %g", inner, outer)
	}
	if inner < 0 {
		return nil, fmt.Errorf("scene: ring inner radius must not be negative, got %g", inner)
	}
	return &Ring{Inner: inner, Outer: outer, Segments: segments}, nil
}

func (rg *Ring) Extent() float32 { return rg.Outer }
