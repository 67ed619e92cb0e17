// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/orrery/assets"
)

// Material describes the surface appearance of a solid.
type Material struct {

	// Color is the main color of the surface, used when there is no
	// texture image and as a tint otherwise. Alpha gives the opacity.
	Color color.RGBA

	// Emissive is the color the surface emits independent of any lighting.
	Emissive color.RGBA

	// Unlit renders the surface at full color without lighting,
	// as for a star or a ring.
	Unlit bool

	// DoubleSided renders both faces of the surface.
	DoubleSided bool

	// Texture provides the surface image. A nil texture, or one
	// that is not loaded, renders with Color alone.
	Texture *assets.Texture
}

// Defaults sets the default untextured appearance.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{}
}

// IsTextured returns whether the material currently has an image to show.
func (mt *Material) IsTextured() bool {
	return mt.Texture.Image() != nil
}
