// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzrender

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// NewRingMesh returns a flat annulus mesh in the XY plane facing +Z,
// with texture coordinates projected from the plane so that the
// texture spans the outer diameter.
func NewRingMesh(name string, inner, outer float32, segs int) *xyz.GenMesh {
	if segs < 3 {
		segs = 3
	}
	ms := &xyz.GenMesh{}
	ms.Name = name
	nv := 2 * (segs + 1)
	ms.Vertex = make(math32.ArrayF32, 0, 3*nv)
	ms.Normal = make(math32.ArrayF32, 0, 3*nv)
	ms.TexCoord = make(math32.ArrayF32, 0, 2*nv)
	ms.Index = make(math32.ArrayU32, 0, 6*segs)
	for i := 0; i <= segs; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segs)
		c, s := math32.Cos(ang), math32.Sin(ang)
		for _, r := range []float32{inner, outer} {
			x, y := r*c, r*s
			ms.Vertex = append(ms.Vertex, x, y, 0)
			ms.Normal = append(ms.Normal, 0, 0, 1)
			ms.TexCoord = append(ms.TexCoord, (x/outer+1)/2, (y/outer+1)/2)
		}
	}
	for i := range segs {
		a := uint32(2 * i) // inner
		b := a + 1         // outer
		c := a + 2         // next inner
		d := a + 3         // next outer
		ms.Index = append(ms.Index, a, b, d, a, d, c)
	}
	ms.MeshSize()
	return ms
}

// octahedron vertex directions and faces.
var (
	octVertex = [6]math32.Vector3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	octFaces = [8][3]uint32{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
)

// NewPointsMesh returns a mesh that draws each point as a small octahedron
// of the given size, all in one mesh so that thousands of points cost a
// single draw.
func NewPointsMesh(name string, pts []math32.Vector3, size float32) *xyz.GenMesh {
	ms := &xyz.GenMesh{}
	ms.Name = name
	hs := size / 2
	ms.Vertex = make(math32.ArrayF32, 0, 3*6*len(pts))
	ms.Normal = make(math32.ArrayF32, 0, 3*6*len(pts))
	ms.TexCoord = make(math32.ArrayF32, 0, 2*6*len(pts))
	ms.Index = make(math32.ArrayU32, 0, 3*8*len(pts))
	for i, p := range pts {
		base := uint32(6 * i)
		for _, d := range octVertex {
			v := p.Add(d.MulScalar(hs))
			ms.Vertex = append(ms.Vertex, v.X, v.Y, v.Z)
			ms.Normal = append(ms.Normal, d.X, d.Y, d.Z)
			ms.TexCoord = append(ms.TexCoord, 0, 0)
		}
		for _, f := range octFaces {
			ms.Index = append(ms.Index, base+f[0], base+f[1], base+f[2])
		}
	}
	ms.MeshSize()
	return ms
}
