// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"math/rand/v2"
	"sync"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/catalog"
	"cogentcore.org/orrery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallCatalog() *catalog.Catalog {
	return &catalog.Catalog{Bodies: []catalog.BodySpec{
		{Name: "sun", Star: true, Size: 16, Texture: "sun.jpg", SpinRate: 0.004},
		{Name: "mercury", Size: 3.2, Texture: "mercury.jpg", OrbitRadius: 28, OrbitRate: 0.02},
	}}
}

func TestBuildOrbitRadius(t *testing.T) {
	bf := &BodyFactory{}
	for _, bs := range catalog.Default().Bodies {
		bd, err := bf.Build(bs)
		require.NoError(t, err, bs.Name)
		assert.Equal(t, bs.OrbitRadius, bd.Mesh.Pose.Pos.X, bs.Name)
		assert.Equal(t, float32(0), bd.Mesh.Pose.Pos.Y)
		assert.Equal(t, float32(0), bd.Mesh.Pose.Pos.Z)
		assert.Same(t, &bd.Group.NodeBase, bd.Mesh.ParentNode())

		sp, ok := bd.Mesh.Shape.(*scene.Sphere)
		require.True(t, ok)
		assert.Equal(t, bs.Size, sp.Radius)
		assert.Equal(t, SphereSegments, sp.Segments)
		assert.Equal(t, bs.Star, bd.Mesh.Material.Unlit)

		if bs.Ring == nil {
			assert.Nil(t, bd.Ring)
			assert.Len(t, bd.Group.Children, 1)
			continue
		}
		require.NotNil(t, bd.Ring)
		assert.Len(t, bd.Group.Children, 2)
		assert.Same(t, &bd.Group.NodeBase, bd.Ring.ParentNode())
		tolassert.Equal(t, bs.OrbitRadius+RingOffset, bd.Ring.Pose.Pos.X)
		assert.True(t, bd.Ring.Material.DoubleSided)
		rg := bd.Ring.Shape.(*scene.Ring)
		assert.Equal(t, bs.Ring.Inner, rg.Inner)
		assert.Equal(t, bs.Ring.Outer, rg.Outer)

		// the ring normal is rotated from +Z onto the orbital plane normal
		n := bd.Ring.Pose.Rotate(math32.Vec3(0, 0, 1))
		tolassert.Equal(t, 1, math32.Abs(n.Y))
	}
}

type countingLoader struct {
	paths []string
}

func (cl *countingLoader) Load(path string) *assets.Texture {
	cl.paths = append(cl.paths, path)
	return &assets.Texture{Path: path}
}

func TestBuildRejectsBadRing(t *testing.T) {
	cl := &countingLoader{}
	bf := &BodyFactory{Textures: cl}
	for _, rs := range []catalog.RingSpec{
		{Inner: 20, Outer: 10, Texture: "ring.png"},
		{Inner: 10, Outer: 10, Texture: "ring.png"},
	} {
		bs := catalog.BodySpec{Name: "saturn", Size: 10, Texture: "saturn.jpg", OrbitRadius: 138, Ring: &rs}
		bd, err := bf.Build(bs)
		assert.Error(t, err)
		assert.Nil(t, bd)
	}
	assert.Empty(t, cl.paths, "no textures should be requested for a rejected body")

	_, err := bf.Build(catalog.BodySpec{Name: "flat", Size: 0, Texture: "x.jpg"})
	assert.Error(t, err)
	_, err = bf.Build(catalog.BodySpec{Name: "inside", Size: 1, Texture: "x.jpg", OrbitRadius: -1})
	assert.Error(t, err)
}

func TestBuildRequestsTextures(t *testing.T) {
	cl := &countingLoader{}
	bf := &BodyFactory{Textures: cl}
	bd, err := bf.Build(*catalog.Default().Body("saturn"))
	require.NoError(t, err)
	assert.Equal(t, []string{"saturn.jpg", "saturn ring.png"}, cl.paths)
	assert.Same(t, bd.Texture, bd.Mesh.Material.Texture)
	assert.Same(t, bd.RingTexture, bd.Ring.Material.Texture)
}

func TestComposeScenario(t *testing.T) {
	cp := NewComposer(nil)
	sy, err := cp.Compose(smallCatalog())
	require.NoError(t, err)

	gps := sy.Scene.Groups()
	require.Len(t, gps, 2)
	for _, gp := range gps {
		assert.Same(t, &sy.Scene.NodeBase, gp.ParentNode())
	}
	require.Len(t, sy.Bodies, 2)
	assert.Equal(t, "sun", sy.Bodies[0].Name())
	mercury := sy.Body("mercury")
	require.NotNil(t, mercury)
	assert.Equal(t, float32(28), mercury.Mesh.Pose.Pos.X)
	assert.Nil(t, sy.Body("pluto"))

	require.Len(t, sy.Scene.Lights, 2)
	_, ok := sy.Scene.Lights[0].(*scene.AmbientLight)
	assert.True(t, ok)
	pl, ok := sy.Scene.Lights[1].(*scene.PointLight)
	require.True(t, ok)
	assert.Equal(t, PointLightPos, pl.Pos)
	assert.Equal(t, cp.Options.Background, sy.Scene.Background)
}

func TestComposeDefault(t *testing.T) {
	sy, err := NewComposer(nil).Compose(catalog.Default())
	require.NoError(t, err)
	require.Len(t, sy.Bodies, 10)
	assert.Equal(t, "sun", sy.Bodies[0].Name())
	for i := 2; i < len(sy.Bodies); i++ {
		assert.Less(t, sy.Bodies[i-1].Spec.OrbitRadius, sy.Bodies[i].Spec.OrbitRadius)
	}
	for _, bd := range sy.Bodies {
		assert.Same(t, &sy.Scene.NodeBase, bd.Group.ParentNode())
		assert.Same(t, &bd.Group.NodeBase, bd.Mesh.ParentNode())
	}
	assert.Len(t, sy.Scene.Groups(), 10)
}

func TestComposeIndependent(t *testing.T) {
	cp := NewComposer(nil)
	a, err := cp.Compose(smallCatalog())
	require.NoError(t, err)
	b, err := cp.Compose(smallCatalog())
	require.NoError(t, err)
	assert.NotSame(t, a.Scene, b.Scene)
	assert.NotSame(t, a.Bodies[1].Mesh, b.Bodies[1].Mesh)
}

func TestComposeRejectsBadCatalog(t *testing.T) {
	cat := smallCatalog()
	cat.Bodies = append(cat.Bodies, catalog.BodySpec{
		Name: "saturn", Size: 10, Texture: "saturn.jpg", OrbitRadius: 138,
		Ring: &catalog.RingSpec{Inner: 20, Outer: 10, Texture: "ring.png"},
	})
	sy, err := NewComposer(nil).Compose(cat)
	assert.Error(t, err)
	assert.Nil(t, sy)
}

func TestStarfield(t *testing.T) {
	cp := NewComposer(nil)
	cp.Options.Stars = 500
	cp.Options.StarExtent = 250
	cp.Options.Seed = 7
	sy, err := cp.Compose(smallCatalog())
	require.NoError(t, err)
	require.NotNil(t, sy.Stars)
	require.Len(t, sy.Stars.Points, 500)
	assert.Same(t, &sy.Scene.NodeBase, sy.Stars.ParentNode())
	for _, p := range sy.Stars.Points {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			assert.GreaterOrEqual(t, c, float32(-250))
			assert.LessOrEqual(t, c, float32(250))
		}
	}

	again, err := cp.Compose(smallCatalog())
	require.NoError(t, err)
	assert.Equal(t, sy.Stars.Points, again.Stars.Points, "the same seed gives the same stars")

	pts := Starfield(0, 10, rand.New(rand.NewPCG(1, 0)))
	assert.Empty(t, pts.Points)
}

func TestAdvance(t *testing.T) {
	sy, err := NewComposer(nil).Compose(catalog.Default())
	require.NoError(t, err)
	an := NewAnimator(sy)
	const n = 250
	for range n {
		an.Advance()
	}
	assert.Equal(t, n, an.Frames())

	for _, st := range an.States {
		bs := st.Body.Spec
		tolassert.EqualTol(t, n*bs.SpinRate, st.Spin, 1e-4)
		tolassert.EqualTol(t, n*bs.OrbitRate, st.Orbit, 1e-4)

		// compare rotations through sine and cosine of the applied poses
		spin := st.Body.Mesh.Pose.Rotate(math32.Vec3(1, 0, 0))
		tolassert.EqualTol(t, math32.Cos(n*bs.SpinRate), spin.X, 1e-4)
		tolassert.EqualTol(t, -math32.Sin(n*bs.SpinRate), spin.Z, 1e-4)
		orbit := st.Body.Group.Pose.Rotate(math32.Vec3(1, 0, 0))
		tolassert.EqualTol(t, math32.Cos(n*bs.OrbitRate), orbit.X, 1e-4)
		tolassert.EqualTol(t, -math32.Sin(n*bs.OrbitRate), orbit.Z, 1e-4)

		// revolution keeps the body at its orbit radius
		tolassert.EqualTol(t, bs.OrbitRadius, st.Body.Mesh.WorldPos().Length(), 1e-3)
	}

	earth := an.State("earth")
	require.NotNil(t, earth)
	assert.Nil(t, an.State("vulcan"))

	an.Paused = true
	an.Advance()
	assert.Equal(t, n, an.Frames())

	an.Paused = false
	an.Speed = 2
	before := earth.Orbit
	an.Advance()
	tolassert.Equal(t, before+2*earth.Body.Spec.OrbitRate, earth.Orbit)

	an.Reset()
	assert.Equal(t, 0, an.Frames())
	assert.Equal(t, float32(0), earth.Orbit)
	tolassert.Equal(t, 62, earth.Body.Mesh.WorldPos().X)
}

func TestTextureFailure(t *testing.T) {
	fsys := fstest.MapFS{}
	var mu sync.Mutex
	var failed []string
	ld := assets.NewLoader(fsys, 2)
	ld.OnError = func(path string, err error) {
		mu.Lock()
		failed = append(failed, path)
		mu.Unlock()
	}
	cat := smallCatalog()
	cat.Bodies = append(cat.Bodies, catalog.BodySpec{Name: "mars", Size: 4, Texture: "mars.jpg", OrbitRadius: 78, OrbitRate: 0.005})

	sy, err := NewComposer(ld).Compose(cat)
	require.NoError(t, err)
	ld.Wait()

	mars := sy.Body("mars")
	require.NotNil(t, mars)
	assert.NotNil(t, mars.Group.ChildByName("mars"))
	assert.Equal(t, assets.Failed, mars.Texture.State())
	assert.False(t, mars.Mesh.Material.IsTextured())
	assert.Equal(t, uint8(128), mars.Mesh.Material.Color.R)

	count := 0
	for _, p := range failed {
		if p == "mars.jpg" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
