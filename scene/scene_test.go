// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	sc := NewScene("sky")
	gp := NewGroup("earth-orbit")
	sd := NewSolid("earth", &Sphere{Radius: 6, Segments: 30})
	sd.Pose.Pos.Set(62, 0, 0)
	gp.Add(sd)
	sc.Add(gp)
	sc.Add(NewPoints("stars", []math32.Vector3{{X: 1, Y: 2, Z: 3}}))

	assert.Same(t, &gp.NodeBase, sd.ParentNode())
	assert.Same(t, &sc.NodeBase, gp.ParentNode())
	assert.Nil(t, sc.ParentNode())
	require.Len(t, sc.Groups(), 1)
	assert.Same(t, gp, sc.Groups()[0])
	assert.Same(t, sd, gp.ChildByName("earth"))
	assert.Nil(t, gp.ChildByName("moon"))

	var names []string
	sc.WalkDown(func(n tree.Node) bool {
		names = append(names, n.AsTree().Name)
		return tree.Continue
	})
	assert.Equal(t, []string{"sky", "earth-orbit", "earth", "stars"}, names)

	assert.Panics(t, func() { sc.Add(sd) })
}

func TestWorldPos(t *testing.T) {
	gp := NewGroup("orbit")
	sd := NewSolid("body", &Sphere{Radius: 1, Segments: 8})
	sd.Pose.Pos.Set(10, 0, 0)
	gp.Add(sd)

	wp := sd.WorldPos()
	tolassert.Equal(t, 10, wp.X)
	tolassert.Equal(t, 0, wp.Z)

	gp.Pose.SetAxisRotationRad(0, 1, 0, math32.Pi/2)
	wp = sd.WorldPos()
	tolassert.Equal(t, 0, wp.X)
	tolassert.Equal(t, 10, wp.Length())
	tolassert.Equal(t, -10, wp.Z)

	sc := NewScene("sky")
	sc.Add(gp)
	sc.Pose.SetAxisRotationRad(0, 1, 0, math32.Pi/2)
	wp = sd.WorldPos()
	tolassert.Equal(t, -10, wp.X)
}

func TestNewRing(t *testing.T) {
	rg, err := NewRing(10, 20, 32)
	require.NoError(t, err)
	assert.Equal(t, float32(20), rg.Extent())

	_, err = NewRing(20, 20, 32)
	assert.Error(t, err)
	_, err = NewRing(-1, 20, 32)
	assert.Error(t, err)
}

func TestMaterial(t *testing.T) {
	sd := NewSolid("body", &Sphere{Radius: 1})
	assert.False(t, sd.Material.IsTextured())
	assert.Equal(t, uint8(128), sd.Material.Color.R)
}
