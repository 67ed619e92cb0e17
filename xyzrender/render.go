// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzrender draws an orrery system with the Cogent Core xyz
// GPU scene graph. [Renderer.Build] mirrors the system into an
// [xyz.Scene] once, and [Renderer.Sync] copies the animated poses,
// newly loaded textures and the viewport camera on every frame.
package xyzrender

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/orrery"
	"cogentcore.org/orrery/scene"
	"cogentcore.org/orrery/viewport"
)

// UnlitBright is the brightness multiplier for unlit surfaces, which
// xyz otherwise shades like any other.
const UnlitBright = 2

// link connects a scene node to the xyz node that draws it.
type link struct {
	src   *scene.NodeBase
	dst   *xyz.NodeBase
	scale float32
}

// texture is an xyz texture fed by an asset texture.
type texture struct {
	xyz.TextureBase
	src    *assets.Texture
	solids []*xyz.Solid
}

// Renderer mirrors an orrery system into an xyz scene.
type Renderer struct {

	// Scene is the xyz scene drawn into.
	Scene *xyz.Scene

	// Viewport provides the camera. If nil, the xyz camera is left alone.
	Viewport *viewport.Controller

	links    []link
	textures []*texture
	size     image.Point
	density  float32
}

// NewRenderer returns a renderer drawing into the given xyz scene
// through the camera of the given controller.
func NewRenderer(sc *xyz.Scene, vc *viewport.Controller) *Renderer {
	return &Renderer{Scene: sc, Viewport: vc}
}

// Build creates the xyz nodes, meshes and lights for the given system.
// It is called once, before the first Sync.
func (rd *Renderer) Build(sy *orrery.System) error {
	sc := rd.Scene
	if sc == nil {
		return fmt.Errorf("xyzrender: no xyz scene")
	}
	sc.NoNav = true
	sc.Background = colors.Uniform(sy.Scene.Background)
	for _, lt := range sy.Scene.Lights {
		rd.buildLight(lt)
	}
	for _, k := range sy.Scene.Children {
		if err := rd.buildNode(sc, k); err != nil {
			return err
		}
	}
	slog.Info("xyz scene built", "nodes", len(rd.links), "textures", len(rd.textures))
	return nil
}

func (rd *Renderer) buildLight(lt scene.Light) {
	sc := rd.Scene
	lb := lt.AsLightBase()
	switch lt := lt.(type) {
	case *scene.AmbientLight:
		al := xyz.NewAmbient(sc, lb.Name, lb.Lumens, xyz.DirectSun)
		al.On = lb.On
		al.Color = lb.Color
	case *scene.PointLight:
		pl := xyz.NewPoint(sc, lb.Name, lb.Lumens, xyz.DirectSun)
		pl.On = lb.On
		pl.Color = lb.Color
		pl.Pos = lt.Pos
	default:
		slog.Warn("xyzrender: unsupported light type", "light", lb.Name)
	}
}

func (rd *Renderer) buildNode(parent, n tree.Node) error {
	sc := rd.Scene
	switch n := n.(type) {
	case *scene.Group:
		gp := xyz.NewGroup(parent)
		gp.SetName(n.Name)
		rd.links = append(rd.links, link{src: &n.NodeBase, dst: gp.AsNodeBase(), scale: 1})
		for _, k := range n.Children {
			if err := rd.buildNode(gp, k); err != nil {
				return err
			}
		}
	case *scene.Solid:
		sld := xyz.NewSolid(parent)
		sld.SetName(n.Name)
		scale := float32(1)
		switch sh := n.Shape.(type) {
		case *scene.Sphere:
			sld.SetMesh(rd.sphereMesh(sh.Segments))
			scale = sh.Radius
		case *scene.Ring:
			ms := NewRingMesh(n.Name+"-ring", sh.Inner, sh.Outer, sh.Segments)
			sc.SetMesh(ms)
			sld.SetMesh(ms)
		default:
			return fmt.Errorf("xyzrender: %s: unsupported shape %T", n.Name, n.Shape)
		}
		rd.setMaterial(sld, &n.Material)
		rd.links = append(rd.links, link{src: &n.NodeBase, dst: sld.AsNodeBase(), scale: scale})
	case *scene.Points:
		ms := NewPointsMesh(n.Name, n.Points, n.Size)
		sc.SetMesh(ms)
		sld := xyz.NewSolid(parent)
		sld.SetName(n.Name)
		sld.SetMesh(ms)
		rd.setMaterial(sld, &n.Material)
		rd.links = append(rd.links, link{src: &n.NodeBase, dst: sld.AsNodeBase(), scale: 1})
	default:
		return fmt.Errorf("xyzrender: unsupported node %T", n)
	}
	return nil
}

// sphereMesh returns the shared unit sphere mesh for the given
// tessellation; solids scale it to their radius.
func (rd *Renderer) sphereMesh(segs int) xyz.Mesh {
	name := fmt.Sprintf("sphere-%d", segs)
	if ms, err := rd.Scene.MeshByName(name); err == nil {
		return ms
	}
	return xyz.NewSphere(rd.Scene, name, 1, segs)
}

func (rd *Renderer) setMaterial(sld *xyz.Solid, mt *scene.Material) {
	sld.Material.Color = mt.Color
	sld.Material.Emissive = mt.Emissive
	sld.Material.CullBack = !mt.DoubleSided
	if mt.Unlit {
		sld.Material.Reflective = 0
		sld.Material.Shiny = 0
		sld.Material.Bright = UnlitBright
	}
	if mt.Texture == nil {
		return
	}
	tx := rd.texture(mt.Texture)
	tx.solids = append(tx.solids, sld)
}

// texture returns the xyz texture for the given asset texture,
// creating it on first use. Solids sharing an asset share the texture.
func (rd *Renderer) texture(src *assets.Texture) *texture {
	for _, tx := range rd.textures {
		if tx.src == src {
			return tx
		}
	}
	tx := &texture{src: src}
	tx.Name = src.Path
	rd.textures = append(rd.textures, tx)
	return tx
}

// Sync copies poses from the system into the xyz nodes, uploads any
// textures that finished loading since the last call, and updates the
// xyz camera from the viewport.
func (rd *Renderer) Sync() {
	for _, lk := range rd.links {
		ps := &lk.src.Pose
		lk.dst.Pose.Pos = ps.Pos
		lk.dst.Pose.Quat = ps.Quat
		lk.dst.Pose.Scale = ps.Scale.MulScalar(lk.scale)
	}
	rd.syncTextures()
	rd.syncCamera()
	rd.Scene.SetNeedsUpdate()
}

func (rd *Renderer) syncTextures() {
	for _, tx := range rd.textures {
		img := tx.src.Image()
		if img == nil || img == tx.RGBA {
			continue
		}
		tx.RGBA = img
		tx.Transparent = !img.Opaque()
		rd.Scene.SetTexture(tx)
		for _, sld := range tx.solids {
			sld.Material.Color = color.RGBA{255, 255, 255, sld.Material.Color.A}
			sld.SetTexture(tx)
		}
		slog.Debug("texture uploaded", "path", tx.Name, "solids", len(tx.solids))
	}
}

func (rd *Renderer) syncCamera() {
	if rd.Viewport == nil {
		return
	}
	cm := &rd.Viewport.Camera
	xc := &rd.Scene.Camera
	xc.FOV = cm.FOV
	xc.Near = cm.Near
	xc.Far = cm.Far
	if cm.Aspect > 0 {
		xc.Aspect = cm.Aspect
	}
	xc.Pose.Pos = cm.Pose.Pos
	xc.LookAt(cm.Target, cm.UpDir)
}

// SetViewportSize records the size of the drawing area and
// sets the xyz camera aspect ratio from it.
func (rd *Renderer) SetViewportSize(width, height int) {
	rd.size = image.Pt(width, height)
	if height > 0 {
		rd.Scene.Camera.Aspect = float32(width) / float32(height)
	}
	rd.Scene.SetNeedsRender()
}

// SetPixelDensity records the device pixel ratio.
func (rd *Renderer) SetPixelDensity(ratio float32) {
	rd.density = ratio
	rd.Scene.SetNeedsRender()
}

// Size returns the last viewport size set.
func (rd *Renderer) Size() image.Point {
	return rd.size
}

// PixelDensity returns the last pixel density set.
func (rd *Renderer) PixelDensity() float32 {
	return rd.density
}

// Textured returns the number of textures uploaded so far.
func (rd *Renderer) Textured() int {
	n := 0
	for _, tx := range rd.textures {
		if tx.RGBA != nil {
			n++
		}
	}
	return n
}

var _ viewport.Surface = (*Renderer)(nil)

