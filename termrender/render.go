// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termrender draws an orrery system on a character terminal with
// tcell. World positions are projected through the viewport camera; each
// terminal cell counts as two pixels high, so the picture keeps its
// proportions.
package termrender

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/orrery"
	"cogentcore.org/orrery/scene"
	"cogentcore.org/orrery/viewport"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gdamore/tcell/v2"
)

// RingSamples is the number of points drawn around each ring.
const RingSamples = 64

// Glyphs used for drawing.
const (
	StarGlyph  = '.'
	RingGlyph  = '·'
	BodyGlyph  = '█'
	SmallGlyph = 'o'
)

// Renderer draws a system onto a tcell screen.
type Renderer struct {

	// Screen is the terminal screen.
	Screen tcell.Screen

	// System is the system drawn.
	System *orrery.System

	// Viewport provides the camera and receives resizes.
	Viewport *viewport.Controller

	// Animator is controlled by the pause and speed keys. It may be nil.
	Animator *orrery.Animator

	// Status shows the status line at the bottom of the screen.
	Status bool

	cols, rows int
	density    float32
	focused    string
	colors     map[*assets.Texture]color.RGBA
}

// NewRenderer returns a renderer for the given screen, which must be
// initialized, and makes it the surface of the controller.
func NewRenderer(s tcell.Screen, sy *orrery.System, vc *viewport.Controller, an *orrery.Animator) *Renderer {
	rd := &Renderer{Screen: s, System: sy, Viewport: vc, Animator: an, Status: true}
	rd.colors = map[*assets.Texture]color.RGBA{}
	vc.Surface = rd
	rd.Resize(s.Size())
	return rd
}

// Resize sets the viewport from a screen size in cells.
func (rd *Renderer) Resize(cols, rows int) {
	rd.Viewport.Resize(cols, 2*rows)
}

// SetViewportSize is called by the viewport with the size in pixels,
// two per cell vertically.
func (rd *Renderer) SetViewportSize(width, height int) {
	rd.cols, rd.rows = width, height/2
}

// SetPixelDensity records the ratio; terminals have no device pixels.
func (rd *Renderer) SetPixelDensity(ratio float32) {
	rd.density = ratio
}

// Cells returns the size of the drawing area in cells.
func (rd *Renderer) Cells() (cols, rows int) {
	return rd.cols, rd.rows
}

// Project returns the cell of the given world point, and its distance
// from the camera. ok is false when the point is behind the camera or
// outside the screen.
func (rd *Renderer) Project(pt math32.Vector3) (x, y int, depth float32, ok bool) {
	cm := &rd.Viewport.Camera
	ndc, ok := cm.Project(pt)
	if !ok {
		return
	}
	x = int(math32.Floor((ndc.X + 1) / 2 * float32(rd.cols)))
	y = int(math32.Floor((1 - ndc.Y) / 2 * float32(rd.rows)))
	depth = pt.Sub(cm.Pose.Pos).Length()
	ok = x >= 0 && x < rd.cols && y >= 0 && y < rd.rows
	return
}

// mark is one thing to draw, at a depth.
type mark struct {
	x, y   int
	depth  float32
	radius float32 // in columns; 0 for a single glyph
	glyph  rune
	style  tcell.Style
}

// Draw renders the system to the screen. It does not call Show.
func (rd *Renderer) Draw() {
	s := rd.Screen
	bg := tcell.NewRGBColor(int32(rd.System.Scene.Background.R), int32(rd.System.Scene.Background.G), int32(rd.System.Scene.Background.B))
	base := tcell.StyleDefault.Background(bg)
	s.Fill(' ', base)

	var marks []mark
	if st := rd.System.Stars; st != nil {
		sty := base.Foreground(rgb(fade(st.Material.Color)))
		for _, p := range st.Points {
			if x, y, d, ok := rd.Project(st.ToWorld(p)); ok {
				marks = append(marks, mark{x: x, y: y, depth: d, glyph: StarGlyph, style: sty})
			}
		}
	}
	right := rd.Viewport.Camera.Pose.Rotate(math32.Vec3(1, 0, 0))
	for _, bd := range rd.System.Bodies {
		marks = rd.bodyMarks(marks, bd, right, base)
	}

	// far to near
	slices.SortStableFunc(marks, func(a, b mark) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, mk := range marks {
		rd.drawMark(mk)
	}
	if rd.Status {
		rd.drawStatus(base)
	}
}

func (rd *Renderer) bodyMarks(marks []mark, bd *orrery.Body, right math32.Vector3, base tcell.Style) []mark {
	if bd.Ring != nil {
		rg := bd.Ring.Shape.(*scene.Ring)
		sty := base.Foreground(rgb(rd.materialColor(&bd.Ring.Material)))
		r := (rg.Inner + rg.Outer) / 2
		for i := range RingSamples {
			ang := 2 * math32.Pi * float32(i) / RingSamples
			lp := math32.Vec3(r*math32.Cos(ang), r*math32.Sin(ang), 0)
			if x, y, d, ok := rd.Project(bd.Ring.ToWorld(lp)); ok {
				marks = append(marks, mark{x: x, y: y, depth: d, glyph: RingGlyph, style: sty})
			}
		}
	}
	center := bd.Mesh.WorldPos()
	x, y, d, ok := rd.Project(center)
	if !ok {
		return marks
	}
	radius := float32(0)
	if ex, _, _, eok := rd.Project(center.Add(right.MulScalar(bd.Spec.Size))); eok {
		radius = math32.Abs(float32(ex - x))
	}
	sty := base.Foreground(rgb(rd.materialColor(&bd.Mesh.Material)))
	return append(marks, mark{x: x, y: y, depth: d, radius: radius, glyph: BodyGlyph, style: sty})
}

func (rd *Renderer) drawMark(mk mark) {
	s := rd.Screen
	if mk.radius < 1 {
		g := mk.glyph
		if g == BodyGlyph {
			g = SmallGlyph
		}
		s.SetContent(mk.x, mk.y, g, nil, mk.style)
		return
	}
	// cells are twice as high as wide
	ry := mk.radius / 2
	r0, r1 := int(math32.Floor(-ry)), int(math32.Ceil(ry))
	c0, c1 := int(math32.Floor(-mk.radius)), int(math32.Ceil(mk.radius))
	for dy := r0; dy <= r1; dy++ {
		for dx := c0; dx <= c1; dx++ {
			fx, fy := float32(dx)/mk.radius, float32(dy)/ry
			if fx*fx+fy*fy > 1 {
				continue
			}
			cx, cy := mk.x+dx, mk.y+dy
			if cx < 0 || cx >= rd.cols || cy < 0 || cy >= rd.rows {
				continue
			}
			s.SetContent(cx, cy, mk.glyph, nil, mk.style)
		}
	}
}

func (rd *Renderer) drawStatus(base tcell.Style) {
	if rd.rows < 1 {
		return
	}
	msg := " arrows orbit  wasd pan  +/- zoom  0-9 focus  r reset  space pause  [ ] speed  q quit"
	if an := rd.Animator; an != nil {
		state := ""
		if an.Paused {
			state = " paused"
		}
		msg = fmt.Sprintf(" frame %d  speed %gx%s |%s", an.Frames(), an.Speed, state, msg)
	}
	if rd.focused != "" {
		msg = fmt.Sprintf(" %s |%s", rd.focused, msg)
	}
	sty := base.Foreground(tcell.ColorGray)
	x := 0
	for _, r := range msg {
		if x >= rd.cols {
			break
		}
		rd.Screen.SetContent(x, rd.rows-1, r, nil, sty)
		x++
	}
}

// materialColor returns the color a material shows: the average of its
// texture image once loaded, or its own color otherwise.
func (rd *Renderer) materialColor(mt *scene.Material) color.RGBA {
	tx := mt.Texture
	img := tx.Image()
	if img == nil {
		return mt.Color
	}
	if c, ok := rd.colors[tx]; ok {
		return c
	}
	avg := transform.Resize(img, 1, 1, transform.Box).RGBAAt(0, 0)
	avg.A = 255
	rd.colors[tx] = avg
	return avg
}

// fade premultiplies the alpha of c into its color.
func fade(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{uint8(uint32(c.R) * a / 255), uint8(uint32(c.G) * a / 255), uint8(uint32(c.B) * a / 255), 255}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ viewport.Surface = (*Renderer)(nil)
