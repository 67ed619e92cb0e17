// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport owns the camera of a rendered scene: its pose, lens
// and interactive navigation. Navigation is damped: user input moves a
// goal camera, and [Controller.Step] eases the visible camera toward it
// once per frame.
package viewport

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
)

// DefaultDamping is the fraction of the remaining distance to the goal
// that the camera covers on each [Controller.Step].
const DefaultDamping = 0.1

// settled is the distance below which easing snaps to the goal.
const settled = 1e-3

// Surface is the render target of a controller.
type Surface interface {

	// SetViewportSize sets the size of the drawing area, in pixels.
	SetViewportSize(width, height int)

	// SetPixelDensity sets the ratio of device pixels to logical pixels.
	SetPixelDensity(ratio float32)
}

// Controller owns the camera and navigation of one viewport.
type Controller struct {

	// Camera is the camera used for rendering.
	Camera Camera

	// Goal is the camera pose that navigation moves and that
	// Camera eases toward.
	Goal Camera

	// Damping is the easing factor per step, in (0, 1].
	// Values outside that range jump straight to the goal.
	Damping float32

	// Surface receives size and density changes. It may be nil.
	Surface Surface

	width, height int
	density       float32
	focus         *focus
}

// focus is an in-progress transition of the goal target to a point.
type focus struct {
	from, to math32.Vector3
	offset   math32.Vector3
	duration time.Duration
	elapsed  time.Duration
}

// NewController returns a controller in the default pose that reports
// size changes to the given surface.
func NewController(sf Surface) *Controller {
	vc := &Controller{Surface: sf, Damping: DefaultDamping}
	vc.Camera.Defaults()
	vc.Goal = vc.Camera
	return vc
}

// Size returns the current viewport size.
func (vc *Controller) Size() (width, height int) {
	return vc.width, vc.height
}

// Resize sets the viewport size, updating the camera aspect ratio and the
// surface. It returns false without doing anything when either dimension
// is not positive, or the size has not changed.
func (vc *Controller) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == vc.width && height == vc.height {
		return false
	}
	vc.width, vc.height = width, height
	aspect := float32(width) / float32(height)
	vc.Camera.Aspect = aspect
	vc.Goal.Aspect = aspect
	vc.Camera.UpdateMatrix()
	if vc.Surface != nil {
		vc.Surface.SetViewportSize(width, height)
	}
	slog.Debug("viewport resized", "width", width, "height", height)
	return true
}

// SetPixelDensity forwards a changed, positive pixel density to the surface.
func (vc *Controller) SetPixelDensity(ratio float32) {
	if ratio <= 0 || ratio == vc.density {
		return
	}
	vc.density = ratio
	if vc.Surface != nil {
		vc.Surface.SetPixelDensity(ratio)
	}
}

// Orbit rotates the goal around its target by the given degrees.
func (vc *Controller) Orbit(delX, delY float32) {
	vc.Goal.Orbit(delX, delY)
}

// Pan moves the goal and its target in the view plane.
func (vc *Controller) Pan(delX, delY float32) {
	vc.Goal.Pan(delX, delY)
}

// Zoom moves the goal along its view axis by the given fraction of
// its distance to the target.
func (vc *Controller) Zoom(zoomPct float32) {
	vc.Goal.Zoom(zoomPct)
}

// Reset returns the goal to the default pose and cancels any focus.
// The camera eases back over the following steps.
func (vc *Controller) Reset() {
	vc.focus = nil
	vc.Goal.DefaultPose()
}

// Focus starts a transition of the goal target to the given point over the
// given duration, keeping the current offset of the goal from its target.
// A non-positive duration moves the goal at once. A new focus replaces
// any transition in progress.
func (vc *Controller) Focus(point math32.Vector3, duration time.Duration) {
	fc := &focus{from: vc.Goal.Target, to: point, offset: vc.Goal.ViewVector(), duration: duration}
	vc.focus = fc
	if duration <= 0 {
		vc.Update(0)
	}
}

// Focusing returns whether a focus transition is in progress.
func (vc *Controller) Focusing() bool {
	return vc.focus != nil
}

// Update advances the focus transition by the given time.
func (vc *Controller) Update(dt time.Duration) {
	fc := vc.focus
	if fc == nil {
		return
	}
	fc.elapsed += dt
	t := float32(1)
	if fc.duration > 0 && fc.elapsed < fc.duration {
		t = float32(fc.elapsed) / float32(fc.duration)
	}
	t = t * t * (3 - 2*t) // smoothstep
	target := lerp(fc.from, fc.to, t)
	vc.Goal.Pose.Pos = target.Add(fc.offset)
	vc.Goal.LookAt(target, vc.Goal.UpDir)
	if fc.elapsed >= fc.duration {
		vc.focus = nil
	}
}

// Step eases the camera toward the goal by the damping factor.
// It returns whether the camera has reached the goal.
func (vc *Controller) Step() bool {
	cm, gl := &vc.Camera, &vc.Goal
	d := vc.Damping
	if d <= 0 || d > 1 {
		d = 1
	}
	pos := lerp(cm.Pose.Pos, gl.Pose.Pos, d)
	target := lerp(cm.Target, gl.Target, d)
	up := lerp(cm.UpDir, gl.UpDir, d)
	done := pos.Sub(gl.Pose.Pos).Length() < settled && target.Sub(gl.Target).Length() < settled &&
		up.Sub(gl.UpDir).Length() < settled
	if done {
		pos, target, up = gl.Pose.Pos, gl.Target, gl.UpDir
	}
	cm.Pose.Pos = pos
	if up.Length() < settled {
		up = gl.UpDir
	}
	cm.LookAt(target, up.Normal())
	return done
}

func lerp(a, b math32.Vector3, t float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}
