// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/scene"
)

// Camera defines the properties of the camera.
type Camera struct {

	// Pose is the overall orientation and direction of the camera,
	// relative to pointing at negative Z axis with up (positive Y) direction.
	Pose scene.Pose

	// Target is where the camera is pointing. It defaults to the origin,
	// moves with panning movements, and is reset by a call to LookAt.
	Target math32.Vector3

	// UpDir is which way is up. It defaults to positive Y axis,
	// and is reset by a call to LookAt.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane z coordinate.
	Near float32

	// Far is the far plane z coordinate.
	Far float32

	// ViewMatrix is the inverse of the pose matrix.
	ViewMatrix math32.Matrix4 `display:"-"`

	// ProjectionMatrix is the perspective transform.
	ProjectionMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets the default lens and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1
	cm.Near = .1
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to the default location and orientation,
// looking at the origin from 0,100,200, with up Y axis.
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 100, 200)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	pm := cm.Pose.Matrix()
	if view, err := pm.Inverse(); err == nil {
		cm.ViewMatrix = *view
	}
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at current target using current up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq) // only delY affects up

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current view), and moves the target by the same increment.
func (cm *Camera) Pan(delX, delY float32) {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos = cm.Pose.Pos.Add(td)
	cm.Target = cm.Target.Add(td)
	cm.UpdateMatrix()
}

// Zoom moves along the view axis by the given fraction of the distance to
// the target; positive moves away. The target is pushed back too when
// zooming in closer than a distance of 1.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos = cm.Pose.Pos.Add(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target = cm.Target.Add(del)
	}
	cm.UpdateMatrix()
}

// Project returns the normalized device coordinates of the given world
// point, each in [-1, 1] when visible, with +Y up. ok is false for points
// behind the camera.
func (cm *Camera) Project(pt math32.Vector3) (ndc math32.Vector3, ok bool) {
	var mvp math32.Matrix4
	mvp.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	v := math32.Vector4FromVector3(pt, 1).MulMatrix4(&mvp)
	if v.W <= 0 {
		return ndc, false
	}
	return v.PerspDiv(), true
}
