// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the position, scale and orientation of a node,
// always relative to its parent.
type Pose struct {

	// Pos is the position of the center of the node, relative to the parent.
	Pos math32.Vector3

	// Scale is the scale, relative to the parent.
	Scale math32.Vector3

	// Quat is the rotation, relative to the parent.
	Quat math32.Quat
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// Apply transforms the given point from this pose's local space
// into its parent's space.
func (ps *Pose) Apply(pt math32.Vector3) math32.Vector3 {
	sc := ps.Scale
	if sc == (math32.Vector3{}) {
		sc.Set(1, 1, 1)
	}
	q := ps.Quat
	if q.IsNil() {
		q.SetIdentity()
	}
	return pt.Mul(sc).MulQuat(q).Add(ps.Pos)
}

// Rotate rotates the given direction by this pose's rotation only.
func (ps *Pose) Rotate(dir math32.Vector3) math32.Vector3 {
	if ps.Quat.IsNil() {
		return dir
	}
	return dir.MulQuat(ps.Quat)
}

// LookAt points the pose's negative Z axis at the given target, with
// the given up direction, from its current position.
func (ps *Pose) LookAt(target, up math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, up))
}

// Matrix returns the local transform matrix of the pose.
func (ps *Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	q := ps.Quat
	if q.IsNil() {
		q.SetIdentity()
	}
	sc := ps.Scale
	if sc == (math32.Vector3{}) {
		sc.Set(1, 1, 1)
	}
	m.SetTransform(ps.Pos, q, sc)
	return m
}
