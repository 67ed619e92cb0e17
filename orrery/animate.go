// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

// BodyState is the animation record of one body.
type BodyState struct {

	// Body is the animated body.
	Body *Body

	// Spin is the self-rotation angle of the body mesh, in radians.
	Spin float32

	// Orbit is the revolution angle of the orbit group, in radians.
	Orbit float32
}

// Animator advances the spin and revolution of every body by one
// step per call. Rates are per frame, not per unit of time, so the
// animation speed follows the display refresh rate.
type Animator struct {

	// States are the per-body angle records, one per body.
	States []BodyState

	// Speed multiplies every rate. The default is 1.
	Speed float32

	// Paused stops Advance from changing anything.
	Paused bool

	frames int
}

// NewAnimator returns an animator for the bodies of the given system,
// with all angles at zero.
func NewAnimator(sy *System) *Animator {
	an := &Animator{Speed: 1}
	an.States = make([]BodyState, len(sy.Bodies))
	for i, bd := range sy.Bodies {
		an.States[i].Body = bd
	}
	return an
}

// Advance adds each body's spin and orbit rates to its angles and applies
// the new angles to the body mesh, ring and orbit group.
func (an *Animator) Advance() {
	if an.Paused {
		return
	}
	for i := range an.States {
		st := &an.States[i]
		bs := &st.Body.Spec
		st.Spin += bs.SpinRate * an.Speed
		st.Orbit += bs.OrbitRate * an.Speed
		st.apply()
	}
	an.frames++
}

// Frames returns the number of frames advanced.
func (an *Animator) Frames() int {
	return an.frames
}

// Reset returns every angle to zero.
func (an *Animator) Reset() {
	for i := range an.States {
		st := &an.States[i]
		st.Spin, st.Orbit = 0, 0
		st.apply()
	}
	an.frames = 0
}

// State returns the record of the body with the given name, or nil.
func (an *Animator) State(name string) *BodyState {
	for i := range an.States {
		if an.States[i].Body.Name() == name {
			return &an.States[i]
		}
	}
	return nil
}

func (st *BodyState) apply() {
	bd := st.Body
	bd.Mesh.Pose.SetAxisRotationRad(0, 1, 0, st.Spin)
	bd.Group.Pose.SetAxisRotationRad(0, 1, 0, st.Orbit)
}
