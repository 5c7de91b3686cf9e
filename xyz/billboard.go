// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/invalidate"
	"cogentcore.org/scene/math32"
)

// Billboard overrides the model matrix of a [Renderable] so that its
// +Z axis faces the main camera in every direction (a spherical
// billboard), with its +Y axis aligned to the up direction of the camera.
// The position and scale of the transform are kept. Without an attached
// main camera, or when the camera is straight above or below, the
// transform matrix is used as is.
//
// A billboard is owned by at most one renderable. It listens to the
// main camera of the world, so camera changes invalidate it.
type Billboard struct {
	renderable *Renderable
	valid      bool
	model      math32.Matrix4
	inverse    math32.Matrix4
	rotation   math32.Quat
	handle     *invalidate.Handle
}

// NewBillboard returns a new billboard not owned by any renderable.
func NewBillboard() *Billboard {
	b := &Billboard{}
	b.handle = invalidate.NewHandle(b)
	return b
}

// Renderable returns the owning renderable, or nil.
func (b *Billboard) Renderable() *Renderable { return b.renderable }

func (b *Billboard) InvalidationHandle() *invalidate.Handle { return b.handle }

// Invalidate marks the matrices stale.
func (b *Billboard) Invalidate() { b.valid = false }

// IsValid returns whether the matrices are current.
func (b *Billboard) IsValid() bool { return b.valid }

func (b *Billboard) listen(w *World) {
	errors.Log(w.params.AddListener(MainCameraKey, b))
}

func (b *Billboard) unlisten(w *World) {
	w.params.RemoveListener(MainCameraKey, b)
}

func (b *Billboard) refresh() bool {
	r := b.renderable
	if r == nil || r.gameObject == nil {
		return false
	}
	if b.valid {
		return true
	}
	tr := r.gameObject.transform
	if !b.faceCamera(tr) {
		b.model = tr.WorldMatrix()
		b.inverse = tr.WorldInverseMatrix()
		b.rotation = tr.WorldRotation()
	}
	b.valid = true
	return true
}

// faceCamera sets the matrices facing the main camera, returning false
// if there is no such orientation.
func (b *Billboard) faceCamera(tr *Transform) bool {
	cm := tr.gameObject.world.MainCamera()
	if cm == nil || cm.gameObject == nil {
		return false
	}
	camTr := cm.gameObject.transform
	pos := tr.WorldPosition()
	toCam := camTr.WorldPosition().Sub(pos)
	camUp := camTr.Up()
	if toCam.LengthSquared() == 0 {
		return false
	}
	forward := toCam.Normal()
	if forward.IsParallel(camUp) {
		return false
	}
	right := camUp.Cross(forward).Normal()
	up := forward.Cross(right)
	scale := tr.WorldScale()
	b.model.Set(
		right.X*scale.X, up.X*scale.Y, forward.X*scale.Z, pos.X,
		right.Y*scale.X, up.Y*scale.Y, forward.Y*scale.Z, pos.Y,
		right.Z*scale.X, up.Z*scale.Y, forward.Z*scale.Z, pos.Z,
		0, 0, 0, 1,
	)
	var rm math32.Matrix4
	rm.Set(
		right.X, up.X, forward.X, 0,
		right.Y, up.Y, forward.Y, 0,
		right.Z, up.Z, forward.Z, 0,
		0, 0, 0, 1,
	)
	b.rotation.SetFromRotationMatrix(&rm)
	if err := b.inverse.SetInverse(&b.model); err != nil {
		b.inverse = tr.WorldInverseMatrix()
	}
	return true
}

// ModelMatrix returns the billboard model matrix. It returns false
// if the billboard is not owned by an attached renderable.
func (b *Billboard) ModelMatrix() (math32.Matrix4, bool) {
	if !b.refresh() {
		return math32.Matrix4{}, false
	}
	return b.model, true
}

// InverseModelMatrix returns the inverse of [Billboard.ModelMatrix].
func (b *Billboard) InverseModelMatrix() (math32.Matrix4, bool) {
	if !b.refresh() {
		return math32.Matrix4{}, false
	}
	return b.inverse, true
}

// Rotation returns the world rotation of the billboard.
func (b *Billboard) Rotation() (math32.Quat, bool) {
	if !b.refresh() {
		return math32.Quat{}, false
	}
	return b.rotation, true
}
