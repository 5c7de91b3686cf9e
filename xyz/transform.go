// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/scene/invalidate"
	"cogentcore.org/scene/math32"
)

// Transform contains the position, rotation, and scale of a [GameObject],
// always relative to the transform of its parent. It caches the derived
// world matrix, which is recomputed on the first read after any change
// to this transform or one of its ancestors.
//
// Child transforms are registered in the [Transform.Invalidations] of
// their parent, so invalidating a transform invalidates its whole subtree
// along with every component listening to it.
type Transform struct {
	gameObject *GameObject
	parent     *Transform

	position math32.Vector3
	rotation math32.Quat
	scale    math32.Vector3

	valid    bool
	world    math32.Matrix4
	worldInv math32.Matrix4
	worldRot math32.Quat
	handle   *invalidate.Handle
	deps     *invalidate.Registry
}

func newTransform(g *GameObject) *Transform {
	tr := &Transform{
		gameObject: g,
		rotation:   math32.QuatIdentity(),
		scale:      math32.Vec3(1, 1, 1),
	}
	tr.handle = invalidate.NewHandle(tr)
	tr.deps = invalidate.NewRegistry(tr.handle)
	return tr
}

// GameObject returns the game object that owns this transform.
func (tr *Transform) GameObject() *GameObject { return tr.gameObject }

// Parent returns the transform of the parent game object, or nil for a root.
func (tr *Transform) Parent() *Transform { return tr.parent }

// InvalidationHandle returns the handle of this transform.
func (tr *Transform) InvalidationHandle() *invalidate.Handle { return tr.handle }

// Invalidations returns the registry of dependents (child transforms and
// listening components) that are invalidated with this transform.
func (tr *Transform) Invalidations() *invalidate.Registry { return tr.deps }

// Invalidate marks the cached world matrices stale and invalidates
// all dependents.
func (tr *Transform) Invalidate() {
	tr.valid = false
	tr.deps.Invalidate()
}

// IsValid returns whether the cached world matrices are current.
func (tr *Transform) IsValid() bool { return tr.valid }

// Position returns the position relative to the parent.
func (tr *Transform) Position() math32.Vector3 { return tr.position }

// Rotation returns the rotation relative to the parent.
func (tr *Transform) Rotation() math32.Quat { return tr.rotation }

// Scale returns the scale relative to the parent.
func (tr *Transform) Scale() math32.Vector3 { return tr.scale }

// SetPosition sets the position relative to the parent.
func (tr *Transform) SetPosition(pos math32.Vector3) {
	tr.position = pos
	tr.Invalidate()
}

// SetRotation sets the rotation relative to the parent.
// The quaternion is normalized; a zero quaternion is treated as identity.
func (tr *Transform) SetRotation(rot math32.Quat) {
	tr.rotation = rot.Normal()
	tr.Invalidate()
}

// SetEulerRotation sets the rotation from Euler angles in degrees,
// applied in XYZ order.
func (tr *Transform) SetEulerRotation(x, y, z float32) {
	tr.SetRotation(math32.NewQuatEuler(math32.Vec3(math32.DegToRad(x), math32.DegToRad(y), math32.DegToRad(z))))
}

// SetScale sets the scale relative to the parent.
func (tr *Transform) SetScale(scale math32.Vector3) {
	tr.scale = scale
	tr.Invalidate()
}

// Move translates the position by delta, in parent space.
func (tr *Transform) Move(delta math32.Vector3) {
	tr.SetPosition(tr.position.Add(delta))
}

// Rotate applies the delta rotation after the current rotation,
// so that delta is expressed in the local frame.
func (tr *Transform) Rotate(delta math32.Quat) {
	tr.SetRotation(tr.rotation.Mul(delta))
}

// RotateOnAxis rotates around the given local axis by the given angle in degrees.
func (tr *Transform) RotateOnAxis(axis math32.Vector3, angle float32) {
	tr.Rotate(math32.NewQuatAxisAngle(axis.Normal(), math32.DegToRad(angle)))
}

// LookAt rotates the transform so that its forward direction (-Z)
// points from its position toward the target, both in parent space.
// A zero up vector means the Y axis.
func (tr *Transform) LookAt(target, up math32.Vector3) {
	if up.IsNil() {
		up = math32.Vector3Y
	}
	var rm math32.Matrix4
	rm.SetLookAt(tr.position, target, up)
	var q math32.Quat
	q.SetFromRotationMatrix(&rm)
	tr.SetRotation(q)
}

// CopyFrom copies the local position, rotation, and scale of the other
// transform, keeping this transform's place in the hierarchy.
func (tr *Transform) CopyFrom(other *Transform) {
	tr.position = other.position
	tr.rotation = other.rotation
	tr.scale = other.scale
	tr.Invalidate()
}

// LocalMatrix returns the matrix composed from the local position,
// rotation, and scale.
func (tr *Transform) LocalMatrix() math32.Matrix4 {
	return *math32.NewTransform(tr.position, tr.rotation, tr.scale)
}

// refresh recomputes the world matrices if they are stale.
func (tr *Transform) refresh() {
	if tr.valid {
		return
	}
	local := tr.LocalMatrix()
	if tr.parent != nil {
		pw := tr.parent.WorldMatrix()
		tr.world.MulMatrices(&pw, &local)
		tr.worldRot = tr.parent.WorldRotation().Mul(tr.rotation).Normal()
	} else {
		tr.world = local
		tr.worldRot = tr.rotation
	}
	if err := tr.worldInv.SetInverse(&tr.world); err != nil {
		slog.Debug("xyz.Transform: world matrix is not invertible", "object", tr.gameObject.Name)
	}
	tr.valid = true
}

// WorldMatrix returns the matrix transforming from this object's local
// space to world space: the parent world matrix times [Transform.LocalMatrix].
func (tr *Transform) WorldMatrix() math32.Matrix4 {
	tr.refresh()
	return tr.world
}

// WorldInverseMatrix returns the inverse of [Transform.WorldMatrix].
// For a non invertible world matrix (a zero scale component) it
// returns the identity.
func (tr *Transform) WorldInverseMatrix() math32.Matrix4 {
	tr.refresh()
	return tr.worldInv
}

// WorldPosition returns the position in world space.
func (tr *Transform) WorldPosition() math32.Vector3 {
	tr.refresh()
	var pos math32.Vector3
	pos.SetFromMatrixPos(&tr.world)
	return pos
}

// WorldRotation returns the rotation in world space, composed
// from the rotations of all ancestors.
func (tr *Transform) WorldRotation() math32.Quat {
	tr.refresh()
	return tr.worldRot
}

// WorldScale returns the scale in world space, decomposed from the world matrix.
func (tr *Transform) WorldScale() math32.Vector3 {
	tr.refresh()
	_, _, scale := tr.world.Decompose()
	return scale
}

// Forward returns the world space unit vector this object faces (-Z).
func (tr *Transform) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(tr.WorldRotation()).Normal()
}

// Right returns the world space unit vector to the right of this object (+X).
func (tr *Transform) Right() math32.Vector3 {
	return math32.Vector3X.MulQuat(tr.WorldRotation()).Normal()
}

// Up returns the world space unit vector above this object (+Y).
func (tr *Transform) Up() math32.Vector3 {
	return math32.Vector3Y.MulQuat(tr.WorldRotation()).Normal()
}

// setParent moves this transform under the given parent transform,
// which may be nil, and invalidates it.
func (tr *Transform) setParent(parent *Transform) {
	if tr.parent != nil {
		tr.parent.deps.Unregister(tr)
	}
	tr.parent = parent
	if parent == nil {
		tr.Invalidate()
		return
	}
	if err := parent.deps.Register(tr); err != nil {
		slog.Error("xyz.Transform: registering with parent", "object", tr.gameObject.Name, "err", err)
	}
}
