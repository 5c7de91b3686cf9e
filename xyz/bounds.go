// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scene/invalidate"
	"cogentcore.org/scene/math32"
)

// BoundingShape is a conservative world space approximation of the
// extent of a [Renderable], used to cull it against the frustum of the
// main camera. The variants are [SphereBounds] and [AabbBounds].
// A bounding shape is owned by at most one renderable.
type BoundingShape interface {
	invalidate.Dependent

	// Renderable returns the owning renderable, or nil.
	Renderable() *Renderable

	// IsUsable returns whether the world space extent can be computed.
	IsUsable() bool

	// IsInsideMainCameraFrustum returns whether the shape is at least
	// partly inside the frustum of the main camera. It is true when
	// there is no usable main camera or the shape is not usable.
	IsInsideMainCameraFrustum() bool

	bounds() *boundingBase
}

// boundingBase is the state shared by the bounding shape variants.
type boundingBase struct {
	renderable *Renderable
	valid      bool
	handle     *invalidate.Handle
}

func (bb *boundingBase) bounds() *boundingBase { return bb }

func (bb *boundingBase) Renderable() *Renderable { return bb.renderable }

func (bb *boundingBase) InvalidationHandle() *invalidate.Handle { return bb.handle }

// Invalidate marks the world space extent stale.
func (bb *boundingBase) Invalidate() { bb.valid = false }

// IsValid returns whether the world space extent is current.
func (bb *boundingBase) IsValid() bool { return bb.valid }

// mainFrustum returns the frustum of the main camera of the world of
// the owning renderable, or nil if there is no attached, active one.
func (bb *boundingBase) mainFrustum() *Frustum {
	if bb.renderable == nil {
		return nil
	}
	w := bb.renderable.World()
	if w == nil {
		return nil
	}
	cm := w.MainCamera()
	if cm == nil || cm.gameObject == nil || !cm.active {
		return nil
	}
	return cm.frustum
}

// SphereBounds is a bounding sphere centered on the world position of
// the renderable. Its world radius is the object space radius of the
// drawable times the largest absolute component of the world scale,
// which overestimates the extent under non-uniform scale.
type SphereBounds struct {
	boundingBase
	worldRadius float32
}

// NewSphereBounds returns a new bounding sphere not owned by any renderable.
func NewSphereBounds() *SphereBounds {
	sb := &SphereBounds{}
	sb.handle = invalidate.NewHandle(sb)
	return sb
}

func (sb *SphereBounds) IsUsable() bool {
	return sb.renderable != nil && sb.renderable.IsUsable()
}

func (sb *SphereBounds) refresh() bool {
	if !sb.IsUsable() {
		return false
	}
	if sb.valid {
		return true
	}
	r := sb.renderable
	scale := r.gameObject.transform.WorldScale().Abs().MaxComponent()
	sb.worldRadius = r.drawable.ObjectSpaceRadius() * scale
	sb.valid = true
	return true
}

// ObjectRadius returns the object space radius of the drawable.
func (sb *SphereBounds) ObjectRadius() (float32, bool) {
	if !sb.IsUsable() {
		return 0, false
	}
	return sb.renderable.drawable.ObjectSpaceRadius(), true
}

// WorldRadius returns the world space radius.
func (sb *SphereBounds) WorldRadius() (float32, bool) {
	if !sb.refresh() {
		return 0, false
	}
	return sb.worldRadius, true
}

// WorldCenter returns the world space center, which is the world
// position of the renderable.
func (sb *SphereBounds) WorldCenter() (math32.Vector3, bool) {
	if !sb.IsUsable() {
		return math32.Vector3{}, false
	}
	return sb.renderable.gameObject.transform.WorldPosition(), true
}

// WorldSphere returns the world space sphere.
func (sb *SphereBounds) WorldSphere() (math32.Sphere, bool) {
	if !sb.refresh() {
		return math32.Sphere{}, false
	}
	center, _ := sb.WorldCenter()
	return math32.Sphere{Center: center, Radius: sb.worldRadius}, true
}

// IsInsideMainCameraFrustum tests the sphere against each frustum plane,
// and is false as soon as the sphere is entirely behind one of them.
func (sb *SphereBounds) IsInsideMainCameraFrustum() bool {
	f := sb.mainFrustum()
	if f == nil {
		return true
	}
	sphere, ok := sb.WorldSphere()
	if !ok {
		return true
	}
	inside, ok := f.IntersectsSphere(sphere)
	return inside || !ok
}

// AabbBounds is an axis aligned bounding box in world space, spanning
// the eight object space box corners of the drawable transformed by the
// world matrix of the renderable. It is not usable while the renderable
// has a billboard.
type AabbBounds struct {
	boundingBase
	world math32.Box3
}

// NewAabbBounds returns a new bounding box not owned by any renderable.
func NewAabbBounds() *AabbBounds {
	ab := &AabbBounds{}
	ab.handle = invalidate.NewHandle(ab)
	return ab
}

func (ab *AabbBounds) IsUsable() bool {
	return ab.renderable != nil && ab.renderable.billboard == nil && ab.renderable.IsUsable()
}

func (ab *AabbBounds) refresh() bool {
	if !ab.IsUsable() {
		return false
	}
	if ab.valid {
		return true
	}
	r := ab.renderable
	model := r.gameObject.transform.WorldMatrix()
	obj := math32.Box3{Min: r.drawable.ObjectSpaceAabbMin(), Max: r.drawable.ObjectSpaceAabbMax()}
	ab.world = obj.MulMatrix4(&model)
	ab.valid = true
	return true
}

// ObjectBox returns the object space box of the drawable.
func (ab *AabbBounds) ObjectBox() (math32.Box3, bool) {
	if !ab.IsUsable() {
		return math32.Box3{}, false
	}
	d := ab.renderable.drawable
	return math32.Box3{Min: d.ObjectSpaceAabbMin(), Max: d.ObjectSpaceAabbMax()}, true
}

// WorldBox returns the world space box.
func (ab *AabbBounds) WorldBox() (math32.Box3, bool) {
	if !ab.refresh() {
		return math32.Box3{}, false
	}
	return ab.world, true
}

// WorldMin returns the minimum corner of the world space box.
func (ab *AabbBounds) WorldMin() (math32.Vector3, bool) {
	box, ok := ab.WorldBox()
	return box.Min, ok
}

// WorldMax returns the maximum corner of the world space box.
func (ab *AabbBounds) WorldMax() (math32.Vector3, bool) {
	box, ok := ab.WorldBox()
	return box.Max, ok
}

// IsInsideMainCameraFrustum tests the positive vertex of the box for
// each frustum plane, and is false as soon as it is behind one of them.
func (ab *AabbBounds) IsInsideMainCameraFrustum() bool {
	f := ab.mainFrustum()
	if f == nil {
		return true
	}
	box, ok := ab.WorldBox()
	if !ok {
		return true
	}
	inside, ok := f.IntersectsBox(box)
	return inside || !ok
}
