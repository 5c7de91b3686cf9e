// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scene/invalidate"
	"cogentcore.org/scene/math32"
)

// Frustum is the view volume of a [Camera], as six planes with unit
// normals pointing inward. The planes are recomputed from the camera's
// projection * view matrix when read after the camera changed.
// A frustum is owned by at most one camera.
type Frustum struct {
	camera *Camera
	valid  bool
	planes math32.Frustum
	handle *invalidate.Handle
}

// NewFrustum returns a new frustum not owned by any camera.
func NewFrustum() *Frustum {
	f := &Frustum{}
	f.handle = invalidate.NewHandle(f)
	return f
}

// Camera returns the owning camera, or nil.
func (f *Frustum) Camera() *Camera { return f.camera }

// InvalidationHandle returns the handle of this frustum.
func (f *Frustum) InvalidationHandle() *invalidate.Handle { return f.handle }

// Invalidate marks the planes stale.
func (f *Frustum) Invalidate() { f.valid = false }

// IsValid returns whether the planes are current.
func (f *Frustum) IsValid() bool { return f.valid }

func (f *Frustum) refresh() bool {
	if f.valid {
		return true
	}
	if f.camera == nil {
		return false
	}
	vp, ok := f.camera.ViewProjectionMatrix()
	if !ok {
		return false
	}
	f.planes.SetFromMatrix(&vp)
	f.valid = true
	return true
}

// Planes returns the six planes, indexed by [math32.FrustumPlanes].
// It returns false if there is no owning camera or it is not attached.
func (f *Frustum) Planes() (math32.Frustum, bool) {
	if !f.refresh() {
		return math32.Frustum{}, false
	}
	return f.planes, true
}

// DistanceFrom returns the signed distance of the point from the given
// plane, positive on the inner side. It returns false if the planes
// are not available.
func (f *Frustum) DistanceFrom(plane math32.FrustumPlanes, point math32.Vector3) (float32, bool) {
	if !f.refresh() {
		return 0, false
	}
	return f.planes.Planes[plane].DistanceToPoint(point), true
}

// IntersectsSphere returns whether the sphere is not entirely outside
// any of the planes. It returns false for ok if the planes are not available.
func (f *Frustum) IntersectsSphere(sphere math32.Sphere) (inside, ok bool) {
	if !f.refresh() {
		return false, false
	}
	return f.planes.IntersectsSphere(sphere), true
}

// IntersectsBox returns whether the box is not entirely outside any of
// the planes. It returns false for ok if the planes are not available.
func (f *Frustum) IntersectsBox(box math32.Box3) (inside, ok bool) {
	if !f.refresh() {
		return false, false
	}
	return f.planes.IntersectsBox(box), true
}
