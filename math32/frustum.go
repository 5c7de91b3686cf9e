// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit scene functionality.

package math32

// FrustumPlanes enumerates the six planes of a [Frustum] in the
// order they are stored.
type FrustumPlanes int32

const (
	FrustumRight FrustumPlanes = iota
	FrustumLeft
	FrustumBottom
	FrustumTop
	FrustumFar
	FrustumNear

	// FrustumPlanesN is the number of frustum planes.
	FrustumPlanesN
)

// Frustum represents a frustum
type Frustum struct {
	Planes [FrustumPlanesN]Plane
}

// NewFrustumFromMatrix creates and returns a Frustum based on the provided matrix
func NewFrustumFromMatrix(m *Matrix4) *Frustum {
	f := &Frustum{}
	f.SetFromMatrix(m)
	return f
}

// SetFromMatrix sets the frustum's planes from the specified projection * view
// matrix, normalizing each plane so that its offset is a true signed distance.
// Plane normals point toward the inside of the frustum.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	me0 := m[0]
	me1 := m[1]
	me2 := m[2]
	me3 := m[3]
	me4 := m[4]
	me5 := m[5]
	me6 := m[6]
	me7 := m[7]
	me8 := m[8]
	me9 := m[9]
	me10 := m[10]
	me11 := m[11]
	me12 := m[12]
	me13 := m[13]
	me14 := m[14]
	me15 := m[15]

	f.Planes[FrustumRight].SetDims(me3-me0, me7-me4, me11-me8, me15-me12)
	f.Planes[FrustumLeft].SetDims(me3+me0, me7+me4, me11+me8, me15+me12)
	f.Planes[FrustumBottom].SetDims(me3+me1, me7+me5, me11+me9, me15+me13)
	f.Planes[FrustumTop].SetDims(me3-me1, me7-me5, me11-me9, me15-me13)
	f.Planes[FrustumFar].SetDims(me3-me2, me7-me6, me11-me10, me15-me14)
	f.Planes[FrustumNear].SetDims(me3+me2, me7+me6, me11+me10, me15+me14)

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
}

// IntersectsSphere determines whether the specified sphere is intersecting the frustum.
// A sphere is outside when it lies entirely behind any one plane.
func (f *Frustum) IntersectsSphere(sphere Sphere) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(sphere.Center)+sphere.Radius < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox determines whether the specified box is intersecting the frustum,
// using the positive vertex of the box relative to each plane.
func (f *Frustum) IntersectsBox(box Box3) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		if p.DistanceToPoint(p.PositiveVertex(box)) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint determines whether the frustum contains the specified point.
func (f *Frustum) ContainsPoint(point Vector3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}
