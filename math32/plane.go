// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit scene functionality.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
// Points with positive signed distance lie in the half-space the normal points into.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and a offset.
func NewPlane(normal Vector3, offset float32) *Plane {
	p := &Plane{}
	p.Set(normal, offset)
	return p
}

// Set sets this plane normal vector and offset.
func (p *Plane) Set(normal Vector3, offset float32) {
	p.Norm = normal
	p.Off = offset
}

// SetDims sets this plane normal vector components and offset.
func (p *Plane) SetDims(x, y, z, w float32) {
	p.Norm.Set(x, y, z)
	p.Off = w
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// Normalize normalizes this plane normal vector and adjusts the offset.
// Note: will lead to a divide by zero if the plane is invalid.
func (p *Plane) Normalize() {
	invLen := 1.0 / p.Norm.Length()
	p.Norm = p.Norm.MulScalar(invLen)
	p.Off *= invLen
}

// Negate negates this plane normal.
func (p *Plane) Negate() {
	p.Off *= -1
	p.Norm = p.Norm.Negate()
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
// Positive values are on the side the normal points into.
func (p *Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// DistanceToSphere returns the signed distance from this plane to the specified sphere.
func (p *Plane) DistanceToSphere(sphere Sphere) float32 {
	return p.DistanceToPoint(sphere.Center) - sphere.Radius
}

// PositiveVertex returns the corner of the box that lies furthest
// along this plane's normal: per axis, the box max if the normal
// component is >= 0 and the box min otherwise.
func (p *Plane) PositiveVertex(box Box3) Vector3 {
	var pv Vector3
	if p.Norm.X >= 0 {
		pv.X = box.Max.X
	} else {
		pv.X = box.Min.X
	}
	if p.Norm.Y >= 0 {
		pv.Y = box.Max.Y
	} else {
		pv.Y = box.Min.Y
	}
	if p.Norm.Z >= 0 {
		pv.Z = box.Max.Z
	} else {
		pv.Z = box.Min.Z
	}
	return pv
}
