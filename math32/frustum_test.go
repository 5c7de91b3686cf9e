// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"testing"

	"cogentcore.org/scene/base/tolassert"
	. "cogentcore.org/scene/math32"
	"github.com/stretchr/testify/assert"
)

func testFrustum() *Frustum {
	var m Matrix4
	m.SetPerspective(90, 1, 1, 10)
	return NewFrustumFromMatrix(&m)
}

func TestFrustumPlanes(t *testing.T) {
	f := testFrustum()
	near := f.Planes[FrustumNear]
	tolassert.EqualVector3(t, Vec3(0, 0, -1), near.Norm)
	tolassert.Equal(t, -1, near.DistanceToPoint(Vector3{}))
	tolassert.Equal(t, 10, f.Planes[FrustumFar].DistanceToPoint(Vector3{}))
	tolassert.Equal(t, 0, f.Planes[FrustumFar].DistanceToPoint(Vec3(0, 0, -10)))
	h := Sqrt(2) / 2
	tolassert.EqualVector3(t, Vec3(-h, 0, -h), f.Planes[FrustumRight].Norm)
	tolassert.EqualVector3(t, Vec3(h, 0, -h), f.Planes[FrustumLeft].Norm)
	tolassert.EqualVector3(t, Vec3(0, h, -h), f.Planes[FrustumBottom].Norm)
	tolassert.EqualVector3(t, Vec3(0, -h, -h), f.Planes[FrustumTop].Norm)
}

func TestFrustumSpheres(t *testing.T) {
	f := testFrustum()
	assert.True(t, f.IntersectsSphere(Sphere{Vec3(0, 0, -5), 1}))
	assert.False(t, f.IntersectsSphere(Sphere{Vec3(0, 0, 5), 1}))
	assert.False(t, f.IntersectsSphere(Sphere{Vec3(0, 0, 0.5), 1}))
	assert.True(t, f.IntersectsSphere(Sphere{Vec3(0, 0, 0.5), 2}))
	assert.False(t, f.IntersectsSphere(Sphere{Vec3(0, 0, -12), 1}))
	assert.True(t, f.IntersectsSphere(Sphere{Vec3(0, 0, -10.5), 1}))
}

func TestFrustumBoxes(t *testing.T) {
	f := testFrustum()
	assert.True(t, f.IntersectsBox(B3(-1, -1, -6, 1, 1, -4)))
	assert.True(t, f.IntersectsBox(B3(4.5, -0.5, -5.5, 5.5, 0.5, -4.5)))
	assert.False(t, f.IntersectsBox(B3(6, -0.5, -5.5, 7, 0.5, -4.5)))
	assert.False(t, f.IntersectsBox(B3(-1, -1, 1, 1, 1, 2)))
	assert.True(t, f.IntersectsBox(B3(-100, -100, -100, 100, 100, 100)))
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()
	assert.True(t, f.ContainsPoint(Vec3(4, 0, -5)))
	assert.False(t, f.ContainsPoint(Vec3(5.5, 0, -5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -0.5)))
}
