// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scene/base/tolassert"
	"cogentcore.org/scene/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedWorld returns parent world * local for the transform.
func expectedWorld(tr *Transform) math32.Matrix4 {
	local := tr.LocalMatrix()
	if tr.Parent() == nil {
		return local
	}
	pw := tr.Parent().WorldMatrix()
	return *pw.Mul(&local)
}

func TestTransformDefaults(t *testing.T) {
	w := newTestWorld()
	g := w.NewGameObject("a")
	tr := g.Transform()
	assert.Equal(t, g, tr.GameObject())
	assert.True(t, tr.Rotation().IsIdentity())
	assert.Equal(t, math32.Vec3(1, 1, 1), tr.Scale())
	wm := tr.WorldMatrix()
	assert.True(t, wm.IsIdentity())
	assert.True(t, tr.IsValid())
	tolassert.EqualVector3(t, math32.Vec3(0, 0, -1), tr.Forward())
	tolassert.EqualVector3(t, math32.Vec3(1, 0, 0), tr.Right())
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), tr.Up())
}

func TestTransformHierarchy(t *testing.T) {
	w := newTestWorld()
	parent := w.NewGameObject("parent")
	child := w.NewGameObject("child")
	require.NoError(t, parent.Children().Add(child))

	pt := parent.Transform()
	pt.SetPosition(math32.Vec3(1, 2, 3))
	pt.SetRotation(math32.NewQuatAxisAngle(math32.Vector3Y, math32.Pi/2))
	pt.SetScale(math32.Vec3(2, 2, 2))
	ct := child.Transform()
	ct.SetPosition(math32.Vec3(1, 0, 0))

	tolassert.EqualVector3(t, math32.Vec3(1, 2, 1), ct.WorldPosition())
	cw := ct.WorldMatrix()
	ew := expectedWorld(ct)
	tolassert.EqualMatrix4(t, &ew, &cw)
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), ct.Forward())
	tolassert.EqualVector3(t, math32.Vec3(0, 0, -1), ct.Right())
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), ct.Up())
	tolassert.EqualVector3(t, math32.Vec3(2, 2, 2), ct.WorldScale())

	// mutating the parent invalidates the child
	pt.Move(math32.Vec3(0, 10, 0))
	assert.False(t, ct.IsValid())
	tolassert.EqualVector3(t, math32.Vec3(1, 12, 1), ct.WorldPosition())
	cw = ct.WorldMatrix()
	ew = expectedWorld(ct)
	tolassert.EqualMatrix4(t, &ew, &cw)

	inv := ct.WorldInverseMatrix()
	id := cw.Mul(&inv)
	tolassert.EqualMatrix4(t, math32.Identity4(), id)
}

func TestTransformReparent(t *testing.T) {
	w := newTestWorld()
	a := w.NewGameObject("a")
	b := w.NewGameObject("b")
	c := w.NewGameObject("c")
	a.Transform().SetPosition(math32.Vec3(10, 0, 0))
	b.Transform().SetPosition(math32.Vec3(0, 20, 0))
	b.Transform().SetScale(math32.Vec3(1, 3, 1))
	c.Transform().SetPosition(math32.Vec3(0, 1, 0))

	check := func(want math32.Vector3) {
		t.Helper()
		cw := c.Transform().WorldMatrix()
		ew := expectedWorld(c.Transform())
		tolassert.EqualMatrix4(t, &ew, &cw)
		tolassert.EqualVector3(t, want, c.Transform().WorldPosition())
	}

	check(math32.Vec3(0, 1, 0))
	require.NoError(t, c.SetParent(a))
	assert.False(t, c.Transform().IsValid())
	check(math32.Vec3(10, 1, 0))
	require.NoError(t, c.SetParent(b))
	check(math32.Vec3(0, 23, 0))

	// the old parent no longer reaches the child
	a.Transform().Move(math32.Vec3(1, 0, 0))
	assert.True(t, c.Transform().IsValid())
	assert.False(t, a.Transform().Invalidations().Contains(c.Transform()))

	// interleaved writes and reads through a deeper chain
	require.NoError(t, b.SetParent(a))
	b.Transform().Rotate(math32.NewQuatAxisAngle(math32.Vector3Z, math32.Pi/2))
	a.Transform().SetScale(math32.Vec3(2, 2, 2))
	_ = b.Transform().WorldMatrix()
	c.Transform().Move(math32.Vec3(1, 0, 0))
	a.Transform().Move(math32.Vec3(0, 0, 1))
	cw := c.Transform().WorldMatrix()
	ew := expectedWorld(c.Transform())
	tolassert.EqualMatrix4(t, &ew, &cw)

	require.NoError(t, c.SetParent(nil))
	check(math32.Vec3(1, 1, 0))
}

func TestTransformInvalidateTwice(t *testing.T) {
	w := newTestWorld()
	g := w.NewGameObject("a")
	tr := g.Transform()
	l := newListener()
	require.NoError(t, tr.Invalidations().Register(l))
	_ = tr.WorldMatrix()
	l.valid = true

	tr.Invalidate()
	onceTr, onceL := tr.IsValid(), l.valid
	tr.Invalidate()
	assert.Equal(t, onceTr, tr.IsValid())
	assert.Equal(t, onceL, l.valid)
	m := tr.WorldMatrix()
	assert.True(t, m.IsIdentity())
}

func TestTransformRotations(t *testing.T) {
	w := newTestWorld()
	tr := w.NewGameObject("a").Transform()

	tr.SetEulerRotation(0, 90, 0)
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), tr.Forward())

	tr.SetRotation(math32.Quat{})
	assert.True(t, tr.Rotation().IsIdentity())

	tr.RotateOnAxis(math32.Vec3(0, 2, 0), 90)
	tr.RotateOnAxis(math32.Vector3Y, 90)
	tolassert.EqualVector3(t, math32.Vec3(0, 0, 1), tr.Forward())

	tr.SetPosition(math32.Vec3(5, 0, 0))
	tr.LookAt(math32.Vec3(0, 0, 0), math32.Vector3{})
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), tr.Forward())
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), tr.Up())

	other := w.NewGameObject("b").Transform()
	other.CopyFrom(tr)
	assert.Equal(t, tr.Position(), other.Position())
	tolassert.EqualVector3(t, tr.Forward(), other.Forward())
}
