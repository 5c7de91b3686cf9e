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

func TestBillboardFacesCamera(t *testing.T) {
	w := newTestWorld()
	cg, cm := newMainCamera(t, w)
	cg.Transform().SetPosition(math32.Vec3(0, 0, 10))
	g, r, _ := newRenderableObject(t, w, "sprite", nil)
	b := NewBillboard()
	require.NoError(t, r.SetBillboard(b))
	assert.Equal(t, r, b.Renderable())
	assert.True(t, w.Parameters().ContainsListener(MainCameraKey, b))
	assert.True(t, cm.Invalidations().Contains(b))

	m, ok := r.ModelMatrix()
	require.True(t, ok)
	tolassert.EqualMatrix4(t, math32.Identity4(), &m)
	assert.True(t, b.IsValid())

	cg.Transform().SetPosition(math32.Vec3(10, 0, 0))
	assert.False(t, b.IsValid(), "camera moves invalidate the billboard")
	m, _ = r.ModelMatrix()
	var col math32.Vector3
	col.SetFromMatrixCol(2, &m)
	tolassert.EqualVector3(t, math32.Vec3(1, 0, 0), col)
	col.SetFromMatrixCol(0, &m)
	tolassert.EqualVector3(t, math32.Vec3(0, 0, -1), col)
	fwd, ok := r.Forward()
	require.True(t, ok)
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), fwd)
	up, _ := r.Up()
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), up)

	inv, ok := r.InverseModelMatrix()
	require.True(t, ok)
	tolassert.EqualMatrix4(t, math32.Identity4(), m.Mul(&inv))

	// position and scale of the transform are kept
	g.Transform().SetPosition(math32.Vec3(0, 0, 1))
	g.Transform().SetScale(math32.Vec3(2, 2, 2))
	m, _ = r.ModelMatrix()
	var pos math32.Vector3
	pos.SetFromMatrixPos(&m)
	tolassert.EqualVector3(t, math32.Vec3(0, 0, 1), pos)
	col.SetFromMatrixCol(1, &m)
	tolassert.Equal(t, 2, col.Length())
}

func TestBillboardFallbacks(t *testing.T) {
	w := newTestWorld()
	g, r, _ := newRenderableObject(t, w, "sprite", nil)
	g.Transform().SetEulerRotation(0, 45, 0)
	b := NewBillboard()
	require.NoError(t, r.SetBillboard(b))

	// no main camera
	m, ok := b.ModelMatrix()
	require.True(t, ok)
	wm := g.Transform().WorldMatrix()
	tolassert.EqualMatrix4(t, &wm, &m)

	// camera straight above
	cg, _ := newMainCamera(t, w)
	assert.False(t, b.IsValid(), "setting the main camera invalidates listeners")
	cg.Transform().SetPosition(math32.Vec3(0, 10, 0))
	m, _ = b.ModelMatrix()
	tolassert.EqualMatrix4(t, &wm, &m)

	g.Components().Remove(r)
	_, ok = b.ModelMatrix()
	assert.False(t, ok)
	assert.False(t, w.Parameters().ContainsListener(MainCameraKey, b))
}

func TestBillboardMainCameraSwitch(t *testing.T) {
	w := newTestWorld()
	_, c1 := newMainCamera(t, w)
	_, r, _ := newRenderableObject(t, w, "sprite", nil)
	b := NewBillboard()
	require.NoError(t, r.SetBillboard(b))
	_, _ = b.ModelMatrix()

	g2 := w.NewGameObject("camera2")
	c2 := NewCamera()
	require.NoError(t, g2.Components().Add(c2))
	require.NoError(t, w.SetMainCamera(c2))
	assert.False(t, b.IsValid())
	assert.False(t, c1.Invalidations().Contains(b))
	assert.True(t, c2.Invalidations().Contains(b))
	assert.False(t, c1.IsMainCamera())
	assert.True(t, c2.IsMainCamera())

	_, _ = b.ModelMatrix()
	g2.Transform().Move(math32.Vec3(1, 0, 0))
	assert.False(t, b.IsValid())
}

func TestBillboardOwnership(t *testing.T) {
	w := newTestWorld()
	_, r1, _ := newRenderableObject(t, w, "r1", nil)
	_, r2, _ := newRenderableObject(t, w, "r2", nil)
	b := NewBillboard()
	require.NoError(t, r1.SetBillboard(b))
	require.NoError(t, r1.SetBillboard(b))

	err := r2.SetBillboard(b)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
	assert.Equal(t, r1, b.Renderable())
	assert.Nil(t, r2.Billboard())

	require.NoError(t, r1.SetBillboard(nil))
	assert.Nil(t, b.Renderable())
	assert.Equal(t, 0, w.Parameters().ListenerCount(MainCameraKey))
	require.NoError(t, r2.SetBillboard(b))
	assert.Equal(t, r2, b.Renderable())
	assert.Equal(t, 1, w.Parameters().ListenerCount(MainCameraKey))
}
