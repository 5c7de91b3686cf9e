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

func TestNewRenderable(t *testing.T) {
	_, err := NewRenderable(nil, &testMaterial{}, nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	_, err = NewRenderable(newUnitDrawable(), nil, nil)
	assert.ErrorIs(t, err, ErrNilArgument)

	r, err := NewRenderable(newUnitDrawable(), &testMaterial{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SphereBounds{}, r.BoundingShape())
	assert.Equal(t, KindRenderable, r.Kind())
	near, far := r.VisibilityInterval()
	assert.Equal(t, float32(0), near)
	assert.True(t, math32.IsInf(far, 1))

	owned := r.BoundingShape()
	_, err = NewRenderable(newUnitDrawable(), &testMaterial{}, owned)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	assert.ErrorIs(t, r.SetDrawable(nil), ErrNilArgument)
	assert.ErrorIs(t, r.SetMaterial(nil), ErrNilArgument)
	_, ok := r.ModelMatrix()
	assert.False(t, ok)
	_, ok = r.Forward()
	assert.False(t, ok)
}

func TestRenderableRegistry(t *testing.T) {
	w := newTestWorld()
	g, r, d := newRenderableObject(t, w, "mesh", nil)
	assert.Equal(t, []*Renderable{r}, w.Renderables())
	assert.True(t, g.Transform().Invalidations().Contains(r))

	w.Update()
	w.Update()
	assert.Equal(t, 2, d.nUpdate)
	r.Draw()
	assert.Equal(t, 1, d.nDraw)

	g.Components().Remove(r)
	assert.Empty(t, w.Renderables())
	assert.False(t, g.Transform().Invalidations().Contains(r))
}

func TestRenderableModelMatrix(t *testing.T) {
	w := newTestWorld()
	g, r, _ := newRenderableObject(t, w, "mesh", nil)
	g.Transform().SetPosition(math32.Vec3(1, 2, 3))
	g.Transform().SetEulerRotation(0, 90, 0)
	m, ok := r.ModelMatrix()
	require.True(t, ok)
	wm := g.Transform().WorldMatrix()
	tolassert.EqualMatrix4(t, &wm, &m)
	inv, ok := r.InverseModelMatrix()
	require.True(t, ok)
	tolassert.EqualMatrix4(t, math32.Identity4(), m.Mul(&inv))

	fwd, ok := r.Forward()
	require.True(t, ok)
	tolassert.EqualVector3(t, g.Transform().Forward(), fwd)
	right, _ := r.Right()
	tolassert.EqualVector3(t, g.Transform().Right(), right)
	up, _ := r.Up()
	tolassert.EqualVector3(t, g.Transform().Up(), up)
}

func TestVisibilityInterval(t *testing.T) {
	w := newTestWorld()
	_, cm := newMainCamera(t, w)
	g, r, _ := newRenderableObject(t, w, "mesh", nil)
	g.Transform().SetPosition(math32.Vec3(0, 0, -10))
	assert.True(t, r.IsVisible())

	err := r.SetVisibilityInterval(5, 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.ErrorIs(t, r.SetVisibilityInterval(-1, 1), ErrInvalidInterval)
	near, far := r.VisibilityInterval()
	assert.Equal(t, float32(0), near)
	assert.True(t, math32.IsInf(far, 1))

	require.NoError(t, r.SetVisibilityInterval(0, 5))
	assert.False(t, r.IsWithinVisibilityInterval())
	assert.False(t, r.IsVisible())
	require.NoError(t, r.SetVisibilityInterval(5, 20))
	assert.True(t, r.IsVisible())

	// an inactive main camera counts as no camera
	require.NoError(t, r.SetVisibilityInterval(0, 5))
	cm.SetActive(false)
	assert.True(t, r.IsWithinVisibilityInterval())
	assert.True(t, r.IsVisible())
	cm.SetActive(true)
	assert.False(t, r.IsVisible())

	r.SetActive(false)
	assert.False(t, r.IsVisible())
}

func TestVisibleRenderables(t *testing.T) {
	w := newTestWorld()
	newMainCamera(t, w)
	place := func(name string, z float32, transparent bool) *Renderable {
		g, r, _ := newRenderableObject(t, w, name, nil)
		g.Transform().SetPosition(math32.Vec3(0, 0, z))
		require.NoError(t, r.SetMaterial(&testMaterial{transparent: transparent}))
		return r
	}
	glass := place("glass", -5, true)
	wall := place("wall", -20, false)
	place("behind", 20, false)
	floor := place("floor", -8, false)
	far := place("far", -500, false)

	assert.Equal(t, []*Renderable{wall, floor, glass}, w.VisibleRenderables())

	glass.MaterialActive = false
	assert.Equal(t, []*Renderable{glass, wall, floor}, w.VisibleRenderables())

	far.GameObject().Transform().SetPosition(math32.Vec3(0, 0, -30))
	assert.Len(t, w.VisibleRenderables(), 4)
}
