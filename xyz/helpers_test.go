// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scene/invalidate"
	"cogentcore.org/scene/math32"
	"github.com/stretchr/testify/require"
)

// testDrawable is a drawable with a fixed extent.
type testDrawable struct {
	radius   float32
	min, max math32.Vector3
	notReady bool
	nDraw    int
	nUpdate  int
}

func newUnitDrawable() *testDrawable {
	return &testDrawable{
		radius: math32.Sqrt(3) * 0.5,
		min:    math32.Vec3(-0.5, -0.5, -0.5),
		max:    math32.Vec3(0.5, 0.5, 0.5),
	}
}

func (td *testDrawable) Draw()                              { td.nDraw++ }
func (td *testDrawable) Update()                            { td.nUpdate++ }
func (td *testDrawable) ObjectSpaceRadius() float32         { return td.radius }
func (td *testDrawable) ObjectSpaceAabbMin() math32.Vector3 { return td.min }
func (td *testDrawable) ObjectSpaceAabbMax() math32.Vector3 { return td.max }
func (td *testDrawable) IsReady() bool                      { return !td.notReady }

type testMaterial struct {
	transparent bool
}

func (tm *testMaterial) IsTransparent() bool { return tm.transparent }

// listener is a dependent that counts its invalidations.
type listener struct {
	handle *invalidate.Handle
	valid  bool
	n      int
}

func newListener() *listener {
	l := &listener{valid: true}
	l.handle = invalidate.NewHandle(l)
	return l
}

func (l *listener) InvalidationHandle() *invalidate.Handle { return l.handle }

func (l *listener) Invalidate() {
	l.valid = false
	l.n++
}

func newTestWorld() *World {
	return NewWorld(nil, &FixedViewport{Width: 1600, Height: 900})
}

// newMainCamera returns a game object with a camera set as the
// main camera of the world, at the origin looking along -Z.
func newMainCamera(t *testing.T, w *World) (*GameObject, *Camera) {
	t.Helper()
	g := w.NewGameObject("camera")
	cm := NewCamera()
	require.NoError(t, g.Components().Add(cm))
	require.NoError(t, w.SetMainCamera(cm))
	return g, cm
}

// newRenderableObject returns a game object with a renderable of a unit
// drawable and the given bounding shape (nil for a sphere).
func newRenderableObject(t *testing.T, w *World, name string, shape BoundingShape) (*GameObject, *Renderable, *testDrawable) {
	t.Helper()
	d := newUnitDrawable()
	r, err := NewRenderable(d, &testMaterial{}, shape)
	require.NoError(t, err)
	g := w.NewGameObject(name)
	require.NoError(t, g.Components().Add(r))
	return g, r, d
}
