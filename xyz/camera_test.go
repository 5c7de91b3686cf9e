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

func TestLensValidation(t *testing.T) {
	cm := NewCamera()
	require.NoError(t, cm.SetFOV(60))
	for _, fov := range []float32{0, 180, -10, 200} {
		err := cm.SetFOV(fov)
		assert.ErrorIs(t, err, ErrInvalidLens, "fov %g", fov)
		assert.Equal(t, float32(60), cm.FOV())
	}

	require.NoError(t, cm.SetFar(40))
	assert.ErrorIs(t, cm.SetNear(40), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetNear(45), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetNear(0), ErrInvalidLens)
	assert.Equal(t, float32(1), cm.Near())
	assert.ErrorIs(t, cm.SetFar(1), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetFar(0.5), ErrInvalidLens)
	assert.Equal(t, float32(40), cm.Far())
	assert.ErrorIs(t, cm.SetAspectRatio(0), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetHorizontalScale(-1), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetVerticalScale(0), ErrInvalidLens)
	assert.ErrorIs(t, cm.SetType(CameraType(7)), ErrInvalidLens)
	assert.Equal(t, float32(1), cm.AspectRatio())
	assert.Equal(t, float32(10), cm.HorizontalScale())
	assert.Equal(t, float32(10), cm.VerticalScale())
	assert.Equal(t, Perspective, cm.Type())

	require.NoError(t, cm.SetNear(2))
	assert.Equal(t, float32(2), cm.Near())

	_, err := NewCameraWithLens(Lens{FOV: 30})
	assert.ErrorIs(t, err, ErrInvalidLens)
}

func TestCameraViewMatrixEndToEnd(t *testing.T) {
	w := newTestWorld()
	g := w.NewGameObject("player")
	cm := NewCamera()
	require.NoError(t, cm.SetFOV(55))
	require.NoError(t, cm.SetNear(1))
	require.NoError(t, cm.SetFar(50))
	require.NoError(t, cm.SetAspectRatio(1.777))

	_, ok := cm.ViewMatrix()
	assert.False(t, ok, "no view matrix while unattached")

	require.NoError(t, g.Components().Add(cm))
	require.NoError(t, w.SetMainCamera(cm))
	assert.True(t, cm.IsMainCamera())

	before, ok := cm.ViewMatrix()
	require.True(t, ok)
	assert.True(t, cm.IsValid())

	g.Transform().Move(math32.Vec3(0, 0, -5))
	assert.False(t, cm.IsValid())
	after, ok := cm.ViewMatrix()
	require.True(t, ok)
	assert.False(t, before.EqualTol(&after, tolassert.Tol))

	tr := g.Transform()
	expected, err := math32.NewTransform(tr.WorldPosition(), tr.WorldRotation(), math32.Vec3(1, 1, 1)).Inverse()
	require.NoError(t, err)
	tolassert.EqualMatrix4(t, expected, &after)
	tolassert.EqualVector3(t, math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0).MulMatrix4AsPoint(&after))
}

func TestCameraViewIgnoresScale(t *testing.T) {
	w := newTestWorld()
	g, cm := newMainCamera(t, w)
	g.Transform().SetPosition(math32.Vec3(1, 2, 3))
	g.Transform().SetEulerRotation(0, 30, 0)
	g.Transform().SetScale(math32.Vec3(4, 4, 4))
	view, ok := cm.ViewMatrix()
	require.True(t, ok)
	tr := g.Transform()
	expected, err := math32.NewTransform(tr.WorldPosition(), tr.WorldRotation(), math32.Vec3(1, 1, 1)).Inverse()
	require.NoError(t, err)
	tolassert.EqualMatrix4(t, expected, &view)
}

func TestCameraProjection(t *testing.T) {
	cm := NewCamera()
	require.NoError(t, cm.SetAspectRatio(2))
	var expected math32.Matrix4
	expected.SetPerspective(55, 2, 1, 50)
	proj := cm.ProjectionMatrix()
	tolassert.EqualMatrix4(t, &expected, &proj)

	require.NoError(t, cm.SetType(Orthographic))
	require.NoError(t, cm.SetHorizontalScale(4))
	require.NoError(t, cm.SetVerticalScale(3))
	expected.SetOrthographic(-4, 4, -3, 3, 1, 50)
	proj = cm.ProjectionMatrix()
	tolassert.EqualMatrix4(t, &expected, &proj)
}

func TestMainCameraAspect(t *testing.T) {
	w := newTestWorld()
	_, cm := newMainCamera(t, w)
	_ = cm.ProjectionMatrix()
	tolassert.Equal(t, 1600.0/900.0, cm.AspectRatio())
	tolassert.Equal(t, 10*900.0/1600.0, cm.VerticalScale())

	w.Resize(800, 800)
	assert.False(t, cm.IsValid())
	proj := cm.ProjectionMatrix()
	assert.Equal(t, float32(1), cm.AspectRatio())
	assert.Equal(t, float32(10), cm.VerticalScale())
	var expected math32.Matrix4
	expected.SetPerspective(55, 1, 1, 50)
	tolassert.EqualMatrix4(t, &expected, &proj)

	// a camera that is not the main camera keeps its own aspect ratio
	other := NewCamera()
	require.NoError(t, other.SetAspectRatio(3))
	_ = other.ProjectionMatrix()
	assert.Equal(t, float32(3), other.AspectRatio())
	assert.False(t, other.IsMainCamera())
}

func TestCameraListensToTransform(t *testing.T) {
	w := newTestWorld()
	g, cm := newMainCamera(t, w)
	assert.True(t, g.Transform().Invalidations().Contains(cm))
	_, _ = cm.ViewMatrix()
	assert.True(t, cm.IsValid())
	g.Transform().SetEulerRotation(10, 0, 0)
	assert.False(t, cm.IsValid())

	g.Components().Remove(cm)
	assert.False(t, g.Transform().Invalidations().Contains(cm))
	_, ok := cm.ViewMatrix()
	assert.False(t, ok)
}

func TestCameraFrustumOwnership(t *testing.T) {
	c1 := NewCamera()
	c2 := NewCamera()
	f1 := c1.Frustum()
	assert.Equal(t, c1, f1.Camera())
	assert.ErrorIs(t, c2.SetFrustum(f1), ErrAlreadyOwned)
	assert.Equal(t, c1, f1.Camera())
	assert.ErrorIs(t, c2.SetFrustum(nil), ErrNilArgument)
	require.NoError(t, c1.SetFrustum(f1))

	f := NewFrustum()
	old := c2.Frustum()
	require.NoError(t, c2.SetFrustum(f))
	assert.Nil(t, old.Camera())
	assert.Equal(t, f, c2.Frustum())
	assert.True(t, c2.Invalidations().Contains(f))
	assert.False(t, c2.Invalidations().Contains(old))
}

func TestCameraCopyLensAndViews(t *testing.T) {
	w := newTestWorld()
	g, cm := newMainCamera(t, w)
	src := NewCamera()
	require.NoError(t, src.SetFOV(80))
	require.NoError(t, src.SetType(Orthographic))
	require.NoError(t, cm.CopyLensFrom(src))
	assert.Equal(t, float32(80), cm.FOV())
	assert.Equal(t, Orthographic, cm.Type())

	g.Transform().SetPosition(math32.Vec3(1, 2, 3))
	assert.True(t, w.SaveCamera("home"))
	g.Transform().SetPosition(math32.Vec3(9, 9, 9))
	require.NoError(t, cm.SetFOV(20))
	require.NoError(t, w.RestoreCamera("home"))
	assert.Equal(t, math32.Vec3(1, 2, 3), g.Transform().Position())
	assert.Equal(t, float32(80), cm.FOV())
	assert.Error(t, w.RestoreCamera("missing"))

	assert.True(t, w.SaveCamera("aerial"))
	assert.Equal(t, []string{"aerial", "home"}, w.SavedCameras())
	w.DeleteSavedCamera("home")
	assert.Equal(t, []string{"aerial"}, w.SavedCameras())
	assert.Error(t, w.RestoreCamera("home"))
}

func TestCameraTypeText(t *testing.T) {
	var ct CameraType
	require.NoError(t, ct.UnmarshalText([]byte("Orthographic")))
	assert.Equal(t, Orthographic, ct)
	b, err := ct.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "orthographic", string(b))
	assert.Error(t, ct.UnmarshalText([]byte("fisheye")))
	_, err = CameraType(9).MarshalText()
	assert.Error(t, err)
}
