// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
	"github.com/jinzhu/copier"
)

// CameraType is the projection type of a [Camera].
type CameraType int32

const (
	// Perspective projects through a symmetric view pyramid.
	Perspective CameraType = iota

	// Orthographic projects through a box, without perspective.
	Orthographic
)

func (ct CameraType) String() string {
	switch ct {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("CameraType(%d)", int32(ct))
}

// MarshalText implements [encoding.TextMarshaler].
func (ct CameraType) MarshalText() ([]byte, error) {
	if ct != Perspective && ct != Orthographic {
		return nil, fmt.Errorf("xyz.CameraType: invalid value %d", int32(ct))
	}
	return []byte(ct.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ct *CameraType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "perspective":
		*ct = Perspective
	case "orthographic", "ortho":
		*ct = Orthographic
	default:
		return fmt.Errorf("xyz.CameraType: unknown camera type %q", text)
	}
	return nil
}

// Lens contains the projection parameters of a [Camera].
type Lens struct {

	// Type is the projection type.
	Type CameraType `toml:"type" yaml:"type"`

	// FOV is the vertical field of view in degrees, in (0, 180),
	// used by the perspective projection.
	FOV float32 `toml:"fov" yaml:"fov" default:"55"`

	// Near is the distance of the near clipping plane, in (0, Far).
	Near float32 `toml:"near" yaml:"near" default:"1"`

	// Far is the distance of the far clipping plane.
	Far float32 `toml:"far" yaml:"far" default:"50"`

	// HorizontalScale is the half width of the orthographic view box.
	HorizontalScale float32 `toml:"horizontal_scale" yaml:"horizontal_scale" default:"10"`

	// VerticalScale is the half height of the orthographic view box.
	VerticalScale float32 `toml:"vertical_scale" yaml:"vertical_scale" default:"10"`

	// AspectRatio is width / height, used by the perspective projection.
	AspectRatio float32 `toml:"aspect_ratio" yaml:"aspect_ratio" default:"1"`
}

// Defaults sets the default lens parameters.
func (l *Lens) Defaults() {
	l.Type = Perspective
	l.FOV = 55
	l.Near = 1
	l.Far = 50
	l.HorizontalScale = 10
	l.VerticalScale = 10
	l.AspectRatio = 1
}

// Validate returns an error wrapping [ErrInvalidLens] if any
// parameter is out of range.
func (l *Lens) Validate() error {
	switch {
	case l.Type != Perspective && l.Type != Orthographic:
		return fmt.Errorf("camera type %d: %w", int32(l.Type), ErrInvalidLens)
	case !(l.FOV > 0 && l.FOV < 180):
		return fmt.Errorf("field of view %g not in (0, 180): %w", l.FOV, ErrInvalidLens)
	case !(l.Near > 0):
		return fmt.Errorf("near plane distance %g not positive: %w", l.Near, ErrInvalidLens)
	case !(l.Near < l.Far):
		return fmt.Errorf("near plane distance %g not less than far plane distance %g: %w", l.Near, l.Far, ErrInvalidLens)
	case !(l.HorizontalScale > 0):
		return fmt.Errorf("horizontal scale %g not positive: %w", l.HorizontalScale, ErrInvalidLens)
	case !(l.VerticalScale > 0):
		return fmt.Errorf("vertical scale %g not positive: %w", l.VerticalScale, ErrInvalidLens)
	case !(l.AspectRatio > 0):
		return fmt.Errorf("aspect ratio %g not positive: %w", l.AspectRatio, ErrInvalidLens)
	}
	return nil
}

// Camera is a component deriving a view matrix from the [Transform] of
// its game object and a projection matrix from its [Lens]. Both matrices
// are cached, and recomputed when read after the transform or the lens
// changed. The camera owns a [Frustum] derived from those matrices.
//
// The main camera of a [World] takes its aspect ratio from the viewport
// of the world, and sets its vertical scale to the horizontal scale
// divided by the aspect ratio.
type Camera struct {
	ComponentBase

	lens       Lens
	view       math32.Matrix4
	projection math32.Matrix4
	frustum    *Frustum

	// mainOf is the world this is the main camera of.
	mainOf *World
}

// NewCamera returns a new unattached camera with the default [Lens].
func NewCamera() *Camera {
	cm := &Camera{}
	cm.InitComponent(cm)
	cm.lens.Defaults()
	errors.Must(cm.SetFrustum(NewFrustum()))
	return cm
}

// NewCameraWithLens returns a new unattached camera with the given lens.
func NewCameraWithLens(lens Lens) (*Camera, error) {
	if err := lens.Validate(); err != nil {
		return nil, fmt.Errorf("xyz.NewCameraWithLens: %w", err)
	}
	cm := NewCamera()
	cm.lens = lens
	return cm, nil
}

func (cm *Camera) Kind() Kind { return KindCamera }

func (cm *Camera) OnAttach(g *GameObject) {
	errors.Log(g.transform.deps.Register(cm))
}

func (cm *Camera) OnDetach(g *GameObject) {
	g.transform.deps.Unregister(cm)
}

// setLens validates and installs the given lens, invalidating the camera.
// The current lens is left unchanged on error.
func (cm *Camera) setLens(lens Lens, op string) error {
	if err := lens.Validate(); err != nil {
		return fmt.Errorf("xyz.Camera.%s: %w", op, err)
	}
	cm.lens = lens
	cm.this().Invalidate()
	return nil
}

// Lens returns a copy of the lens parameters.
func (cm *Camera) Lens() Lens { return cm.lens }

// SetLens sets all of the lens parameters at once.
func (cm *Camera) SetLens(lens Lens) error { return cm.setLens(lens, "SetLens") }

// CopyLensFrom copies the lens parameters of the other camera.
func (cm *Camera) CopyLensFrom(other *Camera) error {
	var lens Lens
	if err := copier.CopyWithOption(&lens, &other.lens, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		return fmt.Errorf("xyz.Camera.CopyLensFrom: %w", err)
	}
	return cm.setLens(lens, "CopyLensFrom")
}

// Type returns the projection type.
func (cm *Camera) Type() CameraType { return cm.lens.Type }

// SetType sets the projection type.
func (cm *Camera) SetType(ct CameraType) error {
	lens := cm.lens
	lens.Type = ct
	return cm.setLens(lens, "SetType")
}

// FOV returns the vertical field of view in degrees.
func (cm *Camera) FOV() float32 { return cm.lens.FOV }

// SetFOV sets the vertical field of view in degrees, which must be in (0, 180).
func (cm *Camera) SetFOV(fov float32) error {
	lens := cm.lens
	lens.FOV = fov
	return cm.setLens(lens, "SetFOV")
}

// Near returns the near plane distance.
func (cm *Camera) Near() float32 { return cm.lens.Near }

// SetNear sets the near plane distance, which must be in (0, far).
func (cm *Camera) SetNear(near float32) error {
	lens := cm.lens
	lens.Near = near
	return cm.setLens(lens, "SetNear")
}

// Far returns the far plane distance.
func (cm *Camera) Far() float32 { return cm.lens.Far }

// SetFar sets the far plane distance, which must be greater than near.
func (cm *Camera) SetFar(far float32) error {
	lens := cm.lens
	lens.Far = far
	return cm.setLens(lens, "SetFar")
}

// AspectRatio returns the aspect ratio (width / height).
func (cm *Camera) AspectRatio() float32 { return cm.lens.AspectRatio }

// SetAspectRatio sets the aspect ratio, which must be positive.
// The main camera overrides it from the viewport on its next refresh.
func (cm *Camera) SetAspectRatio(aspect float32) error {
	lens := cm.lens
	lens.AspectRatio = aspect
	return cm.setLens(lens, "SetAspectRatio")
}

// HorizontalScale returns the half width of the orthographic view box.
func (cm *Camera) HorizontalScale() float32 { return cm.lens.HorizontalScale }

// SetHorizontalScale sets the half width of the orthographic view box.
func (cm *Camera) SetHorizontalScale(scale float32) error {
	lens := cm.lens
	lens.HorizontalScale = scale
	return cm.setLens(lens, "SetHorizontalScale")
}

// VerticalScale returns the half height of the orthographic view box.
func (cm *Camera) VerticalScale() float32 { return cm.lens.VerticalScale }

// SetVerticalScale sets the half height of the orthographic view box.
// The main camera overrides it from the viewport on its next refresh.
func (cm *Camera) SetVerticalScale(scale float32) error {
	lens := cm.lens
	lens.VerticalScale = scale
	return cm.setLens(lens, "SetVerticalScale")
}

// IsMainCamera returns whether this is the main camera of a world.
func (cm *Camera) IsMainCamera() bool { return cm.mainOf != nil }

// Frustum returns the frustum owned by this camera.
func (cm *Camera) Frustum() *Frustum { return cm.frustum }

// SetFrustum makes the camera own the given frustum, releasing the
// previous one. It returns [ErrAlreadyOwned] if the frustum belongs to
// another camera.
func (cm *Camera) SetFrustum(f *Frustum) error {
	if f == nil {
		return fmt.Errorf("xyz.Camera.SetFrustum: %w", ErrNilArgument)
	}
	if f == cm.frustum {
		return nil
	}
	if f.camera != nil {
		return fmt.Errorf("xyz.Camera.SetFrustum: %w", ErrAlreadyOwned)
	}
	if old := cm.frustum; old != nil {
		cm.deps.Unregister(old)
		old.camera = nil
		old.Invalidate()
	}
	f.camera = cm
	cm.frustum = f
	return cm.deps.Register(f)
}

// refresh recomputes the stale matrices. The camera only becomes valid
// once the view matrix could be computed, which requires a game object.
func (cm *Camera) refresh() {
	if cm.valid {
		return
	}
	if cm.mainOf != nil {
		if aspect := cm.mainOf.viewport.AspectRatio(); aspect > 0 {
			cm.lens.AspectRatio = aspect
			cm.lens.VerticalScale = cm.lens.HorizontalScale / aspect
		}
	}
	cm.refreshProjection()
	if cm.gameObject == nil {
		return
	}
	tr := cm.gameObject.transform
	pose := math32.NewTransform(tr.WorldPosition(), tr.WorldRotation(), math32.Vec3(1, 1, 1))
	errors.Log(cm.view.SetInverse(pose))
	cm.valid = true
	slog.Debug("xyz.Camera: matrices refreshed", "object", cm.gameObject.Name, "main", cm.mainOf != nil)
}

func (cm *Camera) refreshProjection() {
	l := &cm.lens
	if l.Type == Orthographic {
		cm.projection.SetOrthographic(-l.HorizontalScale, l.HorizontalScale, -l.VerticalScale, l.VerticalScale, l.Near, l.Far)
	} else {
		cm.projection.SetPerspective(l.FOV, l.AspectRatio, l.Near, l.Far)
	}
}

// ViewMatrix returns the view matrix, the inverse of the rigid world pose
// of the game object (its scale is ignored). It returns false if the
// camera is not attached.
func (cm *Camera) ViewMatrix() (math32.Matrix4, bool) {
	if cm.gameObject == nil {
		return math32.Matrix4{}, false
	}
	cm.refresh()
	return cm.view, true
}

// ProjectionMatrix returns the projection matrix of the lens.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	cm.refresh()
	return cm.projection
}

// ViewProjectionMatrix returns projection * view, or false
// if the camera is not attached.
func (cm *Camera) ViewProjectionMatrix() (math32.Matrix4, bool) {
	view, ok := cm.ViewMatrix()
	if !ok {
		return view, false
	}
	var vp math32.Matrix4
	vp.MulMatrices(&cm.projection, &view)
	return vp, true
}

// CameraView is a snapshot of a camera lens together with the
// local pose of its game object, used to save and restore views.
type CameraView struct {
	Lens     Lens
	Position math32.Vector3
	Rotation math32.Quat
}

// View returns a snapshot of the current view. The pose is zero
// if the camera is not attached.
func (cm *Camera) View() CameraView {
	v := CameraView{Lens: cm.lens, Rotation: math32.QuatIdentity()}
	if cm.gameObject != nil {
		v.Position = cm.gameObject.transform.position
		v.Rotation = cm.gameObject.transform.rotation
	}
	return v
}

// SetView restores a snapshot taken by [Camera.View]. The pose is only
// applied if the camera is attached.
func (cm *Camera) SetView(v CameraView) error {
	if err := cm.setLens(v.Lens, "SetView"); err != nil {
		return err
	}
	if cm.gameObject != nil {
		tr := cm.gameObject.transform
		tr.position = v.Position
		tr.SetRotation(v.Rotation)
	}
	return nil
}
