// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
)

// Drawable is the renderer side resource of a [Renderable], typically
// a mesh. Its object space extent is used for the bounding shapes.
type Drawable interface {

	// Draw submits the draw call for the resource.
	Draw()

	// Update is called once per update pass.
	Update()

	// ObjectSpaceRadius returns the radius of the bounding sphere
	// in object space, centered on the origin.
	ObjectSpaceRadius() float32

	// ObjectSpaceAabbMin returns the minimum corner of the axis aligned
	// bounding box in object space.
	ObjectSpaceAabbMin() math32.Vector3

	// ObjectSpaceAabbMax returns the maximum corner of the axis aligned
	// bounding box in object space.
	ObjectSpaceAabbMax() math32.Vector3
}

// Readier is optionally implemented by a [Drawable] that is loaded
// asynchronously. A renderable whose drawable is not ready is not
// usable: it is not visible and its bounding shape has no result.
type Readier interface {
	IsReady() bool
}

// Material is the surface description used to draw a [Renderable].
type Material interface {

	// IsTransparent returns whether the material needs blending,
	// which places its renderables after the opaque ones.
	IsTransparent() bool
}

// Renderable is a component drawing a [Drawable] with a [Material] at the
// place of its game object. It owns a [BoundingShape] used for culling
// and optionally a [Billboard] overriding its model matrix.
type Renderable struct {
	ComponentBase

	// CastShadows is whether the renderable casts shadows.
	CastShadows bool

	// ReceiveShadows is whether the renderable receives shadows.
	ReceiveShadows bool

	// Reflectable is whether the renderable appears in reflections.
	Reflectable bool

	// MaterialActive is whether the material is used when drawing;
	// otherwise a default material is used.
	MaterialActive bool

	drawable  Drawable
	material  Material
	shape     BoundingShape
	billboard *Billboard

	// visibility is the interval of distances from the main camera
	// within which the renderable is visible.
	visibility [2]float32
}

// NewRenderable returns a new unattached renderable. A nil shape means
// a new [SphereBounds].
func NewRenderable(drawable Drawable, material Material, shape BoundingShape) (*Renderable, error) {
	if drawable == nil || material == nil {
		return nil, fmt.Errorf("xyz.NewRenderable: drawable and material are required: %w", ErrNilArgument)
	}
	if shape == nil {
		shape = NewSphereBounds()
	}
	r := &Renderable{
		CastShadows:    true,
		ReceiveShadows: true,
		Reflectable:    true,
		MaterialActive: true,
		drawable:       drawable,
		material:       material,
		visibility:     [2]float32{0, math32.Infinity},
	}
	r.InitComponent(r)
	if err := r.SetBoundingShape(shape); err != nil {
		return nil, fmt.Errorf("xyz.NewRenderable: %w", err)
	}
	return r, nil
}

func (r *Renderable) Kind() Kind { return KindRenderable }

func (r *Renderable) OnAttach(g *GameObject) {
	errors.Log(g.transform.deps.Register(r))
	g.world.addRenderable(r)
	if r.billboard != nil {
		r.billboard.listen(g.world)
	}
}

func (r *Renderable) OnDetach(g *GameObject) {
	g.transform.deps.Unregister(r)
	g.world.removeRenderable(r)
	if r.billboard != nil {
		r.billboard.unlisten(g.world)
	}
}

func (r *Renderable) OnUpdate() {
	r.drawable.Update()
}

// Draw draws the drawable.
func (r *Renderable) Draw() {
	r.drawable.Draw()
}

// Drawable returns the drawable.
func (r *Renderable) Drawable() Drawable { return r.drawable }

// SetDrawable sets the drawable, which must not be nil.
func (r *Renderable) SetDrawable(d Drawable) error {
	if d == nil {
		return fmt.Errorf("xyz.Renderable.SetDrawable: %w", ErrNilArgument)
	}
	r.drawable = d
	r.this().Invalidate()
	return nil
}

// Material returns the material.
func (r *Renderable) Material() Material { return r.material }

// SetMaterial sets the material, which must not be nil.
func (r *Renderable) SetMaterial(m Material) error {
	if m == nil {
		return fmt.Errorf("xyz.Renderable.SetMaterial: %w", ErrNilArgument)
	}
	r.material = m
	r.this().Invalidate()
	return nil
}

// IsTransparent returns whether the material is active and transparent.
func (r *Renderable) IsTransparent() bool {
	return r.MaterialActive && r.material.IsTransparent()
}

// BoundingShape returns the bounding shape.
func (r *Renderable) BoundingShape() BoundingShape { return r.shape }

// SetBoundingShape makes the renderable own the given shape, releasing
// the previous one. It returns [ErrAlreadyOwned] if the shape is owned
// by a renderable, including this one.
func (r *Renderable) SetBoundingShape(shape BoundingShape) error {
	if shape == nil {
		return fmt.Errorf("xyz.Renderable.SetBoundingShape: %w", ErrNilArgument)
	}
	sb := shape.bounds()
	if sb.renderable != nil {
		return fmt.Errorf("xyz.Renderable.SetBoundingShape: %w", ErrAlreadyOwned)
	}
	if old := r.shape; old != nil {
		r.deps.Unregister(old)
		old.bounds().renderable = nil
		old.Invalidate()
	}
	sb.renderable = r
	r.shape = shape
	errors.Log(r.deps.Register(shape))
	return nil
}

// Billboard returns the billboard, or nil.
func (r *Renderable) Billboard() *Billboard { return r.billboard }

// SetBillboard makes the renderable own the given billboard, releasing
// the previous one. A nil billboard removes it. It returns
// [ErrAlreadyOwned] if the billboard is owned by another renderable.
func (r *Renderable) SetBillboard(b *Billboard) error {
	if b == r.billboard {
		return nil
	}
	if b != nil && b.renderable != nil {
		return fmt.Errorf("xyz.Renderable.SetBillboard: %w", ErrAlreadyOwned)
	}
	w := r.World()
	if old := r.billboard; old != nil {
		r.deps.Unregister(old)
		if w != nil {
			old.unlisten(w)
		}
		old.renderable = nil
		old.Invalidate()
	}
	r.billboard = b
	if b != nil {
		b.renderable = r
		errors.Log(r.deps.Register(b))
		if w != nil {
			b.listen(w)
		}
	}
	r.this().Invalidate()
	return nil
}

// VisibilityInterval returns the interval of distances from the main
// camera within which the renderable is visible.
func (r *Renderable) VisibilityInterval() (near, far float32) {
	return r.visibility[0], r.visibility[1]
}

// SetVisibilityInterval sets the interval of distances from the main
// camera within which the renderable is visible. It returns
// [ErrInvalidInterval] unless 0 <= near <= far.
func (r *Renderable) SetVisibilityInterval(near, far float32) error {
	if !(near >= 0 && near <= far) {
		return fmt.Errorf("xyz.Renderable.SetVisibilityInterval: [%g, %g]: %w", near, far, ErrInvalidInterval)
	}
	r.visibility = [2]float32{near, far}
	return nil
}

// IsUsable returns whether the renderable is attached and its drawable
// is ready, which is required for its derived values.
func (r *Renderable) IsUsable() bool {
	if r.gameObject == nil {
		return false
	}
	if rd, ok := r.drawable.(Readier); ok {
		return rd.IsReady()
	}
	return true
}

// ModelMatrix returns the matrix from object space to world space: the
// billboard matrix if there is a billboard, or else the world matrix of
// the transform. It returns false if the renderable is not attached.
func (r *Renderable) ModelMatrix() (math32.Matrix4, bool) {
	if r.gameObject == nil {
		return math32.Matrix4{}, false
	}
	if r.billboard != nil {
		if m, ok := r.billboard.ModelMatrix(); ok {
			return m, true
		}
	}
	return r.gameObject.transform.WorldMatrix(), true
}

// InverseModelMatrix returns the inverse of [Renderable.ModelMatrix].
func (r *Renderable) InverseModelMatrix() (math32.Matrix4, bool) {
	if r.gameObject == nil {
		return math32.Matrix4{}, false
	}
	if r.billboard != nil {
		if m, ok := r.billboard.InverseModelMatrix(); ok {
			return m, true
		}
	}
	return r.gameObject.transform.WorldInverseMatrix(), true
}

// Forward returns the world space direction the renderable faces (-Z).
func (r *Renderable) Forward() (math32.Vector3, bool) {
	return r.direction(math32.Vec3(0, 0, -1))
}

// Right returns the world space direction to the right of the renderable (+X).
func (r *Renderable) Right() (math32.Vector3, bool) {
	return r.direction(math32.Vector3X)
}

// Up returns the world space direction above the renderable (+Y).
func (r *Renderable) Up() (math32.Vector3, bool) {
	return r.direction(math32.Vector3Y)
}

func (r *Renderable) direction(local math32.Vector3) (math32.Vector3, bool) {
	if r.gameObject == nil {
		return math32.Vector3{}, false
	}
	if r.billboard != nil {
		if rot, ok := r.billboard.Rotation(); ok {
			return local.MulQuat(rot).Normal(), true
		}
	}
	return local.MulQuat(r.gameObject.transform.WorldRotation()).Normal(), true
}

// IsWithinVisibilityInterval returns whether the distance of the
// renderable from the main camera is within the visibility interval.
// It is true if there is no attached main camera.
func (r *Renderable) IsWithinVisibilityInterval() bool {
	w := r.World()
	if w == nil {
		return true
	}
	cm := w.MainCamera()
	if cm == nil || cm.gameObject == nil || !cm.active {
		return true
	}
	d := cm.gameObject.transform.WorldPosition().DistanceTo(r.gameObject.transform.WorldPosition())
	return d >= r.visibility[0] && d <= r.visibility[1]
}

// IsVisible returns whether the renderable should be drawn: it is usable
// and active, within its visibility interval, and its bounding shape is
// inside the frustum of the main camera.
func (r *Renderable) IsVisible() bool {
	if !r.IsUsable() || !r.active {
		return false
	}
	return r.IsWithinVisibilityInterval() && r.shape.IsInsideMainCameraFrustum()
}
