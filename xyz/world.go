// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/scene/base/slicesx"
	"golang.org/x/exp/maps"
)

// World is the context of a scene: it holds the root game objects, the
// shared [Parameters] (including the main camera), the registry of
// attached renderables, the [Viewport], and the [Settings]. Every game
// object belongs to exactly one world for its whole life.
type World struct {

	// Settings are the settings the world was created with.
	Settings *Settings

	viewport    Viewport
	params      *Parameters
	roots       []*GameObject
	renderables []*Renderable

	// savedViews are the camera views saved by name with [World.SaveCamera].
	savedViews map[string]CameraView
}

// NewWorld returns a new empty world. A nil settings means
// [DefaultSettings], and a nil viewport means a [FixedViewport] with
// the viewport size of the settings.
func NewWorld(settings *Settings, vp Viewport) *World {
	if settings == nil {
		settings = DefaultSettings()
	}
	if vp == nil {
		vp = &FixedViewport{Width: settings.Viewport.Width, Height: settings.Viewport.Height}
	}
	w := &World{
		Settings: settings,
		viewport: vp,
		params:   NewParameters(),
	}
	return w
}

// Viewport returns the viewport of the world.
func (w *World) Viewport() Viewport { return w.viewport }

// SetViewport sets the viewport of the world, updating the main camera.
func (w *World) SetViewport(vp Viewport) error {
	if vp == nil {
		return fmt.Errorf("xyz.World.SetViewport: %w", ErrNilArgument)
	}
	w.viewport = vp
	w.ViewportResized()
	return nil
}

// Resize sets the size of a [FixedViewport] and updates the main camera.
// For other viewports it only updates the main camera.
func (w *World) Resize(width, height int) {
	if fv, ok := w.viewport.(*FixedViewport); ok {
		fv.SetSize(width, height)
	}
	w.ViewportResized()
}

// ViewportResized must be called when the size of the viewport changed,
// so that the main camera updates its aspect ratio.
func (w *World) ViewportResized() {
	if cm := w.MainCamera(); cm != nil {
		cm.this().Invalidate()
	}
}

// Parameters returns the shared parameters of the world.
func (w *World) Parameters() *Parameters { return w.params }

// NewGameObject returns a new root game object in this world.
func (w *World) NewGameObject(name string) *GameObject {
	return NewGameObject(w, name)
}

// NewCamera returns a new unattached camera with the lens of the settings,
// or the default lens if that is invalid.
func (w *World) NewCamera() *Camera {
	cm := NewCamera()
	if err := cm.SetLens(w.Settings.Lens); err != nil {
		slog.Warn("xyz.World: using default camera lens", "err", err)
	}
	return cm
}

// Roots returns a copy of the list of root game objects.
func (w *World) Roots() []*GameObject { return slices.Clone(w.roots) }

// AddRoot makes the game object a root of this world, detaching it from
// its parent. The object must belong to this world.
func (w *World) AddRoot(g *GameObject) error {
	if g == nil {
		return fmt.Errorf("xyz.World.AddRoot: %w", ErrNilArgument)
	}
	if g.world != w {
		return fmt.Errorf("xyz.World.AddRoot: %v: %w", g, ErrWorldMismatch)
	}
	return g.SetParent(nil)
}

// RemoveRoot destroys the given root game object and its subtree.
// It does nothing if g is not a root of this world.
func (w *World) RemoveRoot(g *GameObject) {
	if g == nil || g.world != w || g.parent != nil {
		return
	}
	g.Destroy()
}

func (w *World) addRoot(g *GameObject) {
	w.roots = append(w.roots, g)
}

func (w *World) removeRoot(g *GameObject) {
	w.roots, _ = slicesx.RemoveValue(w.roots, g)
}

// MainCamera returns the main camera, or nil.
func (w *World) MainCamera() *Camera {
	v, _ := w.params.Get(MainCameraKey)
	cm, _ := v.(*Camera)
	return cm
}

// SetMainCamera sets the main camera; nil unsets it. The camera must not
// be attached to a game object of another world, nor be the main camera
// of another world.
func (w *World) SetMainCamera(cm *Camera) error {
	old := w.MainCamera()
	if cm == old {
		return nil
	}
	if cm == nil {
		old.mainOf = nil
		w.params.Set(MainCameraKey, nil)
		return nil
	}
	if (cm.gameObject != nil && cm.gameObject.world != w) || (cm.mainOf != nil && cm.mainOf != w) {
		return fmt.Errorf("xyz.World.SetMainCamera: %w", ErrWorldMismatch)
	}
	if old != nil {
		old.mainOf = nil
	}
	cm.mainOf = w
	w.params.Set(MainCameraKey, cm)
	return nil
}

// Update runs the update pass over all root game objects in order;
// see [GameObject.Update].
func (w *World) Update() {
	for _, g := range w.Roots() {
		g.Update()
	}
}

// Renderables returns a copy of the list of attached renderables,
// in attachment order.
func (w *World) Renderables() []*Renderable { return slices.Clone(w.renderables) }

func (w *World) addRenderable(r *Renderable) {
	if !slices.Contains(w.renderables, r) {
		w.renderables = append(w.renderables, r)
	}
}

func (w *World) removeRenderable(r *Renderable) {
	w.renderables, _ = slicesx.RemoveValue(w.renderables, r)
}

// VisibleRenderables runs the culling pass, returning the renderables
// that are visible to the main camera: the opaque ones first, then the
// transparent ones, each in attachment order.
func (w *World) VisibleRenderables() []*Renderable {
	var opaque, transparent []*Renderable
	for _, r := range w.renderables {
		if !r.IsVisible() {
			continue
		}
		if r.IsTransparent() {
			transparent = append(transparent, r)
		} else {
			opaque = append(opaque, r)
		}
	}
	return append(opaque, transparent...)
}

// SaveCamera saves the view of the main camera under the given name.
// It returns false if there is no main camera.
func (w *World) SaveCamera(name string) bool {
	cm := w.MainCamera()
	if cm == nil {
		return false
	}
	if w.savedViews == nil {
		w.savedViews = make(map[string]CameraView)
	}
	w.savedViews[name] = cm.View()
	return true
}

// SavedCameras returns the sorted names of the saved camera views.
func (w *World) SavedCameras() []string {
	names := maps.Keys(w.savedViews)
	slices.Sort(names)
	return names
}

// DeleteSavedCamera deletes the camera view saved under the given name.
func (w *World) DeleteSavedCamera(name string) {
	delete(w.savedViews, name)
}

// RestoreCamera restores the view of the main camera saved under the given name.
func (w *World) RestoreCamera(name string) error {
	v, ok := w.savedViews[name]
	if !ok {
		return fmt.Errorf("xyz.World.RestoreCamera: saved camera %q not found", name)
	}
	cm := w.MainCamera()
	if cm == nil {
		return fmt.Errorf("xyz.World.RestoreCamera: no main camera")
	}
	return cm.SetView(v)
}
