// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/scene/invalidate"
)

// Kind is the closed set of component variants, used to query
// [Components] by variant without inspecting dynamic types.
type Kind int32

const (
	// KindCustom is any user defined component.
	KindCustom Kind = iota

	// KindCamera is a [Camera].
	KindCamera

	// KindRenderable is a [Renderable].
	KindRenderable

	// KindN is the number of component kinds.
	KindN
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "Custom"
	case KindCamera:
		return "Camera"
	case KindRenderable:
		return "Renderable"
	}
	return "Kind(invalid)"
}

// Component is a unit of behavior or state that is attached to at most
// one [GameObject] at a time. All components embed [ComponentBase],
// which provides the attachment state machine; the variant specific
// behavior is supplied through the OnAttach, OnDetach and OnUpdate hooks.
type Component interface {
	invalidate.Dependent

	// AsComponentBase returns the embedded [ComponentBase].
	AsComponentBase() *ComponentBase

	// Kind returns the variant of this component.
	Kind() Kind

	// OnAttach is called after the component has been attached to g.
	// Components register their listeners here.
	OnAttach(g *GameObject)

	// OnDetach is called after the component has been detached from g.
	// It must undo every registration made in OnAttach.
	OnDetach(g *GameObject)

	// OnUpdate is called once per update pass while the component is
	// attached and active.
	OnUpdate()
}

// ComponentBase is the embedded base of every [Component].
// The zero value is unattached and inactive until initialized with
// [ComponentBase.InitComponent], which [Components.Add] does
// automatically for components that were not initialized.
type ComponentBase struct {

	// This is the component embedding this base, used for dispatching
	// the lifecycle hooks and invalidation.
	This Component

	gameObject *GameObject
	active     bool
	valid      bool
	handle     *invalidate.Handle
	deps       *invalidate.Registry
}

// InitComponent initializes the base for the given outer component.
// It must be called by the constructor of every component type.
func (cb *ComponentBase) InitComponent(this Component) {
	cb.This = this
	cb.active = true
	cb.handle = invalidate.NewHandle(this)
	cb.deps = invalidate.NewRegistry(cb.handle)
}

func (cb *ComponentBase) AsComponentBase() *ComponentBase { return cb }

// Kind returns [KindCustom]; built-in variants override it.
func (cb *ComponentBase) Kind() Kind { return KindCustom }

func (cb *ComponentBase) OnAttach(g *GameObject) {}

func (cb *ComponentBase) OnDetach(g *GameObject) {}

func (cb *ComponentBase) OnUpdate() {}

// InvalidationHandle returns the handle of this component.
func (cb *ComponentBase) InvalidationHandle() *invalidate.Handle { return cb.handle }

// Invalidations returns the registry of dependents that are invalidated
// together with this component.
func (cb *ComponentBase) Invalidations() *invalidate.Registry { return cb.deps }

// Invalidate marks the cached state of the component stale and
// invalidates its dependents.
func (cb *ComponentBase) Invalidate() {
	cb.valid = false
	if cb.deps != nil {
		cb.deps.Invalidate()
	}
}

// IsValid returns whether the cached state of the component is current.
func (cb *ComponentBase) IsValid() bool { return cb.valid }

// SetValid sets the validity flag; it is used by components
// after recomputing their cached state.
func (cb *ComponentBase) SetValid(valid bool) { cb.valid = valid }

// GameObject returns the game object this component is attached to,
// or nil if it is unattached.
func (cb *ComponentBase) GameObject() *GameObject { return cb.gameObject }

// IsAttached returns whether the component is attached to a game object.
func (cb *ComponentBase) IsAttached() bool { return cb.gameObject != nil }

// IsActive returns whether the component takes part in the update pass.
func (cb *ComponentBase) IsActive() bool { return cb.active }

// SetActive sets whether the component takes part in the update pass.
// An inactive component stays attached and keeps its cached state.
func (cb *ComponentBase) SetActive(active bool) {
	cb.active = active
	cb.this().Invalidate()
}

// this returns the outer component, or the base itself
// if it has not been initialized.
func (cb *ComponentBase) this() Component {
	if cb.This != nil {
		return cb.This
	}
	return cb
}

// World returns the world of the owner game object, or nil if unattached.
func (cb *ComponentBase) World() *World {
	if cb.gameObject == nil {
		return nil
	}
	return cb.gameObject.world
}

// attach runs the Unattached -> Attached transition.
func (cb *ComponentBase) attach(g *GameObject) {
	cb.gameObject = g
	cb.This.Invalidate()
	cb.This.OnAttach(g)
	slog.Debug("xyz.Component: attached", "kind", cb.This.Kind(), "object", g.Name)
}

// detach runs the Attached -> Unattached transition.
func (cb *ComponentBase) detach() {
	g := cb.gameObject
	cb.gameObject = nil
	cb.This.Invalidate()
	cb.This.OnDetach(g)
	slog.Debug("xyz.Component: detached", "kind", cb.This.Kind(), "object", g.Name)
}

// FuncComponent is a custom component that calls a function on every
// update pass.
type FuncComponent struct {
	ComponentBase

	// Func is called by OnUpdate with the owner game object.
	Func func(g *GameObject)
}

// NewFuncComponent returns a new [FuncComponent] calling fn on update.
func NewFuncComponent(fn func(g *GameObject)) *FuncComponent {
	fc := &FuncComponent{Func: fn}
	fc.InitComponent(fc)
	return fc
}

func (fc *FuncComponent) OnUpdate() {
	if fc.Func != nil {
		fc.Func(fc.gameObject)
	}
}
