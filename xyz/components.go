// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"slices"

	"cogentcore.org/scene/base/slicesx"
)

// Components is the ordered list of components attached to a [GameObject].
type Components struct {
	owner *GameObject
	list  []Component
}

// Add attaches the component to the owner game object, appending it to
// the list. Adding a component that is already attached to the owner has
// no effect. It returns [ErrAlreadyAttached] if the component is attached
// to another game object, [ErrWorldMismatch] for a camera that is the
// main camera of another world, and [ErrNilArgument] for a nil component.
func (cs *Components) Add(c Component) error {
	if c == nil {
		return fmt.Errorf("xyz.Components.Add: %w", ErrNilArgument)
	}
	cb := c.AsComponentBase()
	if cb.This == nil {
		cb.InitComponent(c)
	}
	if cb.gameObject == cs.owner {
		return nil
	}
	if cb.gameObject != nil {
		return fmt.Errorf("xyz.Components.Add: %s component of %v to %v: %w", c.Kind(), cb.gameObject, cs.owner, ErrAlreadyAttached)
	}
	if cm, ok := c.(*Camera); ok && cm.mainOf != nil && cm.mainOf != cs.owner.world {
		return fmt.Errorf("xyz.Components.Add: main camera of another world to %v: %w", cs.owner, ErrWorldMismatch)
	}
	if cs.owner.destroyed {
		return fmt.Errorf("xyz.Components.Add: %v is destroyed", cs.owner)
	}
	cs.list = append(cs.list, c)
	cb.attach(cs.owner)
	return nil
}

// Remove detaches the component from the owner game object.
// It does nothing if the component is not attached to the owner.
func (cs *Components) Remove(c Component) {
	if c == nil {
		return
	}
	var ok bool
	if cs.list, ok = slicesx.RemoveValue(cs.list, c); ok {
		c.AsComponentBase().detach()
	}
}

// RemoveKind detaches all components of the given kind.
func (cs *Components) RemoveKind(kind Kind) {
	for _, c := range cs.OfKind(kind) {
		cs.Remove(c)
	}
}

// Clear detaches all components.
func (cs *Components) Clear() {
	for _, c := range slices.Clone(cs.list) {
		cs.Remove(c)
	}
}

// Len returns the number of attached components.
func (cs *Components) Len() int { return len(cs.list) }

// Get returns the component at the given index.
func (cs *Components) Get(i int) Component { return cs.list[i] }

// Contains returns whether the component is attached to the owner.
func (cs *Components) Contains(c Component) bool {
	return slices.Contains(cs.list, c)
}

// All returns a copy of the list of components.
func (cs *Components) All() []Component { return slices.Clone(cs.list) }

// FirstOfKind returns the first component of the given kind, or nil.
func (cs *Components) FirstOfKind(kind Kind) Component {
	for _, c := range cs.list {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// OfKind returns all components of the given kind, in order.
func (cs *Components) OfKind(kind Kind) []Component {
	var res []Component
	for _, c := range cs.list {
		if c.Kind() == kind {
			res = append(res, c)
		}
	}
	return res
}

// Camera returns the first [Camera] component, or nil.
func (cs *Components) Camera() *Camera {
	if c, ok := cs.FirstOfKind(KindCamera).(*Camera); ok {
		return c
	}
	return nil
}

// Renderable returns the first [Renderable] component, or nil.
func (cs *Components) Renderable() *Renderable {
	if r, ok := cs.FirstOfKind(KindRenderable).(*Renderable); ok {
		return r
	}
	return nil
}

// update calls OnUpdate on each active component. Components added or
// removed by a hook during the pass take effect on the next pass.
func (cs *Components) update() {
	for _, c := range slices.Clone(cs.list) {
		cb := c.AsComponentBase()
		if cb.active && cb.gameObject == cs.owner {
			c.OnUpdate()
		}
	}
}

// First returns the first component of the given type attached to g.
func First[T Component](g *GameObject) (T, bool) {
	for _, c := range g.components.list {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// AllOf returns all components of the given type attached to g, in order.
func AllOf[T Component](g *GameObject) []T {
	var res []T
	for _, c := range g.components.list {
		if t, ok := c.(T); ok {
			res = append(res, t)
		}
	}
	return res
}
