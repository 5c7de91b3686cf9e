// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scene/base/errors"
	"github.com/google/uuid"
)

// GameObject is a node of the scene graph. It owns exactly one
// [Transform], an ordered list of [Component]s, and an ordered list of
// child game objects. A game object without a parent is a root of its
// [World].
type GameObject struct {

	// ID uniquely identifies the object, mostly for logging.
	ID uuid.UUID

	// Name is a user-facing name, not necessarily unique.
	Name string

	world      *World
	parent     *GameObject
	transform  *Transform
	components *Components
	children   *Children
	destroyed  bool
}

// NewGameObject returns a new root game object in the given world.
func NewGameObject(w *World, name string) *GameObject {
	g := &GameObject{
		ID:    uuid.New(),
		Name:  name,
		world: w,
	}
	g.transform = newTransform(g)
	g.components = &Components{owner: g}
	g.children = &Children{owner: g}
	w.addRoot(g)
	slog.Debug("xyz.GameObject: created", "object", name, "id", g.ID)
	return g
}

func (g *GameObject) String() string {
	return fmt.Sprintf("%s (%s)", g.Name, g.ID)
}

// World returns the world this object belongs to.
func (g *GameObject) World() *World { return g.world }

// Transform returns the transform of this object.
func (g *GameObject) Transform() *Transform { return g.transform }

// Components returns the components attached to this object.
func (g *GameObject) Components() *Components { return g.components }

// Children returns the children of this object.
func (g *GameObject) Children() *Children { return g.children }

// Parent returns the parent of this object, or nil for a root.
func (g *GameObject) Parent() *GameObject { return g.parent }

// IsDestroyed returns whether [GameObject.Destroy] has been called.
func (g *GameObject) IsDestroyed() bool { return g.destroyed }

// SetParent moves this object under the given parent, appending it to
// the end of the parent's children. A nil parent makes this object a
// root of its world. It returns [ErrCycle] if the parent is this object
// or one of its descendants, and [ErrWorldMismatch] if the parent
// belongs to another world.
func (g *GameObject) SetParent(parent *GameObject) error {
	if parent == g.parent {
		return nil
	}
	if parent != nil {
		if parent == g || g.children.ContainsDeep(parent) {
			return fmt.Errorf("xyz.GameObject.SetParent: %v under %v: %w", g, parent, ErrCycle)
		}
		if parent.world != g.world {
			return fmt.Errorf("xyz.GameObject.SetParent: %v under %v: %w", g, parent, ErrWorldMismatch)
		}
		if parent.destroyed || g.destroyed {
			return fmt.Errorf("xyz.GameObject.SetParent: %v under %v: destroyed object", g, parent)
		}
	}
	if g.parent != nil {
		g.parent.children.remove(g)
	} else {
		g.world.removeRoot(g)
	}
	g.parent = parent
	if parent != nil {
		parent.children.append(g)
		g.transform.setParent(parent.transform)
	} else {
		g.world.addRoot(g)
		g.transform.setParent(nil)
	}
	return nil
}

// IsAncestorOf returns whether this object is a strict ancestor of other.
func (g *GameObject) IsAncestorOf(other *GameObject) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == g {
			return true
		}
	}
	return false
}

// Update runs the update pass on this object: the OnUpdate hook of each
// active component in order, then the update pass of each child in order.
func (g *GameObject) Update() {
	if g.destroyed {
		return
	}
	g.components.update()
	for _, c := range g.children.All() {
		c.Update()
	}
}

// Destroy detaches all components, destroys all children, and removes
// this object from its parent and its world. If one of the components is
// the main camera of the world, the world is left without a main camera.
// A destroyed object cannot be used again.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	for _, c := range g.children.All() {
		c.Destroy()
	}
	if cm := g.world.MainCamera(); cm != nil && cm.gameObject == g {
		errors.Log(g.world.SetMainCamera(nil))
	}
	g.components.Clear()
	if g.parent != nil {
		g.parent.children.remove(g)
		g.parent = nil
		g.transform.setParent(nil)
	} else {
		g.world.removeRoot(g)
	}
	g.destroyed = true
	slog.Debug("xyz.GameObject: destroyed", "object", g.Name, "id", g.ID)
}
