// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/scene/base/slicesx"
)

// Children is the ordered list of child game objects of a [GameObject].
// Membership changes go through [GameObject.SetParent], so a game object
// is a child of at most one parent at any time.
type Children struct {
	owner *GameObject
	list  []*GameObject
}

// Add makes child a child of the owner; see [GameObject.SetParent].
func (ch *Children) Add(child *GameObject) error {
	if child == nil {
		return ErrNilArgument
	}
	return child.SetParent(ch.owner)
}

// Remove makes child a root of its world if it is a child of the owner.
func (ch *Children) Remove(child *GameObject) error {
	if !ch.Contains(child) {
		return nil
	}
	return child.SetParent(nil)
}

// Contains returns whether child is a direct child of the owner.
func (ch *Children) Contains(child *GameObject) bool {
	return child != nil && child.parent == ch.owner
}

// ContainsDeep returns whether g is a descendant of the owner.
func (ch *Children) ContainsDeep(g *GameObject) bool {
	return g != nil && ch.owner.IsAncestorOf(g)
}

// Len returns the number of children.
func (ch *Children) Len() int { return len(ch.list) }

// Get returns the child at the given index.
func (ch *Children) Get(i int) *GameObject { return ch.list[i] }

// All returns a copy of the list of children.
func (ch *Children) All() []*GameObject { return slices.Clone(ch.list) }

// IndexOf returns the index of the child, or -1 if it is not a child,
// searching outward from the optional start index.
func (ch *Children) IndexOf(child *GameObject, startIndex ...int) int {
	return slicesx.Search(ch.list, func(e *GameObject) bool { return e == child }, startIndex...)
}

// Move moves the child at index from to index to.
func (ch *Children) Move(from, to int) {
	ch.list = slicesx.Move(ch.list, from, to)
}

func (ch *Children) append(child *GameObject) {
	ch.list = append(ch.list, child)
}

func (ch *Children) remove(child *GameObject) {
	ch.list, _ = slicesx.RemoveValue(ch.list, child)
}
