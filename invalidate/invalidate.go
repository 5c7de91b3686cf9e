// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invalidate provides the dependency-tracking primitive used by
// every cached value in a scene: each invalidatable entity owns a
// [Registry] of dependents, and invalidating the entity fans the
// invalidation out to all of them.
//
// Registries hold non-owning references only: a dependent that becomes
// unreachable is dropped from every registry it was in the next time
// that registry is invalidated. Dependents must still unregister
// themselves when they detach, so that a detached (but still live)
// entity is not notified.
package invalidate

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"weak"

	"github.com/kamstrup/intmap"
)

// Invalidator is implemented by anything that holds cached derived state
// which can be marked stale.
type Invalidator interface {
	// Invalidate marks the cached state as stale. It must be idempotent
	// and independent of the order in which sibling dependents are
	// invalidated.
	Invalidate()
}

// Dependent is an [Invalidator] that has a [Handle] and can thus be
// registered in a [Registry].
type Dependent interface {
	Invalidator

	// InvalidationHandle returns the handle identifying this dependent.
	InvalidationHandle() *Handle
}

var (
	// ErrSelfDependency is returned when an entity is registered
	// as a dependent of itself.
	ErrSelfDependency = errors.New("invalidate: entity cannot depend on itself")

	// ErrNilDependent is returned when registering a nil dependent.
	ErrNilDependent = errors.New("invalidate: nil dependent")
)

var lastHandleID atomic.Uint64

// Handle is the identity of an invalidatable entity within registries.
// It is owned by its entity; registries only keep weak pointers to it.
type Handle struct {
	id     uint64
	target Invalidator
}

// NewHandle returns a new handle for the given target, with a new unique id.
func NewHandle(target Invalidator) *Handle {
	return &Handle{id: lastHandleID.Add(1), target: target}
}

// ID returns the unique id of the handle.
func (h *Handle) ID() uint64 {
	return h.id
}

// Target returns the invalidator the handle identifies.
func (h *Handle) Target() Invalidator {
	return h.target
}

// Registry is the per-entity set of dependents that are invalidated
// when the entity is invalidated.
type Registry struct {
	owner *Handle
	deps  *intmap.Map[uint64, weak.Pointer[Handle]]
}

// NewRegistry returns a new empty registry for the entity with
// the given handle.
func NewRegistry(owner *Handle) *Registry {
	return &Registry{
		owner: owner,
		deps:  intmap.New[uint64, weak.Pointer[Handle]](4),
	}
}

// Register adds the dependent to the registry. Adding a dependent that is
// already registered has no effect. A newly added dependent is invalidated
// immediately, so that any value it derived before registering is not
// kept stale past the next change.
func (r *Registry) Register(dep Dependent) error {
	if dep == nil {
		return ErrNilDependent
	}
	return r.RegisterHandle(dep.InvalidationHandle())
}

// RegisterHandle is [Registry.Register] for a bare handle.
func (r *Registry) RegisterHandle(h *Handle) error {
	if h == nil {
		return ErrNilDependent
	}
	if h == r.owner {
		return fmt.Errorf("%w (handle %d)", ErrSelfDependency, h.id)
	}
	if wp, ok := r.deps.Get(h.id); ok && wp.Value() != nil {
		return nil
	}
	r.deps.Put(h.id, weak.Make(h))
	h.target.Invalidate()
	return nil
}

// Unregister removes the dependent from the registry.
// It does nothing if the dependent is not registered.
func (r *Registry) Unregister(dep Dependent) {
	if dep == nil {
		return
	}
	r.UnregisterHandle(dep.InvalidationHandle())
}

// UnregisterHandle is [Registry.Unregister] for a bare handle.
func (r *Registry) UnregisterHandle(h *Handle) {
	if h != nil {
		r.deps.Del(h.id)
	}
}

// Contains returns whether the dependent is registered.
func (r *Registry) Contains(dep Dependent) bool {
	if dep == nil {
		return false
	}
	return r.ContainsHandle(dep.InvalidationHandle())
}

// ContainsHandle is [Registry.Contains] for a bare handle.
func (r *Registry) ContainsHandle(h *Handle) bool {
	if h == nil {
		return false
	}
	wp, ok := r.deps.Get(h.id)
	return ok && wp.Value() != nil
}

// Handles returns the live registered handles, in ascending id
// (registration age) order.
func (r *Registry) Handles() []*Handle {
	live, _ := r.snapshot()
	slices.SortFunc(live, func(a, b *Handle) int {
		return cmp.Compare(a.id, b.id)
	})
	return live
}

// Len returns the number of registered dependents, including any
// that have become unreachable but have not yet been pruned.
func (r *Registry) Len() int {
	return r.deps.Len()
}

// Clear removes all dependents.
func (r *Registry) Clear() {
	r.deps.Clear()
}

// Invalidate calls Invalidate on every live registered dependent.
// Dependents that have been garbage collected are pruned. The set of
// dependents is captured before any of them is invoked, so registrations
// made during the fan-out take effect on the next call.
func (r *Registry) Invalidate() {
	if r.deps.Len() == 0 {
		return
	}
	live, dead := r.snapshot()
	for _, id := range dead {
		r.deps.Del(id)
	}
	for _, h := range live {
		h.target.Invalidate()
	}
}

// snapshot returns the live handles and the ids of collected ones.
func (r *Registry) snapshot() (live []*Handle, dead []uint64) {
	r.deps.ForEach(func(id uint64, wp weak.Pointer[Handle]) bool {
		if h := wp.Value(); h != nil {
			live = append(live, h)
		} else {
			dead = append(dead, id)
		}
		return true
	})
	return
}
