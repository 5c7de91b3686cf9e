// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/ordmap"
	"cogentcore.org/scene/invalidate"
)

// ParameterKey identifies a value in [Parameters].
type ParameterKey string

// MainCameraKey is the key of the main [Camera] of a [World].
const MainCameraKey ParameterKey = "main-camera"

// invalidatingValue is a parameter value with its own dependents,
// such as a [Camera]. Listeners of the key are registered with the
// current value, so they are invalidated whenever it is.
type invalidatingValue interface {
	invalidate.Invalidator
	Invalidations() *invalidate.Registry
}

// Parameters is the ordered set of keyed values shared by a [World],
// with listeners per key. A listener is invalidated when the value of
// its key is replaced, and, for values with their own dependents such
// as cameras, whenever the current value is invalidated.
type Parameters struct {
	values    *ordmap.Map[ParameterKey, any]
	listeners *ordmap.Map[ParameterKey, *invalidate.Registry]
}

// NewParameters returns a new empty set of parameters.
func NewParameters() *Parameters {
	return &Parameters{
		values:    ordmap.New[ParameterKey, any](),
		listeners: ordmap.New[ParameterKey, *invalidate.Registry](),
	}
}

// Get returns the value of the key, and whether it is set.
func (ps *Parameters) Get(key ParameterKey) (any, bool) {
	return ps.values.ValueByKeyTry(key)
}

// Keys returns the keys that have a value, in the order they were first set.
func (ps *Parameters) Keys() []ParameterKey {
	return ps.values.Keys()
}

// Set sets the value of the key; a nil value unsets it. The listeners of
// the key move from the previous value to the new one, and are invalidated
// along with both values.
func (ps *Parameters) Set(key ParameterKey, value any) {
	old, _ := ps.values.ValueByKeyTry(key)
	if value == nil {
		ps.values.DeleteKey(key)
	} else {
		ps.values.Add(key, value)
	}
	lr := ps.listeners.ValueByKey(key)
	var handles []*invalidate.Handle
	if lr != nil {
		handles = lr.Handles()
	}
	if iv, ok := old.(invalidatingValue); ok {
		iv.Invalidate()
		for _, h := range handles {
			iv.Invalidations().UnregisterHandle(h)
		}
	}
	if iv, ok := value.(invalidatingValue); ok {
		iv.Invalidate()
		for _, h := range handles {
			errors.Log(iv.Invalidations().RegisterHandle(h))
		}
	}
	if lr != nil {
		lr.Invalidate()
	}
}

// AddListener registers the dependent as a listener of the key. Adding a
// listener twice has no effect.
func (ps *Parameters) AddListener(key ParameterKey, dep invalidate.Dependent) error {
	if dep == nil {
		return fmt.Errorf("xyz.Parameters.AddListener: %w", ErrNilArgument)
	}
	lr := ps.listeners.ValueByKey(key)
	if lr == nil {
		lr = invalidate.NewRegistry(nil)
		ps.listeners.Add(key, lr)
	}
	if lr.Contains(dep) {
		return nil
	}
	if iv, ok := ps.valueInvalidating(key); ok {
		if err := iv.Invalidations().Register(dep); err != nil {
			return fmt.Errorf("xyz.Parameters.AddListener: %w", err)
		}
	}
	return lr.Register(dep)
}

// RemoveListener unregisters the dependent as a listener of the key.
// It does nothing if it is not a listener.
func (ps *Parameters) RemoveListener(key ParameterKey, dep invalidate.Dependent) {
	lr := ps.listeners.ValueByKey(key)
	if lr == nil || !lr.Contains(dep) {
		return
	}
	if iv, ok := ps.valueInvalidating(key); ok {
		iv.Invalidations().Unregister(dep)
	}
	lr.Unregister(dep)
	if len(lr.Handles()) == 0 {
		ps.listeners.DeleteKey(key)
	}
}

// ContainsListener returns whether the dependent is a listener of the key.
func (ps *Parameters) ContainsListener(key ParameterKey, dep invalidate.Dependent) bool {
	lr := ps.listeners.ValueByKey(key)
	return lr != nil && lr.Contains(dep)
}

// ListenerCount returns the number of live listeners of the key.
func (ps *Parameters) ListenerCount(key ParameterKey) int {
	lr := ps.listeners.ValueByKey(key)
	if lr == nil {
		return 0
	}
	return len(lr.Handles())
}

func (ps *Parameters) valueInvalidating(key ParameterKey) (invalidatingValue, bool) {
	v, _ := ps.values.ValueByKeyTry(key)
	iv, ok := v.(invalidatingValue)
	return iv, ok
}
