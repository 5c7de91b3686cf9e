// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/scene/base/errors"

// Errors returned by rejected scene operations. A rejected operation
// leaves the state of every involved object unchanged.
var (
	// ErrAlreadyAttached is returned when adding a component that is
	// already attached to another game object.
	ErrAlreadyAttached = errors.New("xyz: component is already attached to a game object")

	// ErrAlreadyOwned is returned when assigning a frustum, bounding shape,
	// or billboard that is already owned by another camera or renderable.
	ErrAlreadyOwned = errors.New("xyz: value is already owned")

	// ErrInvalidLens is returned when a camera lens parameter is out of range.
	ErrInvalidLens = errors.New("xyz: invalid lens parameter")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("xyz: nil argument")

	// ErrCycle is returned when reparenting would make a game object
	// its own ancestor.
	ErrCycle = errors.New("xyz: parent would create a cycle")

	// ErrWorldMismatch is returned when relating objects from different worlds.
	ErrWorldMismatch = errors.New("xyz: objects belong to different worlds")

	// ErrInvalidInterval is returned when a visibility interval has min > max
	// or a negative bound.
	ErrInvalidInterval = errors.New("xyz: invalid visibility interval")
)
