// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides a 3D scene graph of [GameObject]s with lazily
// computed world transforms, cameras, and bounding shapes, and the
// frustum culling of renderables against the main camera.
//
// Every cached value (the world matrix of a [Transform], the matrices of
// a [Camera], the planes of a [Frustum], the world extent of a
// [BoundingShape]) is marked stale through the invalidate package when
// anything it depends on changes, and is recomputed on the next read.
// Reads therefore always observe all prior changes.
//
// All objects of a [World] must be used from a single goroutine.
package xyz
