// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "image"

// Viewport is the drawing surface a [World] is rendered to.
// The main camera takes its aspect ratio from it.
type Viewport interface {

	// Size returns the size of the surface in pixels.
	Size() image.Point

	// AspectRatio returns width / height, or 0 for an empty surface.
	AspectRatio() float32
}

// FixedViewport is a [Viewport] with a size set by the program,
// for offscreen rendering and tests.
type FixedViewport struct {
	Width  int
	Height int
}

func (fv *FixedViewport) Size() image.Point {
	return image.Pt(fv.Width, fv.Height)
}

func (fv *FixedViewport) AspectRatio() float32 {
	if fv.Width <= 0 || fv.Height <= 0 {
		return 0
	}
	return float32(fv.Width) / float32(fv.Height)
}

// SetSize sets the size of the viewport.
func (fv *FixedViewport) SetSize(width, height int) {
	fv.Width = width
	fv.Height = height
}
