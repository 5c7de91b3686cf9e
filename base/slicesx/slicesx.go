// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// RemoveValue removes the first element equal to v from the slice,
// preserving the order of the remaining elements. It returns the
// resulting slice and whether an element was removed.
func RemoveValue[E comparable](s []E, v E) ([]E, bool) {
	idx := slices.Index(s, v)
	if idx < 0 {
		return s, false
	}
	return slices.Delete(s, idx, idx+1), true
}

// Search returns the index of the item in the given slice that matches the target
// according to the given match function, using the given optional starting index
// to optimize the search by searching bidirectionally outward from given index.
// If no start index is given, it starts in the middle.
// It returns -1 if no item matching the match function is found.
func Search[E any](slice []E, match func(e E) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	for up, down := si+1, si; up < n || down >= 0; up, down = up+1, down-1 {
		if down >= 0 && match(slice[down]) {
			return down
		}
		if up < n && match(slice[up]) {
			return up
		}
	}
	return -1
}
