// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"testing"

	"cogentcore.org/scene/math32"
	"github.com/stretchr/testify/assert"
)

// Tol is the default tolerance used by the helpers in this package.
const Tol = float32(1.0e-4)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of [Tol].
func Equal(t assert.TestingT, expected float32, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, Tol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol(t assert.TestingT, expected float32, actual float32, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualVector3 asserts that each component of the two vectors is about equal.
func EqualVector3(t *testing.T, expected, actual math32.Vector3, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected.X, actual.X, Tol, msgAndArgs...) &&
		EqualTol(t, expected.Y, actual.Y, Tol, msgAndArgs...) &&
		EqualTol(t, expected.Z, actual.Z, Tol, msgAndArgs...)
}

// EqualMatrix4 asserts that each element of the two matrices is about equal.
func EqualMatrix4(t *testing.T, expected, actual *math32.Matrix4, msgAndArgs ...any) bool {
	t.Helper()
	if !expected.EqualTol(actual, Tol) {
		return assert.Fail(t, "matrices are not about equal",
			"expected: %v\nactual:   %v", expected, actual)
	}
	return true
}
