// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	s = Move(s, 1, 3)
	assert.Equal(t, []int{0, 2, 3, 1, 4}, s)
	s = Move(s, 4, 0)
	assert.Equal(t, []int{4, 0, 2, 3, 1}, s)
}

func TestRemoveValue(t *testing.T) {
	s := []string{"a", "b", "c", "b"}
	s, ok := RemoveValue(s, "b")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c", "b"}, s)

	s, ok = RemoveValue(s, "z")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c", "b"}, s)

	var empty []string
	empty, ok = RemoveValue(empty, "a")
	assert.False(t, ok)
	assert.Empty(t, empty)
}

func TestSearch(t *testing.T) {
	s := []int{10, 11, 12, 13, 14, 15}
	eq := func(v int) func(e int) bool {
		return func(e int) bool { return e == v }
	}
	assert.Equal(t, 0, Search(s, eq(10)))
	assert.Equal(t, 5, Search(s, eq(15)))
	assert.Equal(t, 2, Search(s, eq(12), 4))
	assert.Equal(t, 4, Search(s, eq(14), 100))
	assert.Equal(t, 1, Search(s, eq(11), 0))
	assert.Equal(t, -1, Search(s, eq(99)))
	assert.Equal(t, -1, Search(nil, eq(1)))
}
