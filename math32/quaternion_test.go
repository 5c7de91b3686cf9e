// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"testing"

	"cogentcore.org/scene/base/tolassert"
	. "cogentcore.org/scene/math32"
	"github.com/stretchr/testify/assert"
)

func TestQuatRotate(t *testing.T) {
	q := NewQuatAxisAngle(Vector3Y, Pi/2)
	tolassert.EqualVector3(t, Vec3(0, 0, -1), Vector3X.MulQuat(q))
	tolassert.EqualVector3(t, Vector3X, Vector3X.MulQuat(q).MulQuat(q.Inverse()))
	assert.True(t, QuatIdentity().IsIdentity())
	tolassert.Equal(t, 1, q.Length())
}

func TestQuatMulOrder(t *testing.T) {
	qz := NewQuatAxisAngle(Vector3Z, Pi/2)
	qx := NewQuatAxisAngle(Vector3X, Pi/2)
	// qx applies first
	tolassert.EqualVector3(t, Vector3Z, Vector3Y.MulQuat(qz.Mul(qx)))
	tolassert.EqualVector3(t, Vector3Y.MulQuat(qx).MulQuat(qz), Vector3Y.MulQuat(qz.Mul(qx)))
}

func TestQuatFromRotationMatrix(t *testing.T) {
	for _, euler := range []Vector3{Vec3(0.3, 0.5, 0.7), Vec3(Pi, 0, 0), Vec3(0, -Pi/2, 0.1)} {
		q := NewQuatEuler(euler)
		m := NewTransform(Vector3{}, q, Vec3(1, 1, 1))
		var q2 Quat
		q2.SetFromRotationMatrix(m)
		assert.True(t, q.Equals(q2), "euler %v: %v != %v", euler, q, q2)
		for _, v := range []Vector3{Vector3X, Vector3Y, Vector3Z} {
			tolassert.EqualVector3(t, v.MulQuat(q), v.MulMatrix4AsPoint(m))
		}
	}
}
