// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestWeightedSum(t *testing.T) {
	w := Weights{Primary: 1, Gravity: 1}
	x := math32.Vec3(1, 0, 0)
	d := WeightedSum{}.Blend(w, x, math32.Vec3(0, 0, 1), Down, math32.Vector3{})
	tolassert.EqualTol(t, 1, d.Length(), 1e-5)
	tolassert.EqualTol(t, math32.Sqrt(0.5), d.X, 1e-5)
	tolassert.EqualTol(t, -math32.Sqrt(0.5), d.Y, 1e-5)
	tolassert.EqualTol(t, 0, d.Z, 1e-6)

	// opposing components cancel out
	d = WeightedSum{}.Blend(Weights{Primary: 1, Gravity: 1}, Up, x, Down, x)
	assert.Equal(t, math32.Vector3{}, d)
}

func TestSlerp(t *testing.T) {
	w := Weights{Primary: 1, Gravity: 1}
	x := math32.Vec3(1, 0, 0)
	d := Slerp{}.Blend(w, x, math32.Vector3{}, Down, math32.Vector3{})
	tolassert.EqualTol(t, 1, d.Length(), 1e-5)
	tolassert.EqualTol(t, math32.Sqrt(0.5), d.X, 1e-5)
	tolassert.EqualTol(t, -math32.Sqrt(0.5), d.Y, 1e-5)

	// opposing components rotate instead of canceling
	d = Slerp{}.Blend(w, Up, math32.Vector3{}, Down, math32.Vector3{})
	tolassert.EqualTol(t, 1, d.Length(), 1e-5)
	tolassert.EqualTol(t, 0, d.Dot(Up), 1e-4)

	assert.Equal(t, math32.Vector3{}, Slerp{}.Blend(Weights{}, Up, Up, Down, Up))
}

func TestRotate(t *testing.T) {
	v := rotate(math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1), math32.Pi/2)
	tolassert.EqualTol(t, 0, v.X, 1e-6)
	tolassert.EqualTol(t, 1, v.Y, 1e-6)
	for _, d := range []math32.Vector3{Up, Down, math32.Vec3(1, 0, 0), math32.Vec3(0.6, 0.8, 0)} {
		p := perpendicular(d)
		tolassert.EqualTol(t, 0, p.Dot(d), 1e-6)
		tolassert.EqualTol(t, 1, p.Length(), 1e-6)
	}
}

func TestRand(t *testing.T) {
	a, b := NewRand(3), NewRand(3)
	for range 100 {
		f := a.Float32()
		assert.Equal(t, f, b.Float32())
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
		u := a.UnitVector()
		assert.Equal(t, u, b.UnitVector())
		tolassert.EqualTol(t, 1, u.Length(), 1e-5)
	}
	assert.NotEqual(t, SubSeed(1, 0), SubSeed(1, 1))
	assert.NotEqual(t, SubSeed(1, 0), SubSeed(2, 0))
	assert.Equal(t, SubSeed(7, 3), SubSeed(7, 3))
}
