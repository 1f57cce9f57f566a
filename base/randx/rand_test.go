// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a, b := NewSysRand(7), NewSysRand(7)
	for range 50 {
		assert.Equal(t, a.Float32(), b.Float32())
		assert.Equal(t, a.NormFloat64(), b.NormFloat64())
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
	a.Seed(3)
	b.Seed(3)
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestSysRandRanges(t *testing.T) {
	for _, r := range []Rand{NewSysRand(1), NewGlobalRand()} {
		for range 1000 {
			f := r.Float32()
			assert.GreaterOrEqual(t, f, float32(0))
			assert.Less(t, f, float32(1))
			n := r.Intn(5)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 5)
		}
	}
}

func TestGlobalRandSeed(t *testing.T) {
	r := NewGlobalRand()
	r.Seed(9)
	assert.NotNil(t, r.Rand)
	assert.Equal(t, NewSysRand(9).Float64(), r.Float64())
}
