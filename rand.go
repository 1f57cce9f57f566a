// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/vine/base/randx"
)

// Rand is the source of randomness for growth and leaf placement.
// Growth is only reproducible if the source is seeded.
type Rand interface {

	// Float32 returns a uniform number in the half-open interval [0,1).
	Float32() float32

	// UnitVector returns a uniformly distributed unit vector.
	UnitVector() math32.Vector3
}

// SysRand implements [Rand] on top of a [randx.Rand] source.
type SysRand struct {
	randx.Rand
}

// NewRand returns a new [SysRand] with its own source,
// initialized with the given seed.
func NewRand(seed int64) *SysRand {
	return &SysRand{Rand: randx.NewSysRand(seed)}
}

// UnitVector returns a uniformly distributed unit vector, from the
// direction of a standard normal sample in each coordinate.
func (r *SysRand) UnitVector() math32.Vector3 {
	for {
		x, y, z := r.NormFloat64(), r.NormFloat64(), r.NormFloat64()
		ln := math.Sqrt(x*x + y*y + z*z)
		if ln > 1e-9 {
			return math32.Vec3(float32(x/ln), float32(y/ln), float32(z/ln))
		}
	}
}

// SubSeed returns a seed derived from the given seed and index,
// for giving independent, reproducible sources to parallel work.
func SubSeed(seed int64, idx int) int64 {
	// splitmix64 finalizer
	z := uint64(seed) + uint64(idx+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
