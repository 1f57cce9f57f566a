// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a seedable random number source that can be
// swapped for the global one.
package randx

import "math/rand"

// Rand has the subset of the [rand.Rand] methods used for growth,
// so that either the global generator or a separate seeded source
// can be used.
type Rand interface {

	// Seed initializes the generator to a deterministic state.
	// It must not be called concurrently with any other method.
	Seed(seed int64)

	// Intn returns a non-negative number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int

	// Float64 returns a number in the half-open interval [0,1).
	Float64() float64

	// Float32 returns a number in the half-open interval [0,1).
	Float32() float32

	// NormFloat64 returns a standard normally distributed number
	// (mean 0, stddev 1).
	NormFloat64() float64
}

// SysRand implements [Rand] with the system generator, using a separate
// [rand.Rand] source, or the global stream if that is nil.
// A SysRand with its own source is not safe for concurrent use.
type SysRand struct {

	// Rand is the source to use instead of the global one, if non-nil.
	Rand *rand.Rand `display:"-"`
}

// NewGlobalRand returns a new [SysRand] on the global source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with its own source,
// initialized with the given seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new source with the given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		r.NewRand(seed)
		return
	}
	r.Rand.Seed(seed)
}

func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}
