// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExposure(t *testing.T) {
	assert.Equal(t, float32(1), Exposure(math32.Vector3{}))
	assert.Equal(t, float32(1), Exposure(vine.Down))
	assert.Equal(t, float32(0), Exposure(vine.Up))
	tolassert.EqualTol(t, 0, Exposure(math32.Vec3(0, 0, -1)), 1e-6)
	tolassert.EqualTol(t, math32.Sqrt(0.5), Exposure(math32.Vec3(0, -1, -1)), 1e-6)
}

func TestLeafProbability(t *testing.T) {
	pf := vine.NewProfile()
	assert.Equal(t, float32(0.5), LeafProbability(pf, 0))
	assert.Equal(t, float32(1), LeafProbability(pf, 1))
	pf.LeafSunlightBonus = 0.5
	assert.Equal(t, float32(0.75), LeafProbability(pf, 1))
}

func TestLeafColor(t *testing.T) {
	pf := vine.NewProfile()
	grad := pf.Gradient()
	assert.Equal(t, colors.White, LeafColor(pf, grad, 0))
	assert.Equal(t, colors.Yellow, LeafColor(pf, grad, 1))

	pf.UseVertexColors = false
	pf.LeafColor = colors.Green
	assert.Equal(t, colors.Green, LeafColor(pf, grad, 0))
	pf.UseVertexColors = true
	assert.Equal(t, colors.Green, LeafColor(pf, nil, 0.3))
}

func TestLeaves(t *testing.T) {
	pf := vine.NewProfile()
	pf.LeafProbability = 1
	nodes := line(10)
	ms := Leaves(nodes, pf, pf.Gradient(), vine.NewRand(1))
	nv := ms.NumVertex()
	assert.GreaterOrEqual(t, nv, 4*len(nodes))
	assert.Equal(t, 0, nv%4)
	assert.Equal(t, nv/2, ms.NumTriangles())
	require.Len(t, ms.Color, nv)
	assert.Equal(t, colors.White, ms.Color[0])
	assert.Equal(t, colors.Yellow, ms.Color[nv-1])

	// leaves face away from the wall
	for i := range nv {
		n := math32.Vec3(ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2])
		tolassert.EqualTol(t, 1, n.Z, 1e-5)
	}
	for _, idx := range ms.Index {
		assert.Less(t, int(idx), nv)
	}

	again := Leaves(nodes, pf, pf.Gradient(), vine.NewRand(1))
	assert.Equal(t, ms, again)

	pf.LeafProbability = 0
	pf.LeafSunlightBonus = 0
	assert.True(t, Leaves(nodes, pf, pf.Gradient(), vine.NewRand(1)).IsEmpty())
	assert.True(t, Leaves(nodes[:1], pf, pf.Gradient(), vine.NewRand(1)).IsEmpty())
}
