// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDefaults(t *testing.T) {
	pf := NewProfile()
	assert.Equal(t, float32(0.1), pf.StepDistance)
	assert.Equal(t, float32(0.05), pf.BranchSize)
	assert.Equal(t, float32(0.15), pf.LeafSize)
	assert.Equal(t, float32(3), pf.GravityWeight)
	assert.Equal(t, float32(1), pf.MinLength)
	assert.Equal(t, float32(3), pf.MaxLength)
	assert.Equal(t, 64, pf.MaxBranchesTotal)
	assert.Equal(t, 2, pf.BranchSmooth)
	assert.Equal(t, 6, pf.BranchSegments)
	assert.True(t, pf.UseVertexColors)
	require.Len(t, pf.LeafColors, 3)
	assert.Equal(t, colors.White, pf.LeafColors[0].Color)
	assert.Equal(t, colors.Yellow, pf.LeafColors[2].Color)
	assert.NoError(t, pf.Validate())
	assert.Equal(t, float32(1), pf.FloatLimit())
	assert.Equal(t, float32(1), pf.AdhesionRange())
}

func TestProfileValidate(t *testing.T) {
	pf := NewProfile()
	pf.StepDistance = 0
	pf.BranchingProbability = 1.5
	pf.GravityWeight = -1
	pf.MinLength = 5
	pf.BranchSegments = 2
	pf.MaxBranchesTotal = 0
	pf.LeafColors[1].Pos = 2
	err := pf.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	for _, name := range []string{"StepDistance", "BranchingProbability", "GravityWeight", "MinLength", "BranchSegments", "MaxBranchesTotal", "LeafColors[1]"} {
		assert.Contains(t, err.Error(), name)
	}

	_, err = NewGraph(math32.Vector3{}, math32.Vector3{}, pf)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestProfileClone(t *testing.T) {
	pf := NewProfile()
	cp := pf.Clone()
	cp.LeafColors[0].Pos = 0.5
	cp.StepDistance = 1
	assert.Equal(t, float32(0), pf.LeafColors[0].Pos)
	assert.Equal(t, float32(0.1), pf.StepDistance)
}

func TestProfileSaveOpen(t *testing.T) {
	pf := NewProfile()
	pf.StepDistance = 0.25
	pf.MaxBranchesTotal = 12
	pf.LeafColors = pf.LeafColors[:2]
	fn := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, pf.Save(fn))

	op, err := OpenProfile(fn)
	require.NoError(t, err)
	assert.Equal(t, pf, op)

	_, err = OpenProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestProfileGradient(t *testing.T) {
	pf := NewProfile()
	g := pf.Gradient()
	require.NotNil(t, g)
	assert.Equal(t, colors.White, GradientColor(g, 0))
	assert.Equal(t, colors.White, GradientColor(g, -1))
	assert.Equal(t, colors.Yellow, GradientColor(g, 1))
	assert.Equal(t, colors.Yellow, GradientColor(g, 2))

	// halfway from white to green
	mid := GradientColor(g, 0.34)
	assert.InDelta(t, 127, int(mid.R), 3)
	assert.InDelta(t, 191, int(mid.G), 3)
	assert.InDelta(t, 127, int(mid.B), 3)
	assert.Equal(t, uint8(255), mid.A)

	// stops are used in position order
	pf.LeafColors = []ColorStop{{colors.Yellow, 1}, {colors.White, 0}}
	g = pf.Gradient()
	assert.Equal(t, colors.White, GradientColor(g, 0))
	assert.Equal(t, colors.Yellow, GradientColor(g, 1))
	assert.ErrorIs(t, pf.Validate(), ErrInvalidProfile)

	pf.LeafColors = nil
	assert.Nil(t, pf.Gradient())
}
