// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	pf := NewProfile()
	g, err := NewGraph(math32.Vec3(1, 2, 3), math32.Vector3{}, pf)
	require.NoError(t, err)
	require.Len(t, g.Roots, 1)
	rt := g.Roots[0]
	assert.True(t, rt.Alive)
	assert.Equal(t, Growing, rt.End)
	assert.Equal(t, -1, rt.Parent)
	assert.Equal(t, 0, rt.Depth)
	require.Len(t, rt.Nodes, 1)
	assert.Equal(t, math32.Vec3(1, 2, 3), rt.Nodes[0].Pos)
	assert.Equal(t, Down, rt.Nodes[0].PrimaryDir)
	assert.False(t, rt.BranchValid)

	// the graph has its own copy of the profile
	pf.StepDistance = 7
	assert.Equal(t, float32(0.1), g.Profile.StepDistance)
}

func TestAddRoot(t *testing.T) {
	pf := NewProfile()
	pf.MaxBranchesTotal = 3
	g, err := NewGraph(math32.Vector3{}, Down, pf)
	require.NoError(t, err)

	ch := NewRoot(math32.Vector3{}, Up)
	ch.Parent, ch.ParentNode, ch.Depth = 0, 0, 1
	idx, err := g.AddRoot(ch)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{1}, g.Children(0))
	assert.Equal(t, 1, g.MaxDepth())

	bad := NewRoot(math32.Vector3{}, Up)
	bad.Parent, bad.ParentNode = 5, 0
	_, err = g.AddRoot(bad)
	assert.ErrorIs(t, err, ErrBadParent)

	bad.Parent, bad.ParentNode = 0, 4
	_, err = g.AddRoot(bad)
	assert.ErrorIs(t, err, ErrBadParent)

	_, err = g.AddRoot(&Root{Parent: -1})
	assert.ErrorIs(t, err, ErrEmptyRoot)

	assert.True(t, g.CanAddRoot())
	_, err = g.AddRoot(NewRoot(math32.Vector3{}, Up))
	require.NoError(t, err)
	assert.False(t, g.CanAddRoot())
	_, err = g.AddRoot(NewRoot(math32.Vector3{}, Up))
	assert.ErrorIs(t, err, ErrRootCap)
	assert.Len(t, g.Roots, 3)
	assert.Equal(t, 3, g.NumAlive())
}

func TestRootInvalidate(t *testing.T) {
	rt := NewRoot(math32.Vector3{}, Down)
	assert.Nil(t, rt.RingAt(0))
	rt.SetBranch(nil, nil)
	rt.SetLeaves(nil)
	assert.True(t, rt.BranchValid)
	assert.True(t, rt.LeavesValid)
	rt.AddNode(Node{Pos: Down, Cumulative: 1, Length: 1})
	assert.False(t, rt.BranchValid)
	assert.False(t, rt.LeavesValid)
	assert.Equal(t, float32(1), rt.Length())

	assert.Equal(t, float32(1), rt.MinLength(NewProfile()))
	rt.ForceMinLength = 0.5
	assert.Equal(t, float32(0.5), rt.MinLength(NewProfile()))

	rt.Terminate(EndLength)
	assert.False(t, rt.Alive)
	rt.Terminate(EndCanceled)
	assert.Equal(t, EndLength, rt.End)
	assert.Equal(t, "Length", rt.End.String())
}

func TestSmoothAdhesion(t *testing.T) {
	nodes := []Node{
		{Adhesion: math32.Vec3(0, 0, -1)},
		{Adhesion: math32.Vec3(0, 0, -1)},
		{},
	}
	SmoothAdhesion(nodes)
	assert.Equal(t, math32.Vec3(0, 0, -1), nodes[0].SmoothAdhesion)
	assert.Less(t, nodes[2].SmoothAdhesion.Z, float32(0))
	assert.Greater(t, nodes[2].SmoothAdhesion.Z, float32(-1))
}
