// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"context"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"cogentcore.org/vine/collide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func growWall(t *testing.T, seed int64) *vine.Graph {
	t.Helper()
	pf := vine.NewProfile()
	pf.MaxBranchesTotal = 12
	pf.BranchingProbability = 0.5
	wall := collide.NewBox(math32.Vec3(0, 1.5, -0.25), math32.Vec3(6, 3, 0.5))
	g, err := vine.NewGraph(math32.Vec3(0, 2.9, 0.05), math32.Vector3{}, pf)
	require.NoError(t, err)
	require.NoError(t, vine.NewGrower(g, collide.Scene{wall, collide.Ground(0)}, vine.NewRand(seed)).Run(context.Background()))
	return g
}

func TestBuildGraph(t *testing.T) {
	g := growWall(t, 2)
	require.Greater(t, len(g.Roots), 1)
	b := &Builder{Seed: 2, Workers: 3}
	require.NoError(t, b.Graph(context.Background(), g))
	require.NotNil(t, g.BranchMesh)
	require.NotNil(t, g.LeafMesh)
	assert.False(t, g.BranchMesh.IsEmpty())
	assert.Equal(t, g.LeafMesh.NumVertex(), len(g.LeafMesh.Color))

	nv := 0
	for i, rt := range g.Roots {
		assert.True(t, rt.BranchValid)
		assert.True(t, rt.LeavesValid)
		nv += rt.Branch.NumVertex()
		if rt.Parent < 0 || len(rt.Nodes) < 2 {
			continue
		}
		// the child tube starts on the parent ring at the branch point
		prg := g.Roots[rt.Parent].RingAt(rt.ParentNode)
		require.NotNil(t, prg, "root %d", i)
		rg := rt.Rings[0]
		assert.Equal(t, prg.Center, rg.Center)
		assert.Equal(t, prg.Normal, rg.Normal)
		assert.Equal(t, prg.Radius, rg.Radius)
		assert.Equal(t, prg.U, rg.U)
	}
	assert.Equal(t, nv, g.BranchMesh.NumVertex())
	bb := g.BranchMesh.BBox()
	assert.False(t, bb.IsEmpty())
	for _, v := range g.BranchMesh.Vertex {
		assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := growWall(t, 5)
	require.NoError(t, (&Builder{Seed: 9, Workers: 1}).Graph(context.Background(), a))
	b := growWall(t, 5)
	require.NoError(t, (&Builder{Seed: 9, Workers: 8}).Graph(context.Background(), b))
	assert.Equal(t, a.BranchMesh, b.BranchMesh)
	assert.Equal(t, a.LeafMesh, b.LeafMesh)

	// building root by root gives the same result
	c := growWall(t, 5)
	bl := &Builder{Seed: 9}
	for i := range c.Roots {
		require.NoError(t, bl.Root(c, i))
	}
	c.Aggregate()
	assert.Equal(t, a.BranchMesh, c.BranchMesh)
	assert.Equal(t, a.LeafMesh, c.LeafMesh)
}

func TestBuildErrors(t *testing.T) {
	pf := vine.NewProfile()
	g, err := vine.NewGraph(math32.Vector3{}, math32.Vector3{}, pf)
	require.NoError(t, err)
	b := &Builder{}
	assert.ErrorIs(t, b.Root(g, 0), ErrAlive)

	g.Growing = true
	assert.ErrorIs(t, b.Graph(context.Background(), g), ErrGrowing)
	g.Growing = false

	g.Roots[0].Terminate(vine.EndLength)
	g.Roots = append(g.Roots, &vine.Root{Parent: -1, ParentNode: -1})
	assert.Panics(t, func() { b.Graph(context.Background(), g) })
}

func TestBuildCanceled(t *testing.T) {
	pf := vine.NewProfile()
	g, err := vine.NewGraph(math32.Vec3(0, 2, 0.05), math32.Vector3{}, pf)
	require.NoError(t, err)
	gr := vine.NewGrower(g, collide.Ground(0), vine.NewRand(1))
	gr.StepsPerBatch = 5
	_, err = gr.Batch(context.Background())
	require.NoError(t, err)
	gr.Cancel()

	require.NoError(t, (&Builder{}).Graph(context.Background(), g))
	assert.True(t, g.BranchMesh.IsEmpty())
	assert.True(t, g.LeafMesh.IsEmpty())
	assert.False(t, g.Roots[0].BranchValid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := growWall(t, 1)
	assert.ErrorIs(t, (&Builder{}).Graph(ctx, done), context.Canceled)
	assert.Nil(t, done.BranchMesh)
}
