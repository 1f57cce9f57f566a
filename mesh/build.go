// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh converts grown vine roots into branch tube and leaf
// triangle meshes, and merges them into the output meshes of a graph.
package mesh

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/vine"
	"cogentcore.org/vine/geom"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAlive is returned when building the meshes of a root
	// that is still growing.
	ErrAlive = errors.New("mesh: root is still growing")

	// ErrGrowing is returned when building the meshes of a graph
	// that is still growing.
	ErrGrowing = errors.New("mesh: graph is still growing")
)

// Builder builds the meshes of the roots of a graph.
type Builder struct {

	// Seed is the seed for leaf placement. Each root gets its own
	// source derived from it, so the result does not depend on the
	// order in which roots are built.
	Seed int64

	// Workers is the maximum number of roots built in parallel;
	// 0 means GOMAXPROCS.
	Workers int
}

// Root builds the meshes of one terminated root of the given graph.
// A child root must be built after its parent to attach to it.
func (b *Builder) Root(g *vine.Graph, idx int) error {
	err := b.build(g, idx, pinnedNodes(g, idx))
	if err == nil {
		g.InvalidateMeshes()
	}
	return err
}

// Graph builds the meshes of all of the included roots of the given
// graph and merges them into [vine.Graph.BranchMesh] and
// [vine.Graph.LeafMesh]. Roots are built in parallel, one depth level at
// a time so that every parent is finished before its children attach.
func (b *Builder) Graph(ctx context.Context, g *vine.Graph) error {
	if g.Growing {
		return ErrGrowing
	}
	g.InvalidateMeshes()
	levels := make([][]int, g.MaxDepth()+1)
	pinned := make([]map[int]bool, len(g.Roots))
	for i, rt := range g.Roots {
		if !g.Included(i) {
			continue
		}
		if len(rt.Nodes) == 0 {
			panic(fmt.Sprintf("mesh: root %d of graph has no nodes", i))
		}
		levels[rt.Depth] = append(levels[rt.Depth], i)
		if rt.Parent >= 0 {
			if pinned[rt.Parent] == nil {
				pinned[rt.Parent] = map[int]bool{}
			}
			pinned[rt.Parent][rt.ParentNode] = true
		}
	}
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	for depth, level := range levels {
		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(workers)
		for _, idx := range level {
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				return b.build(g, idx, pinned[idx])
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		slog.Debug("mesh: built level", "depth", depth, "roots", len(level))
	}
	g.Aggregate()
	slog.Info("mesh: built", "roots", len(g.Roots), "branchTriangles", g.BranchMesh.NumTriangles(), "leafTriangles", g.LeafMesh.NumTriangles())
	return nil
}

// build builds and publishes the meshes of one root. It only writes
// to that root, so roots at the same depth can be built in parallel.
func (b *Builder) build(g *vine.Graph, idx int, pinned map[int]bool) error {
	rt := g.Roots[idx]
	if len(rt.Nodes) == 0 {
		panic(fmt.Sprintf("mesh: root %d of graph has no nodes", idx))
	}
	if rt.Alive {
		return fmt.Errorf("%w: root %d", ErrAlive, idx)
	}
	pf := g.Profile
	var attach *geom.Ring
	if rt.Parent >= 0 {
		if rg := g.Roots[rt.Parent].RingAt(rt.ParentNode); rg != nil {
			cp := *rg
			attach = &cp
		}
	}
	branch, rings := Branch(rt.Nodes, pf, attach, pinned)
	leaves := Leaves(rt.Nodes, pf, pf.Gradient(), vine.NewRand(vine.SubSeed(b.Seed, idx)))
	rt.SetBranch(branch, rings)
	rt.SetLeaves(leaves)
	return nil
}

// pinnedNodes returns the nodes of the given root where children branch off.
func pinnedNodes(g *vine.Graph, idx int) map[int]bool {
	pinned := map[int]bool{}
	for _, ci := range g.Children(idx) {
		pinned[g.Roots[ci].ParentNode] = true
	}
	return pinned
}
