// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/vine/geom"
)

var (
	// ErrRootCap is returned when adding a root to a graph that
	// already has the maximum number of roots.
	ErrRootCap = errors.New("vine: maximum number of roots reached")

	// ErrBadParent is returned when adding a root whose parent
	// is not an earlier root of the graph.
	ErrBadParent = errors.New("vine: parent must be an earlier root")

	// ErrEmptyRoot is returned when adding a root with no nodes.
	ErrEmptyRoot = errors.New("vine: root has no nodes")
)

// Graph is a forest of roots grown from one seed position,
// along with the merged meshes built from them.
type Graph struct {

	// Seed is the position all trunks start from.
	Seed math32.Vector3

	// Profile is the graph's own copy of the growth parameters.
	Profile *Profile

	// Roots are all of the roots in creation order.
	// A root's index is its stable identifier.
	Roots []*Root

	// Growing is whether growth is in progress.
	Growing bool

	// Debug records every growth step in DebugLines.
	Debug bool

	// DebugLines has pairs of segment end points of the raw growth paths.
	DebugLines []math32.Vector3

	// BranchMesh is all root branch meshes merged,
	// or nil if it has not been built since the last change.
	BranchMesh *geom.Mesh

	// LeafMesh is all root leaf meshes merged,
	// or nil if it has not been built since the last change.
	LeafMesh *geom.Mesh
}

// NewGraph returns a new graph with one trunk at the given seed position,
// heading in the given direction (downward if zero). It returns an error
// if the profile is not valid, in which case growth can not start.
func NewGraph(seed, dir math32.Vector3, pf *Profile) (*Graph, error) {
	if err := pf.Validate(); err != nil {
		return nil, err
	}
	g := &Graph{Seed: seed, Profile: pf.Clone()}
	dir = normalOrZero(dir)
	if dir == (math32.Vector3{}) {
		dir = Down
	}
	g.Roots = append(g.Roots, NewRoot(seed, dir))
	return g, nil
}

// AddRoot adds the given root to the graph, returning its index.
// It refuses to add the root once the graph has the maximum number of
// roots, and requires the parent, if any, to be an earlier root.
func (g *Graph) AddRoot(rt *Root) (int, error) {
	if len(g.Roots) >= g.Profile.MaxBranchesTotal {
		return -1, ErrRootCap
	}
	if len(rt.Nodes) == 0 {
		return -1, ErrEmptyRoot
	}
	if rt.Parent >= len(g.Roots) || rt.Parent < -1 {
		return -1, fmt.Errorf("%w: parent %d of %d roots", ErrBadParent, rt.Parent, len(g.Roots))
	}
	if rt.Parent >= 0 && (rt.ParentNode < 0 || rt.ParentNode >= len(g.Roots[rt.Parent].Nodes)) {
		return -1, fmt.Errorf("%w: parent node %d out of range", ErrBadParent, rt.ParentNode)
	}
	g.Roots = append(g.Roots, rt)
	g.InvalidateMeshes()
	return len(g.Roots) - 1, nil
}

// CanAddRoot returns whether there is room for another root.
func (g *Graph) CanAddRoot() bool {
	return len(g.Roots) < g.Profile.MaxBranchesTotal
}

// NumAlive returns the number of roots that are still growing.
func (g *Graph) NumAlive() int {
	n := 0
	for _, rt := range g.Roots {
		if rt.Alive {
			n++
		}
	}
	return n
}

// Children returns the indexes of the roots that branched off the given root.
func (g *Graph) Children(idx int) []int {
	var ch []int
	for i := idx + 1; i < len(g.Roots); i++ {
		if g.Roots[i].Parent == idx {
			ch = append(ch, i)
		}
	}
	return ch
}

// MaxDepth returns the largest root depth in the graph.
func (g *Graph) MaxDepth() int {
	md := 0
	for _, rt := range g.Roots {
		md = max(md, rt.Depth)
	}
	return md
}

// Included returns whether the given root contributes to the output meshes:
// roots whose growth was canceled or failed do not.
func (g *Graph) Included(idx int) bool {
	end := g.Roots[idx].End
	return end != EndCanceled && end != EndFailed
}

// InvalidateMeshes clears the merged meshes, which must be
// rebuilt after any root geometry changes.
func (g *Graph) InvalidateMeshes() {
	g.BranchMesh = nil
	g.LeafMesh = nil
}

// Aggregate merges the branch and leaf meshes of all included roots into
// [Graph.BranchMesh] and [Graph.LeafMesh]. Roots without valid geometry
// are skipped.
func (g *Graph) Aggregate() {
	var branches, leaves []*geom.Mesh
	for i, rt := range g.Roots {
		if !g.Included(i) {
			continue
		}
		if rt.BranchValid {
			branches = append(branches, rt.Branch)
		}
		if rt.LeavesValid {
			leaves = append(leaves, rt.Leaves)
		}
	}
	g.BranchMesh = geom.Merge(g.Profile.LeafColor, branches...)
	g.LeafMesh = geom.Merge(g.Profile.LeafColor, leaves...)
}

// addDebugLine records a growth segment if debugging is on.
func (g *Graph) addDebugLine(from, to math32.Vector3) {
	if g.Debug {
		g.DebugLines = append(g.DebugLines, from, to)
	}
}

// Stats is a summary of a graph.
type Stats struct {
	Roots, Alive, Nodes, MaxDepth int
	Length                        float32
	Ends                          map[Ends]int
}

// Stats returns a summary of the graph.
func (g *Graph) Stats() Stats {
	st := Stats{Roots: len(g.Roots), Ends: map[Ends]int{}}
	for _, rt := range g.Roots {
		if rt.Alive {
			st.Alive++
		} else {
			st.Ends[rt.End]++
		}
		st.Nodes += len(rt.Nodes)
		st.Length += rt.Length()
		st.MaxDepth = max(st.MaxDepth, rt.Depth)
	}
	return st
}
