// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/vine/geom"
)

// Ends are the reasons a [Root] stopped growing.
type Ends int32

const (
	// Growing means the root has not ended.
	Growing Ends = iota

	// EndLength means the root reached the maximum length.
	EndLength

	// EndFloat means the root floated without surface contact
	// for longer than the maximum float length.
	EndFloat

	// EndCap means the graph reached its maximum number of roots
	// after this root reached its minimum length.
	EndCap

	// EndStalled means the root was pressed against a surface it could
	// neither grow into nor slide along for several steps in a row.
	EndStalled

	// EndCanceled means growth was canceled while the root was growing.
	// Canceled roots are excluded from the output meshes.
	EndCanceled

	// EndFailed means the collision oracle failed while stepping the root.
	EndFailed
)

var endNames = [...]string{"Growing", "Length", "Float", "Cap", "Stalled", "Canceled", "Failed"}

func (e Ends) String() string {
	if e < 0 || int(e) >= len(endNames) {
		return "Ends(?)"
	}
	return endNames[e]
}

// Root is one continuous branch: an ordered list of nodes from its
// origin to its tip, along with its cached geometry.
// Roots refer to their parent by index in [Graph.Roots].
type Root struct {

	// Nodes is the path of the root in growth order.
	Nodes []Node

	// Alive is whether the root is still growing.
	Alive bool

	// End is the reason the root stopped growing.
	End Ends

	// Depth is the number of parents above this root; 0 for the trunk.
	Depth int

	// Parent is the index of the parent root in the graph, or -1.
	Parent int

	// ParentNode is the index of the node in the parent root
	// where this root branched off, or -1.
	ParentNode int

	// Children is the number of child roots spawned from this root.
	Children int

	// Stalls is the number of steps in a row that made no progress.
	Stalls int

	// ForceMinLength overrides the profile minimum length when it is
	// non-negative.
	ForceMinLength float32

	// Branch is the cached branch tube mesh, valid if BranchValid.
	Branch *geom.Mesh

	// Leaves is the cached leaf mesh, valid if LeavesValid.
	Leaves *geom.Mesh

	// Rings are the tube rings of the branch mesh, valid if BranchValid.
	Rings []geom.Ring

	// BranchValid is whether Branch and Rings match the current nodes.
	BranchValid bool

	// LeavesValid is whether Leaves match the current nodes.
	LeavesValid bool
}

// NewRoot returns a new living root with one node at the given
// position, heading in the given direction.
func NewRoot(pos, dir math32.Vector3) *Root {
	rt := &Root{Alive: true, Parent: -1, ParentNode: -1, ForceMinLength: -1}
	rt.AddNode(Node{Pos: pos, PrimaryDir: dir})
	return rt
}

// AddNode appends the given node and invalidates the cached geometry.
func (rt *Root) AddNode(nd Node) {
	rt.Nodes = append(rt.Nodes, nd)
	rt.Invalidate()
}

// Invalidate marks the cached geometry as out of date.
func (rt *Root) Invalidate() {
	rt.BranchValid = false
	rt.LeavesValid = false
}

// Last returns the most recent node. The root must have nodes.
func (rt *Root) Last() *Node {
	return &rt.Nodes[len(rt.Nodes)-1]
}

// Length returns the total length of the root along its path.
func (rt *Root) Length() float32 {
	if len(rt.Nodes) == 0 {
		return 0
	}
	return rt.Last().Cumulative
}

// MinLength returns the effective minimum length of the root.
func (rt *Root) MinLength(pf *Profile) float32 {
	if rt.ForceMinLength >= 0 {
		return rt.ForceMinLength
	}
	return pf.MinLength
}

// Terminate stops the growth of the root for the given reason and
// fills in the smoothed adhesion of its nodes.
func (rt *Root) Terminate(end Ends) {
	if !rt.Alive {
		return
	}
	rt.Alive = false
	rt.End = end
	SmoothAdhesion(rt.Nodes)
	rt.Invalidate()
}

// RingAt returns the branch ring at the given node index, or nil if
// there is none (the geometry is not valid, or the node was optimized away).
func (rt *Root) RingAt(node int) *geom.Ring {
	if !rt.BranchValid {
		return nil
	}
	for i := range rt.Rings {
		if rt.Rings[i].Node == node {
			return &rt.Rings[i]
		}
	}
	return nil
}

// SetBranch publishes a newly built branch mesh and its rings.
func (rt *Root) SetBranch(ms *geom.Mesh, rings []geom.Ring) {
	rt.Branch = ms
	rt.Rings = rings
	rt.BranchValid = true
}

// SetLeaves publishes a newly built leaf mesh.
func (rt *Root) SetLeaves(ms *geom.Mesh) {
	rt.Leaves = ms
	rt.LeavesValid = true
}
