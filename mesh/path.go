// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
)

// pathNode is one point of the path a branch tube follows.
type pathNode struct {

	// Pos is the (smoothed) position.
	Pos math32.Vector3

	// Cum is the cumulative length of the unsmoothed node,
	// which drives the taper and the texture coordinates.
	Cum float32

	// Node is the index of the source node in its root.
	Node int

	// Pinned nodes are never removed by optimization,
	// because a child branch starts there.
	Pinned bool
}

// newPath returns the path for the given nodes, with the given nodes
// pinned. If start is non-nil it replaces the first position, so that a
// child path starts exactly on its parent's smoothed path.
func newPath(nodes []vine.Node, pinned map[int]bool, start *math32.Vector3) []pathNode {
	p := make([]pathNode, len(nodes))
	for i, nd := range nodes {
		p[i] = pathNode{Pos: nd.Pos, Cum: nd.Cumulative, Node: i, Pinned: pinned[i]}
	}
	if start != nil && len(p) > 0 {
		p[0].Pos = *start
	}
	return p
}

// smoothPath applies the given number of passes of neighbor averaging
// to the interior positions of the path. The end points do not move.
func smoothPath(p []pathNode, passes int) {
	n := len(p)
	if n < 3 {
		return
	}
	tmp := make([]math32.Vector3, n)
	for range passes {
		for i := 1; i < n-1; i++ {
			tmp[i] = p[i-1].Pos.Add(p[i].Pos).Add(p[i+1].Pos).DivScalar(3)
		}
		for i := 1; i < n-1; i++ {
			p[i].Pos = tmp[i]
		}
	}
}

// optimizeAngle is the path bend in radians below which a node is
// removed, per unit of the optimize threshold.
const optimizeAngle = 0.2

// optimizeSpacing is the distance below which a node is removed,
// per unit of the optimize threshold and of the step distance.
const optimizeSpacing = 0.5

// optimizePath removes interior nodes that are too close to the last
// kept node, or where the path bends by less than the threshold angle.
// The first, last and pinned nodes are always kept. A threshold <= 0
// keeps every node.
func optimizePath(p []pathNode, threshold, step float32) []pathNode {
	n := len(p)
	if n < 3 || threshold <= 0 {
		return p
	}
	minAngle := threshold * optimizeAngle
	minDist := threshold * optimizeSpacing * step
	res := make([]pathNode, 0, n)
	res = append(res, p[0])
	for i := 1; i < n-1; i++ {
		if p[i].Pinned {
			res = append(res, p[i])
			continue
		}
		in := p[i].Pos.Sub(res[len(res)-1].Pos)
		out := p[i+1].Pos.Sub(p[i].Pos)
		inLen, outLen := in.Length(), out.Length()
		if inLen < minDist {
			continue
		}
		if outLen > 0 {
			cos := math32.Clamp(in.Dot(out)/(inLen*outLen), -1, 1)
			if math32.Acos(cos) < minAngle {
				continue
			}
		}
		res = append(res, p[i])
	}
	return append(res, p[n-1])
}
