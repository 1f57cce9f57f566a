// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import "cogentcore.org/core/math32"

// Node is one sample point along the path of a [Root], with the local
// growth state needed to produce the next node.
type Node struct {

	// Pos is the position of the node.
	Pos math32.Vector3

	// PrimaryDir is the running weighted average of the travel direction.
	PrimaryDir math32.Vector3

	// Adhesion is the direction toward the nearest surface within
	// adhesion range, or zero if there is none.
	Adhesion math32.Vector3

	// SmoothAdhesion is Adhesion low-pass filtered over the preceding
	// nodes, used to align leaves. It is filled in by [SmoothAdhesion]
	// once the root has stopped growing.
	SmoothAdhesion math32.Vector3

	// Length is the distance from the previous node.
	Length float32

	// Cumulative is the distance along the path from the root origin.
	Cumulative float32

	// Floating is the distance traveled since the last surface contact.
	Floating float32

	// Climbing is whether the node is within adhesion range of a surface.
	Climbing bool
}

// smoothAdhesionBlend is the weight of each new adhesion vector
// in the running SmoothAdhesion average.
const smoothAdhesionBlend = 0.4

// SmoothAdhesion fills in [Node.SmoothAdhesion] for all of the given nodes
// as an exponential moving average of [Node.Adhesion] along the path.
// A node with no adhesion of its own still carries a decaying average of
// its neighbors, so leaves keep turning smoothly across short gaps.
func SmoothAdhesion(nodes []Node) {
	var avg math32.Vector3
	for i := range nodes {
		if i == 0 {
			avg = nodes[i].Adhesion
		} else {
			avg = avg.Lerp(nodes[i].Adhesion, smoothAdhesionBlend)
		}
		nodes[i].SmoothAdhesion = avg
	}
}
