// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"image/color"

	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"cogentcore.org/vine/geom"
)

// Exposure returns how exposed to light a node with the given smoothed
// adhesion vector is, from 0 to 1. A node hanging in the air is fully
// exposed; a node on a surface is as exposed as that surface faces up.
func Exposure(smoothAdhesion math32.Vector3) float32 {
	ln := smoothAdhesion.Length()
	if ln < 1e-6 {
		return 1
	}
	return math32.Clamp(-smoothAdhesion.Dot(vine.Up)/ln, 0, 1)
}

// LeafProbability returns the chance of a leaf at a node with the given
// exposure, raised by the sunlight bonus of the profile.
func LeafProbability(pf *vine.Profile, exposure float32) float32 {
	return math32.Min(pf.LeafProbability*(1+pf.LeafSunlightBonus*exposure), 1)
}

// LeafColor returns the leaf color at the given progress along a root,
// from the gradient if vertex colors are on and grad is non-nil,
// and otherwise the uniform leaf color of the profile.
func LeafColor(pf *vine.Profile, grad *gradient.Linear, progress float32) color.RGBA {
	if !pf.UseVertexColors || grad == nil {
		return pf.LeafColor
	}
	return vine.GradientColor(grad, progress)
}

// Leaves returns the leaf mesh for the given nodes: at each node, a leaf
// quad is emitted with [LeafProbability], and a second one with half that
// chance. Leaves face away from the surface the node climbs on, follow the
// growth direction, and are colored by their progress along the root.
func Leaves(nodes []vine.Node, pf *vine.Profile, grad *gradient.Linear, rnd vine.Rand) *geom.Mesh {
	ms := &geom.Mesh{}
	if len(nodes) < 2 {
		return ms
	}
	total := nodes[len(nodes)-1].Cumulative
	for i := range nodes {
		nd := &nodes[i]
		p := LeafProbability(pf, Exposure(nd.SmoothAdhesion))
		if rnd.Float32() >= p {
			continue
		}
		progress := float32(0)
		if total > 0 {
			progress = nd.Cumulative / total
		}
		clr := LeafColor(pf, grad, progress)
		addLeaf(ms, nd, pf, clr, rnd)
		if rnd.Float32() < 0.5*p {
			addLeaf(ms, nd, pf, clr, rnd)
		}
	}
	return ms
}

// addLeaf adds one randomly placed leaf quad at the given node.
func addLeaf(ms *geom.Mesh, nd *vine.Node, pf *vine.Profile, clr color.RGBA, rnd vine.Rand) {
	norm := unitOr(nd.SmoothAdhesion.Negate(), vine.Up)
	along := nd.PrimaryDir.Sub(norm.MulScalar(nd.PrimaryDir.Dot(norm)))
	along = unitOr(along, perpendicular(norm))
	along = rotateAbout(along, norm, (rnd.Float32()-0.5)*math32.Pi/2)
	side := along.Cross(norm)

	jit := rnd.UnitVector()
	jit = jit.Sub(norm.MulScalar(jit.Dot(norm))).MulScalar(0.25 * pf.LeafSize)
	size := pf.LeafSize * (0.75 + 0.5*rnd.Float32())
	h := 0.5 * size
	ctr := nd.Pos.Add(norm.MulScalar(0.1 * pf.LeafSize)).Add(jit)

	sh := side.MulScalar(h)
	ah := along.MulScalar(h)
	v0 := ms.AddVertex(ctr.Sub(sh).Sub(ah), norm, math32.Vec2(0, 0))
	v1 := ms.AddVertex(ctr.Add(sh).Sub(ah), norm, math32.Vec2(1, 0))
	v2 := ms.AddVertex(ctr.Add(sh).Add(ah), norm, math32.Vec2(1, 1))
	v3 := ms.AddVertex(ctr.Sub(sh).Add(ah), norm, math32.Vec2(0, 1))
	ms.Color = append(ms.Color, clr, clr, clr, clr)
	ms.AddQuad(v0, v1, v2, v3)
}

// rotateAbout rotates v around the unit axis by the given angle in radians.
func rotateAbout(v, axis math32.Vector3, angle float32) math32.Vector3 {
	s, c := math32.Sincos(angle)
	return v.MulScalar(c).
		Add(axis.Cross(v).MulScalar(s)).
		Add(axis.MulScalar(axis.Dot(v) * (1 - c)))
}
