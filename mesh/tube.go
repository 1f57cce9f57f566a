// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"cogentcore.org/vine/geom"
)

// MinRadius is the smallest radius of a branch tube; taper never
// thins a branch below it.
const MinRadius = 1e-4

// Radius returns the tube radius at the given progress along a branch
// (0 at its base, 1 at its tip), for the given base radius and taper.
func Radius(base, taper, progress float32) float32 {
	return max(base*(1-taper*progress), MinRadius)
}

// Branch returns the tube mesh around the path of the given nodes, along
// with its rings. The path is smoothed and optimized according to the
// profile, and nodes in pinned are kept so that child branches can attach
// to their rings. If attach is non-nil, the tube starts with a copy of
// that ring, which is the ring of the parent branch where this one
// branches off, and tapers from its radius. Fewer than 2 nodes give an
// empty mesh.
func Branch(nodes []vine.Node, pf *vine.Profile, attach *geom.Ring, pinned map[int]bool) (*geom.Mesh, []geom.Ring) {
	ms := &geom.Mesh{}
	if len(nodes) < 2 {
		return ms, nil
	}
	var start *math32.Vector3
	if attach != nil {
		start = &attach.Center
	}
	p := newPath(nodes, pinned, start)
	smoothPath(p, pf.BranchSmooth)
	p = optimizePath(p, pf.BranchOptimize, pf.StepDistance)

	rings := frames(p, attach)
	total := nodes[len(nodes)-1].Cumulative
	base := pf.BranchSize
	u0 := float32(0)
	if attach != nil {
		base = min(base, attach.Radius)
		u0 = attach.U
	}
	circ := 2 * math32.Pi * max(pf.BranchSize, MinRadius)
	for i := range rings {
		rg := &rings[i]
		if i == 0 && attach != nil {
			continue
		}
		progress := float32(0)
		if total > 0 {
			progress = p[i].Cum / total
		}
		rg.Radius = Radius(base, pf.BranchTaper, progress)
		rg.U = u0 + p[i].Cum/circ
	}

	segs := pf.BranchSegments
	for _, rg := range rings {
		for j := 0; j <= segs; j++ {
			angle := 2 * math32.Pi * float32(j) / float32(segs)
			ms.AddVertex(rg.Point(angle), rg.Direction(angle), math32.Vec2(rg.U, float32(j)/float32(segs)))
		}
	}
	stride := uint32(segs + 1)
	for r := 1; r < len(rings); r++ {
		cur := uint32(r) * stride
		prev := cur - stride
		for j := uint32(1); j <= uint32(segs); j++ {
			a := cur + j - 1
			b := prev + j - 1
			c := prev + j
			d := cur + j
			ms.AddTriangle(a, b, d)
			ms.AddTriangle(b, c, d)
		}
	}
	return ms, rings
}

// frames returns a ring for each path node, with a frame that is
// carried along the path by projecting the previous normal onto the
// plane of each new tangent, so the tube does not twist and no fixed
// up vector is needed. The radius and texture coordinate are left to
// the caller, except for an attach ring, which is copied as the first.
func frames(p []pathNode, attach *geom.Ring) []geom.Ring {
	n := len(p)
	rings := make([]geom.Ring, n)
	var prevT, prevN math32.Vector3
	for i := range p {
		var t math32.Vector3
		switch i {
		case 0:
			t = p[1].Pos.Sub(p[0].Pos)
		case n - 1:
			t = p[n-1].Pos.Sub(p[n-2].Pos)
		default:
			t = p[i+1].Pos.Sub(p[i-1].Pos)
		}
		t = unitOr(t, prevT)
		if t == (math32.Vector3{}) {
			t = vine.Down
		}
		var nv math32.Vector3
		if i == 0 {
			if attach != nil {
				nv = attach.Normal
			} else {
				nv = perpendicular(t)
			}
		} else {
			nv = prevN
		}
		nv = unitOr(nv.Sub(t.MulScalar(nv.Dot(t))), math32.Vector3{})
		if nv == (math32.Vector3{}) {
			nv = perpendicular(t)
		}
		rings[i] = geom.Ring{
			Node:     p[i].Node,
			Center:   p[i].Pos,
			Tangent:  t,
			Normal:   nv,
			Binormal: t.Cross(nv),
		}
		prevT, prevN = t, nv
	}
	if attach != nil {
		rg := *attach
		rg.Node = p[0].Node
		rings[0] = rg
	}
	return rings
}

// unitOr returns v normalized, or def if v is too short.
func unitOr(v, def math32.Vector3) math32.Vector3 {
	ln := v.Length()
	if ln < 1e-6 {
		return def
	}
	return v.DivScalar(ln)
}

// perpendicular returns a unit vector perpendicular to the unit vector v,
// crossing with the world axis least aligned with v.
func perpendicular(v math32.Vector3) math32.Vector3 {
	ax := math32.Vec3(1, 0, 0)
	least := math32.Abs(v.X)
	if math32.Abs(v.Y) < least {
		ax = math32.Vec3(0, 1, 0)
		least = math32.Abs(v.Y)
	}
	if math32.Abs(v.Z) < least {
		ax = math32.Vec3(0, 0, 1)
	}
	return v.Cross(ax).Normal()
}
