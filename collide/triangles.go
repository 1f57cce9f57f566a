// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"math"
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"github.com/golang/geo/r3"
)

// Triangle is one triangle of a [Triangles] surface. Its points wind
// counter-clockwise when seen from outside the surface.
type Triangle struct {
	A, B, C r3.Vector
}

// Normal returns the outward unit normal of the triangle,
// or zero if it is degenerate.
func (t *Triangle) Normal() r3.Vector {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Norm2() == 0 {
		return r3.Vector{}
	}
	return n.Normalize()
}

func (t *Triangle) centroid() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// closest returns the point of the triangle closest to p.
func (t *Triangle) closest(p r3.Vector) r3.Vector {
	a, b, c := t.A, t.B, t.C
	ab, ac, ap := b.Sub(a), c.Sub(a), p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}
	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}
	denom := 1 / (va + vb + vc)
	v, w := vb*denom, vc*denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// bvhNode is a node of a bounding volume hierarchy over triangles:
// either an inner node with two children or a leaf with triangles.
type bvhNode struct {
	min, max    r3.Vector
	left, right *bvhNode
	triangles   []*Triangle
}

// maxTrianglesPerLeaf is the threshold for splitting BVH nodes.
const maxTrianglesPerLeaf = 4

func buildBVH(tris []*Triangle) *bvhNode {
	if len(tris) == 0 {
		return nil
	}
	nd := &bvhNode{}
	nd.min, nd.max = trianglesAABB(tris)
	if len(tris) <= maxTrianglesPerLeaf {
		nd.triangles = tris
		return nd
	}
	ext := nd.max.Sub(nd.min)
	axis := 0
	if ext.Y > ext.X && ext.Y > ext.Z {
		axis = 1
	} else if ext.Z > ext.X && ext.Z > ext.Y {
		axis = 2
	}
	sort.Slice(tris, func(i, j int) bool {
		ci, cj := tris[i].centroid(), tris[j].centroid()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})
	mid := len(tris) / 2
	nd.left = buildBVH(tris[:mid])
	nd.right = buildBVH(tris[mid:])
	return nd
}

func trianglesAABB(tris []*Triangle) (mn, mx r3.Vector) {
	mn = r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	mx = r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, t := range tris {
		for _, p := range [3]r3.Vector{t.A, t.B, t.C} {
			mn = r3.Vector{X: math.Min(mn.X, p.X), Y: math.Min(mn.Y, p.Y), Z: math.Min(mn.Z, p.Z)}
			mx = r3.Vector{X: math.Max(mx.X, p.X), Y: math.Max(mx.Y, p.Y), Z: math.Max(mx.Z, p.Z)}
		}
	}
	return
}

// distance returns the distance from p to the node's bounding box.
func (nd *bvhNode) distance(p r3.Vector) float64 {
	dx := math.Max(0, math.Max(nd.min.X-p.X, p.X-nd.max.X))
	dy := math.Max(0, math.Max(nd.min.Y-p.Y, p.Y-nd.max.Y))
	dz := math.Max(0, math.Max(nd.min.Z-p.Z, p.Z-nd.max.Z))
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// nearest updates best with any triangle closer to p than bestDist.
func (nd *bvhNode) nearest(p r3.Vector, best **Triangle, bestPt *r3.Vector, bestDist *float64) {
	if nd == nil || nd.distance(p) > *bestDist {
		return
	}
	if nd.triangles != nil {
		for _, t := range nd.triangles {
			q := t.closest(p)
			if d := q.Distance(p); d <= *bestDist {
				*best, *bestPt, *bestDist = t, q, d
			}
		}
		return
	}
	first, second := nd.left, nd.right
	if second.distance(p) < first.distance(p) {
		first, second = second, first
	}
	first.nearest(p, best, bestPt, bestDist)
	second.nearest(p, best, bestPt, bestDist)
}

// Triangles is an oracle for a surface made of triangles,
// such as an imported mesh, searched with a bounding volume hierarchy.
type Triangles struct {
	root *bvhNode
	n    int
}

// NewTriangles returns a new [Triangles] oracle for the given triangles.
func NewTriangles(tris []Triangle) *Triangles {
	ptrs := make([]*Triangle, len(tris))
	for i := range tris {
		t := tris[i]
		ptrs[i] = &t
	}
	return &Triangles{root: buildBVH(ptrs), n: len(tris)}
}

// NewTrianglesFromMesh returns a new [Triangles] oracle from the given
// indexed vertex positions, three indexes per triangle.
func NewTrianglesFromMesh(vertex math32.ArrayF32, index math32.ArrayU32) *Triangles {
	pt := func(i uint32) r3.Vector {
		return r3.Vector{X: float64(vertex[3*i]), Y: float64(vertex[3*i+1]), Z: float64(vertex[3*i+2])}
	}
	tris := make([]Triangle, 0, len(index)/3)
	for i := 0; i+2 < len(index); i += 3 {
		tris = append(tris, Triangle{pt(index[i]), pt(index[i+1]), pt(index[i+2])})
	}
	return NewTriangles(tris)
}

// Len returns the number of triangles.
func (tr *Triangles) Len() int {
	return tr.n
}

func (tr *Triangles) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	p := toR3(pos)
	var best *Triangle
	var bestPt r3.Vector
	bestDist := float64(radius)
	tr.root.nearest(p, &best, &bestPt, &bestDist)
	if best == nil {
		return vine.Hit{}, false, nil
	}
	n := best.Normal()
	if n == (r3.Vector{}) {
		n = p.Sub(bestPt)
		if n.Norm2() == 0 {
			return vine.Hit{}, false, nil
		}
		n = n.Normalize()
	}
	return vine.Hit{Point: fromR3(bestPt), Normal: fromR3(n), Distance: float32(bestDist)}, true, nil
}

func toR3(v math32.Vector3) r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func fromR3(v r3.Vector) math32.Vector3 {
	return math32.Vec3(float32(v.X), float32(v.Y), float32(v.Z))
}

// BoxTriangles returns the 12 outward-wound triangles of the surface of
// the axis-aligned box with the given corners.
func BoxTriangles(mn, mx math32.Vector3) []Triangle {
	p := func(x, y, z int) r3.Vector {
		v := toR3(mn)
		if x > 0 {
			v.X = float64(mx.X)
		}
		if y > 0 {
			v.Y = float64(mx.Y)
		}
		if z > 0 {
			v.Z = float64(mx.Z)
		}
		return v
	}
	// each face as a quad wound counter-clockwise from outside
	faces := [6][4]r3.Vector{
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // +z
		{p(1, 0, 0), p(0, 0, 0), p(0, 1, 0), p(1, 1, 0)}, // -z
		{p(1, 0, 1), p(1, 0, 0), p(1, 1, 0), p(1, 1, 1)}, // +x
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // -x
		{p(0, 1, 1), p(1, 1, 1), p(1, 1, 0), p(0, 1, 0)}, // +y
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // -y
	}
	tris := make([]Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris, Triangle{f[0], f[1], f[2]}, Triangle{f[0], f[2], f[3]})
	}
	return tris
}
