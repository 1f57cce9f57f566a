// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collide provides collision oracles for vine growth:
// simple solids, triangle meshes, and scenes combining them.
package collide

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
)

// None is an oracle with no surfaces at all.
type None struct{}

func (None) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	return vine.Hit{}, false, nil
}

// Func adapts a function to the [vine.Oracle] interface.
type Func func(pos math32.Vector3, radius float32) (vine.Hit, bool, error)

func (f Func) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	return f(pos, radius)
}

// Scene is an oracle combining other oracles, reporting the nearest
// surface of any of them.
type Scene []vine.Oracle

func (sc Scene) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	var best vine.Hit
	found := false
	for _, or := range sc {
		hit, ok, err := or.Nearest(pos, radius)
		if err != nil {
			return vine.Hit{}, false, err
		}
		if ok && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	return best, found, nil
}

// Plane is the solid half-space below a plane, such as the ground.
type Plane struct {

	// Point is any point on the plane.
	Point math32.Vector3

	// Normal is the unit normal pointing out of the solid.
	Normal math32.Vector3
}

// Ground returns a horizontal ground plane at the given height.
func Ground(height float32) Plane {
	return Plane{Point: math32.Vec3(0, height, 0), Normal: vine.Up}
}

func (pl Plane) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	d := pos.Sub(pl.Point).Dot(pl.Normal)
	dist := math32.Abs(d)
	if dist > radius {
		return vine.Hit{}, false, nil
	}
	return vine.Hit{Point: pos.Sub(pl.Normal.MulScalar(d)), Normal: pl.Normal, Distance: dist}, true, nil
}

// Sphere is a solid ball.
type Sphere struct {
	Center math32.Vector3
	Radius float32
}

func (sp Sphere) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	d := pos.Sub(sp.Center)
	ln := d.Length()
	dist := math32.Abs(ln - sp.Radius)
	if dist > radius {
		return vine.Hit{}, false, nil
	}
	n := vine.Up
	if ln > 1e-6 {
		n = d.DivScalar(ln)
	}
	return vine.Hit{Point: sp.Center.Add(n.MulScalar(sp.Radius)), Normal: n, Distance: dist}, true, nil
}

// Box is a solid axis-aligned box.
type Box struct {
	Min, Max math32.Vector3
}

// NewBox returns a box with the given center and size.
func NewBox(center, size math32.Vector3) Box {
	h := size.MulScalar(0.5)
	return Box{Min: center.Sub(h), Max: center.Add(h)}
}

func (bx Box) Nearest(pos math32.Vector3, radius float32) (vine.Hit, bool, error) {
	q := math32.Vec3(
		math32.Clamp(pos.X, bx.Min.X, bx.Max.X),
		math32.Clamp(pos.Y, bx.Min.Y, bx.Max.Y),
		math32.Clamp(pos.Z, bx.Min.Z, bx.Max.Z))
	if q != pos {
		d := pos.Sub(q)
		dist := d.Length()
		if dist > radius {
			return vine.Hit{}, false, nil
		}
		return vine.Hit{Point: q, Normal: d.DivScalar(dist), Distance: dist}, true, nil
	}
	// inside: push out through the nearest face
	faces := [6]struct {
		depth float32
		n     math32.Vector3
	}{
		{pos.X - bx.Min.X, math32.Vec3(-1, 0, 0)},
		{bx.Max.X - pos.X, math32.Vec3(1, 0, 0)},
		{pos.Y - bx.Min.Y, math32.Vec3(0, -1, 0)},
		{bx.Max.Y - pos.Y, math32.Vec3(0, 1, 0)},
		{pos.Z - bx.Min.Z, math32.Vec3(0, 0, -1)},
		{bx.Max.Z - pos.Z, math32.Vec3(0, 0, 1)},
	}
	best := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].depth < faces[best].depth {
			best = i
		}
	}
	f := faces[best]
	if f.depth > radius {
		return vine.Hit{}, false, nil
	}
	return vine.Hit{Point: pos.Add(f.n.MulScalar(f.depth)), Normal: f.n, Distance: f.depth}, true, nil
}
