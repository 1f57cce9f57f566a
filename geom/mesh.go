// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the triangle mesh buffers produced by vine
// growth, along with the tube ring frames used to join branches.
package geom

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Mesh is an indexed triangle mesh, storing its values in flat arrays
// suitable for handing to any renderer.
// Per-vertex Color is optional; when present it has one entry per vertex.
type Mesh struct {

	// Vertex has 3 floats per vertex position.
	Vertex math32.ArrayF32

	// Normal has 3 floats per vertex normal.
	Normal math32.ArrayF32

	// TexCoord has 2 floats per vertex texture coordinate.
	TexCoord math32.ArrayF32

	// Color has one color per vertex, or is empty.
	Color []color.RGBA

	// Index has 3 vertex indexes per triangle.
	Index math32.ArrayU32
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	if ms == nil {
		return 0
	}
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of indexes.
func (ms *Mesh) NumIndex() int {
	if ms == nil {
		return 0
	}
	return len(ms.Index)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return ms.NumIndex() / 3
}

// IsEmpty returns true if the mesh has no triangles.
func (ms *Mesh) IsEmpty() bool {
	return ms.NumIndex() == 0
}

// HasColor returns true if the mesh has per-vertex colors.
func (ms *Mesh) HasColor() bool {
	return ms != nil && len(ms.Color) > 0
}

// AddVertex adds a vertex with the given position, normal and texture
// coordinate, returning its index.
func (ms *Mesh) AddVertex(pos, norm math32.Vector3, tex math32.Vector2) uint32 {
	idx := uint32(ms.NumVertex())
	ms.Vertex = append(ms.Vertex, pos.X, pos.Y, pos.Z)
	ms.Normal = append(ms.Normal, norm.X, norm.Y, norm.Z)
	ms.TexCoord = append(ms.TexCoord, tex.X, tex.Y)
	return idx
}

// AddTriangle adds a triangle with the given vertex indexes.
func (ms *Mesh) AddTriangle(a, b, c uint32) {
	ms.Index = append(ms.Index, a, b, c)
}

// AddQuad adds the two triangles of the quad a, b, c, d,
// given in counter-clockwise order.
func (ms *Mesh) AddQuad(a, b, c, d uint32) {
	ms.Index = append(ms.Index, a, b, c, a, c, d)
}

// VertexAt returns the position of the vertex at the given index.
func (ms *Mesh) VertexAt(idx int) math32.Vector3 {
	i := idx * 3
	return math32.Vec3(ms.Vertex[i], ms.Vertex[i+1], ms.Vertex[i+2])
}

// TexCoordAt returns the texture coordinate of the vertex at the given index.
func (ms *Mesh) TexCoordAt(idx int) math32.Vector2 {
	i := idx * 2
	return math32.Vec2(ms.TexCoord[i], ms.TexCoord[i+1])
}

// BBox returns the bounding box of all vertices,
// which is empty if there are none.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	n := ms.NumVertex()
	for i := range n {
		bb.ExpandByPoint(ms.VertexAt(i))
	}
	return bb
}

// Reset removes all data while keeping the allocated memory.
func (ms *Mesh) Reset() {
	ms.Vertex = ms.Vertex[:0]
	ms.Normal = ms.Normal[:0]
	ms.TexCoord = ms.TexCoord[:0]
	ms.Color = ms.Color[:0]
	ms.Index = ms.Index[:0]
}
