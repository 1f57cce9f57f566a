// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "image/color"

// Size returns the total number of vertex and index points in the given
// meshes, and whether any of them has per-vertex colors.
func Size(meshes ...*Mesh) (numVertex, numIndex int, hasColor bool) {
	for _, ms := range meshes {
		numVertex += ms.NumVertex()
		numIndex += ms.NumIndex()
		hasColor = hasColor || ms.HasColor()
	}
	return
}

// Merge returns one mesh holding all of the given meshes, with the indexes
// of each mesh offset by the number of vertices that precede it.
// Nil meshes are skipped. If any mesh has colors, meshes without colors
// are filled with the given default color.
func Merge(def color.RGBA, meshes ...*Mesh) *Mesh {
	nv, ni, hasColor := Size(meshes...)
	res := &Mesh{}
	res.Vertex = make([]float32, 0, nv*3)
	res.Normal = make([]float32, 0, nv*3)
	res.TexCoord = make([]float32, 0, nv*2)
	res.Index = make([]uint32, 0, ni)
	if hasColor {
		res.Color = make([]color.RGBA, 0, nv)
	}
	for _, ms := range meshes {
		if ms == nil {
			continue
		}
		vo := uint32(res.NumVertex())
		res.Vertex = append(res.Vertex, ms.Vertex...)
		res.Normal = append(res.Normal, ms.Normal...)
		res.TexCoord = append(res.TexCoord, ms.TexCoord...)
		if hasColor {
			if ms.HasColor() {
				res.Color = append(res.Color, ms.Color...)
			} else {
				for range ms.NumVertex() {
					res.Color = append(res.Color, def)
				}
			}
		}
		for _, idx := range ms.Index {
			res.Index = append(res.Index, vo+idx)
		}
	}
	return res
}
