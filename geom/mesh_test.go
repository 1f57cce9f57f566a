// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad(z float32) *Mesh {
	ms := &Mesh{}
	n := math32.Vec3(0, 0, 1)
	a := ms.AddVertex(math32.Vec3(0, 0, z), n, math32.Vec2(0, 0))
	b := ms.AddVertex(math32.Vec3(1, 0, z), n, math32.Vec2(1, 0))
	c := ms.AddVertex(math32.Vec3(1, 1, z), n, math32.Vec2(1, 1))
	d := ms.AddVertex(math32.Vec3(0, 1, z), n, math32.Vec2(0, 1))
	ms.AddQuad(a, b, c, d)
	return ms
}

func TestMesh(t *testing.T) {
	var empty *Mesh
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.NumVertex())

	ms := quad(2)
	assert.False(t, ms.IsEmpty())
	assert.Equal(t, 4, ms.NumVertex())
	assert.Equal(t, 6, ms.NumIndex())
	assert.Equal(t, 2, ms.NumTriangles())
	assert.False(t, ms.HasColor())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3}, ms.Index)
	assert.Equal(t, math32.Vec3(1, 1, 2), ms.VertexAt(2))
	assert.Equal(t, math32.Vec2(0, 1), ms.TexCoordAt(3))

	bb := ms.BBox()
	assert.Equal(t, math32.Vec3(0, 0, 2), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 2), bb.Max)

	ms.Reset()
	assert.True(t, ms.IsEmpty())
	assert.Equal(t, 0, ms.NumIndex())
}

func TestMerge(t *testing.T) {
	a, b := quad(0), quad(1)
	b.Color = []color.RGBA{colors.Green, colors.Green, colors.Green, colors.Green}

	nv, ni, hasColor := Size(a, b, nil)
	assert.Equal(t, 8, nv)
	assert.Equal(t, 12, ni)
	assert.True(t, hasColor)

	ms := Merge(colors.White, a, nil, b)
	require.Equal(t, 8, ms.NumVertex())
	assert.Equal(t, 4, ms.NumTriangles())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, ms.Index)
	assert.Equal(t, math32.Vec3(1, 1, 1), ms.VertexAt(6))
	require.Len(t, ms.Color, 8)
	assert.Equal(t, colors.White, ms.Color[0])
	assert.Equal(t, colors.Green, ms.Color[7])

	plain := Merge(colors.White, a, quad(3))
	assert.False(t, plain.HasColor())
	assert.True(t, Merge(colors.White).IsEmpty())
}

func TestRing(t *testing.T) {
	rg := &Ring{
		Center:   math32.Vec3(0, 1, 0),
		Tangent:  math32.Vec3(0, 1, 0),
		Normal:   math32.Vec3(1, 0, 0),
		Binormal: math32.Vec3(0, 0, -1),
		Radius:   0.5,
	}
	p := rg.Point(0)
	assert.Equal(t, math32.Vec3(0.5, 1, 0), p)
	q := rg.Point(math32.Pi / 2)
	tolassert.EqualTol(t, 0, q.X, 1e-6)
	tolassert.EqualTol(t, -0.5, q.Z, 1e-6)
	tolassert.EqualTol(t, 1, rg.Direction(1).Length(), 1e-6)
}
