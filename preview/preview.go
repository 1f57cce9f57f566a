// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview renders quick orthographic images of a vine graph:
// its raw growth segments and the edges of its meshes.
package preview

import (
	"image/color"
	"io"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"cogentcore.org/vine/geom"
	"github.com/gogpu/gg"
)

// Views are the axis-aligned directions a preview can look from.
type Views int32

const (
	// Front looks down the -Z axis, showing X and Y.
	Front Views = iota

	// Side looks down the -X axis, showing Z and Y.
	Side

	// Top looks down the -Y axis, showing X and Z.
	Top
)

// Options are the rendering options for a preview.
type Options struct {

	// Width and Height are the image size in pixels.
	Width, Height int

	// View is the direction to look from.
	View Views

	// Margin is the border around the drawing in pixels.
	Margin float64

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// Background is the background color.
	Background color.RGBA

	// Branch is the color of branch mesh edges.
	Branch color.RGBA

	// Debug is the color of raw growth segments.
	Debug color.RGBA
}

// DefaultOptions returns the default preview options.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		Margin:     16,
		LineWidth:  1,
		Background: colors.White,
		Branch:     color.RGBA{90, 60, 30, 255},
		Debug:      color.RGBA{220, 30, 30, 255},
	}
}

// project maps a world position to the 2D plane of the view.
func (v Views) project(p math32.Vector3) math32.Vector2 {
	switch v {
	case Side:
		return math32.Vec2(p.Z, p.Y)
	case Top:
		return math32.Vec2(p.X, p.Z)
	default:
		return math32.Vec2(p.X, p.Y)
	}
}

// Bounds returns the bounding box of everything a preview of the graph draws.
func Bounds(g *vine.Graph) math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range g.DebugLines {
		bb.ExpandByPoint(p)
	}
	for _, ms := range []*geom.Mesh{g.BranchMesh, g.LeafMesh} {
		if ms == nil || ms.IsEmpty() {
			continue
		}
		mb := ms.BBox()
		bb.ExpandByPoint(mb.Min)
		bb.ExpandByPoint(mb.Max)
	}
	if bb.IsEmpty() {
		bb.ExpandByPoint(g.Seed)
	}
	return bb
}

// transform maps projected world coordinates to pixels, keeping the
// aspect ratio and flipping the vertical axis.
type transform struct {
	min       math32.Vector2
	scale     float64
	ox, oy, h float64
}

func newTransform(bb math32.Box3, opt *Options) *transform {
	a, b := opt.View.project(bb.Min), opt.View.project(bb.Max)
	mn := math32.Vec2(math32.Min(a.X, b.X), math32.Min(a.Y, b.Y))
	mx := math32.Vec2(math32.Max(a.X, b.X), math32.Max(a.Y, b.Y))
	w := float64(opt.Width) - 2*opt.Margin
	h := float64(opt.Height) - 2*opt.Margin
	sx, sy := float64(mx.X-mn.X), float64(mx.Y-mn.Y)
	scale := 1.0
	if sx > 0 || sy > 0 {
		scale = min(w/max(sx, 1e-9), h/max(sy, 1e-9))
	}
	return &transform{
		min:   mn,
		scale: scale,
		ox:    opt.Margin + (w-sx*scale)/2,
		oy:    opt.Margin + (h-sy*scale)/2,
		h:     float64(opt.Height),
	}
}

func (tr *transform) point(v Views, p math32.Vector3) (x, y float64) {
	q := v.project(p)
	x = tr.ox + float64(q.X-tr.min.X)*tr.scale
	y = tr.h - (tr.oy + float64(q.Y-tr.min.Y)*tr.scale)
	return
}

// Draw renders the graph into a new drawing context, which the caller
// must close. Meshes are drawn as wireframes: branches in the branch
// color and leaves in their vertex colors.
func Draw(g *vine.Graph, opt Options) (*gg.Context, error) {
	dc := gg.NewContext(opt.Width, opt.Height)
	dc.SetColor(opt.Background)
	dc.DrawRectangle(0, 0, float64(opt.Width), float64(opt.Height))
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, err
	}
	dc.SetLineWidth(opt.LineWidth)
	tr := newTransform(Bounds(g), &opt)

	if g.BranchMesh != nil {
		if err := drawMesh(dc, tr, &opt, g.BranchMesh, opt.Branch); err != nil {
			dc.Close()
			return nil, err
		}
	}
	if g.LeafMesh != nil {
		if err := drawMesh(dc, tr, &opt, g.LeafMesh, opt.Branch); err != nil {
			dc.Close()
			return nil, err
		}
	}
	if len(g.DebugLines) > 1 {
		dc.SetColor(opt.Debug)
		for i := 0; i+1 < len(g.DebugLines); i += 2 {
			x1, y1 := tr.point(opt.View, g.DebugLines[i])
			x2, y2 := tr.point(opt.View, g.DebugLines[i+1])
			dc.DrawLine(x1, y1, x2, y2)
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// drawMesh strokes the edges of every triangle of the mesh, using the
// color of the first vertex of each triangle if the mesh has colors.
func drawMesh(dc *gg.Context, tr *transform, opt *Options, ms *geom.Mesh, clr color.RGBA) error {
	ntri := ms.NumTriangles()
	if ntri == 0 {
		return nil
	}
	if !ms.HasColor() {
		dc.SetColor(clr)
	}
	for t := range ntri {
		a, b, c := ms.Index[3*t], ms.Index[3*t+1], ms.Index[3*t+2]
		if ms.HasColor() {
			dc.SetColor(ms.Color[a])
		}
		ax, ay := tr.point(opt.View, ms.VertexAt(int(a)))
		bx, by := tr.point(opt.View, ms.VertexAt(int(b)))
		cx, cy := tr.point(opt.View, ms.VertexAt(int(c)))
		dc.MoveTo(ax, ay)
		dc.LineTo(bx, by)
		dc.LineTo(cx, cy)
		dc.ClosePath()
		if ms.HasColor() {
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}
	if !ms.HasColor() {
		return dc.Stroke()
	}
	return nil
}

// Save renders the graph and writes it to the given PNG file.
func Save(g *vine.Graph, filename string, opt Options) error {
	dc, err := Draw(g, opt)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(filename)
}

// Encode renders the graph and writes it as PNG to the given writer.
func Encode(g *vine.Graph, w io.Writer, opt Options) error {
	dc, err := Draw(g, opt)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}
