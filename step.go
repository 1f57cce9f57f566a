// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrOracle wraps all collision oracle failures during growth.
var ErrOracle = errors.New("vine: collision oracle failed")

// lengthTolerance is the fraction of a step by which a root may fall
// short of the maximum length and still end, absorbing rounding in the
// final partial step.
const lengthTolerance = 1e-3

const (
	// stallFraction is the fraction of the planned step below which
	// a step makes no progress.
	stallFraction = 1e-2

	// maxStalls is the number of steps in a row without progress
	// after which a root ends with [EndStalled].
	maxStalls = 8
)

// Stepper advances roots of a [Graph] one step at a time.
type Stepper struct {

	// Oracle answers the collision queries.
	Oracle Oracle

	// Rand is the source of randomness.
	Rand Rand

	// Blender combines the direction components; nil means [WeightedSum].
	Blender Blender
}

func (st *Stepper) blender() Blender {
	if st.Blender == nil {
		return WeightedSum{}
	}
	return st.Blender
}

// nearest queries the oracle, wrapping any failure.
func (st *Stepper) nearest(idx int, pos math32.Vector3, radius float32) (Hit, bool, error) {
	hit, ok, err := st.Oracle.Nearest(pos, radius)
	if err != nil {
		return hit, false, fmt.Errorf("%w: root %d at %v: %w", ErrOracle, idx, pos, err)
	}
	return hit, ok, nil
}

// Start fills in the surface state of the first node of the given root
// from the oracle. Child roots start from a copy of their parent's node
// and do not need this.
func (st *Stepper) Start(g *Graph, idx int) error {
	rt := g.Roots[idx]
	nd := &rt.Nodes[0]
	hit, ok, err := st.nearest(idx, nd.Pos, g.Profile.AdhesionRange())
	if err != nil {
		return err
	}
	nd.Climbing = ok
	if ok {
		nd.Adhesion = adhesion(nd.Pos, hit)
	}
	return nil
}

// Step advances the given root by one step, which can spawn a child root
// and end the root. It does nothing if the root is not alive.
func (st *Stepper) Step(g *Graph, idx int) error {
	rt := g.Roots[idx]
	if !rt.Alive {
		return nil
	}
	pf := g.Profile
	last := *rt.Last()
	rng := pf.AdhesionRange()

	var adh math32.Vector3
	hit, ok, err := st.nearest(idx, last.Pos, rng)
	if err != nil {
		return err
	}
	if ok {
		adh = adhesion(last.Pos, hit)
	}

	dir := st.blender().Blend(pf.Weights(), last.PrimaryDir, st.Rand.UnitVector(), Down, adh)
	if dir == (math32.Vector3{}) {
		dir = last.PrimaryDir
	}

	step := min(pf.StepDistance, pf.MaxLength-last.Cumulative)
	nd, normal, err := st.advance(idx, pf, last.Pos, dir, step)
	if err != nil {
		return err
	}
	if nd.Length < stallFraction*step && nd.Climbing {
		// slide along the surface instead of pushing into it
		tan := normalOrZero(dir.Sub(normal.MulScalar(dir.Dot(normal))))
		if tan != (math32.Vector3{}) {
			snd, _, err := st.advance(idx, pf, last.Pos, tan, step)
			if err != nil {
				return err
			}
			if snd.Length > nd.Length {
				nd, dir = snd, tan
			}
		}
	}
	if nd.Length < stallFraction*step {
		rt.Stalls++
		if rt.Stalls >= maxStalls {
			rt.Terminate(EndStalled)
		}
		return nil
	}
	rt.Stalls = 0

	nd.PrimaryDir = normalOrZero(last.PrimaryDir.Lerp(dir, pf.PrimaryBlend))
	if nd.PrimaryDir == (math32.Vector3{}) {
		nd.PrimaryDir = dir
	}
	nd.Cumulative = last.Cumulative + nd.Length
	if !nd.Climbing {
		nd.Floating = last.Floating + nd.Length
	}
	rt.AddNode(nd)
	g.addDebugLine(last.Pos, nd.Pos)

	if nd.Cumulative >= rt.MinLength(pf) && st.Rand.Float32() < pf.BranchingProbability &&
		rt.Children < pf.MaxBranchesPerRoot && g.CanAddRoot() {
		st.spawn(g, idx)
	}

	switch {
	case !nd.Climbing && nd.Floating >= pf.FloatLimit():
		rt.Terminate(EndFloat)
	case nd.Cumulative >= pf.MaxLength-lengthTolerance*pf.StepDistance:
		rt.Terminate(EndLength)
	case !g.CanAddRoot() && nd.Cumulative >= rt.MinLength(pf):
		rt.Terminate(EndCap)
	}
	return nil
}

// advance returns the node reached by moving from the given position along
// the unit direction dir by up to step, kept off any surface within adhesion
// range, along with the normal of that surface. Only the surface state,
// position and length of the node are set.
func (st *Stepper) advance(idx int, pf *Profile, from, dir math32.Vector3, step float32) (Node, math32.Vector3, error) {
	pos := from.Add(dir.MulScalar(step))
	hit, ok, err := st.nearest(idx, pos, pf.AdhesionRange())
	if err != nil {
		return Node{}, math32.Vector3{}, err
	}
	nd := Node{Climbing: ok}
	if ok {
		// no growing through surfaces
		if pos.Sub(hit.Point).Dot(hit.Normal) < pf.BranchSize {
			pos = hit.Point.Add(hit.Normal.MulScalar(pf.BranchSize))
		}
		nd.Adhesion = adhesion(pos, hit)
	}
	seg := pos.Sub(from)
	ln := seg.Length()
	if ln > step && ln > 0 {
		pos = from.Add(seg.MulScalar(step / ln))
		ln = step
	}
	nd.Pos = pos
	nd.Length = ln
	return nd, hit.Normal, nil
}

// spawn adds a child root at the last node of the given root, heading in
// the root's primary direction rotated by a bounded random angle.
func (st *Stepper) spawn(g *Graph, idx int) {
	pf := g.Profile
	rt := g.Roots[idx]
	last := rt.Last()

	axis := normalOrZero(last.PrimaryDir.Cross(st.Rand.UnitVector()))
	if axis == (math32.Vector3{}) {
		axis = perpendicular(last.PrimaryDir)
	}
	angle := st.Rand.Float32() * math32.DegToRad(pf.BranchAngle)
	dir := normalOrZero(rotate(last.PrimaryDir, axis, angle))
	if dir == (math32.Vector3{}) {
		dir = last.PrimaryDir
	}

	ch := NewRoot(last.Pos, dir)
	first := &ch.Nodes[0]
	first.Adhesion = last.Adhesion
	first.Climbing = last.Climbing
	first.Floating = last.Floating
	ch.Depth = rt.Depth + 1
	ch.Parent = idx
	ch.ParentNode = len(rt.Nodes) - 1
	ch.ForceMinLength = min(pf.ChildMinLength*pf.MinLength, pf.MaxLength)
	ci, err := g.AddRoot(ch)
	if err != nil {
		return
	}
	rt.Children++
	slog.Debug("vine: branch", "parent", idx, "child", ci, "depth", ch.Depth)
}
