// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import "cogentcore.org/core/math32"

// Hit is the nearest surface point found by an [Oracle].
type Hit struct {

	// Point is the nearest point on the surface.
	Point math32.Vector3

	// Normal is the outward unit surface normal at Point.
	Normal math32.Vector3

	// Distance is the distance from the query position to Point.
	Distance float32
}

// Oracle answers collision queries against the environment. It must not
// have side effects: the same query always gives the same answer.
// See the collide package for implementations.
type Oracle interface {

	// Nearest returns the nearest surface point within the given radius
	// of pos, and false if there is no surface within the radius.
	// An error means the query itself failed, which aborts growth.
	Nearest(pos math32.Vector3, radius float32) (Hit, bool, error)
}

// adhesion returns the unit direction from pos toward the given hit.
func adhesion(pos math32.Vector3, hit Hit) math32.Vector3 {
	d := hit.Point.Sub(pos)
	if ln := d.Length(); ln > 1e-6 {
		return d.DivScalar(ln)
	}
	return hit.Normal.Negate()
}
