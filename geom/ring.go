// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// Ring is one circle of tube vertices around a path node, with the local
// frame it was generated from. A child branch starts from a copy of the
// ring of its parent at the branch point, so the two tubes join seamlessly.
type Ring struct {

	// Node is the index of the path node in its root.
	Node int

	// Center is the ring center on the path.
	Center math32.Vector3

	// Tangent is the path direction at the ring.
	Tangent math32.Vector3

	// Normal and Binormal span the plane of the ring.
	Normal, Binormal math32.Vector3

	// Radius is the tube radius at the ring.
	Radius float32

	// U is the texture coordinate along the length of the tube.
	U float32
}

// Point returns the ring point at the given angle in radians.
func (rg *Ring) Point(angle float32) math32.Vector3 {
	s, c := math32.Sincos(angle)
	off := rg.Normal.MulScalar(c).Add(rg.Binormal.MulScalar(s))
	return rg.Center.Add(off.MulScalar(rg.Radius))
}

// Direction returns the unit outward direction at the given angle in radians.
func (rg *Ring) Direction(angle float32) math32.Vector3 {
	s, c := math32.Sincos(angle)
	return rg.Normal.MulScalar(c).Add(rg.Binormal.MulScalar(s))
}
