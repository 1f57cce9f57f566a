// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import "cogentcore.org/core/math32"

var (
	// Up is the world up direction.
	Up = math32.Vec3(0, 1, 0)

	// Down is the direction of gravity.
	Down = math32.Vec3(0, -1, 0)
)

// Weights are the weights of the four growth direction components.
type Weights struct {
	Primary, Random, Gravity, Adhesion float32
}

// Weights returns the direction weights of the profile.
func (pf *Profile) Weights() Weights {
	return Weights{pf.PrimaryWeight, pf.RandomWeight, pf.GravityWeight, pf.AdhesionWeight}
}

// Blender combines the growth direction components into the direction
// of the next step. It returns a unit vector, or the zero vector if
// the components cancel out, in which case the previous primary
// direction is kept.
type Blender interface {
	Blend(w Weights, primary, random, gravity, adhesion math32.Vector3) math32.Vector3
}

// WeightedSum blends by normalizing the weighted sum of the components.
// It is the default [Blender].
type WeightedSum struct{}

func (WeightedSum) Blend(w Weights, primary, random, gravity, adhesion math32.Vector3) math32.Vector3 {
	sum := primary.MulScalar(w.Primary).
		Add(random.MulScalar(w.Random)).
		Add(gravity.MulScalar(w.Gravity)).
		Add(adhesion.MulScalar(w.Adhesion))
	return normalOrZero(sum)
}

// Slerp blends by spherical interpolation of the unit components,
// folding each one in with its share of the accumulated weight.
// Unlike [WeightedSum], opposing components rotate the direction
// instead of shortening it.
type Slerp struct{}

func (Slerp) Blend(w Weights, primary, random, gravity, adhesion math32.Vector3) math32.Vector3 {
	var acc math32.Vector3
	total := float32(0)
	vecs := [4]math32.Vector3{primary, random, gravity, adhesion}
	wts := [4]float32{w.Primary, w.Random, w.Gravity, w.Adhesion}
	for i, v := range vecs {
		v = normalOrZero(v)
		if wts[i] <= 0 || v == (math32.Vector3{}) {
			continue
		}
		total += wts[i]
		if acc == (math32.Vector3{}) {
			acc = v
			continue
		}
		acc = slerp(acc, v, wts[i]/total)
	}
	return acc
}

// slerp interpolates between the unit vectors a and b.
func slerp(a, b math32.Vector3, t float32) math32.Vector3 {
	dot := math32.Clamp(a.Dot(b), -1, 1)
	if dot > 0.9995 {
		return normalOrZero(a.Lerp(b, t))
	}
	if dot < -0.9995 {
		return rotate(a, perpendicular(a), t*math32.Pi)
	}
	theta := math32.Acos(dot)
	st := math32.Sin(theta)
	return a.MulScalar(math32.Sin((1-t)*theta) / st).Add(b.MulScalar(math32.Sin(t*theta) / st))
}

// normalOrZero returns v normalized, or zero if v is too short.
func normalOrZero(v math32.Vector3) math32.Vector3 {
	ln := v.Length()
	if ln < 1e-6 {
		return math32.Vector3{}
	}
	return v.DivScalar(ln)
}

// perpendicular returns a unit vector perpendicular to the unit vector v.
func perpendicular(v math32.Vector3) math32.Vector3 {
	ax := math32.Vec3(1, 0, 0)
	if math32.Abs(v.X) > 0.9 {
		ax = math32.Vec3(0, 0, 1)
	}
	return v.Cross(ax).Normal()
}

// rotate rotates v around the unit axis by the given angle in radians.
func rotate(v, axis math32.Vector3, angle float32) math32.Vector3 {
	s, c := math32.Sincos(angle)
	return v.MulScalar(c).
		Add(axis.Cross(v).MulScalar(s)).
		Add(axis.MulScalar(axis.Dot(v) * (1 - c)))
}
