// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
)

// ErrInvalidProfile is wrapped by all errors returned from [Profile.Validate].
var ErrInvalidProfile = errors.New("vine: invalid profile")

// Profile has all of the parameters that control growth and mesh
// synthesis. A [Graph] keeps its own copy, which must not change
// while the graph is growing.
type Profile struct {

	// StepDistance is the world distance a root advances per step.
	StepDistance float32 `default:"0.1" min:"0"`

	// PrimaryWeight is the weight of the running primary direction.
	PrimaryWeight float32 `default:"0.5" min:"0"`

	// RandomWeight is the weight of a random unit vector.
	RandomWeight float32 `default:"1" min:"0"`

	// GravityWeight is the weight of the downward vector.
	GravityWeight float32 `default:"3" min:"0"`

	// AdhesionWeight is the weight of the vector toward the nearest surface.
	AdhesionWeight float32 `default:"1" min:"0"`

	// PrimaryBlend is how much of the new direction is blended into
	// the primary direction at each step, between 0 and 1.
	PrimaryBlend float32 `default:"0.5" min:"0" max:"1"`

	// BranchingProbability is the chance per step of spawning a child root.
	BranchingProbability float32 `default:"0.25" min:"0" max:"1"`

	// LeafProbability is the chance per node of emitting a leaf.
	LeafProbability float32 `default:"0.5" min:"0" max:"1"`

	// LeafSunlightBonus multiplies the leaf probability on nodes that
	// face away from the surface they climb on.
	LeafSunlightBonus float32 `default:"1" min:"0"`

	// MaxFloatLength is the maximum length a root may float without
	// touching a surface, as a fraction of Scale.
	MaxFloatLength float32 `default:"1" min:"0" max:"1"`

	// MaxAdhesionDistance is the maximum distance at which a surface
	// attracts a root, as a fraction of Scale.
	MaxAdhesionDistance float32 `default:"1" min:"0" max:"1"`

	// Scale is the reference world scale for MaxFloatLength and
	// MaxAdhesionDistance.
	Scale float32 `default:"1" min:"0"`

	// MinLength is the length a root must reach before it may branch
	// or end normally.
	MinLength float32 `default:"1" min:"0"`

	// MaxLength is the length at which a root stops growing.
	MaxLength float32 `default:"3" min:"0"`

	// MaxBranchesTotal is the maximum number of roots in a graph.
	MaxBranchesTotal int `default:"64" min:"1"`

	// MaxBranchesPerRoot is the maximum number of children one root spawns.
	MaxBranchesPerRoot int `default:"2" min:"0"`

	// ChildMinLength is the forced minimum length of child roots,
	// as a fraction of MinLength.
	ChildMinLength float32 `default:"0.5" min:"0"`

	// BranchAngle is the maximum angle in degrees between a parent's
	// primary direction and a new child's initial direction.
	BranchAngle float32 `default:"60" min:"0" max:"180"`

	// BranchTaper is how much the branch thins from its base to its tip,
	// where 1 tapers to a point.
	BranchTaper float32 `default:"1" min:"0"`

	// BranchSmooth is the number of smoothing passes over the branch path.
	BranchSmooth int `default:"2" min:"0"`

	// BranchOptimize is the threshold for collapsing nearly straight or
	// nearly coincident path nodes; 0 keeps every node.
	BranchOptimize float32 `default:"0.5" min:"0"`

	// BranchSize is the radius of the branch tube at its base.
	BranchSize float32 `default:"0.05" min:"0"`

	// BranchSegments is the number of sides of the branch tube.
	BranchSegments int `default:"6" min:"3"`

	// LeafSize is the edge length of a leaf quad.
	LeafSize float32 `default:"0.15" min:"0"`

	// UseVertexColors colors leaves from LeafColors by their position
	// along the root; otherwise leaves are LeafColor.
	UseVertexColors bool `default:"true"`

	// LeafColors are the stops of the leaf color gradient, from the
	// start (0) to the tip (1) of a root.
	LeafColors []ColorStop

	// LeafColor is the uniform leaf color used without vertex colors.
	LeafColor color.RGBA
}

// ColorStop is one stop of the leaf color gradient.
type ColorStop struct {
	Color color.RGBA
	Pos   float32
}

// NewProfile returns a new [Profile] with default values.
func NewProfile() *Profile {
	pf := &Profile{}
	pf.Defaults()
	return pf
}

// Defaults sets all parameters to their default values.
func (pf *Profile) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(pf))
	pf.LeafColors = []ColorStop{
		{colors.White, 0},
		{colors.Green, 0.68},
		{colors.Yellow, 1},
	}
	pf.LeafColor = colors.White
}

// Clone returns a deep copy of the profile.
func (pf *Profile) Clone() *Profile {
	cp := *pf
	cp.LeafColors = slices.Clone(pf.LeafColors)
	return &cp
}

// FloatLimit is the world length a root may float before it dies.
func (pf *Profile) FloatLimit() float32 {
	return pf.MaxFloatLength * pf.Scale
}

// AdhesionRange is the world distance within which surfaces attract roots.
func (pf *Profile) AdhesionRange() float32 {
	return pf.MaxAdhesionDistance * pf.Scale
}

// gradientSamples is the number of pixels the leaf gradient is laid
// out over, which sets the resolution of [GradientColor].
const gradientSamples = 1024

// Gradient returns a new linear gradient from LeafColors in position
// order, ready for [GradientColor]. It returns nil if there are no stops.
func (pf *Profile) Gradient() *gradient.Linear {
	if len(pf.LeafColors) == 0 {
		return nil
	}
	stops := slices.Clone(pf.LeafColors)
	slices.SortStableFunc(stops, func(a, b ColorStop) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	g := gradient.NewLinear()
	for _, st := range stops {
		g.AddStop(st.Color, st.Pos)
	}
	g.Update(1, math32.B2(0, 0, gradientSamples, 1), math32.Identity2())
	return g
}

// GradientColor returns the color of the given gradient from [Profile.Gradient]
// at the given position from 0 to 1. Positions at or beyond the ends
// give exactly the first and last stop colors.
func GradientColor(g *gradient.Linear, pos float32) color.RGBA {
	n := len(g.Stops)
	switch {
	case n == 0:
		return color.RGBA{}
	case pos <= 0:
		return g.Stops[0].Color
	case pos >= 1:
		return g.Stops[n-1].Color
	}
	x := min(int(pos*gradientSamples), gradientSamples-1)
	return colors.AsRGBA(g.At(x, 0))
}

// Validate checks that all parameters are within their valid ranges,
// returning every violation joined into one error.
func (pf *Profile) Validate() error {
	var errs []error
	nonNeg := func(name string, v float32) {
		if v < 0 || math32.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidProfile, name, v))
		}
	}
	unit := func(name string, v float32) {
		if !(v >= 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidProfile, name, v))
		}
	}
	if !(pf.StepDistance > 0) {
		errs = append(errs, fmt.Errorf("%w: StepDistance must be positive, got %g", ErrInvalidProfile, pf.StepDistance))
	}
	nonNeg("PrimaryWeight", pf.PrimaryWeight)
	nonNeg("RandomWeight", pf.RandomWeight)
	nonNeg("GravityWeight", pf.GravityWeight)
	nonNeg("AdhesionWeight", pf.AdhesionWeight)
	unit("PrimaryBlend", pf.PrimaryBlend)
	unit("BranchingProbability", pf.BranchingProbability)
	unit("LeafProbability", pf.LeafProbability)
	nonNeg("LeafSunlightBonus", pf.LeafSunlightBonus)
	unit("MaxFloatLength", pf.MaxFloatLength)
	unit("MaxAdhesionDistance", pf.MaxAdhesionDistance)
	nonNeg("Scale", pf.Scale)
	nonNeg("MinLength", pf.MinLength)
	nonNeg("MaxLength", pf.MaxLength)
	nonNeg("ChildMinLength", pf.ChildMinLength)
	nonNeg("BranchAngle", pf.BranchAngle)
	nonNeg("BranchTaper", pf.BranchTaper)
	nonNeg("BranchOptimize", pf.BranchOptimize)
	nonNeg("BranchSize", pf.BranchSize)
	nonNeg("LeafSize", pf.LeafSize)
	if pf.MinLength > pf.MaxLength {
		errs = append(errs, fmt.Errorf("%w: MinLength %g is greater than MaxLength %g", ErrInvalidProfile, pf.MinLength, pf.MaxLength))
	}
	if pf.MaxBranchesTotal < 1 {
		errs = append(errs, fmt.Errorf("%w: MaxBranchesTotal must be at least 1, got %d", ErrInvalidProfile, pf.MaxBranchesTotal))
	}
	if pf.MaxBranchesPerRoot < 0 {
		errs = append(errs, fmt.Errorf("%w: MaxBranchesPerRoot must be non-negative, got %d", ErrInvalidProfile, pf.MaxBranchesPerRoot))
	}
	if pf.BranchSmooth < 0 {
		errs = append(errs, fmt.Errorf("%w: BranchSmooth must be non-negative, got %d", ErrInvalidProfile, pf.BranchSmooth))
	}
	if pf.BranchSegments < 3 {
		errs = append(errs, fmt.Errorf("%w: BranchSegments must be at least 3, got %d", ErrInvalidProfile, pf.BranchSegments))
	}
	for i, st := range pf.LeafColors {
		if !(st.Pos >= 0 && st.Pos <= 1) {
			errs = append(errs, fmt.Errorf("%w: LeafColors[%d] position must be in [0,1], got %g", ErrInvalidProfile, i, st.Pos))
		}
		if i > 0 && st.Pos < pf.LeafColors[i-1].Pos {
			errs = append(errs, fmt.Errorf("%w: LeafColors[%d] position %g is before the previous stop", ErrInvalidProfile, i, st.Pos))
		}
	}
	return errors.Join(errs...)
}

// OpenProfile reads a profile from the given TOML file, starting
// from default values for anything the file does not set.
func OpenProfile(filename string) (*Profile, error) {
	pf := NewProfile()
	stops := pf.LeafColors
	pf.LeafColors = nil // file stops replace the defaults
	if err := tomlx.Open(pf, filename); err != nil {
		return nil, err
	}
	if pf.LeafColors == nil {
		pf.LeafColors = stops
	}
	return pf, pf.Validate()
}

// Save writes the profile to the given TOML file.
func (pf *Profile) Save(filename string) error {
	return tomlx.Save(pf, filename)
}
