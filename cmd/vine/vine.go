// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vine grows a vine over a built-in scene, builds its meshes,
// and writes a preview image.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/vine"
	"cogentcore.org/vine/collide"
	"cogentcore.org/vine/mesh"
	"cogentcore.org/vine/preview"
)

// Config is the configuration information for the vine cli.
type Config struct {

	// Profile is an optional TOML file with the growth profile.
	// Anything it does not set keeps its default value.
	Profile string `posarg:"0" required:"-"`

	// Seed is the random seed for growth and leaf placement.
	Seed int64 `default:"1"`

	// Scene is the built-in scene to grow over:
	// wall, ground, or pillar.
	Scene string `default:"wall"`

	// Preview is the PNG file to write a preview to; empty for none.
	Preview string `default:"vine.png"`

	// View is the preview direction: front, side, or top.
	View string `default:"front"`

	// Debug turns on debug logging and draws the raw growth segments.
	Debug bool `flag:"d,debug"`

	// StepsPerBatch is the maximum number of steps per root in one batch.
	StepsPerBatch int `default:"16"`

	// Workers is the maximum number of roots meshed in parallel;
	// 0 means one per CPU.
	Workers int

	// SaveProfile writes the profile in use to this TOML file.
	SaveProfile string
}

func main() { //types:skip
	opts := cli.DefaultOptions("vine", "Vine grows procedural vines over a scene and builds their meshes.")
	cli.Run(opts, &Config{}, Grow)
}

// Grow grows a vine over the configured scene and builds its meshes.
func Grow(c *Config) error { //cli:cmd -root
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	pf := vine.NewProfile()
	if c.Profile != "" {
		var err error
		pf, err = vine.OpenProfile(c.Profile)
		if err != nil {
			return err
		}
	}
	if c.SaveProfile != "" {
		if err := pf.Save(c.SaveProfile); err != nil {
			return err
		}
	}
	oracle, seed, err := Scene(c.Scene)
	if err != nil {
		return err
	}
	g, err := vine.NewGraph(seed, math32.Vector3{}, pf)
	if err != nil {
		return err
	}
	g.Debug = c.Debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gr := vine.NewGrower(g, oracle, vine.NewRand(c.Seed))
	gr.StepsPerBatch = c.StepsPerBatch
	if err := gr.Run(ctx); err != nil {
		return err
	}
	b := &mesh.Builder{Seed: c.Seed, Workers: c.Workers}
	if err := b.Graph(ctx, g); err != nil {
		return err
	}
	st := g.Stats()
	slog.Info("vine: done", "scene", c.Scene, "roots", st.Roots, "ends", st.Ends,
		"vertices", g.BranchMesh.NumVertex()+g.LeafMesh.NumVertex())
	if c.Preview == "" {
		return nil
	}
	opt := preview.DefaultOptions()
	switch c.View {
	case "front":
	case "side":
		opt.View = preview.Side
	case "top":
		opt.View = preview.Top
	default:
		return fmt.Errorf("unknown view %q", c.View)
	}
	return preview.Save(g, c.Preview, opt)
}

// Scene returns the collision oracle and the seed position of the
// built-in scene with the given name.
func Scene(name string) (vine.Oracle, math32.Vector3, error) {
	switch name {
	case "wall":
		wall := collide.NewBox(math32.Vec3(0, 1.5, -0.25), math32.Vec3(4, 3, 0.5))
		return collide.Scene{wall, collide.Ground(0)}, math32.Vec3(0, 2.9, 0.02), nil
	case "ground":
		return collide.Ground(0), math32.Vec3(0, 0.02, 0), nil
	case "pillar":
		tris := collide.BoxTriangles(math32.Vec3(-0.25, 0, -0.25), math32.Vec3(0.25, 3, 0.25))
		return collide.Scene{collide.NewTriangles(tris), collide.Ground(0)}, math32.Vec3(0, 2.9, 0.27), nil
	}
	return nil, math32.Vector3{}, fmt.Errorf("unknown scene %q", name)
}
