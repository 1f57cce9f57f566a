// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vine

import (
	"context"
	"log/slog"
)

// Grower drives the growth of a [Graph] cooperatively: each call to
// [Grower.Batch] steps every active root a bounded number of times and
// then returns, so the caller can update between batches.
// A Grower must only be used from one goroutine.
type Grower struct {
	Stepper

	// Graph is the graph being grown.
	Graph *Graph

	// StepsPerBatch is the maximum number of steps per root in one batch.
	StepsPerBatch int

	// active has the indexes of the roots that are still growing.
	active []int

	// started is whether the trunks have been initialized.
	started bool

	// err is the error that stopped growth, if any.
	err error
}

// NewGrower returns a new [Grower] for the given graph, oracle and
// random source.
func NewGrower(g *Graph, oracle Oracle, rnd Rand) *Grower {
	return &Grower{
		Stepper:       Stepper{Oracle: oracle, Rand: rnd},
		Graph:         g,
		StepsPerBatch: 16,
	}
}

// start initializes the work list from the living roots.
func (gr *Grower) start() error {
	gr.started = true
	g := gr.Graph
	g.Growing = true
	for i, rt := range g.Roots {
		if !rt.Alive {
			continue
		}
		if rt.Parent < 0 && len(rt.Nodes) == 1 {
			if err := gr.Start(g, i); err != nil {
				return gr.fail(i, err)
			}
		}
		gr.active = append(gr.active, i)
	}
	return nil
}

// Batch steps each active root up to StepsPerBatch times, including any
// roots spawned during the batch. It returns true when no roots are left
// growing. Growth stops with ctx.Err() if the context is canceled, which
// is checked before every step, and with a wrapped [ErrOracle] if the
// collision oracle fails.
func (gr *Grower) Batch(ctx context.Context) (bool, error) {
	if gr.err != nil {
		return true, gr.err
	}
	if !gr.started {
		if err := gr.start(); err != nil {
			return true, err
		}
	}
	g := gr.Graph
	n := max(gr.StepsPerBatch, 1)
	for k := 0; k < len(gr.active); k++ {
		idx := gr.active[k]
		rt := g.Roots[idx]
		nroots := len(g.Roots)
		for range n {
			if !rt.Alive {
				break
			}
			if err := ctx.Err(); err != nil {
				gr.Cancel()
				gr.err = err
				return true, err
			}
			if err := gr.Step(g, idx); err != nil {
				return true, gr.fail(idx, err)
			}
		}
		for i := nroots; i < len(g.Roots); i++ {
			gr.active = append(gr.active, i)
		}
	}
	alive := gr.active[:0]
	for _, idx := range gr.active {
		if g.Roots[idx].Alive {
			alive = append(alive, idx)
		}
	}
	gr.active = alive
	slog.Debug("vine: batch", "active", len(gr.active), "roots", len(g.Roots))
	if len(gr.active) > 0 {
		return false, nil
	}
	g.Growing = false
	return true, nil
}

// Run calls [Grower.Batch] until growth is done or stops with an error.
func (gr *Grower) Run(ctx context.Context) error {
	for {
		done, err := gr.Batch(ctx)
		if err != nil {
			return err
		}
		if done {
			st := gr.Graph.Stats()
			slog.Info("vine: grown", "roots", st.Roots, "nodes", st.Nodes, "length", st.Length, "depth", st.MaxDepth)
			return nil
		}
	}
}

// Cancel stops growth, ending all roots that are still growing
// with [EndCanceled]. The roots stay in the graph so that indexes
// remain stable, but they do not contribute to the output meshes.
func (gr *Grower) Cancel() {
	g := gr.Graph
	for _, rt := range g.Roots {
		rt.Terminate(EndCanceled)
	}
	gr.active = nil
	g.Growing = false
}

// fail stops growth after the given root failed with the given error.
// The failed root and any other growing roots end with [EndFailed] and
// are kept in the graph for inspection.
func (gr *Grower) fail(idx int, err error) error {
	g := gr.Graph
	slog.Error("vine: growth failed", "root", idx, "err", err)
	for _, rt := range g.Roots {
		rt.Terminate(EndFailed)
	}
	gr.active = nil
	g.Growing = false
	gr.err = err
	return err
}

// Err returns the error that stopped growth, if any.
func (gr *Grower) Err() error {
	return gr.err
}
