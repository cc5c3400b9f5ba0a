// SPDX-License-Identifier: MIT

// Package builder: the Build orchestrator and its functional options.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Fixed panic messages for option misuse (programmer error).
const (
	panicIDFnNil     = "builder: WithIDFn: fn must be non-nil"
	panicWeightFnNil = "builder: WithWeightFn: fn must be non-nil"
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors validate parameters early, return sentinel errors,
// and never panic.
type Constructor func(g *core.Graph, cfg config) error

// Option configures the builder (ID scheme, weight scheme).
type Option func(*config)

// config is the resolved builder configuration.
type config struct {
	idFn     func(i int) string        // vertex ID for index i
	weightFn func(u, v string) float64 // weight for edge u–v (weighted graphs)
}

// defaultConfig: two-digit zero-padded IDs ("v00", "v01", …) keep
// lexicographic order aligned with index order for fixtures up to 100
// vertices; unit weights when the graph is weighted.
func defaultConfig() config {
	return config{
		idFn:     func(i int) string { return fmt.Sprintf("v%02d", i) },
		weightFn: func(_, _ string) float64 { return 1 },
	}
}

// WithIDFn overrides the vertex ID scheme. fn must be non-nil (panics
// otherwise) and injective over the indices in use.
func WithIDFn(fn func(i int) string) Option {
	if fn == nil {
		panic(panicIDFnNil)
	}

	return func(c *config) { c.idFn = fn }
}

// WithWeightFn overrides the edge weight scheme used on weighted graphs.
// fn must be non-nil (panics otherwise) and should be symmetric for
// undirected fixtures.
func WithWeightFn(fn func(u, v string) float64) Option {
	if fn == nil {
		panic(panicWeightFnNil)
	}

	return func(c *config) { c.weightFn = fn }
}

// Build creates a new core.Graph with the given graph options, resolves
// the builder options, and applies each constructor in order. The first
// constructor error is wrapped once ("Build: %w") and returned; no
// partial cleanup is attempted.
// Complexity: O(len(bopts)) + Σ cost of constructors.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	cfg := defaultConfig()
	for _, opt := range bopts {
		opt(&cfg)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts vertices 0..n−1 via cfg.idFn in ascending order.
func addVertices(g *core.Graph, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.idFn(i), err)
		}
	}

	return nil
}

// addEdge emits one edge u–v honoring the graph's weight policy.
func addEdge(g *core.Graph, cfg config, method, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(u, v)
	}

	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
