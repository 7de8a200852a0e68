package builder

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts and applies every constructor in order.
// The first error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg, err := newBuilderConfig(bopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1).
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u→v with a weight drawn from cfg when the graph is weighted.
// With both set, it also inserts v→u for directed graphs, so that "both"
// topologies (grids, complete graphs) stay symmetric.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string, both bool) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if both && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}
