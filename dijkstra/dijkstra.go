package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/clrs/binheap"
	"github.com/katalvlaran/clrs/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: vertex → minimum distance, Inf if unreachable (or beyond MaxDistance).
//   - prev: vertex → predecessor on a shortest path; "" for the source and
//     for unreached vertices.
//
// Validation order: options, empty source, nil graph, unweighted graph,
// missing source, negative weights.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate inputs.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		pq:      binheap.NewPriorityQueue[string, int64](),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	done    map[string]bool
	pq      *binheap.PriorityQueue[string, int64]
}

// init performs INITIALIZE-SINGLE-SOURCE and queues the source.
func (r *runner) init() {
	vertices := r.g.Vertices()
	r.dist = make(map[string]int64, len(vertices))
	r.prev = make(map[string]string, len(vertices))
	r.done = make(map[string]bool, len(vertices))
	for _, v := range vertices {
		r.dist[v] = Inf
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	_ = r.pq.Push(r.options.Source, 0)
}

// process extracts vertices in distance order until the queue drains or the
// closest remaining vertex is beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		u, d, err := r.pq.Pop()
		if err != nil {
			return err
		}
		if d > r.options.MaxDistance {
			break
		}
		r.done[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax applies RELAX to every edge leaving u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if r.done[v] || w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		// DECREASE-KEY when queued, INSERT on first discovery.
		if r.pq.Contains(v) {
			err = r.pq.Update(v, newDist)
		} else {
			err = r.pq.Push(v, newDist)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// PathTo rebuilds the vertex sequence src → … → dst from a predecessor map
// returned by Dijkstra. It returns ErrNoPath when dst was not reached.
func PathTo(prev map[string]string, src, dst string) ([]string, error) {
	if _, ok := prev[dst]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}

	path := []string{dst}
	for cur := dst; cur != src; {
		p := prev[cur]
		if p == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
		}
	}
	slices.Reverse(path)

	return path, nil
}
