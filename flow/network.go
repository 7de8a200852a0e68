package flow

import (
	"context"
	"slices"

	"github.com/katalvlaran/clrs/core"
)

// network is the residual network G_f of a flow problem.
//
// res[u][v] starts at c(u, v) and changes by ∓δ on every augmentation, so
// c(u, v) - res[u][v] is always the net flow from u to v.
type network struct {
	g        *core.Graph
	source   string
	sink     string
	capacity map[string]map[string]int64
	res      map[string]map[string]int64
	adj      map[string][]string // residual neighbors, ascending
	opts     Options
}

// newNetwork validates the inputs and builds the residual network.
//
// Steps:
//  1. Validate graph, source and sink.
//  2. Sum capacities per ordered pair, rejecting negative edges and
//     skipping self-loops; undirected edges count in both directions.
//  3. Give every pair a reverse residual arc and sort neighbor lists.
func newNetwork(ctx context.Context, g *core.Graph, source, sink string, opts []Option) (*network, error) {
	// 1) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := &network{
		g:        g,
		source:   source,
		sink:     sink,
		capacity: make(map[string]map[string]int64),
		res:      make(map[string]map[string]int64),
		adj:      make(map[string][]string),
		opts:     DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&n.opts)
	}
	for _, v := range g.Vertices() {
		n.capacity[v] = make(map[string]int64)
		n.res[v] = make(map[string]int64)
	}

	// 2) Aggregate capacities.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, &EdgeError{EdgeID: e.ID, From: e.From, To: e.To, Cap: e.Weight}
		}
		if e.From == e.To {
			continue
		}
		n.capacity[e.From][e.To] += e.Weight
		if !g.Directed() {
			n.capacity[e.To][e.From] += e.Weight
		}
	}

	// 3) Residual arcs in both directions.
	for u, inner := range n.capacity {
		for v, c := range inner {
			n.res[u][v] += c
			if _, ok := n.res[v][u]; !ok {
				n.res[v][u] = 0
			}
		}
	}
	for u, inner := range n.res {
		list := make([]string, 0, len(inner))
		for v := range inner {
			list = append(list, v)
		}
		slices.Sort(list)
		n.adj[u] = list
	}

	return n, nil
}

// augment pushes delta along path and notifies the hook.
func (n *network) augment(path []string, delta int64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		n.res[u][v] -= delta
		n.res[v][u] += delta
	}
	if n.opts.OnAugment != nil {
		n.opts.OnAugment(slices.Clone(path), delta)
	}
}

// walk rebuilds source→…→sink from a parent map.
func (n *network) walk(parent map[string]string) []string {
	path := []string{n.sink}
	for cur := n.sink; cur != n.source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// result assembles the Result once no augmenting path remains.
func (n *network) result(value int64, augmentations int) (*Result, error) {
	r := &Result{
		MaxFlow:       value,
		Flow:          n.edgeFlows(),
		Augmentations: augmentations,
	}

	// Source side: vertices reachable in G_f.
	seen := map[string]bool{n.source: true}
	queue := []string{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if !seen[v] && n.res[u][v] > 0 {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	for v := range seen {
		r.MinCut = append(r.MinCut, v)
	}
	slices.Sort(r.MinCut)

	for _, e := range n.g.Edges() {
		crosses := seen[e.From] && !seen[e.To]
		if !n.g.Directed() {
			crosses = seen[e.From] != seen[e.To]
		}
		if crosses {
			r.CutEdges = append(r.CutEdges, e.ID)
		}
	}

	residual, err := n.residualGraph()
	if err != nil {
		return nil, err
	}
	r.Residual = residual

	return r, nil
}

// edgeFlows splits the net flow of every vertex pair over its edges in
// creation order, filling each edge to capacity before the next.
func (n *network) edgeFlows() map[string]int64 {
	flows := make(map[string]int64)
	// remaining[u][v] is the net u→v flow still to distribute.
	remaining := make(map[string]map[string]int64, len(n.capacity))
	for u, inner := range n.capacity {
		for v, c := range inner {
			if x := c - n.res[u][v]; x > 0 {
				if remaining[u] == nil {
					remaining[u] = make(map[string]int64)
				}
				remaining[u][v] = x
			}
		}
	}

	take := func(u, v string, c int64) int64 {
		x := min(remaining[u][v], c)
		if x > 0 {
			remaining[u][v] -= x
		}
		return max(x, 0)
	}
	for _, e := range n.g.Edges() {
		if e.From == e.To {
			continue
		}
		f := take(e.From, e.To, e.Weight)
		if f == 0 && !n.g.Directed() {
			f = -take(e.To, e.From, e.Weight)
		}
		flows[e.ID] = f
	}

	return flows
}

// residualGraph materializes G_f as a directed weighted graph.
func (n *network) residualGraph() (*core.Graph, error) {
	out := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range n.g.Vertices() {
		if err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, u := range n.g.Vertices() {
		for _, v := range n.adj[u] {
			if c := n.res[u][v]; c > 0 {
				if _, err := out.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
