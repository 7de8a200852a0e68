package dfs

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// dfsWalker holds the state of one search.
type dfsWalker struct {
	graph    *core.Graph
	opts     DFSOptions
	res      *DFSResult
	color    map[string]int
	viaEdge  map[string]string // edge ID that discovered each vertex
	time     int
	directed bool
	tree     []string
}

// DFS runs depth-first search over g (DFS and DFS-VISIT).
//
// Steps:
//  1. Validate the graph and options.
//  2. Color every vertex white.
//  3. For each white root (sorted IDs, or only Start), grow one DFS tree.
//
// On error the partial result is returned together with the error.
func DFS(g *core.Graph, opts ...Option) (*DFSResult, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Start != "" && !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, o.Start)
	}

	// 2. Initialize.
	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Discovery:   make(map[string]int, n),
			Finish:      make(map[string]int, n),
			Parent:      make(map[string]string, n),
			Order:       make([]string, 0, n),
			FinishOrder: make([]string, 0, n),
			EdgeClass:   make(map[string]EdgeClass),
		},
		color:    make(map[string]int, n),
		viaEdge:  make(map[string]string, n),
		directed: g.Directed(),
	}

	// 3. Grow the forest.
	roots := o.order
	switch {
	case o.Start != "":
		roots = []string{o.Start}
	case roots == nil:
		roots = g.Vertices()
	}
	for _, u := range roots {
		if w.color[u] != White {
			continue
		}
		w.tree = nil
		err := w.visit(u)
		w.res.Forest = append(w.res.Forest, w.tree)
		if err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// visit is DFS-VISIT(u).
func (w *dfsWalker) visit(u string) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// discover u
	w.time++
	w.res.Discovery[u] = w.time
	w.color[u] = Gray
	w.res.Order = append(w.res.Order, u)
	w.tree = append(w.tree, u)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", u, err)
		}
	}

	nbs, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", u, err)
	}
	for _, e := range nbs {
		if _, seen := w.res.EdgeClass[e.ID]; seen {
			// undirected edge already explored from its other end
			continue
		}
		v := e.To
		switch w.color[v] {
		case White:
			w.classify(e.ID, Tree)
			w.res.Parent[v] = u
			w.viaEdge[v] = e.ID
			if err := w.visit(v); err != nil {
				return err
			}
		case Gray:
			w.classify(e.ID, Back)
		default:
			if w.res.Discovery[u] < w.res.Discovery[v] {
				w.classify(e.ID, Forward)
			} else {
				w.classify(e.ID, Cross)
			}
		}
	}

	// finish u
	w.color[u] = Black
	w.time++
	w.res.Finish[u] = w.time
	w.res.FinishOrder = append(w.res.FinishOrder, u)
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(u); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", u, err)
		}
	}

	return nil
}

func (w *dfsWalker) classify(eid string, c EdgeClass) {
	w.res.EdgeClass[eid] = c
	if c == Back {
		w.res.backEdges = append(w.res.backEdges, eid)
	}
}
