package shortest

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/clrs/core"
)

// Sentinel errors for shortest-path computations.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("shortest: source vertex ID is empty")

	// ErrVertexNotFound indicates a vertex missing from the graph.
	ErrVertexNotFound = errors.New("shortest: vertex not found")

	// ErrNegativeCycle indicates a negative-weight cycle.
	ErrNegativeCycle = errors.New("shortest: negative-weight cycle detected")

	// ErrNoPath indicates an unreachable target.
	ErrNoPath = errors.New("shortest: no path to target")
)

// Inf is the distance of an unreachable vertex.
const Inf = int64(math.MaxInt64)

// Paths is a single-source shortest-path result.
type Paths struct {
	// Source is the start vertex.
	Source string

	// Dist maps every vertex to its distance from Source, Inf if unreachable.
	Dist map[string]int64

	// Prev maps every vertex to its predecessor; "" for Source and unreachable vertices.
	Prev map[string]string
}

// PathTo returns the vertex sequence Source → … → dst.
func (p *Paths) PathTo(dst string) ([]string, error) {
	d, ok := p.Dist[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	if d == Inf {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}

	path := []string{dst}
	for cur := dst; cur != p.Source; cur = p.Prev[cur] {
		if p.Prev[cur] == "" || len(path) > len(p.Prev) {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
		}
		path = append(path, p.Prev[cur])
	}
	slices.Reverse(path)

	return path, nil
}

// arc is one relaxable direction of a graph edge.
type arc struct {
	from, to string
	w        int64
}

// arcs lists every edge of g as directed arcs in creation order; undirected
// edges appear in both directions.
func arcs(g *core.Graph) []arc {
	edges := g.Edges()
	out := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, arc{e.From, e.To, e.Weight})
		if !g.Directed() && e.From != e.To {
			out = append(out, arc{e.To, e.From, e.Weight})
		}
	}

	return out
}

// initSingleSource performs INITIALIZE-SINGLE-SOURCE after validating g and src.
func initSingleSource(g *core.Graph, src string) (*Paths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}

	vertices := g.Vertices()
	p := &Paths{
		Source: src,
		Dist:   make(map[string]int64, len(vertices)),
		Prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		p.Dist[v] = Inf
		p.Prev[v] = ""
	}
	p.Dist[src] = 0

	return p, nil
}

// relax applies RELAX(u, v, w) and reports whether d[v] improved.
func (p *Paths) relax(a arc) bool {
	du := p.Dist[a.from]
	if du == Inf {
		return false
	}
	if cand := du + a.w; cand < p.Dist[a.to] {
		p.Dist[a.to] = cand
		p.Prev[a.to] = a.from
		return true
	}

	return false
}
