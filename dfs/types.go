package dfs

import (
	"context"
	"errors"
)

// Vertex colors.
const (
	White = iota // not discovered yet
	Gray         // discovered, still on the recursion stack
	Black        // finished
)

// EdgeClass is the DFS classification of an edge.
type EdgeClass int

// Edge classes.
const (
	Tree EdgeClass = iota
	Back
	Forward
	Cross
)

// String returns the class name.
func (c EdgeClass) String() string {
	switch c {
	case Tree:
		return "tree"
	case Back:
		return "back"
	case Forward:
		return "forward"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// Sentinel errors for DFS-based algorithms.
var (
	// ErrGraphNil indicates a nil graph pointer.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates WithStart named a vertex not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a cycle where a DAG was required.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates an undirected graph where a directed one was required.
	ErrNotDirected = errors.New("dfs: graph must be directed")
)

// Option configures DFSOptions.
type Option func(*DFSOptions)

// DFSOptions controls one search.
type DFSOptions struct {
	// Ctx allows cancellation; checked at every discovery.
	Ctx context.Context

	// Start, when non-empty, limits the search to the tree rooted there.
	Start string

	// OnVisit runs when a vertex turns gray; an error aborts the search.
	OnVisit func(id string) error

	// OnExit runs when a vertex turns black; an error aborts the search.
	OnExit func(id string) error

	// order overrides the root order (used by the second SCC pass).
	order []string
}

// DefaultOptions returns a background context, no start vertex and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart runs a single tree from id instead of the full forest.
func WithStart(id string) Option {
	return func(o *DFSOptions) { o.Start = id }
}

// WithOnVisit sets the discovery hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the finish hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// withRootOrder makes the forest use roots in the given order.
func withRootOrder(order []string) Option {
	return func(o *DFSOptions) { o.order = order }
}

// DFSResult collects everything a search learns.
type DFSResult struct {
	// Discovery and Finish are the timestamps d[v] and f[v], in 1..2V.
	Discovery map[string]int
	Finish    map[string]int

	// Parent maps every non-root vertex to its DFS-tree parent.
	Parent map[string]string

	// Order lists vertices by discovery time (preorder).
	Order []string

	// FinishOrder lists vertices by finish time (postorder).
	FinishOrder []string

	// Forest holds the vertices of each DFS tree in discovery order.
	Forest [][]string

	// EdgeClass maps edge IDs to their classification.
	EdgeClass map[string]EdgeClass

	backEdges []string
}

// BackEdges returns the IDs of back edges in the order they were found.
func (r *DFSResult) BackEdges() []string {
	return r.backEdges
}
