package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// Sentinel errors for MST computations.
var (
	// ErrInvalidGraph indicates a nil, directed or unweighted graph.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot indicates Prim was called without a root.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method names accepted by Compute.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// MSTOptions selects the algorithm and, for Prim, the root.
type MSTOptions struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is Prim's start vertex. Empty means the smallest vertex ID.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm chosen by opts and returns the tree edges and
// their total weight.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := o.Root
		if root == "" && graph != nil {
			if vs := graph.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		return Prim(graph, root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate(g *core.Graph) error {
	if g == nil || g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}
	if g.VertexCount() == 0 {
		return ErrDisconnected
	}

	return nil
}
