package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS.
var (
	// ErrStartVertexNotFound indicates the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil graph pointer.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors indicates a failure while listing neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath indicates PathTo was asked for a vertex BFS never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option configures BFSOptions.
type Option func(*BFSOptions)

// BFSOptions holds the hooks and limits of one traversal.
type BFSOptions struct {
	// Ctx allows cancellation; checked before each dequeue and neighbor.
	Ctx context.Context

	// OnEnqueue runs when a vertex is discovered.
	OnEnqueue func(id string, depth int)

	// OnDequeue runs when a vertex leaves the queue.
	OnDequeue func(id string, depth int)

	// OnVisit runs on every visited vertex; an error aborts the search.
	OnVisit func(id string, depth int) error

	// MaxDepth limits the depth explored; 0 means no limit.
	MaxDepth int

	// FilterNeighbor returns false to skip the link curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a background context, no-op hooks, no depth limit
// and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the dequeue hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops exploring beyond depth d. d == 0 disables the limit;
// negative values are an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips links for which fn(curr, neighbor) is false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the outcome of a traversal.
type BFSResult struct {
	// Order lists vertices in visit order.
	Order []string
	// Depth maps each reached vertex to its distance from the start.
	Depth map[string]int
	// Parent maps each reached vertex except the start to its BFS-tree parent.
	Parent map[string]string
}

// PathTo returns the shortest path (in edges) from the start to dest,
// both included, following Parent links (PRINT-PATH).
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
