package sorting

import (
	"cmp"
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelMerge sorts src with the multithreaded merge sort of chapter 27.
//
// The recursion matches Merge: the left half is sorted in a spawned goroutine
// while the current goroutine sorts the right half, and a "sync" waits for the
// spawned half before the two runs are merged. Slices of Options.Threshold
// elements or fewer are sorted serially. At most Options.MaxGoroutines spawned
// halves run at once; when the budget is exhausted the left half is sorted
// inline instead of waiting for a free slot, so the recursion never blocks.
//
// The merge step is serial, which gives Θ(n) span and Θ(n log n) work.
// Cancelling ctx stops further recursion and returns ctx.Err(); src is then
// only partially sorted.
func ParallelMerge[T cmp.Ordered](ctx context.Context, src []T, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.MaxGoroutines)

	s := &parallelSorter[T]{
		ctx:       gctx,
		group:     g,
		threshold: o.Threshold,
		buf:       make([]T, len(src)),
	}
	sortErr := s.sort(src, s.buf)
	waitErr := g.Wait()
	if sortErr != nil {
		return sortErr
	}

	return waitErr
}

// parallelSorter carries the shared state of one ParallelMerge call.
type parallelSorter[T cmp.Ordered] struct {
	ctx       context.Context
	group     *errgroup.Group
	threshold int
	buf       []T // scratch space, sub-sliced in step with src
}

func (s *parallelSorter[T]) sort(src, buf []T) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if len(src) <= s.threshold {
		Merge(src)
		return nil
	}

	mid := (len(src) + 1) / 2

	// spawn
	done := make(chan error, 1)
	spawned := s.group.TryGo(func() error {
		err := s.sort(src[:mid], buf[:mid])
		done <- err
		return err
	})
	if !spawned {
		done <- s.sort(src[:mid], buf[:mid])
	}

	rightErr := s.sort(src[mid:], buf[mid:])

	// sync
	leftErr := <-done
	if leftErr != nil {
		return leftErr
	}
	if rightErr != nil {
		return rightErr
	}

	mergeInto(buf, src[:mid], src[mid:])
	copy(src, buf)

	return nil
}
