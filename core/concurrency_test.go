package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/clrs/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all
// neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadWrite mixes readers with writers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), int64(id))
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("Base")
			_ = g.Transpose()
		}()
	}
	wg.Wait()

	require.True(t, g.HasVertex("Base"))
}
