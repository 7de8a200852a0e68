package dfs_test

import (
	"testing"

	"github.com/katalvlaran/clrs/builder"
	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dressing = [][2]string{
	{"undershorts", "pants"}, {"undershorts", "shoes"}, {"pants", "belt"},
	{"pants", "shoes"}, {"belt", "jacket"}, {"shirt", "belt"}, {"shirt", "tie"},
	{"tie", "jacket"}, {"socks", "shoes"},
}

func TestTopologicalSort_Dressing(t *testing.T) {
	g, _ := directed(t, dressing)
	require.NoError(t, g.AddVertex("watch"))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"watch", "undershorts", "socks", "shirt", "tie", "pants", "shoes", "belt", "jacket",
	}, order)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "%s must precede %s", e.From, e.To)
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	g, _ := directed(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	u, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(u)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestStronglyConnectedComponents_Textbook(t *testing.T) {
	g, _ := directed(t, [][2]string{
		{"a", "b"}, {"b", "c"}, {"b", "e"}, {"b", "f"}, {"c", "d"}, {"c", "g"},
		{"d", "c"}, {"d", "h"}, {"e", "a"}, {"e", "f"}, {"f", "g"}, {"g", "f"},
		{"g", "h"}, {"h", "h"},
	})
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "e"}, {"c", "d"}, {"f", "g"}, {"h"}}, comps)
}

func TestStronglyConnectedComponents_UndirectedIsConnectivity(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("c", "d", 0)
	_ = g.AddVertex("e")

	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, comps)
}

func TestHasCycle(t *testing.T) {
	dag, _ := directed(t, dressing)
	ok, err := dfs.HasCycle(dag)
	require.NoError(t, err)
	assert.False(t, ok)

	cyc, _ := directed(t, [][2]string{{"a", "b"}, {"b", "a"}})
	ok, err = dfs.HasCycle(cyc)
	require.NoError(t, err)
	assert.True(t, ok)

	tree, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)
	ok, err = dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, ok, "undirected tree edges back to the parent are not cycles")

	ring, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	ok, err = dfs.HasCycle(ring)
	require.NoError(t, err)
	assert.True(t, ok)
}
