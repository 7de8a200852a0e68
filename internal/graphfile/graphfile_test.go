package graphfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clrs/core"
)

const sampleDoc = `
directed: true
weighted: true
vertices: [a, b, c, lonely]
edges:
  - {from: a, to: b, weight: 4}
  - {from: b, to: c, weight: -1}
  - {from: a, to: c, weight: 7}
`

func TestRead(t *testing.T) {
	g, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.Equal(t, []string{"a", "b", "c", "lonely"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("b", "c"))
	assert.False(t, g.HasEdge("c", "b"))
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "unknown field", doc: "directed: true\ncolour: red\n"},
		{name: "bad yaml", doc: "edges: [\n"},
		{name: "weight on unweighted", doc: "edges:\n  - {from: a, to: b, weight: 2}\n"},
		{name: "loop not allowed", doc: "edges:\n  - {from: a, to: a}\n"},
		{name: "empty endpoint", doc: "edges:\n  - {from: a}\n"},
		{name: "empty vertex", doc: "vertices: ['']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestRead_EdgeErrorKeepsCause(t *testing.T) {
	_, err := Read(strings.NewReader("edges:\n  - {from: a, to: a}\n"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestEncodeRoundTrip(t *testing.T) {
	g, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g))

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), again.Vertices())
	assert.Equal(t, g.EdgeCount(), again.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, again.HasEdge(e.From, e.To))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
