package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/clrs/internal/cli/config"
	"github.com/katalvlaran/clrs/sorting"
)

// execute runs cmd with args, rendering in mode, and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, mode string, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.Output = mode
	cfg.Bench.Size = 500

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	cmd.SetContext(WithConfig(context.Background(), cfg))
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "default version", version: "0.1.0"},
		{name: "dev version", version: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewVersionCommand(tt.version), config.OutputPlain)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, tt.version+"\tgo"), "got %q", out)
		})
	}
}

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "configured default algorithm",
			args: []string{"5", "2", "9", "1"},
			want: "merge\t4\t1 2 5 9\n",
		},
		{
			name: "explicit algorithm",
			args: []string{"--algo", "quick-hoare", "3", "3", "1"},
			want: "quick-hoare\t3\t1 3 3\n",
		},
		{
			name: "negative numbers after the first number",
			args: []string{"--algo", "quick-hoare", "5", "-3", "9"},
			want: "quick-hoare\t3\t-3 5 9\n",
		},
		{
			name: "negative numbers after --",
			args: []string{"--algo", "heap", "--", "-4", "7", "-10"},
			want: "heap\t3\t-10 -4 7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewSortCommand(), config.OutputPlain, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSortCommand_FileAndList(t *testing.T) {
	seq := writeFile(t, "seq.yaml", "[4, 1, 3]\n")
	doc := writeFile(t, "doc.yaml", "values: [8, 6]\n")

	out, err := execute(t, NewSortCommand(), config.OutputPlain, "--file", seq, "2")
	require.NoError(t, err)
	assert.Equal(t, "merge\t4\t1 2 3 4\n", out)

	out, err = execute(t, NewSortCommand(), config.OutputPlain, "-a", "counting", "-f", doc)
	require.NoError(t, err)
	assert.Equal(t, "counting\t2\t6 8\n", out)

	out, err = execute(t, NewSortCommand(), config.OutputPlain, "--list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(sorting.Algorithms()))
}

func TestSortCommand_Errors(t *testing.T) {
	_, err := execute(t, NewSortCommand(), config.OutputPlain)
	require.ErrorIs(t, err, ErrNoInput)

	_, err = execute(t, NewSortCommand(), config.OutputPlain, "--algo", "bogo", "1")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, err = execute(t, NewSortCommand(), config.OutputPlain, "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = execute(t, NewSortCommand(), config.OutputPlain, "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSelectCommand(t *testing.T) {
	for _, method := range []string{"select", "randomized"} {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, NewSelectCommand(), config.OutputPlain, "--method", method, "--k", "3", "9", "4", "7", "1", "8")
			require.NoError(t, err)
			assert.Equal(t, "3\t7\t1\t9\t7\n", out)
		})
	}

	out, err := execute(t, NewSelectCommand(), config.OutputPlain, "--k", "2", "4", "-5", "-1")
	require.NoError(t, err)
	assert.Equal(t, "2\t-1\t-5\t4\t-1\n", out)

	_, err = execute(t, NewSelectCommand(), config.OutputPlain, "--k", "6", "1", "2")
	require.Error(t, err)
	_, err = execute(t, NewSelectCommand(), config.OutputPlain, "--method", "guess", "1")
	require.Error(t, err)
}

func TestMaxSubarrayCommand(t *testing.T) {
	args := []string{"13", "-3", "-25", "20", "-3", "-16", "-23", "18", "20", "-7", "12", "-5", "-22", "15", "-4", "7"}
	for _, method := range []string{"kadane", "dc", "brute"} {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, NewMaxSubarrayCommand(), config.OutputPlain, append([]string{"-m", method, "--"}, args...)...)
			require.NoError(t, err)
			assert.Equal(t, "7\t11\t43\t18 20 -7 12\n", out)
		})
	}

	out, err := execute(t, NewMaxSubarrayCommand(), config.OutputPlain, "3", "-5", "4")
	require.NoError(t, err)
	assert.Equal(t, "2\t3\t4\t4\n", out)

	out, err = execute(t, NewMaxSubarrayCommand(), config.OutputPlain, "--", "-1", "-2")
	require.NoError(t, err)
	assert.Equal(t, "0\t0\t0\t\n", out)
}

const triangleDoc = `
weighted: true
edges:
  - {from: a, to: b, weight: 1}
  - {from: b, to: c, weight: 2}
  - {from: a, to: c, weight: 4}
`

const networkDoc = `
directed: true
weighted: true
edges:
  - {from: s, to: a, weight: 3}
  - {from: a, to: t, weight: 2}
  - {from: s, to: t, weight: 1}
`

func TestGraphCommand_ShortestPaths(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangleDoc)
	want := "a\t0\ta\nb\t1\ta b\nc\t3\ta b c\n"

	for _, algo := range []string{"dijkstra", "bellman-ford"} {
		t.Run(algo, func(t *testing.T) {
			out, err := execute(t, NewGraphCommand(), config.OutputPlain, algo, "--file", path, "--source", "a")
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestGraphCommand_Traversals(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangleDoc)

	out, err := execute(t, NewGraphCommand(), config.OutputPlain, "bfs", "-f", path, "-s", "a", "--trace")
	require.NoError(t, err)
	assert.Equal(t, "a\t0\t\nb\t1\ta\nc\t1\ta\n", out)

	out, err = execute(t, NewGraphCommand(), config.OutputPlain, "scc", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "1\t3\ta b c\n", out)

	out, err = execute(t, NewGraphCommand(), config.OutputPlain, "floyd-warshall", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "a\t0\t1\t3\nb\t1\t0\t2\nc\t3\t2\t0\n", out)
}

func TestGraphCommand_MST(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangleDoc)

	for _, method := range []string{"kruskal", "prim"} {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, NewGraphCommand(), config.OutputPlain, "mst", "-f", path, "-m", method)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out, "total\t\t3\n"), "got %q", out)
		})
	}
}

func TestGraphCommand_MaxFlowJSON(t *testing.T) {
	path := writeFile(t, "net.yaml", networkDoc)

	for _, method := range []string{"ff", "ek", "dinic"} {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, NewGraphCommand(), config.OutputJSON,
				"maxflow", "-f", path, "-s", "s", "-t", "t", "-m", method, "--trace")
			require.NoError(t, err)

			var got struct {
				MaxFlow int64    `json:"max_flow"`
				MinCut  []string `json:"min_cut"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, int64(3), got.MaxFlow)
			assert.Equal(t, []string{"a", "s"}, got.MinCut)
		})
	}
}

func TestGraphCommand_Errors(t *testing.T) {
	tri := writeFile(t, "triangle.yaml", triangleDoc)
	net := writeFile(t, "net.yaml", networkDoc)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown algorithm", args: []string{"astar", "-f", tri}},
		{name: "missing file flag", args: []string{"bfs"}},
		{name: "missing file", args: []string{"bfs", "-f", filepath.Join(t.TempDir(), "none.yaml"), "-s", "a"}},
		{name: "topo on undirected", args: []string{"topo", "-f", tri}},
		{name: "unknown source", args: []string{"dijkstra", "-f", tri, "-s", "zz"}},
		{name: "bad maxflow method", args: []string{"maxflow", "-f", net, "-s", "s", "-t", "t", "-m", "push"}},
		{name: "bad mst method", args: []string{"mst", "-f", tri, "-m", "boruvka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, NewGraphCommand(), config.OutputPlain, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestBenchCommand(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := execute(t, NewBenchCommand(), config.OutputJSON, "--algos", "merge,heap,counting,merge", "--workers", "2")
	require.NoError(t, err)

	var results []benchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	for i, want := range []string{"merge", "heap", "counting"} {
		assert.Equal(t, want, results[i].Algorithm)
		assert.Equal(t, 500, results[i].Size)
		assert.True(t, results[i].Sorted)
	}
}

func TestBenchCommand_Errors(t *testing.T) {
	_, err := execute(t, NewBenchCommand(), config.OutputPlain, "--algos", "bogo")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, err = execute(t, NewBenchCommand(), config.OutputPlain, "--workers", "0")
	require.Error(t, err)

	_, err = execute(t, NewBenchCommand(), config.OutputPlain, "--size", "-1")
	require.Error(t, err)
}

func TestBenchInputDeterministic(t *testing.T) {
	a := benchInput(100, 7)
	b := benchInput(100, 7)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, benchValueRange)
	}
}
