package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/bfs"
	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/dfs"
	"github.com/katalvlaran/clrs/dijkstra"
	"github.com/katalvlaran/clrs/flow"
	"github.com/katalvlaran/clrs/internal/cli/output"
	"github.com/katalvlaran/clrs/internal/graphfile"
	clog "github.com/katalvlaran/clrs/internal/log"
	"github.com/katalvlaran/clrs/prim_kruskal"
	"github.com/katalvlaran/clrs/shortest"
)

// graphOpts carries the flags shared by every graph algorithm.
type graphOpts struct {
	file   string
	source string
	sink   string
	method string
	trace  bool
}

type graphRunner func(cmd *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error)

var graphAlgorithms = map[string]graphRunner{
	"bfs":            runBFS,
	"dfs":            runDFS,
	"topo":           runTopo,
	"scc":            runSCC,
	"mst":            runMST,
	"dijkstra":       runDijkstra,
	"bellman-ford":   runBellmanFord,
	"dag":            runDAG,
	"floyd-warshall": runFloydWarshall,
	"maxflow":        runMaxFlow,
}

func graphAlgorithmNames() []string {
	names := make([]string, 0, len(graphAlgorithms))
	for n := range graphAlgorithms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	var o graphOpts

	cmd := &cobra.Command{
		Use:   "graph <algorithm> --file g.yaml",
		Short: "Run a graph algorithm on a YAML graph file",
		Long: `Run a graph algorithm on a graph loaded from a YAML file.

Algorithms: ` + strings.Join(graphAlgorithmNames(), ", ") + `.

--source is required by bfs, dijkstra, bellman-ford, dag and maxflow;
maxflow also needs --sink. --method picks kruskal or prim for mst and
ff, ek or dinic for maxflow. --trace logs every search step at debug level.`,
		Example: `  clrs graph bfs --file g.yaml --source s
  clrs graph maxflow --file net.yaml --source s --sink t --method ek`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: graphAlgorithmNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphfile.Load(o.file)
			if err != nil {
				return err
			}

			logger := clog.FromContext(cmd.Context(), "graph")
			logger.Debug().
				Str("algorithm", args[0]).
				Str("file", o.file).
				Int("vertices", g.VertexCount()).
				Int("edges", len(g.Edges())).
				Msg("graph loaded")

			rep, err := graphAlgorithms[args[0]](cmd, g, o)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if rep.Title == "" {
				rep.Title = args[0]
			}
			return render(cmd, rep)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "YAML graph file")
	cmd.Flags().StringVarP(&o.source, "source", "s", "", "source vertex")
	cmd.Flags().StringVarP(&o.sink, "sink", "t", "", "sink vertex (maxflow)")
	cmd.Flags().StringVarP(&o.method, "method", "m", "", "mst: kruskal|prim, maxflow: ff|ek|dinic")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "log each visit or augmentation at debug level")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBFS(cmd *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	opts := []bfs.Option{bfs.WithContext(cmd.Context())}
	if o.trace {
		logger := clog.FromContext(cmd.Context(), "bfs")
		opts = append(opts, bfs.WithOnVisit(func(id string, depth int) error {
			logger.Debug().Str("vertex", id).Int("depth", depth).Msg("visit")
			return nil
		}))
	}
	res, err := bfs.BFS(g, o.source, opts...)
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(res.Order))
	for _, v := range res.Order {
		rows = append(rows, []any{v, res.Depth[v], res.Parent[v]})
	}
	return output.Report{
		Header: []string{"vertex", "depth", "parent"},
		Rows:   rows,
		Data:   map[string]any{"order": res.Order, "depth": res.Depth, "parent": res.Parent},
	}, nil
}

func runDFS(cmd *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	opts := []dfs.Option{dfs.WithContext(cmd.Context())}
	if o.source != "" {
		opts = append(opts, dfs.WithStart(o.source))
	}
	if o.trace {
		logger := clog.FromContext(cmd.Context(), "dfs")
		opts = append(opts,
			dfs.WithOnVisit(func(id string) error {
				logger.Debug().Str("vertex", id).Msg("discover")
				return nil
			}),
			dfs.WithOnExit(func(id string) error {
				logger.Debug().Str("vertex", id).Msg("finish")
				return nil
			}),
		)
	}
	res, err := dfs.DFS(g, opts...)
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(res.Order))
	for _, v := range res.Order {
		rows = append(rows, []any{v, res.Discovery[v], res.Finish[v], res.Parent[v]})
	}
	return output.Report{
		Header: []string{"vertex", "discovery", "finish", "parent"},
		Rows:   rows,
		Footer: []string{"trees", fmt.Sprint(len(res.Forest))},
		Data: map[string]any{
			"order": res.Order, "discovery": res.Discovery, "finish": res.Finish,
			"parent": res.Parent, "forest": res.Forest,
		},
	}, nil
}

func runTopo(cmd *cobra.Command, g *core.Graph, _ graphOpts) (output.Report, error) {
	order, err := dfs.TopologicalSort(g, dfs.WithContext(cmd.Context()))
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(order))
	for i, v := range order {
		rows = append(rows, []any{i + 1, v})
	}
	return output.Report{
		Header: []string{"#", "vertex"},
		Rows:   rows,
		Data:   map[string]any{"order": order},
	}, nil
}

func runSCC(cmd *cobra.Command, g *core.Graph, _ graphOpts) (output.Report, error) {
	comps, err := dfs.StronglyConnectedComponents(g, dfs.WithContext(cmd.Context()))
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(comps))
	for i, c := range comps {
		rows = append(rows, []any{i + 1, len(c), c})
	}
	return output.Report{
		Header: []string{"#", "size", "vertices"},
		Rows:   rows,
		Data:   map[string]any{"components": comps},
	}, nil
}

func runMST(_ *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	method := o.method
	if method == "" {
		method = prim_kruskal.MethodKruskal
	}
	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(o.source))
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(edges))
	for _, e := range edges {
		rows = append(rows, []any{e.From, e.To, e.Weight})
	}
	return output.Report{
		Title:  "mst (" + method + ")",
		Header: []string{"from", "to", "weight"},
		Rows:   rows,
		Footer: []string{"total", "", fmt.Sprint(total)},
		Data:   map[string]any{"method": method, "edges": edges, "total": total},
	}, nil
}

func runDijkstra(_ *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(o.source))
	if err != nil {
		return output.Report{}, err
	}

	return distanceReport(g, o.source, dist, func(dst string) ([]string, error) {
		return dijkstra.PathTo(prev, o.source, dst)
	}, dijkstra.Inf), nil
}

func runBellmanFord(_ *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	p, err := shortest.BellmanFord(g, o.source)
	if err != nil {
		return output.Report{}, err
	}

	return distanceReport(g, o.source, p.Dist, p.PathTo, shortest.Inf), nil
}

func runDAG(_ *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	p, err := shortest.DAG(g, o.source)
	if err != nil {
		return output.Report{}, err
	}

	return distanceReport(g, o.source, p.Dist, p.PathTo, shortest.Inf), nil
}

// distanceReport renders one row per vertex: its distance and path from src.
func distanceReport(g *core.Graph, src string, dist map[string]int64, path func(string) ([]string, error), inf int64) output.Report {
	ids := g.Vertices()
	rows := make([][]any, 0, len(ids))
	for _, v := range ids {
		d, ok := dist[v]
		if !ok || d == inf {
			rows = append(rows, []any{v, "inf", ""})
			continue
		}
		p, err := path(v)
		if err != nil {
			rows = append(rows, []any{v, d, ""})
			continue
		}
		rows = append(rows, []any{v, d, p})
	}
	return output.Report{
		Header: []string{"vertex", "distance", "path"},
		Rows:   rows,
		Data:   map[string]any{"source": src, "dist": dist},
	}
}

func runFloydWarshall(_ *cobra.Command, g *core.Graph, _ graphOpts) (output.Report, error) {
	m, err := shortest.FloydWarshall(g)
	if err != nil {
		return output.Report{}, err
	}

	ids := m.IDs()
	header := append([]string{""}, ids...)
	rows := make([][]any, 0, len(ids))
	matrix := make(map[string]map[string]any, len(ids))
	for _, u := range ids {
		row, err := m.Row(u)
		if err != nil {
			return output.Report{}, err
		}
		cells := []any{u}
		matrix[u] = make(map[string]any, len(ids))
		for j, d := range row {
			var cell any = d
			if d == shortest.Inf {
				cell = "inf"
			}
			cells = append(cells, cell)
			matrix[u][ids[j]] = cell
		}
		rows = append(rows, cells)
	}
	return output.Report{
		Header: header,
		Rows:   rows,
		Data:   map[string]any{"vertices": ids, "dist": matrix},
	}, nil
}

func runMaxFlow(cmd *cobra.Command, g *core.Graph, o graphOpts) (output.Report, error) {
	var opts []flow.Option
	if o.trace {
		logger := clog.FromContext(cmd.Context(), "maxflow")
		opts = append(opts, flow.WithOnAugment(func(path []string, delta int64) {
			logger.Debug().Strs("path", path).Int64("delta", delta).Msg("augment")
		}))
	}

	run := flow.EdmondsKarp
	method := o.method
	switch method {
	case "", "ek":
		method = "ek"
	case "ff":
		run = flow.FordFulkerson
	case "dinic":
		run = flow.Dinic
	default:
		return output.Report{}, fmt.Errorf("unknown method %q (want ff, ek or dinic)", o.method)
	}

	res, err := run(cmd.Context(), g, o.source, o.sink, opts...)
	if err != nil {
		return output.Report{}, err
	}

	rows := make([][]any, 0, len(res.Flow))
	for _, e := range g.Edges() {
		f, ok := res.Flow[e.ID]
		if !ok {
			continue
		}
		rows = append(rows, []any{e.ID, e.From, e.To, e.Weight, f})
	}
	return output.Report{
		Title:  "maxflow (" + method + ")",
		Header: []string{"edge", "from", "to", "capacity", "flow"},
		Rows:   rows,
		Footer: []string{"max flow", "", "", "", fmt.Sprint(res.MaxFlow)},
		Data: map[string]any{
			"max_flow":      res.MaxFlow,
			"flow":          res.Flow,
			"min_cut":       res.MinCut,
			"cut_edges":     res.CutEdges,
			"augmentations": res.Augmentations,
		},
	}, nil
}
