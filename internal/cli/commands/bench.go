package commands

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clrs/internal/cli/output"
	clog "github.com/katalvlaran/clrs/internal/log"
	"github.com/katalvlaran/clrs/sorting"
)

// benchValueRange bounds generated values so counting sort stays in range.
const benchValueRange = sorting.DefaultMaxRange

// benchResult is the outcome of timing one algorithm.
type benchResult struct {
	Algorithm string        `json:"algorithm"`
	Size      int           `json:"size"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Sorted    bool          `json:"sorted"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand() *cobra.Command {
	var (
		size    int
		workers int
		seed    int64
		algos   []string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sorting algorithms on the same random input",
		Long: `Generate one random input and time each selected sorting algorithm
on its own copy. Algorithms run concurrently, at most --workers at a time.
Defaults for size, workers and seed come from the bench configuration.`,
		Example: `  clrs bench --size 50000 --algos merge,heap,quick-random`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd.Context())
			if !cmd.Flags().Changed("size") {
				size = cfg.Bench.Size
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Bench.Workers
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Bench.Seed
			}
			if size < 0 {
				return fmt.Errorf("size must be non-negative, got %d", size)
			}
			if workers < 1 {
				return fmt.Errorf("workers must be positive, got %d", workers)
			}

			selected, err := benchAlgorithms(algos)
			if err != nil {
				return err
			}

			results, err := runBench(cmd, selected, benchInput(size, seed), workers)
			if err != nil {
				return err
			}

			rows := make([][]any, 0, len(results))
			for _, r := range results {
				rows = append(rows, []any{r.Algorithm, r.Size, r.Elapsed.String(), r.Sorted})
			}
			return render(cmd, output.Report{
				Title:  fmt.Sprintf("bench (n=%d, seed=%d)", size, seed),
				Header: []string{"algorithm", "n", "elapsed", "sorted"},
				Rows:   rows,
				Data:   results,
			})
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "input length")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "algorithms timed concurrently")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the input")
	cmd.Flags().StringSliceVar(&algos, "algos", nil, "comma-separated algorithms (default: all)")

	return cmd
}

// benchAlgorithms validates names, returning every registered algorithm when
// names is empty.
func benchAlgorithms(names []string) ([]sorting.Algorithm, error) {
	if len(names) == 0 {
		return sorting.Algorithms(), nil
	}
	out := make([]sorting.Algorithm, 0, len(names))
	for _, n := range names {
		a := sorting.Algorithm(strings.TrimSpace(n))
		if _, err := sorting.IntSorter(a); err != nil {
			return nil, err
		}
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// benchInput returns n pseudo-random values in [0, benchValueRange).
func benchInput(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(benchValueRange)
	}
	return data
}

// runBench times every algorithm on a private copy of input. Each goroutine
// writes only its own slot of results, which keep the order of algos. The
// first failure cancels the remaining runs.
func runBench(cmd *cobra.Command, algos []sorting.Algorithm, input []int, workers int) ([]benchResult, error) {
	logger := clog.FromContext(cmd.Context(), "bench")
	results := make([]benchResult, len(algos))
	fns := make([]sorting.IntSortFunc, len(algos))
	for i, a := range algos {
		fn, err := sorting.IntSorter(a)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, a := range algos {
		fn := fns[i]
		g.Go(func() error {
			data := slices.Clone(input)
			start := time.Now()
			if err := fn(ctx, data); err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}
			elapsed := time.Since(start)

			results[i] = benchResult{
				Algorithm: string(a),
				Size:      len(data),
				Elapsed:   elapsed,
				Sorted:    sorting.IsSorted(data),
			}
			logger.Debug().Str("algo", string(a)).Dur("elapsed", elapsed).Msg("done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
