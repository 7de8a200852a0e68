package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/cli/output"
	clog "github.com/katalvlaran/clrs/internal/log"
	"github.com/katalvlaran/clrs/sorting"
)

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	var (
		algo string
		file string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "sort [flags] [--] [numbers...]",
		Short: "Sort integers with a chosen algorithm",
		Long: `Sort integers given as arguments and/or in a YAML file.

The algorithm defaults to the sort_algo configuration value. Use --list
to print every registered algorithm.

Flags must come before the numbers. Negative numbers after the first
number are read as numbers; put "--" before a list that starts with one.`,
		Example: `  clrs sort --algo heap 5 2 9 1
  clrs sort --algo quick-hoare 5 -3 9
  clrs sort --algo merge -- -4 7 -10
  clrs sort --algo quick-hoare --file numbers.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				rows := make([][]any, 0, len(sorting.Algorithms()))
				for _, a := range sorting.Algorithms() {
					rows = append(rows, []any{string(a)})
				}
				return render(cmd, output.Report{Header: []string{"algorithm"}, Rows: rows})
			}

			if !cmd.Flags().Changed("algo") {
				algo = ConfigFrom(cmd.Context()).SortAlgo
			}
			fn, err := sorting.IntSorter(sorting.Algorithm(algo))
			if err != nil {
				return err
			}
			raw, err := collectNumbers(file, args)
			if err != nil {
				return err
			}

			nums := toInts(raw)
			start := time.Now()
			if err := fn(cmd.Context(), nums); err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			elapsed := time.Since(start)

			logger := clog.FromContext(cmd.Context(), "sort")
			logger.Debug().Str("algo", algo).Int("n", len(nums)).Dur("elapsed", elapsed).Msg("sorted")

			return render(cmd, output.Report{
				Header: []string{"algorithm", "n", "sorted"},
				Rows:   [][]any{{algo, len(nums), nums}},
				Data: map[string]any{
					"algorithm": algo,
					"n":         len(nums),
					"sorted":    nums,
				},
			})
		},
	}

	numbersAfterFlags(cmd)
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "sorting algorithm (see --list)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the numbers")
	cmd.Flags().BoolVar(&list, "list", false, "list registered algorithms")
	_ = cmd.RegisterFlagCompletionFunc("algo", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(sorting.Algorithms()))
		for _, a := range sorting.Algorithms() {
			names = append(names, string(a))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
