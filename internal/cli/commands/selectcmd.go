package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/cli/output"
	"github.com/katalvlaran/clrs/selection"
)

// Selection methods accepted by --method.
const (
	methodSelect     = "select"
	methodRandomized = "randomized"
)

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	var (
		k      int
		method string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "select --k <k> [flags] [--] [numbers...]",
		Short: "Find the k-th smallest number (order statistic)",
		Long: `Find the k-th smallest of the input numbers, counting from 1.

--method select uses the worst-case linear median-of-medians algorithm;
--method randomized uses RANDOMIZED-SELECT seeded with bench.seed.
The minimum, maximum and lower median are reported alongside.

Flags must come before the numbers; put "--" before a list that starts
with a negative number.`,
		Example: `  clrs select --k 3 9 4 7 1 8
  clrs select --k 2 -- -5 3 -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := collectNumbers(file, args)
			if err != nil {
				return err
			}

			rank := k - 1
			var v int64
			switch method {
			case methodSelect:
				v, err = selection.Select(nums, rank)
			case methodRandomized:
				v, err = selection.RandomizedSelect(nums, rank, ConfigFrom(cmd.Context()).Bench.Seed)
			default:
				return fmt.Errorf("unknown method %q (want %s or %s)", method, methodSelect, methodRandomized)
			}
			if err != nil {
				return err
			}
			lo, hi, err := selection.MinMax(nums)
			if err != nil {
				return err
			}
			med, err := selection.Median(nums)
			if err != nil {
				return err
			}

			return render(cmd, output.Report{
				Header: []string{"k", "value", "min", "max", "median"},
				Rows:   [][]any{{k, v, lo, hi, med}},
				Data: map[string]any{
					"k": k, "value": v, "min": lo, "max": hi, "median": med, "method": method,
				},
			})
		},
	}

	numbersAfterFlags(cmd)
	cmd.Flags().IntVarP(&k, "k", "k", 1, "rank to select, 1 = smallest")
	cmd.Flags().StringVarP(&method, "method", "m", methodSelect, "select or randomized")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the numbers")

	return cmd
}
