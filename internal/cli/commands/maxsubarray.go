package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/cli/output"
	"github.com/katalvlaran/clrs/maxsubarray"
)

// NewMaxSubarrayCommand creates the maxsubarray command.
func NewMaxSubarrayCommand() *cobra.Command {
	var (
		method string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "maxsubarray [flags] [--] [numbers...]",
		Short: "Find the contiguous subarray with the largest sum",
		Long: `Find the maximum subarray with Kadane's algorithm (kadane), the
divide-and-conquer algorithm (dc) or exhaustive search (brute).
An all-negative input yields the empty subarray with sum 0.

Flags must come before the numbers; put "--" before a list that starts
with a negative number.`,
		Example: `  clrs maxsubarray -- 13 -3 -25 20 -3 -16 -23 18 20 -7 12 -5 -22 15 -4 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := collectNumbers(file, args)
			if err != nil {
				return err
			}

			var res maxsubarray.Result[int64]
			switch method {
			case "kadane":
				res = maxsubarray.Kadane(nums)
			case "dc":
				res = maxsubarray.DivideAndConquer(nums)
			case "brute":
				res = maxsubarray.BruteForce(nums)
			default:
				return fmt.Errorf("unknown method %q (want kadane, dc or brute)", method)
			}

			sub := res.Slice(nums)
			return render(cmd, output.Report{
				Header: []string{"low", "high", "sum", "subarray"},
				Rows:   [][]any{{res.Low, res.High, res.Sum, sub}},
				Data: map[string]any{
					"method": method, "low": res.Low, "high": res.High, "sum": res.Sum, "subarray": sub,
				},
			})
		},
	}

	numbersAfterFlags(cmd)
	cmd.Flags().StringVarP(&method, "method", "m", "kadane", "kadane, dc or brute")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the numbers")

	return cmd
}
