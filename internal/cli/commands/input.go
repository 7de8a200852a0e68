package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clrs/internal/cli/output"
)

// ErrNoInput is returned when a command received no numbers.
var ErrNoInput = errors.New("no input numbers: pass them as arguments or with --file")

// numberFile is the mapping form of a numbers file.
type numberFile struct {
	Values []int64 `yaml:"values"`
}

// readNumbers loads a YAML sequence of integers, or a mapping with a
// "values" sequence.
func readNumbers(path string) ([]int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seq []int64
	if err := yaml.Unmarshal(raw, &seq); err == nil {
		return seq, nil
	}
	var doc numberFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: expected a list of integers or {values: [...]}: %w", path, err)
	}

	return doc.Values, nil
}

// collectNumbers merges --file contents and positional arguments.
func collectNumbers(file string, args []string) ([]int64, error) {
	var nums []int64
	if file != "" {
		fromFile, err := readNumbers(file)
		if err != nil {
			return nil, err
		}
		nums = append(nums, fromFile...)
	}
	for _, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, ErrNoInput
	}

	return nums, nil
}

// toInts narrows to int for the sorting registry.
func toInts(src []int64) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = int(v)
	}
	return out
}

// numbersAfterFlags stops flag parsing at the first positional argument so
// negative numbers that follow it ("5 -3 9") are not read as shorthand
// flags. A list that starts with a negative number still needs "--".
func numbersAfterFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// render writes rep with the renderer configured for cmd.
func render(cmd *cobra.Command, rep output.Report) error {
	fallback := output.NewRenderer(cmd.OutOrStdout(), output.Mode(ConfigFrom(cmd.Context()).Output))
	return rendererFrom(cmd.Context(), fallback).Render(rep)
}
