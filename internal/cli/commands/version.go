package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/cli/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, output.Report{
				Header: []string{"clrs", "go", "platform"},
				Rows:   [][]any{{version, runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH}},
				Data: map[string]string{
					"version":  version,
					"go":       runtime.Version(),
					"platform": runtime.GOOS + "/" + runtime.GOARCH,
				},
			})
		},
	}
}
