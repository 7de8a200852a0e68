// Package cli provides the command-line interface for clrs.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clrs/internal/cli/commands"
	"github.com/katalvlaran/clrs/internal/cli/config"
	"github.com/katalvlaran/clrs/internal/cli/output"
	clog "github.com/katalvlaran/clrs/internal/log"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "clrs",
		Short: "clrs - textbook algorithms from the command line",
		Long: `clrs runs the sorting, selection, maximum-subarray and graph
algorithms of this module on numbers and YAML graph files.

Configuration is read from clrs.yaml (or --config), CLRS_* environment
variables and flags, later sources overriding earlier ones.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			clog.Configure(clog.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithRenderer(ctx, output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output)))
			ctx = clog.ContextWithRunID(ctx, strconv.FormatInt(time.Now().UnixNano(), 36))
			cmd.SetContext(ctx)

			if cfg.FileUsed != "" {
				logger := clog.FromContext(ctx, "cli")
				logger.Debug().Str("file", cfg.FileUsed).Msg("config loaded")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./clrs.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table|json|plain)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("sort-algo", "", "default algorithm for sort")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputPlain}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSortCommand())
	rootCmd.AddCommand(commands.NewSelectCommand())
	rootCmd.AddCommand(commands.NewMaxSubarrayCommand())
	rootCmd.AddCommand(commands.NewGraphCommand())
	rootCmd.AddCommand(commands.NewBenchCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
