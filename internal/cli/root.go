package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ZhangCHW/fast-methods/pkg/buildinfo"
)

// Execute runs the fmplot CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (plot, solve,
// serve, view), configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "fmplot",
		Short:        "fmplot visualizes grid maps and fast marching fields",
		Long:         `fmplot renders occupancy maps, arrival-time heat maps, and planned paths for grid-based path planning, to PNG files, the terminal, or a live browser preview.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("fmplot %s\ncommit: %s\nbuilt: %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default fmplot.toml if present)")

	root.AddCommand(newPlotCmd(&configPath))
	root.AddCommand(newSolveCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newViewCmd(&configPath))

	return root.ExecuteContext(ctx)
}
