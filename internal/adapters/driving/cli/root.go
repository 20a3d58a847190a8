// Package cli provides the command-line interface for Lookfar.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected buses. The composition root wires these before Execute runs.
var (
	commandBus driving.CommandBus
	queryBus   driving.QueryBus
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "lookfar",
	Short: "Search the web from your terminal",
	Long: `Lookfar is a terminal client for web search.

Run a one-shot search, browse this session's history, or launch the
interactive TUI. Two modes are available: "search" for quick lookups
and "research" for deeper results with highlights and summaries.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// SetBuses injects the command and query buses.
func SetBuses(commands driving.CommandBus, queries driving.QueryBus) {
	commandBus = commands
	queryBus = queries
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
