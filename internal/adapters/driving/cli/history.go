package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List this session's recent searches",
	Long: `Lists searches run during the current session, newest first.
History is kept in memory only and is discarded on exit.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if queryBus == nil {
		return errors.New("query bus not configured")
	}

	res := result.FromAny[[]domain.HistoryEntry](queryBus.Execute(
		cmd.Context(),
		driving.OpRecentSearches,
		domain.NewRecentSearchesQuery(historyLimit),
	))
	if res.IsFailure() {
		return errors.New(res.Error())
	}

	entries := res.Value()
	if len(entries) == 0 {
		cmd.Println("No searches this session.")
		return nil
	}

	cmd.Println("Recent searches:")
	cmd.Println()
	for i, entry := range entries {
		cmd.Printf("  [%d] %s (%s, %d results, %s)\n",
			i+1, entry.Query, entry.Mode, entry.ResultCount,
			entry.SearchedAt.Format("15:04:05"))
	}

	return nil
}
