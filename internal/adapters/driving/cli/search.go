package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

var (
	searchMode string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a web search",
	Long: `Runs a one-shot web search and prints the results.

The --mode flag selects the depth: "search" returns a quick set of
results with page text, "research" returns more results enriched with
highlights and summaries.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", string(domain.ModeSearch), `search mode ("search" or "research")`)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if commandBus == nil {
		return errors.New("command bus not configured")
	}

	mode := domain.SearchMode(searchMode)
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, searchMode)
	}

	res := result.FromAny[*domain.SearchResponse](commandBus.Execute(
		cmd.Context(),
		driving.OpWebSearch,
		domain.NewWebSearchCommand(query, mode),
	))
	if res.IsFailure() {
		return errors.New(res.Error())
	}

	if searchJSON {
		return outputSearchJSON(cmd, res.Value())
	}
	return outputSearchTable(cmd, res.Value())
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if resp == nil || len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range resp.Results {
		// Format: [N] Title (Score)
		title := resp.Results[i].Title
		if title == "" {
			title = resp.Results[i].URL
		}

		if resp.Results[i].Score > 0 {
			cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, resp.Results[i].Score)
		} else {
			cmd.Printf("  [%d] %s\n", i+1, title)
		}
		if resp.Results[i].URL != "" {
			cmd.Printf("      %s\n", resp.Results[i].URL)
		}
		if snippet := resp.Results[i].Snippet(); snippet != "" {
			cmd.Printf("      %s\n", truncate(snippet, snippetWidth))
		}
		cmd.Println()
	}

	if resp.CostDollars != nil {
		cmd.Printf("Cost: $%.4f\n", resp.CostDollars.Total)
	}

	return nil
}

// snippetWidth caps snippet length in table output. Full page text can
// run to thousands of characters.
const snippetWidth = 200

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

