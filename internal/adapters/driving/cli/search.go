package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var (
	searchLimit         int
	searchJSON          bool
	searchCaseSensitive bool
	searchNoBody        bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes with a boolean query",
	Long: `Searches all notes with a boolean query.

Queries combine field prefixes (tag:, title:, body:), bare terms and
the operators AND, OR and NOT, with parentheses for grouping. Matching
is case-insensitive substring matching unless --case-sensitive is set.

Examples:
  zettelview search 'tag:work AND meeting'
  zettelview search '(tag:project OR tag:idea) AND NOT title:draft'
  zettelview search 'body:"exact phrase"'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultMaxResults, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "match case exactly")
	searchCmd.Flags().BoolVar(&searchNoBody, "no-body", false, "omit note bodies from results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return domain.ErrSearchUnavailable
	}

	// Config supplies the defaults; explicit flags win.
	opts := configSearchOptions()
	if cmd.Flags().Changed("limit") {
		opts.MaxResults = searchLimit
	}
	if cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = searchCaseSensitive
	}
	if cmd.Flags().Changed("no-body") {
		opts.IncludeBody = !searchNoBody
	}

	// Surface syntax errors before searching; an invalid query would
	// otherwise silently return nothing.
	if v := searchService.ValidateQuery(query); !v.Valid {
		return fmt.Errorf("invalid query: %s", v.Err)
	}

	results := searchService.Search(cmd.Context(), query, opts)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d):\n\n", len(results))
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s\n", i+1, r.Title)
		if len(r.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(r.Tags, ", "))
		}
		for _, m := range r.Matches {
			cmd.Printf("      %s: %s\n", m.Field, m.Excerpt)
		}
		cmd.Println()
	}

	if len(results) > 0 {
		info := results[0].QueryInfo
		cmd.Printf("Query %q took %s\n", info.OriginalQuery, info.ExecutionTime)
	}
	return nil
}
