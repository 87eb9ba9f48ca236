package cli

import (
	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial-query]",
	Short: "Suggest completions for a partial query",
	Long: `Prints completions for a partial query, one per line: field
prefixes, boolean operators or known tags, depending on what the
query ends with. Intended for shell completion scripts and editors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return domain.ErrSearchUnavailable
	}

	partial := ""
	if len(args) > 0 {
		partial = args[0]
	}

	for _, s := range searchService.GetSuggestions(partial) {
		cmd.Println(s)
	}
	return nil
}
