package cli

import (
	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax",
	Short: "Show the query syntax reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if searchService == nil {
			return domain.ErrSearchUnavailable
		}
		for _, line := range searchService.GetSyntaxHelp() {
			cmd.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
}
