package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [query]",
	Short: "Check a query for syntax errors",
	Long: `Parses a query without running it and reports the first syntax
error, if any. Exits non-zero for invalid queries so the command can
be used in scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return domain.ErrSearchUnavailable
	}

	result := searchService.ValidateQuery(args[0])
	if !result.Valid {
		return fmt.Errorf("invalid query: %s", result.Err)
	}
	cmd.Println("Query is valid.")
	return nil
}
