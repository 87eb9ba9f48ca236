package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var (
	noteAddBody string
	noteAddTags []string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noteService == nil {
			return domain.ErrStoreUnavailable
		}

		note, err := noteService.CreateNote(cmd.Context(), args[0], noteAddBody, noteAddTags)
		if err != nil {
			return err
		}
		cmd.Printf("Created note %s\n", note.ID)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if noteService == nil {
			return domain.ErrStoreUnavailable
		}

		notes, err := noteService.ListNotes(cmd.Context())
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			cmd.Println("No notes yet.")
			return nil
		}

		for i := range notes {
			n := &notes[i]
			cmd.Printf("%s  %s", n.ID, n.Title)
			if len(n.Tags) > 0 {
				cmd.Printf("  [%s]", strings.Join(n.Tags, ", "))
			}
			cmd.Println()
		}
		return nil
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noteService == nil {
			return domain.ErrStoreUnavailable
		}

		if err := noteService.DeleteNote(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("Deleted note %s\n", args[0])
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddBody, "body", "b", "", "note body")
	noteAddCmd.Flags().StringSliceVarP(&noteAddTags, "tag", "t", nil, "tag (repeatable)")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteRmCmd)
	rootCmd.AddCommand(noteCmd)
}
