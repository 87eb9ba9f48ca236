package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/importers/markdown"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import markdown files as notes",
	Long: `Imports every markdown file under a directory as a note. Titles
come from YAML frontmatter, the first heading or the filename; tags
come from frontmatter.

With --watch the command keeps running and re-imports whenever files
change, which keeps the search corpus in step with an external editor.

When no directory is given, notes_dir from the configuration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "keep watching the directory for changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return domain.ErrStoreUnavailable
	}

	dir := appConfig.NotesDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return errors.New("no directory given and notes_dir is not configured")
	}

	ctx := cmd.Context()
	importOnce := func() error {
		notes, err := markdown.ImportDir(ctx, dir)
		if err != nil {
			return err
		}
		if err := noteService.ImportNotes(ctx, notes); err != nil {
			return fmt.Errorf("storing imported notes: %w", err)
		}
		cmd.Printf("Imported %d notes from %s\n", len(notes), dir)
		return nil
	}

	if err := importOnce(); err != nil {
		return err
	}
	if !importWatch {
		return nil
	}

	watcher, err := markdown.NewWatcher(dir, func() {
		if err := importOnce(); err != nil {
			logger.Error("re-import failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s for changes (Ctrl-C to stop)\n", dir)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
