// Package cli implements the zettelview command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blaster151/zettelview-sub001/internal/adapters/driven/config/file"
	"github.com/blaster151/zettelview-sub001/internal/adapters/driven/storage/sqlite"
	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driving"
	"github.com/blaster151/zettelview-sub001/internal/core/services"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath string
	verbose bool
)

// Package-level services, wired by initServices. Tests inject their
// own via setupTestServices.
var (
	appConfig     file.Config
	searchService driving.SearchService
	noteService   driving.NoteService
	storeCloser   io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "zettelview",
	Short: "Searchable plain-text notes with boolean queries",
	Long: `Zettelview keeps your notes in a local database and lets you search
them with boolean queries: AND, OR, NOT, parentheses and the field
prefixes tag:, title: and body:.

Example:
  zettelview search '(tag:work OR tag:personal) AND NOT archived'`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices(cmd)
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.zettelview/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices loads the configuration, opens the note store and
// builds the search engine over its current contents. When a test has
// already injected services it is a no-op.
func initServices(cmd *cobra.Command) error {
	if searchService != nil && noteService != nil {
		return nil
	}

	path := cfgPath
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := file.Load(path)
	if err != nil {
		logger.Warn("config: %v", err)
	}
	appConfig = cfg

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening note store: %w", err)
	}
	storeCloser = store
	logger.Debug("note store at %s", store.Path())

	engine := services.NewSearchEngine()
	notes := services.NewNoteService(store, engine)
	if err := notes.RefreshEngine(cmd.Context()); err != nil {
		store.Close()
		storeCloser = nil
		return fmt.Errorf("loading notes: %w", err)
	}

	searchService = engine
	noteService = notes
	return nil
}

// configSearchOptions builds the search defaults from the loaded
// configuration.
func configSearchOptions() domain.SearchOptions {
	opts := domain.DefaultSearchOptions()
	if appConfig.MaxResults > 0 {
		opts.MaxResults = appConfig.MaxResults
	}
	opts.CaseSensitive = appConfig.CaseSensitive
	opts.IncludeBody = appConfig.IncludeBody
	return opts
}

func closeServices() error {
	if storeCloser == nil {
		return nil
	}
	err := storeCloser.Close()
	storeCloser = nil
	searchService = nil
	noteService = nil
	return err
}
