package markdown

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// debounceInterval coalesces bursts of filesystem events, such as an
// editor writing a temp file and renaming it over the original.
const debounceInterval = 500 * time.Millisecond

// Watcher re-imports a markdown directory whenever its contents change.
type Watcher struct {
	dir      string
	onChange func()
	fsw      *fsnotify.Watcher
}

// NewWatcher watches dir and calls onChange after each settled burst
// of file events. Call Run to start delivering events.
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{dir: dir, onChange: onChange, fsw: fsw}, nil
}

// Run blocks and dispatches change notifications until ctx is
// cancelled or the underlying watcher shuts down.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !isMarkdown(event.Name) {
				continue
			}
			logger.Debug("markdown change: %s %s", event.Op, event.Name)

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, w.onChange)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error: %v", err)
		}
	}
}
