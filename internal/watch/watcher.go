// Package watch drives dev-mode rebuilds: it watches token source
// files and fires a debounced callback when they change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/weftlabs/weft/internal/logging"
)

// DefaultDebounce is the quiet period applied before firing the
// callback, so editor save storms trigger a single rebuild.
const DefaultDebounce = 200 * time.Millisecond

var watchedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Watcher watches a set of files and directories for token document
// changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher over the given paths. Directories are watched
// as a whole; only .json/.yaml/.yml events are acted on.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, logger: logger, debounce: debounce}
	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
		logger.Debug("watching", "path", path)
	}
	return w, nil
}

// Run blocks, invoking onChange (debounced) for every relevant file
// event, until ctx is cancelled. Errors from onChange are logged, not
// fatal: dev mode keeps watching so the next save can fix the tree.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	defer w.Close()

	w.logger.Info("watcher started", "debounce", w.debounce)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			w.trigger(func() {
				if err := onChange(); err != nil {
					w.logger.Error("rebuild failed", "error", err)
				}
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher and cancels any
// pending debounce.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// trigger arms (or re-arms) the debounce timer with fn.
func (w *Watcher) trigger(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, fn)
}

func relevant(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return watchedExtensions[strings.ToLower(filepath.Ext(event.Name))]
}
