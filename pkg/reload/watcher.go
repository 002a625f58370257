// Package reload re-reads the config file while the banner is running so
// the footer can follow edits to the reason.
package reload

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/afkctl/afk/pkg/config"
	"github.com/afkctl/afk/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a config file and hands every valid, changed version to
// onReload.
type Watcher struct {
	path     string
	current  *config.Config
	onReload func(*config.Config)
	logger   *slog.Logger
	debounce time.Duration
}

// NewWatcher creates a file watcher for the given config path.
// onReload is called after debouncing, only when the file parses, validates
// and differs from the last version seen.
func NewWatcher(path string, onReload func(*config.Config)) *Watcher {
	return &Watcher{
		path:     path,
		onReload: onReload,
		logger:   logging.NewDiscardLogger(),
		debounce: 300 * time.Millisecond,
	}
}

// SetLogger sets the logger for watcher events.
func (w *Watcher) SetLogger(logger *slog.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// SetDebounce sets the debounce duration for file changes.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch starts watching the file for changes.
// Blocks until context is cancelled.
//
// The parent directory is watched rather than the file because editors
// save atomically by renaming a temp file over the target, which drops an
// inotify watch on the file itself.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	filename := filepath.Base(w.path)

	if err := watcher.Add(dir); err != nil {
		return err
	}

	if cfg, err := config.Load(w.path); err == nil {
		w.current = cfg
	}

	w.logger.Info("watching for config changes", "path", w.path)

	var debounceTimer *time.Timer
	var debounceChan <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping config watcher")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.logger.Debug("config file changed", "event", event.Op.String())

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.NewTimer(w.debounce)
				debounceChan = debounceTimer.C
			}

		case <-debounceChan:
			debounceChan = nil
			cfg, err := config.Load(w.path)
			if err != nil {
				w.logger.Error("reload failed", "error", err)
				continue
			}
			diff := ComputeDiff(w.current, cfg)
			w.current = cfg
			if diff.IsEmpty() {
				w.logger.Debug("config unchanged")
				continue
			}
			if len(diff.RestartRequired) > 0 {
				w.logger.Warn("settings apply on next run", "fields", diff.RestartRequired)
			}
			w.logger.Info("config reloaded",
				"reason_changed", diff.ReasonChanged,
				"reason", cfg.Reason)
			w.onReload(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Reasons starts w in the background and streams the reason of every
// reloaded config. Only the most recent reason is kept if the reader lags.
// The channel is closed when ctx is done or the watcher fails.
func Reasons(ctx context.Context, path string, logger *slog.Logger) <-chan string {
	out := make(chan string, 1)

	w := NewWatcher(path, func(cfg *config.Config) {
		select {
		case <-out:
		default:
		}
		out <- cfg.Reason
	})
	w.SetLogger(logger)

	go func() {
		defer close(out)
		if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error("config watcher stopped", "error", err)
		}
	}()
	return out
}
