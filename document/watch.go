package document

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch evicts the cached document for path whenever the file is written,
// created, renamed or removed, so the next Load re-reads it. path may be
// relative to the working directory. The parent directory is watched, which
// keeps eviction working for editors that save by rename.
//
// Watch returns once the watcher is registered; eviction runs until ctx is done.
func (c *Cache) Watch(ctx context.Context, path string) error {
	return c.WatchWithLogger(ctx, path, nil)
}

// WatchWithLogger is Watch with eviction diagnostics sent to logger.
// A nil logger means the cache's own.
func (c *Cache) WatchWithLogger(ctx context.Context, path string, logger *slog.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go c.evictOnChange(ctx, watcher, abs, c.loggerOr(logger))
	return nil
}

func (c *Cache) evictOnChange(ctx context.Context, watcher *fsnotify.Watcher, path string, logger *slog.Logger) {
	defer watcher.Close()

	const ops = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || event.Op&ops == 0 {
				continue
			}
			c.Forget(path)
			logger.Debug("config document evicted",
				slog.String("path", path),
				slog.String("op", event.Op.String()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("config watcher error",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
}
