package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/automoto/wirecubes/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file whenever it changes and delivers parsed
// results on the returned channel. The channel holds at most one pending
// result; a newer reload replaces an unread one. Invalid files are logged and
// skipped. Every reload is parsed on top of the configuration active when
// Watch was called, so the watcher never reads state the game loop writes.
// The watcher stops when ctx is cancelled.
func Watch(ctx context.Context, path string) (<-chan File, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	log := logging.Named("config")
	base := Current()
	out := make(chan File, 1)
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				f, err := LoadFileOnto(base, path)
				if err != nil {
					log.Warnw("ignoring settings reload", "path", path, "error", err)
					continue
				}
				// latest wins
				select {
				case <-out:
				default:
				}
				out <- f
				log.Infow("settings reloaded", "path", path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warnw("settings watcher error", "error", err)
			}
		}
	}()

	return out, nil
}
