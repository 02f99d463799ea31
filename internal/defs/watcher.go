package defs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// TuningWatcher reloads a tuning file whenever it changes on disk. The freshly
// parsed library is parked until the game asks for it with Take, so a running
// playthrough never sees its stat table change.
type TuningWatcher struct {
	fs   afero.Fs
	path string
	base Library

	mu      sync.Mutex
	pending Library
	watcher *fsnotify.Watcher
}

// NewTuningWatcher creates a watcher for path. base is the library the file
// entries are layered on.
func NewTuningWatcher(fs afero.Fs, path string, base Library) *TuningWatcher {
	return &TuningWatcher{fs: fs, path: filepath.Clean(path), base: base}
}

// Start begins watching the directory holding the tuning file. Watching the
// directory rather than the file survives editors that replace files on save.
func (w *TuningWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	w.watcher = watcher
	w.mu.Unlock()

	go w.watchFiles(ctx, watcher)
	slog.Debug("Started tuning file watcher", "path", w.path)
	return nil
}

func (w *TuningWatcher) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Debug("Tuning file watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Tuning file watcher error", "error", err)
		}
	}
}

func (w *TuningWatcher) handleFileEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	w.Reload()
}

// Reload parses the tuning file now and parks the result. A broken file is
// logged and leaves the previously parked library untouched.
func (w *TuningWatcher) Reload() {
	lib, err := LoadEnemyDefinitions(w.fs, w.path, w.base)
	if err != nil {
		slog.Error("Failed to reload tuning file", "path", w.path, "error", err)
		return
	}
	w.mu.Lock()
	w.pending = lib
	w.mu.Unlock()
	slog.Info("Tuning file reloaded, applies on next reset", "path", w.path)
}

// Take returns the most recent reloaded library, if any, and clears it.
func (w *TuningWatcher) Take() (Library, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	lib := w.pending
	w.pending = nil
	return lib, lib != nil
}

// Close stops the underlying watcher.
func (w *TuningWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
