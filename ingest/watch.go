package ingest

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/logger"
)

// defaultDebounce absorbs editor save bursts into one reload.
const defaultDebounce = 500 * time.Millisecond

// ChangeCallback receives the freshly merged corpus after a reload.
type ChangeCallback func(texts []string) error

// Watcher re-reads a corpus file set when any member changes and hands the
// merged candidates to registered callbacks.
//
// Parent directories are watched rather than the files themselves, so
// rename-style saves and delete-then-recreate cycles keep delivering events.
// A reload that fails (file momentarily missing) logs and keeps watching.
type Watcher struct {
	paths          []string
	watched        map[string]bool
	fsw            *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher creates a watcher over the given corpus files. Stdin ("-")
// cannot be watched.
func NewWatcher(paths []string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.NewValidationError("no corpus files to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	w := &Watcher{
		paths:          paths,
		watched:        make(map[string]bool, len(paths)),
		fsw:            fsw,
		debouncePeriod: defaultDebounce,
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "-" {
			fsw.Close()
			return nil, errors.NewValidationError("stdin cannot be watched")
		}
		clean := filepath.Clean(path)
		w.watched[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watching directory %s", dir)
		}
	}

	return w, nil
}

// SetDebounce overrides the debounce period. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// OnChange registers a callback invoked after each successful reload.
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for corpus file changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// Directory watches report siblings too; only the corpus
			// files themselves matter.
			if !w.watched[filepath.Clean(event.Name)] {
				continue
			}
			logger.WatchDebugw("Corpus change detected",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnw("Corpus watcher error",
				"error", err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers a reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("Corpus reload failed",
				"error", err)
		}
	})
}

// reload re-reads every watched file and calls all callbacks.
func (w *Watcher) reload() error {
	texts, err := LoadAll(context.Background(), w.paths...)
	if err != nil {
		return err
	}

	logger.WatchInfow("Corpus reloaded",
		"files", len(w.paths),
		"count", len(texts))

	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(texts); err != nil {
			logger.Warnw("Corpus change callback error",
				"error", err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching and releases the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
