package feed

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the feed file when the external generator rewrites it.
// Generators typically write a temp file and rename it over the old one, so
// the parent directory is watched and events are debounced before firing.
type Watcher struct {
	path     string
	onChange func()

	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

const watchDebounce = 500 * time.Millisecond

// NewWatcher creates a watcher for the given feed file. onChange runs on the
// watcher goroutine after events settle; it must do its own locking.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating feed watcher: %w", err)
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		watcher:  fsWatcher,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the watch is registered; events are
// handled on a background goroutine until Stop is called.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	go w.loop()
	return nil
}

// Stop ends the watch and releases the underlying notifier.
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.watcher.Close()
}

func (w *Watcher) loop() {
	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("feed watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

// schedule arms (or re-arms) the debounce timer so a burst of write events
// produces a single reload.
func (w *Watcher) schedule() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(watchDebounce, w.onChange)
}
