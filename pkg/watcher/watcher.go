package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and invokes a callback, debounced,
// whenever it is written or recreated. Watching the parent directory
// instead of the file itself survives the rename-replace dance most
// editors do on save.
type FileWatcher struct {
	path     string
	fw       *fsnotify.Watcher
	debounce *Debouncer
	done     chan struct{}
}

// NewFileWatcher starts watching path and calls onChange after each
// debounced change. onChange runs on the watcher goroutine.
func NewFileWatcher(path string, onChange func()) (*FileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &FileWatcher{
		path:     path,
		fw:       fw,
		debounce: NewDebouncer(0),
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *FileWatcher) loop(onChange func()) {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger(onChange)
			}
		case _, ok := <-w.fw.Errors:
			// Watch errors are not actionable mid-session; the worst case
			// is a missed reload, which the user can force by reopening.
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and drops any pending reload.
func (w *FileWatcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fw.Close()
}
