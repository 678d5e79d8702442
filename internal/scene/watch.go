package scene

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a layout description when it changes on disk.
// It never blocks: Poll drains whatever events are pending and returns.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file through a rename are noticed too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	return &Watcher{path: abs, watcher: w}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Poll reports whether the file changed since the last call and, if so,
// returns the rebuilt scene. A file that fails to parse returns the error
// and no scene; the caller keeps showing the previous one.
func (w *Watcher) Poll() (*Scene, bool, error) {
	changed := false
drain:
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil, false, nil
			}
			if filepath.Clean(ev.Name) == w.path && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil, false, nil
			}
			if err != nil {
				return nil, false, fmt.Errorf("watch layout: %w", err)
			}
		default:
			break drain
		}
	}

	if !changed {
		return nil, false, nil
	}
	s, err := Load(w.path)
	if err != nil {
		return nil, true, err
	}
	return s, true, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
