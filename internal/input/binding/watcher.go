package binding

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a bindings file and hot-swaps the table contents when the
// file changes. Reload failures (unparseable file, unknown action) leave the
// current table untouched and are reported through the error callback.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	loader  *Loader
	table   *Table

	path string
	dir  string
	base string

	debounce time.Duration
	timer    *time.Timer

	onReload func()
	onError  func(error)

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait after the last change before reloading.
// Editors often write files in several bursts; the default is 100ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithReloadCallback sets a callback invoked after each successful reload.
func WithReloadCallback(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithErrorCallback sets a callback invoked when a reload fails.
func WithErrorCallback(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher starts watching a bindings file for changes.
// The file's directory is watched rather than the file itself, so
// atomic-rename saves from editors are still observed.
func NewWatcher(path string, table *Table, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		loader:   NewLoader(),
		table:    table,
		path:     absPath,
		dir:      filepath.Dir(absPath),
		base:     filepath.Base(absPath),
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// processLoop consumes fsnotify events until the watcher is closed.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-w.closeCh:
			return
		}
	}
}

// scheduleReload arms the debounce timer, restarting it on rapid changes.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload loads the file and swaps the table contents.
func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	if err := w.loader.LoadInto(w.path, w.table); err != nil {
		w.reportError(err)
		return
	}
	if w.onReload != nil {
		w.onReload()
	}
}

// reportError surfaces a watcher or reload error.
func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
