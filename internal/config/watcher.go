package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("config: watcher is closed")

// defaultDebounce coalesces bursts of file system events into one reload.
const defaultDebounce = 250 * time.Millisecond

// Watcher signals when the configuration file or script directory changes,
// debouncing event bursts. The caller rebuilds its dispatcher on each
// signal.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	reload   chan struct{}
	done     chan struct{}
	debounce time.Duration
	closed   bool

	// dirs and files are fixed after construction; loop reads them
	// without locking.
	dirs  map[string]struct{}
	files map[string]struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the event coalescing window.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher watches the given paths. Directories are watched directly;
// files are watched through their parent directory. Paths that do not
// exist are skipped.
func NewWatcher(paths []string, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		reload:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		debounce: defaultDebounce,
		dirs:     make(map[string]struct{}),
		files:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	added := make(map[string]struct{})
	addDir := func(dir string) error {
		if _, ok := added[dir]; ok {
			return nil
		}
		added[dir] = struct{}{}
		return fsw.Add(dir)
	}

	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			w.dirs[path] = struct{}{}
			if err := addDir(path); err != nil {
				fsw.Close()
				return nil, err
			}
			continue
		}
		// A file is watched through its parent directory. Editors that
		// save via write-rename replace the inode, which would drop a
		// watch placed on the file itself.
		w.files[path] = struct{}{}
		if err := addDir(filepath.Dir(path)); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// Reload returns the channel that receives a signal after changes settle.
func (w *Watcher) Reload() <-chan struct{} {
	return w.reload
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.done)
	return w.fsw.Close()
}

// relevant reports whether an event path is a watched file or lives in a
// watched directory. Parent-directory watches also surface sibling files,
// which are ignored here.
func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if _, ok := w.files[name]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(name)]
	return ok
}

// loop coalesces raw file system events into reload signals.
func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.relevant(ev.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.reload <- struct{}{}:
			default:
				// A reload is already pending.
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
