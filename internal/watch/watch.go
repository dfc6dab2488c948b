// Package watch reports changes to a fixed set of files.
//
// Each file's parent directory is watched rather than the file itself, so
// editors that save by writing a temporary file and renaming it over the
// original are still seen. Bursts of events for one file are coalesced into
// a single Change after a debounce delay.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay is the default delay for coalescing rapid writes
const DefaultDebounceDelay = 150 * time.Millisecond

// Change is a coalesced modification of one watched file.
type Change struct {
	Path    string    // Cleaned absolute path
	Removed bool      // The file no longer exists
	Time    time.Time // When the change was delivered
}

// Watcher delivers Changes for the files passed to New.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	errors  chan error
	done    chan struct{}
	files   map[string]bool

	mu            sync.Mutex
	debounceDelay time.Duration
	pending       map[string]*time.Timer
	closed        bool
}

// New starts watching paths. Every path's directory must exist.
func New(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:       fsw,
		changes:       make(chan Change, 16),
		errors:        make(chan error, 4),
		done:          make(chan struct{}),
		files:         make(map[string]bool),
		debounceDelay: DefaultDebounceDelay,
		pending:       make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if w.files[filepath.Clean(event.Name)] {
				w.debounce(filepath.Clean(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// Error channel full, drop the error
			}
		}
	}
}

// debounce restarts the file's timer; the Change is sent when it fires.
func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounceDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		w.send(path)
	})
}

func (w *Watcher) send(path string) {
	_, err := os.Stat(path)
	change := Change{
		Path:    path,
		Removed: os.IsNotExist(err),
		Time:    time.Now(),
	}

	select {
	case w.changes <- change:
	case <-w.done:
	}
}

// Changes returns the channel of coalesced file changes
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Errors returns the channel of watcher errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// SetDebounceDelay sets the debounce delay. Call it before changes occur.
func (w *Watcher) SetDebounceDelay(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceDelay = delay
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}
