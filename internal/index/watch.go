package index

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before firing, so bursts of writes trigger a single rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a content root for changes and invokes a callback
// after a debounce window. Callbacks run on the watcher goroutine; the
// receiver is expected to hand them off to its own event loop.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange func()
	onError  func(error)

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher creates a watcher for root. onChange is required; onError
// may be nil.
func NewWatcher(root string, debounce time.Duration, onChange func(), onError func(error)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Watcher{
		root:     root,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
		done:     make(chan struct{}),
	}
}

// Start begins watching the root and all its subdirectories
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop shuts the watcher down
func (w *Watcher) Stop() {
	close(w.done)
	if w.fsw != nil {
		w.fsw.Close()
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if _, excluded := excludedDirs[name]; excluded {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// New directories need their own watch before contents
			// produce events.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(ev.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}
