package prefs

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 150 * time.Millisecond

// Watcher reports changes to a preferences file made by other processes or
// by hand edits.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	logger   *log.Logger

	mu      sync.Mutex
	pending *time.Timer
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching path. onChange runs on the watcher goroutine after
// writes settle.
func Watch(path string, onChange func(), logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	path = filepath.Clean(path)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// watch the directory: atomic renames replace the file inode
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     path,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go w.run()
	logger.Debug("watching preferences", "path", path)
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Debug("preferences watcher error", "error", err)
		}
	}
}

// matches reports whether name is the watched file or its SQLite write-ahead
// log, where writes from other connections land until a checkpoint.
func (w *Watcher) matches(name string) bool {
	name = filepath.Clean(name)
	return name == w.path || name == w.path+"-wal"
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(watchDebounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.pending = nil
	w.mu.Unlock()
	if closed || w.onChange == nil {
		return
	}
	w.onChange()
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.pending != nil {
			w.pending.Stop()
			w.pending = nil
		}
		w.mu.Unlock()

		err = w.watcher.Close()
		<-w.done
	})
	return err
}
