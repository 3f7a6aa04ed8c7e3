// Package watcher reloads the settings file when it changes on disk.
//
// The watcher observes the file's directory rather than the file itself so
// that editors which save by writing a temporary file and renaming it over
// the original are still noticed. Bursts of events are coalesced and the
// file is read once the burst settles.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/config/loader"
	"github.com/dshills/notepad/internal/vfs"
)

// ErrWatcherClosed is returned when starting a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// DefaultDebounce is the quiet period before a reload.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives freshly loaded settings.
type Handler func(s config.Settings)

// ErrorHandler receives reload failures.
type ErrorHandler func(err error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the callback for reload failures.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithEnv layers environment overrides over each reload.
func WithEnv(env *loader.EnvLoader) Option {
	return func(w *Watcher) {
		w.env = env
	}
}

// Watcher reloads one settings file on change.
type Watcher struct {
	mu sync.Mutex

	path     string
	fs       vfs.FS
	env      *loader.EnvLoader
	handler  Handler
	onError  ErrorHandler
	debounce time.Duration

	watcher *fsnotify.Watcher

	// Lifecycle
	started  bool
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher for the settings file at path. The file's
// directory must exist; the file itself may not exist yet.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		fs:       vfs.NewOS(),
		handler:  handler,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.watcher = fsw
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins delivering reloads until ctx is done or Close is called.
// Starting twice is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.started {
		return nil
	}
	w.started = true

	w.closedWg.Add(1)
	go w.processLoop(ctx)
	return nil
}

// Close stops the watcher and waits for a running reload to finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop(ctx context.Context) {
	defer w.closedWg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

// relevant reports whether ev may have changed the settings file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	s, err := loader.Load(w.fs, w.path, w.env)
	if err != nil {
		w.report(err)
		return
	}
	if w.handler != nil {
		w.handler(s)
	}
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
