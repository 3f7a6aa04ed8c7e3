package app

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/notepad/internal/clipboard"
	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
	"github.com/dshills/notepad/internal/event"
	"github.com/dshills/notepad/internal/locale"
	"github.com/dshills/notepad/internal/transform"
	"github.com/dshills/notepad/internal/vfs"
)

// Option configures an Editor.
type Option func(*Editor)

// WithFS sets the file system documents are loaded from and saved to.
func WithFS(fsys vfs.FS) Option {
	return func(e *Editor) {
		if fsys != nil {
			e.fs = fsys
		}
	}
}

// WithLogger sets the editor's logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSettings sets the initial settings. They are validated by NewEditor.
func WithSettings(s config.Settings) Option {
	return func(e *Editor) {
		e.settings = s
	}
}

// WithClipboard replaces the clipboard chosen by the settings.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(e *Editor) {
		e.clipOverride = cb
	}
}

// Editor owns the open documents, the selection of each, the clipboard
// and the current language. Every method locks one mutex, so an Editor
// may be shared between goroutines.
//
// Listeners registered with Subscribe run while the lock is held and must
// not call back into the Editor.
type Editor struct {
	mu sync.Mutex

	fs       vfs.FS
	logger   *Logger
	settings config.Settings

	registry   *document.Registry
	selections map[uuid.UUID]cursor.Selection
	locale     *locale.Provider
	engine     *transform.Engine

	clip         clipboard.Clipboard
	clipOverride clipboard.Clipboard
}

// NewEditor creates an editor with no open documents.
func NewEditor(opts ...Option) (*Editor, error) {
	e := &Editor{
		fs:         vfs.NewOS(),
		logger:     NewNullLogger(),
		settings:   config.Default(),
		selections: make(map[uuid.UUID]cursor.Selection),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.settings.Validate(); err != nil {
		return nil, &InitError{Component: "settings", Err: err}
	}

	provider, err := locale.NewProviderFor(e.settings.Language)
	if err != nil {
		return nil, &InitError{Component: "locale", Err: err}
	}
	e.locale = provider
	e.logger.SetLevel(ParseLogLevel(e.settings.LogLevel))

	e.registry = document.NewRegistry(document.WithFS(e.fs))
	e.registry.Subscribe(e.onRegistryEvent)

	e.installClipboard()
	return e, nil
}

// installClipboard builds the clipboard and the engine that uses it.
func (e *Editor) installClipboard() {
	if e.clipOverride != nil {
		e.clip = e.clipOverride
	} else {
		log := e.logger.WithComponent("clipboard")
		e.clip = clipboard.New(e.settings.Clipboard, clipboard.WithErrorHandler(func(op string, err error) {
			log.Warn("system clipboard %s failed: %v", op, err)
		}))
	}
	e.engine = transform.New(
		transform.WithLanguageSource(e.locale),
		transform.WithClipboard(e.clip),
	)
}

func (e *Editor) onRegistryEvent(ev document.Event) {
	if ev.Kind == document.DocumentRemoved {
		delete(e.selections, ev.Document.ID())
	}
}

// Subscribe registers fn for registry events.
func (e *Editor) Subscribe(fn func(document.Event)) event.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Subscribe(fn)
}

// Unsubscribe removes a registry listener.
func (e *Editor) Unsubscribe(h event.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Unsubscribe(h)
}

// Settings returns the current settings.
func (e *Editor) Settings() config.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// ApplySettings validates s and switches language, log level and
// clipboard mode to match it.
func (e *Editor) ApplySettings(s config.Settings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := s.Validate(); err != nil {
		return NewOperationError("apply settings", "", err)
	}
	if err := e.locale.SetLanguage(s.Language); err != nil {
		return NewOperationError("apply settings", "", err)
	}
	e.logger.SetLevel(ParseLogLevel(s.LogLevel))

	clipChanged := s.Clipboard != e.settings.Clipboard
	e.settings = s
	if clipChanged {
		e.installClipboard()
	}

	e.logger.Info("settings applied: language=%s log_level=%s clipboard=%s", s.Language, s.LogLevel, s.Clipboard)
	return nil
}

// Language returns the current language code.
func (e *Editor) Language() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locale.Language()
}

// SetLanguage changes the language used for sorting and case mapping.
func (e *Editor) SetLanguage(lang string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.locale.SetLanguage(lang); err != nil {
		return NewOperationError("set language", lang, err)
	}
	e.settings.Language = lang
	return nil
}

// LocaleBridge returns a disconnected bridge over the editor's language.
// The bridge is not guarded by the Editor lock; use it from the goroutine
// that drives the Editor.
func (e *Editor) LocaleBridge() *locale.Bridge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return locale.NewBridge(e.locale)
}

// Clipboard returns the clipboard in use.
func (e *Editor) Clipboard() clipboard.Clipboard {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clip
}
