// Package clipboard holds the text shared by cut, copy and paste.
//
// Slot is a single in-memory string, empty until the first write.
// System mirrors every write to the operating system clipboard and reads
// from it when one is available, falling back to its own slot otherwise.
package clipboard

import (
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Clipboard is a single text slot overwritten on every write.
type Clipboard interface {
	Text() string
	SetText(text string)
}

// Slot is an in-memory Clipboard.
type Slot struct {
	mu   sync.RWMutex
	text string
}

// NewSlot returns an empty clipboard slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Text returns the stored text.
func (s *Slot) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// SetText replaces the stored text.
func (s *Slot) SetText(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Backend reads and writes an external clipboard.
type Backend interface {
	Supported() bool
	ReadAll() (string, error)
	WriteAll(text string) error
}

// osBackend is the operating system clipboard.
type osBackend struct{}

func (osBackend) Supported() bool            { return !sysclip.Unsupported }
func (osBackend) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (osBackend) WriteAll(text string) error { return sysclip.WriteAll(text) }

// OSBackend returns the backend for the operating system clipboard.
func OSBackend() Backend {
	return osBackend{}
}

// ErrorHandler receives backend failures. Failures never reach callers of
// Text or SetText.
type ErrorHandler func(op string, err error)

// Option configures a System clipboard.
type Option func(*System)

// WithBackend replaces the operating system backend.
func WithBackend(b Backend) Option {
	return func(s *System) {
		if b != nil {
			s.backend = b
		}
	}
}

// WithErrorHandler sets the handler for backend failures.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(s *System) {
		s.onError = fn
	}
}

// System is a Clipboard mirrored to an external backend.
// The local slot always holds the last written text.
type System struct {
	slot    Slot
	backend Backend
	onError ErrorHandler
}

// NewSystem creates a clipboard backed by the operating system clipboard.
func NewSystem(opts ...Option) *System {
	s := &System{backend: OSBackend()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether the backend can be used.
func (s *System) Available() bool {
	return s.backend.Supported()
}

// Text returns the backend contents, or the local slot when the backend
// is unsupported or fails.
func (s *System) Text() string {
	if !s.backend.Supported() {
		return s.slot.Text()
	}
	text, err := s.backend.ReadAll()
	if err != nil {
		s.report("read", err)
		return s.slot.Text()
	}
	return text
}

// SetText stores text locally and mirrors it to the backend.
func (s *System) SetText(text string) {
	s.slot.SetText(text)
	if !s.backend.Supported() {
		return
	}
	if err := s.backend.WriteAll(text); err != nil {
		s.report("write", err)
	}
}

func (s *System) report(op string, err error) {
	if s.onError != nil {
		s.onError(op, err)
	}
}

// New returns the clipboard selected by mode: "system" for a System
// clipboard, anything else for a Slot.
func New(mode string, opts ...Option) Clipboard {
	if mode == ModeSystem {
		return NewSystem(opts...)
	}
	return NewSlot()
}

// Clipboard modes accepted by New.
const (
	ModeInternal = "internal"
	ModeSystem   = "system"
)
