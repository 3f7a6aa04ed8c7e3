// Package transform implements the editing commands that act on a
// document's selection: case conversion, clipboard operations and
// whole-line sort and de-duplication.
//
// Every operation reads the document's buffer, computes the new text and
// applies it as a delete followed by an insert. Offsets are always
// derived from the buffer itself, so a failing buffer call is a bug and
// panics with a *document.InvariantError.
//
// Operations return the selection a caller should show afterwards.
package transform

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/dshills/notepad/internal/clipboard"
	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset.
type ByteOffset = buffer.ByteOffset

// Selection is an alias for cursor.Selection.
type Selection = cursor.Selection

// LanguageSource reports the language used for case mapping.
// *locale.Provider and *locale.Bridge satisfy it.
type LanguageSource interface {
	Tag() language.Tag
}

// Option configures an Engine.
type Option func(*Engine)

// WithLanguage fixes the language used for case mapping.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.lang = fixedLanguage(tag)
	}
}

// WithLanguageSource reads the case mapping language from src on every call.
func WithLanguageSource(src LanguageSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.lang = src
		}
	}
}

// WithClipboard sets the clipboard used by Cut, Copy and Paste.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(e *Engine) {
		if cb != nil {
			e.clip = cb
		}
	}
}

// Engine applies selection transforms. The clipboard is its only state.
type Engine struct {
	lang LanguageSource
	clip clipboard.Clipboard
}

// New creates an engine with an empty in-memory clipboard and
// language-neutral case mapping.
func New(opts ...Option) *Engine {
	e := &Engine{
		lang: fixedLanguage(language.Und),
		clip: clipboard.NewSlot(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clipboard returns the engine's clipboard.
func (e *Engine) Clipboard() clipboard.Clipboard {
	return e.clip
}

type fixedLanguage language.Tag

func (f fixedLanguage) Tag() language.Tag { return language.Tag(f) }

// aligned panics unless every offset starts a character.
func aligned(op string, buf document.TextBuffer, offsets ...ByteOffset) {
	for _, off := range offsets {
		if buf.RuneStart(off) != off {
			document.Invariant(op, fmt.Sprintf("offset %d is not on a character boundary", off), nil)
		}
	}
}

// selected returns the text covered by sel.
func selected(op string, buf document.TextBuffer, sel Selection) string {
	aligned(op, buf, sel.Offset(), sel.End())
	text, err := buf.TextRange(sel.Offset(), sel.End())
	if err != nil {
		document.Invariant(op, "selection outside buffer", err)
	}
	return text
}

// replace swaps [start, end) for text.
// It returns the offset just past the inserted text.
func replace(op string, buf document.TextBuffer, start, end ByteOffset, text string) ByteOffset {
	next, err := buf.Replace(start, end, text)
	if err != nil {
		document.Invariant(op, "replace outside buffer", err)
	}
	return next
}
