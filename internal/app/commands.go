package app

import (
	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
	"github.com/dshills/notepad/internal/transform"
)

// apply runs op on the active document and its selection, then stores the
// selection op returns.
func (e *Editor) apply(name string, op func(eng *transform.Engine, doc *document.Document, sel cursor.Selection) cursor.Selection) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	sel := e.selectionOf(doc)
	e.selections[doc.ID()] = op(e.engine, doc, sel)
	e.logger.WithComponent("transform").Debug("%s on %s at %s", name, e.title(doc), sel)
	return nil
}

// ChangeCase converts the case of the selected text.
func (e *Editor) ChangeCase(mode transform.CaseMode) error {
	return e.apply("change case "+mode.String(), func(eng *transform.Engine, doc *document.Document, sel cursor.Selection) cursor.Selection {
		return eng.ChangeCase(doc, sel, mode)
	})
}

// Cut moves the selected text to the clipboard.
func (e *Editor) Cut() error {
	return e.apply("cut", (*transform.Engine).Cut)
}

// Copy copies the selected text to the clipboard.
func (e *Editor) Copy() error {
	return e.apply("copy", (*transform.Engine).Copy)
}

// Paste replaces the selection with the clipboard text.
func (e *Editor) Paste() error {
	return e.apply("paste", (*transform.Engine).Paste)
}

// Delete removes the selected text.
func (e *Editor) Delete() error {
	return e.apply("delete", (*transform.Engine).Delete)
}

// SortLines sorts the selected lines with the current language's collation.
func (e *Editor) SortLines(descending bool) error {
	return e.apply("sort lines", func(eng *transform.Engine, doc *document.Document, sel cursor.Selection) cursor.Selection {
		return eng.SortLines(doc, sel, e.locale.Comparator(), descending)
	})
}

// UniqueLines removes repeated lines from the selected lines.
func (e *Editor) UniqueLines() error {
	return e.apply("unique lines", (*transform.Engine).UniqueLines)
}

// Stats counts the characters and lines of the active document.
func (e *Editor) Stats() (transform.Statistics, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return transform.Statistics{}, ErrNoActiveDocument
	}
	return transform.Stats(doc), nil
}

// Status reports the caret position in the active document.
func (e *Editor) Status() (transform.Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return transform.Status{}, ErrNoActiveDocument
	}
	return transform.CaretStatus(doc, e.selectionOf(doc)), nil
}
