package app

import (
	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
)

// NewDocument creates an empty document and makes it active.
func (e *Editor) NewDocument() *document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.CreateNew()
	e.logger.Debug("created document %s", doc.ID())
	return doc
}

// Open opens path, or activates it if it is already open.
func (e *Editor) Open(path string) (*document.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, err := e.registry.Open(path)
	if err != nil {
		e.logger.WithField("path", path).Warn("open failed: %v", err)
		return nil, NewOperationError("open", path, err)
	}
	e.logger.WithField("path", doc.Path()).Debug("opened document")
	return doc, nil
}

// Save writes the active document to target, or to its own path when
// target is empty.
func (e *Editor) Save(target string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	return e.save(doc, target)
}

// SaveAll saves every modified document that has a path. Documents
// without a path are reported with ErrNoPath.
func (e *Editor) SaveAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	errs := NewErrorList()
	for _, doc := range e.registry.Modified() {
		errs.Add(e.save(doc, ""))
	}
	return errs.AsError()
}

func (e *Editor) save(doc *document.Document, target string) error {
	if target == "" && doc.Path() == "" {
		return NewOperationError("save", e.title(doc), ErrNoPath)
	}
	if err := e.registry.Save(doc, target); err != nil {
		path := target
		if path == "" {
			path = doc.Path()
		}
		e.logger.WithField("path", path).Warn("save failed: %v", err)
		return NewOperationError("save", e.title(doc), err)
	}
	e.logger.WithField("path", doc.Path()).Info("saved document")
	return nil
}

// Close closes doc. A modified document is only closed when force is set.
func (e *Editor) Close(doc *document.Document, force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.close(doc, force)
}

// CloseActive closes the active document.
func (e *Editor) CloseActive(force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	return e.close(doc, force)
}

func (e *Editor) close(doc *document.Document, force bool) error {
	if doc.IsModified() && !force && e.registry.IndexOf(doc) >= 0 {
		return NewOperationError("close", e.title(doc), ErrUnsavedChanges)
	}
	if err := e.registry.Close(doc); err != nil {
		return NewOperationError("close", e.title(doc), err)
	}
	e.logger.Debug("closed document %s", doc.ID())
	return nil
}

// SetActive activates the document at index.
func (e *Editor) SetActive(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.registry.SetActive(index); err != nil {
		return NewOperationError("activate", "", err)
	}
	return nil
}

// Active returns the active document, or nil.
func (e *Editor) Active() *document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Active()
}

// ActiveIndex returns the active index, or -1.
func (e *Editor) ActiveIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.ActiveIndex()
}

// Documents returns the open documents in tab order.
func (e *Editor) Documents() []*document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Documents()
}

// Modified returns the open documents with unsaved changes.
func (e *Editor) Modified() []*document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Modified()
}

// Title returns the tab title of doc: its name, or the configured
// untitled name, with a trailing "*" when modified.
func (e *Editor) Title(doc *document.Document) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.title(doc)
}

func (e *Editor) title(doc *document.Document) string {
	name := doc.Name()
	if doc.IsScratch() {
		name = e.settings.UntitledName
	}
	if doc.IsModified() {
		name += "*"
	}
	return name
}

// Select sets the selection of the active document. Offsets are clamped
// to the buffer and moved back to the start of the character they fall in.
func (e *Editor) Select(sel cursor.Selection) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	e.selections[doc.ID()] = alignSelection(doc.Buffer(), sel)
	return nil
}

// SelectAll selects the whole active document.
func (e *Editor) SelectAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	e.selections[doc.ID()] = cursor.NewSpan(0, doc.Buffer().Len())
	return nil
}

// Selection returns the selection of the active document.
func (e *Editor) Selection() (cursor.Selection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.registry.Active()
	if doc == nil {
		return cursor.Selection{}, ErrNoActiveDocument
	}
	return e.selectionOf(doc), nil
}

// selectionOf returns doc's selection aligned to its current text.
func (e *Editor) selectionOf(doc *document.Document) cursor.Selection {
	return alignSelection(doc.Buffer(), e.selections[doc.ID()])
}

// alignSelection clamps sel to buf and snaps both ends to character starts.
func alignSelection(buf document.TextBuffer, sel cursor.Selection) cursor.Selection {
	sel = sel.Clamp(buf.Len())
	return cursor.NewSelection(buf.RuneStart(sel.Mark), buf.RuneStart(sel.Dot))
}
