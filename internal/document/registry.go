package document

import (
	"io/fs"

	"github.com/google/uuid"

	"github.com/dshills/notepad/internal/event"
	"github.com/dshills/notepad/internal/vfs"
)

// DefaultFileMode is the permission used when saving creates a new file.
const DefaultFileMode fs.FileMode = 0644

// EventKind identifies a registry event.
type EventKind int

const (
	// DocumentAdded fires after a document is appended.
	DocumentAdded EventKind = iota
	// DocumentRemoved fires after a document is closed.
	DocumentRemoved
	// ActiveChanged fires when the active document may have changed.
	ActiveChanged
	// DocumentModifiedChanged forwards a document's modified flag change.
	DocumentModifiedChanged
	// DocumentPathChanged forwards a document's path change.
	DocumentPathChanged
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case DocumentAdded:
		return "document-added"
	case DocumentRemoved:
		return "document-removed"
	case ActiveChanged:
		return "active-changed"
	case DocumentModifiedChanged:
		return "document-modified-changed"
	case DocumentPathChanged:
		return "document-path-changed"
	default:
		return "unknown"
	}
}

// Event is emitted by a Registry.
type Event struct {
	Kind EventKind

	// Document is the subject of added/removed/modified/path events.
	Document *Document

	// Previous and Current are set for ActiveChanged. Either may be nil.
	Previous *Document
	Current  *Document

	// Modified carries the new flag for DocumentModifiedChanged.
	Modified bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithFS sets the file system used to load and save documents.
func WithFS(fsys vfs.FS) Option {
	return func(r *Registry) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithFileMode sets the permission for files created by Save.
func WithFileMode(perm fs.FileMode) Option {
	return func(r *Registry) {
		r.perm = perm
	}
}

// Registry owns the ordered collection of open documents.
type Registry struct {
	fs        vfs.FS
	perm      fs.FileMode
	docs      []*Document
	active    int
	listeners event.Listeners[Event]

	// handles holds the registry's subscription on each document.
	handles map[uuid.UUID]event.Handle
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fs:      vfs.NewOS(),
		perm:    DefaultFileMode,
		active:  -1,
		handles: make(map[uuid.UUID]event.Handle),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe registers a listener for registry events.
func (r *Registry) Subscribe(fn func(Event)) event.Handle {
	return r.listeners.Add(fn)
}

// Unsubscribe removes a registry listener.
func (r *Registry) Unsubscribe(h event.Handle) bool {
	return r.listeners.Remove(h)
}

// CreateNew appends an empty document and makes it active.
func (r *Registry) CreateNew() *Document {
	doc := NewScratchDocument()
	r.add(doc)
	return doc
}

// Open opens the file at path. If the path is already open the existing
// document is activated and returned. Read failures return an *OpenError.
func (r *Registry) Open(path string) (*Document, error) {
	absPath, err := r.fs.Abs(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	if i := r.indexOfPath(absPath); i >= 0 {
		r.activate(i)
		return r.docs[i], nil
	}

	content, err := vfs.ReadText(r.fs, absPath)
	if err != nil {
		return nil, &OpenError{Path: absPath, Err: err}
	}

	doc := NewDocument(absPath, content)
	r.add(doc)
	return doc, nil
}

// Save writes doc to target, or to the document's own path when target
// is empty. On success the document is marked saved and takes target as
// its path. On failure the document is left unchanged.
//
// Saving a document without a path and without a target panics.
func (r *Registry) Save(doc *Document, target string) error {
	if r.IndexOf(doc) < 0 {
		return ErrDocumentNotFound
	}
	if target == "" {
		target = doc.Path()
	}
	if target == "" {
		Invariant("save", "document has no path and no target was given", nil)
	}

	absPath, err := r.fs.Abs(target)
	if err != nil {
		return &SaveError{Kind: SaveWriteFailed, Path: target, Err: err}
	}
	if other := r.FindByPath(absPath); other != nil && other != doc {
		return &SaveError{Kind: SavePathInUse, Path: absPath, Err: ErrPathInUse}
	}

	if err := r.fs.WriteFile(absPath, []byte(doc.Text()), r.perm); err != nil {
		return &SaveError{Kind: SaveWriteFailed, Path: absPath, Err: err}
	}

	doc.MarkSaved()
	doc.SetPath(absPath)
	return nil
}

// Close removes doc from the registry.
//
// When the closed document was active, the document before it becomes
// active; when it was the first, the new first document does; when none
// remain nothing is active. Exactly one ActiveChanged is delivered.
func (r *Registry) Close(doc *Document) error {
	i := r.IndexOf(doc)
	if i < 0 {
		return ErrDocumentNotFound
	}

	prev := r.Active()

	if h, ok := r.handles[doc.ID()]; ok {
		doc.Unsubscribe(h)
		delete(r.handles, doc.ID())
	}
	copy(r.docs[i:], r.docs[i+1:])
	r.docs[len(r.docs)-1] = nil
	r.docs = r.docs[:len(r.docs)-1]

	switch {
	case len(r.docs) == 0:
		r.active = -1
	case i == r.active:
		if i > 0 {
			r.active = i - 1
		} else {
			r.active = 0
		}
	case i < r.active:
		r.active--
	}

	r.listeners.Notify(Event{Kind: DocumentRemoved, Document: doc})
	r.listeners.Notify(Event{Kind: ActiveChanged, Previous: prev, Current: r.Active()})
	return nil
}

// SetActive activates the document at index. It is a no-op if index is
// already active.
func (r *Registry) SetActive(index int) error {
	if index < 0 || index >= len(r.docs) {
		return ErrIndexOutOfRange
	}
	r.activate(index)
	return nil
}

// Active returns the active document, or nil.
func (r *Registry) Active() *Document {
	if r.active < 0 {
		return nil
	}
	return r.docs[r.active]
}

// ActiveIndex returns the active index, or -1.
func (r *Registry) ActiveIndex() int {
	return r.active
}

// Len returns the number of open documents.
func (r *Registry) Len() int {
	return len(r.docs)
}

// Document returns the document at index.
func (r *Registry) Document(index int) (*Document, error) {
	if index < 0 || index >= len(r.docs) {
		return nil, ErrIndexOutOfRange
	}
	return r.docs[index], nil
}

// Documents returns the open documents in tab order.
func (r *Registry) Documents() []*Document {
	out := make([]*Document, len(r.docs))
	copy(out, r.docs)
	return out
}

// IndexOf returns the index of doc, or -1.
func (r *Registry) IndexOf(doc *Document) int {
	for i, d := range r.docs {
		if d == doc {
			return i
		}
	}
	return -1
}

// Lookup returns the document with the given ID, or nil.
func (r *Registry) Lookup(id uuid.UUID) *Document {
	for _, d := range r.docs {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// FindByPath returns the open document with the given path, or nil.
// The path is made absolute first.
func (r *Registry) FindByPath(path string) *Document {
	if path == "" {
		return nil
	}
	absPath, err := r.fs.Abs(path)
	if err != nil {
		return nil
	}
	if i := r.indexOfPath(absPath); i >= 0 {
		return r.docs[i]
	}
	return nil
}

// Modified returns the documents with unsaved changes, in tab order.
func (r *Registry) Modified() []*Document {
	var dirty []*Document
	for _, d := range r.docs {
		if d.IsModified() {
			dirty = append(dirty, d)
		}
	}
	return dirty
}

// add appends doc, subscribes to it and activates it.
func (r *Registry) add(doc *Document) {
	id := doc.ID()
	r.handles[id] = doc.Subscribe(func(ev DocumentEvent) {
		r.forward(id, ev)
	})
	r.docs = append(r.docs, doc)

	r.listeners.Notify(Event{Kind: DocumentAdded, Document: doc})
	r.activate(len(r.docs) - 1)
}

// activate switches the active index and fires ActiveChanged on change.
func (r *Registry) activate(index int) {
	if index == r.active {
		return
	}
	prev := r.Active()
	r.active = index
	r.listeners.Notify(Event{Kind: ActiveChanged, Previous: prev, Current: r.Active()})
}

// forward re-emits a document event as a registry event.
func (r *Registry) forward(id uuid.UUID, ev DocumentEvent) {
	doc := r.Lookup(id)
	if doc == nil {
		return
	}
	switch ev.Kind {
	case ModifiedChanged:
		r.listeners.Notify(Event{Kind: DocumentModifiedChanged, Document: doc, Modified: doc.IsModified()})
	case PathChanged:
		r.listeners.Notify(Event{Kind: DocumentPathChanged, Document: doc})
	}
}

func (r *Registry) indexOfPath(absPath string) int {
	for i, d := range r.docs {
		if d.Path() == absPath {
			return i
		}
	}
	return -1
}
