package document

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/event"
)

// UntitledName is the display name of a document without a path.
const UntitledName = "Untitled"

// TextBuffer is the editable text a Document owns.
// *buffer.Buffer satisfies it.
type TextBuffer interface {
	Text() string
	TextRange(start, end buffer.ByteOffset) (string, error)
	Insert(offset buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	Delete(start, end buffer.ByteOffset) error
	Replace(start, end buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	Len() buffer.ByteOffset
	LineCount() uint32
	LineIndexOf(offset buffer.ByteOffset) uint32
	LineStartOffset(line uint32) buffer.ByteOffset
	LineEndOffset(line uint32) buffer.ByteOffset
	OffsetToPoint(offset buffer.ByteOffset) buffer.Point

	// RuneStart returns the start of the character containing offset.
	RuneStart(offset buffer.ByteOffset) buffer.ByteOffset

	// Subscribe registers a callback fired after every insert or delete.
	Subscribe(fn func(buffer.Change)) event.Handle
	Unsubscribe(h event.Handle) bool
}

// DocumentEventKind identifies what changed on a Document.
type DocumentEventKind int

const (
	// ModifiedChanged fires when the modified flag flips.
	ModifiedChanged DocumentEventKind = iota
	// PathChanged fires when the file path changes.
	PathChanged
)

// String returns the event kind name.
func (k DocumentEventKind) String() string {
	switch k {
	case ModifiedChanged:
		return "modified-changed"
	case PathChanged:
		return "path-changed"
	default:
		return "unknown"
	}
}

// DocumentEvent is emitted by a Document.
type DocumentEvent struct {
	Kind     DocumentEventKind
	Document *Document
	OldPath  string // PathChanged only
}

// Document is one open text buffer plus its path and modified state.
type Document struct {
	id        uuid.UUID
	buf       TextBuffer
	path      string
	modified  bool
	listeners event.Listeners[DocumentEvent]
	bufHandle event.Handle
}

// NewDocument creates a document loaded from path with the given content.
// The document starts unmodified.
func NewDocument(path, content string) *Document {
	return NewDocumentWithBuffer(path, buffer.NewBufferFromString(content), false)
}

// NewScratchDocument creates an empty document with no path.
// A new document counts as modified until it is saved.
func NewScratchDocument() *Document {
	return NewDocumentWithBuffer("", buffer.NewBuffer(), true)
}

// NewDocumentWithBuffer wraps an existing buffer.
func NewDocumentWithBuffer(path string, buf TextBuffer, modified bool) *Document {
	d := &Document{
		id:       uuid.New(),
		buf:      buf,
		path:     path,
		modified: modified,
	}
	d.bufHandle = buf.Subscribe(func(buffer.Change) {
		d.SetModified(true)
	})
	return d
}

// ID returns the document's stable identifier.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Buffer returns the document's text buffer.
func (d *Document) Buffer() TextBuffer {
	return d.buf
}

// Text returns the full document content.
func (d *Document) Text() string {
	return d.buf.Text()
}

// Path returns the file path, or "" for an unsaved document.
func (d *Document) Path() string {
	return d.path
}

// Name returns the display name (file name or "Untitled").
func (d *Document) Name() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.path == ""
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// SetPath updates the file path. Listeners are notified only when the
// path actually changes.
func (d *Document) SetPath(path string) {
	if path == d.path {
		return
	}
	old := d.path
	d.path = path
	d.listeners.Notify(DocumentEvent{Kind: PathChanged, Document: d, OldPath: old})
}

// SetModified sets the modified flag. Listeners are notified only when
// the flag actually changes.
func (d *Document) SetModified(modified bool) {
	if modified == d.modified {
		return
	}
	d.modified = modified
	d.listeners.Notify(DocumentEvent{Kind: ModifiedChanged, Document: d})
}

// MarkSaved clears the modified flag.
func (d *Document) MarkSaved() {
	d.SetModified(false)
}

// Subscribe registers a listener for document events.
func (d *Document) Subscribe(fn func(DocumentEvent)) event.Handle {
	return d.listeners.Add(fn)
}

// Unsubscribe removes a document listener.
func (d *Document) Unsubscribe(h event.Handle) bool {
	return d.listeners.Remove(h)
}
