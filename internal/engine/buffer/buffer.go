package buffer

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/notepad/internal/event"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer holds editable text with a line start index.
type Buffer struct {
	text       string
	lineStarts []ByteOffset // lineStarts[0] is always 0
	listeners  event.Listeners[Change]
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{lineStarts: []ByteOffset{0}}
}

// NewBufferFromString creates a buffer with initial content.
// No change notification is emitted for the initial content.
func NewBufferFromString(s string) *Buffer {
	b := &Buffer{text: s}
	b.reindex()
	return b
}

// Subscribe registers fn to be called after every insert or delete.
func (b *Buffer) Subscribe(fn func(Change)) event.Handle {
	return b.listeners.Add(fn)
}

// Unsubscribe removes a change listener.
func (b *Buffer) Unsubscribe(h event.Handle) bool {
	return b.listeners.Remove(h)
}

// Read Operations

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return b.text
}

// TextRange returns text in the given byte range.
func (b *Buffer) TextRange(start, end ByteOffset) (string, error) {
	if !b.validRange(start, end) {
		return "", ErrRangeInvalid
	}
	return b.text[start:end], nil
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	return uint32(len(b.lineStarts))
}

// LineIndexOf returns the line containing offset.
// Offsets past the end map to the last line.
func (b *Buffer) LineIndexOf(offset ByteOffset) uint32 {
	if offset <= 0 {
		return 0
	}
	// First line start strictly greater than offset, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return uint32(i - 1)
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end map to the buffer length.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(b.lineStarts) {
		return b.Len()
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	next := int(line) + 1
	if next >= len(b.lineStarts) {
		return b.Len()
	}
	return b.lineStarts[next] - 1
}

// OffsetToPoint converts a byte offset to line/column.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > b.Len() {
		offset = b.Len()
	}
	line := b.LineIndexOf(offset)
	return Point{Line: line, Column: uint32(offset - b.lineStarts[line])}
}

// RuneStart returns the start of the character containing offset.
// Offsets outside the buffer are clamped first.
func (b *Buffer) RuneStart(offset ByteOffset) ByteOffset {
	if offset <= 0 {
		return 0
	}
	if offset >= b.Len() {
		return b.Len()
	}
	for offset > 0 && !utf8.RuneStart(b.text[offset]) {
		offset--
	}
	return offset
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	if offset < 0 || offset > b.Len() {
		return 0, ErrOffsetOutOfRange
	}
	if text == "" {
		return offset, nil
	}

	b.text = b.text[:offset] + text + b.text[offset:]
	b.reindex()

	end := offset + ByteOffset(len(text))
	b.listeners.Notify(Change{
		Type:  ChangeInsert,
		Range: Range{Start: offset, End: end},
		Text:  text,
	})
	return end, nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	if !b.validRange(start, end) {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	removed := b.text[start:end]
	b.text = b.text[:start] + b.text[end:]
	b.reindex()

	b.listeners.Notify(Change{
		Type:  ChangeDelete,
		Range: Range{Start: start, End: end},
		Text:  removed,
	})
	return nil
}

// Replace replaces text in the given range with new text as a delete
// followed by an insert. Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	if err := b.Delete(start, end); err != nil {
		return 0, err
	}
	return b.Insert(start, text)
}

func (b *Buffer) validRange(start, end ByteOffset) bool {
	return start >= 0 && start <= end && end <= b.Len()
}

// reindex rebuilds the line start table.
func (b *Buffer) reindex() {
	starts := make([]ByteOffset, 1, strings.Count(b.text, "\n")+1)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	b.lineStarts = starts
}
