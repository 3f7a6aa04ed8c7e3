package cursor

import (
	"fmt"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents a range of selected text.
// Selection is an immutable value type.
type Selection struct {
	Mark ByteOffset // Where selection started
	Dot  ByteOffset // Current caret position
}

// NewSelection creates a selection from mark to dot.
func NewSelection(mark, dot ByteOffset) Selection {
	return Selection{Mark: mark, Dot: dot}
}

// NewCaret creates a selection representing just a caret (no extent).
func NewCaret(offset ByteOffset) Selection {
	return Selection{Mark: offset, Dot: offset}
}

// NewSpan creates a forward selection of length bytes starting at offset.
func NewSpan(offset, length ByteOffset) Selection {
	return Selection{Mark: offset, Dot: offset + length}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Mark == s.Dot
}

// Offset returns the lower bound of the selection.
func (s Selection) Offset() ByteOffset {
	if s.Mark <= s.Dot {
		return s.Mark
	}
	return s.Dot
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() ByteOffset {
	if s.Mark <= s.Dot {
		return s.Dot - s.Mark
	}
	return s.Mark - s.Dot
}

// End returns the upper bound of the selection.
func (s Selection) End() ByteOffset {
	return s.Offset() + s.Len()
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Offset(), End: s.End()}
}

// IsBackward returns true if the selection extends backward (dot < mark).
func (s Selection) IsBackward() bool {
	return s.Dot < s.Mark
}

// CollapseToStart collapses the selection to a caret at its start.
func (s Selection) CollapseToStart() Selection {
	return NewCaret(s.Offset())
}

// Clamp returns a selection clamped to the valid range [0, maxOffset].
func (s Selection) Clamp(maxOffset ByteOffset) Selection {
	return Selection{Mark: clamp(s.Mark, maxOffset), Dot: clamp(s.Dot, maxOffset)}
}

func clamp(v, maxOffset ByteOffset) ByteOffset {
	if v < 0 {
		return 0
	}
	if v > maxOffset {
		return maxOffset
	}
	return v
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Dot)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Mark, dir, s.Dot)
}
