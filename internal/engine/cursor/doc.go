// Package cursor provides the caret selection model used by text transforms.
//
// Selections use a mark/dot model where:
//   - Mark: the position where the selection started
//   - Dot: the current caret position (where typing would occur)
//
// When Mark == Dot, the selection represents just a caret with no selected
// text. Transforms consume a selection as an (offset, length) pair:
//
//	offset = min(dot, mark)
//	length = |dot - mark|
//
// Basic usage:
//
//	sel := cursor.NewSelection(2, 7) // mark 2, dot 7
//	sel.Offset()                     // 2
//	sel.Len()                        // 5
//
//	sel = cursor.NewCaret(10)        // caret at offset 10, nothing selected
package cursor
