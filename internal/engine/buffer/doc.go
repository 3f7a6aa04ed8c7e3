// Package buffer provides the editable text buffer that backs a document.
//
// A Buffer stores UTF-8 text and keeps an index of line start offsets so
// that line/offset conversions are cheap. Every successful insert or delete
// is announced to subscribers as a Change, which is how documents learn that
// their content was modified.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	buf.Delete(0, 7)             // "Beautiful World!"
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the buffer
//   - Point: Line and column position (0-indexed, column in bytes)
//
// Lines are separated by '\n'. A buffer always has at least one line; text
// ending in '\n' has an empty last line.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. Callers that share a buffer across
// goroutines must serialize access at a higher level.
package buffer
