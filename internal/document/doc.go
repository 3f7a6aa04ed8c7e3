// Package document implements the open-document model: a Document wraps
// one text buffer with its file path and modified flag, and a Registry owns
// the ordered set of open documents and tracks which one is active.
//
// # Events
//
// Documents emit DocumentEvent values when their modified flag or path
// changes. The registry forwards these as registry Events and adds its own
// DocumentAdded, DocumentRemoved and ActiveChanged notifications. Within a
// single registry call, DocumentAdded/DocumentRemoved are delivered before
// ActiveChanged, and at most one ActiveChanged is delivered.
//
// Listeners run synchronously in registration order.
//
// # Invariants
//
//   - At most one document is active; the active index is valid or -1.
//   - No two open documents share the same non-empty path. Opening a path
//     that is already open activates the existing document.
//   - A document's modified flag becomes true on any buffer edit and false
//     only after a successful save or initial load.
//
// Violations that can only come from a programming error (for example
// saving a document that has no path without naming a target) panic with
// an *InvariantError.
//
// # Thread Safety
//
// Neither Document nor Registry is safe for concurrent use. Callers that
// expose them to multiple goroutines must serialize all access behind one
// lock, as app.Editor does.
package document
