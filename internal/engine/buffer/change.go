package buffer

import "fmt"

// ChangeType categorizes a buffer change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted.
	ChangeInsert ChangeType = iota
	// ChangeDelete indicates text was removed.
	ChangeDelete
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change describes a completed mutation.
// For inserts Range covers the new text; for deletes it covers the removed
// text in pre-deletion coordinates.
type Change struct {
	Type  ChangeType
	Range Range
	Text  string
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	return fmt.Sprintf("%s%s %q", c.Type, c.Range, c.Text)
}
