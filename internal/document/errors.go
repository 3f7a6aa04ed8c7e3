package document

import (
	"errors"
	"fmt"
)

// Errors returned by registry operations.
var (
	// ErrUnreadable indicates a file could not be opened as a text document.
	// It covers missing files, non-regular files, permission failures and
	// content that is not valid UTF-8.
	ErrUnreadable = errors.New("file not readable")

	// ErrWriteFailed indicates a document could not be written to disk.
	ErrWriteFailed = errors.New("write failed")

	// ErrPathInUse indicates a save target is already open in another document.
	ErrPathInUse = errors.New("path is open in another document")

	// ErrDocumentNotFound indicates a document is not registered.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrIndexOutOfRange indicates an invalid document index.
	ErrIndexOutOfRange = errors.New("document index out of range")
)

// OpenError reports a failed open. It always matches ErrUnreadable.
type OpenError struct {
	Path string // Path that was requested
	Err  error  // Underlying error
}

func (e *OpenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("open %s: %v: %v", e.Path, ErrUnreadable, e.Err)
	}
	return fmt.Sprintf("open %s: %v", e.Path, ErrUnreadable)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for OpenError.
func (e *OpenError) Is(target error) bool {
	return target == ErrUnreadable
}

// SaveErrorKind distinguishes why a save failed.
type SaveErrorKind int

const (
	// SaveWriteFailed means the write itself failed.
	SaveWriteFailed SaveErrorKind = iota
	// SavePathInUse means the target is open in another document.
	SavePathInUse
)

// SaveError reports a failed save. The document is left unchanged.
type SaveError struct {
	Kind SaveErrorKind
	Path string // Target path
	Err  error  // Underlying error
}

func (e *SaveError) Error() string {
	reason := ErrWriteFailed
	if e.Kind == SavePathInUse {
		reason = ErrPathInUse
	}
	if e.Err != nil && e.Err != reason {
		return fmt.Sprintf("save %s: %v: %v", e.Path, reason, e.Err)
	}
	return fmt.Sprintf("save %s: %v", e.Path, reason)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for SaveError.
// A write failure matches ErrWriteFailed; a collision matches ErrPathInUse.
func (e *SaveError) Is(target error) bool {
	switch target {
	case ErrWriteFailed:
		return e.Kind == SaveWriteFailed
	case ErrPathInUse:
		return e.Kind == SavePathInUse
	}
	return false
}

// InvariantError is the panic value used when core bookkeeping is violated.
// It signals a programming error, never a user-facing condition.
type InvariantError struct {
	Op  string // Operation that detected the violation
	Msg string // Description
	Err error  // Underlying error, if any
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violated in %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Msg)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Invariant panics with an *InvariantError.
func Invariant(op, msg string, err error) {
	panic(&InvariantError{Op: op, Msg: msg, Err: err})
}
