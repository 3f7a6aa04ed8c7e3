package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open", Target: "/path/file.txt"},
			expected: "open /path/file.txt",
		},
		{
			name:     "op, target, and context",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "permission denied"},
			expected: "open /path/file.txt (permission denied)",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "read failed", Err: errors.New("io error")},
			expected: "open /path/file.txt (read failed): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("save", "a.txt", ErrNoPath)

	if !errors.Is(err, ErrNoPath) {
		t.Error("expected wrapped error to match")
	}
	if !errors.Is(err, err) {
		t.Error("expected error to match itself")
	}
	if errors.Is(err, NewOperationError("save", "a.txt", ErrNoPath)) {
		t.Error("expected distinct wrappers not to match")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Unwrap() != nil || nilErr.Is(ErrNoPath) {
		t.Error("expected nil receiver to be safe")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("boom")
	err := &InitError{Component: "locale", Err: cause}

	if err.Error() != "init locale: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrInitialization) || !errors.Is(err, cause) {
		t.Error("expected InitError to match ErrInitialization and its cause")
	}
}

func TestErrorList(t *testing.T) {
	list := NewErrorList()
	if list.AsError() != nil {
		t.Error("expected empty list to be nil error")
	}

	list.Add(nil)
	list.Add(ErrNoPath)
	list.Add(ErrUnsavedChanges)

	if list.Len() != 2 {
		t.Errorf("expected 2 errors, got %d", list.Len())
	}
	if list.Error() != "2 errors: first: document has no path" {
		t.Errorf("unexpected message %q", list.Error())
	}

	err := list.AsError()
	if !errors.Is(err, ErrUnsavedChanges) {
		t.Error("expected list to expose collected errors")
	}

	errs := list.Errors()
	errs[0] = nil
	if list.Errors()[0] == nil {
		t.Error("expected Errors to return a copy")
	}
}
