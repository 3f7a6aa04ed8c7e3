package vfs

import (
	"errors"
	"unicode/utf8"
)

// Errors returned when reading text files.
var (
	// ErrInvalidUTF8 indicates file content is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

	// ErrNotRegular indicates a path does not name a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// DecodeUTF8 returns content as a string, byte for byte. A leading byte
// order mark is kept. Content that is not valid UTF-8 is rejected.
func DecodeUTF8(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", ErrInvalidUTF8
	}
	return string(content), nil
}

// ReadText reads path from fsys and decodes it as UTF-8.
// Directories and other non-regular files are rejected.
func ReadText(fsys FS, path string) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsRegular() {
		return "", ErrNotRegular
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeUTF8(data)
}
