package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OS implements FS using the operating system's file system.
type OS struct{}

// NewOS creates a new OS file system.
func NewOS() *OS {
	return &OS{}
}

var _ FS = (*OS)(nil)

// ReadFile reads the entire file content.
func (*OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (*OS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Stat returns file information.
func (*OS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return NewFileInfo(path, info.Name(), info.Size(), info.Mode(), info.ModTime()), nil
}

// Abs returns the absolute path.
func (*OS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Base returns the last element of a path.
func (*OS) Base(path string) string {
	return filepath.Base(path)
}

// Ext returns the file extension.
func (*OS) Ext(path string) string {
	return filepath.Ext(path)
}
