package vfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Mem implements FS in memory. Paths are slash-separated and rooted at "/".
// Permission bits are honoured: a file without owner read permission cannot
// be read and one without owner write permission cannot be overwritten.
//
// Mem is safe for concurrent use.
type Mem struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMem creates a new in-memory file system.
func NewMem() *Mem {
	return &Mem{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
	}
}

var _ FS = (*Mem)(nil)

// ReadFile reads the entire file content.
func (m *Mem) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if f.mode.Perm()&0400 == 0 {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrPermission}
	}

	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// WriteFile writes data to a file, creating it if necessary.
// The parent directory must exist.
func (m *Mem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: syscall.EISDIR}
	}
	if dir := path.Dir(filePath); !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}

	mode := perm
	if f, ok := m.files[filePath]; ok {
		if f.mode.Perm()&0200 == 0 {
			return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrPermission}
		}
		mode = f.mode
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[filePath] = &memFile{content: content, mode: mode, modTime: time.Now()}
	return nil
}

// Stat returns file information.
func (m *Mem) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return NewFileInfo(filePath, path.Base(filePath), int64(len(f.content)), f.mode, f.modTime), nil
	}
	if m.dirs[filePath] {
		return NewFileInfo(filePath, path.Base(filePath), 0, fs.ModeDir|0755, time.Time{}), nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Abs returns the cleaned path (paths in Mem are always absolute).
func (m *Mem) Abs(filePath string) (string, error) {
	return cleanPath(filePath), nil
}

// Base returns the last element of a path.
func (m *Mem) Base(filePath string) string {
	return path.Base(filePath)
}

// Ext returns the file extension.
func (m *Mem) Ext(filePath string) string {
	return path.Ext(filePath)
}

// MkdirAll creates a directory and all parent directories.
func (m *Mem) MkdirAll(dirPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirPath = cleanPath(dirPath)
	for p := dirPath; ; p = path.Dir(p) {
		if _, isFile := m.files[p]; isFile {
			return &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
		}
		m.dirs[p] = true
		if p == "/" {
			return nil
		}
	}
}

// AddFile is a convenience method for adding files during setup.
// Parent directories are created as needed.
func (m *Mem) AddFile(filePath, content string) error {
	return m.AddFileMode(filePath, content, 0644)
}

// AddFileMode adds a file with the given permission bits.
func (m *Mem) AddFileMode(filePath, content string, perm fs.FileMode) error {
	filePath = cleanPath(filePath)
	if err := m.MkdirAll(path.Dir(filePath)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filePath] = &memFile{content: []byte(content), mode: perm, modTime: time.Now()}
	return nil
}

// Files returns all file paths in the file system.
func (m *Mem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
