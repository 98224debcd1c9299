package fs

import (
	iofs "io/fs"
	"os"
	"sort"
	"time"
)

// MemFS is an in-memory FS test double. It records files and directories
// and reports every mutation, so tests can assert "no writes happened".
type MemFS struct {
	Files map[string][]byte
	Dirs  map[string]bool

	// Writes counts mutating calls (MkdirAll, WriteFile, Append).
	Writes int
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	m.Writes++
	m.Dirs[path] = true
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[path]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	return data, nil
}

func (m *MemFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.Writes++
	m.Files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MemFS) Stat(path string) (iofs.FileInfo, error) {
	if _, ok := m.Files[path]; ok {
		return memInfo{name: path}, nil
	}
	if m.Dirs[path] {
		return memInfo{name: path, dir: true}, nil
	}
	return nil, &iofs.PathError{Op: "stat", Path: path, Err: iofs.ErrNotExist}
}

func (m *MemFS) Append(path string, data []byte, perm os.FileMode) error {
	m.Writes++
	m.Files[path] = append(m.Files[path], data...)
	return nil
}

// Paths returns the sorted file paths present.
func (m *MemFS) Paths() []string {
	out := make([]string, 0, len(m.Files))
	for p := range m.Files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

type memInfo struct {
	name string
	dir  bool
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return 0 }
func (i memInfo) Mode() iofs.FileMode {
	if i.dir {
		return iofs.ModeDir
	}
	return 0
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
