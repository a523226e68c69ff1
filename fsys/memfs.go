package fsys

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemFS is an in-memory FS for tests and sandboxed consumers. It is not safe
// for concurrent mutation.
type MemFS struct {
	files     map[string][]byte
	dirs      map[string]bool
	wellKnown map[WellKnownDir]string
	excluded  map[string]bool
}

// NewMemFS returns an empty in-memory filesystem containing only the root
// directory.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string][]byte),
		dirs:      map[string]bool{string(os.PathSeparator): true},
		wellKnown: make(map[WellKnownDir]string),
		excluded:  make(map[string]bool),
	}
}

// SetWellKnown maps a well-known directory identifier to a location and
// creates it.
func (m *MemFS) SetWellKnown(dir WellKnownDir, p string) {
	p = filepath.Clean(p)
	m.wellKnown[dir] = p
	m.addDirs(p)
}

// WriteFile stores a file, creating parent directories as needed.
func (m *MemFS) WriteFile(p string, data []byte) {
	p = filepath.Clean(p)
	m.addDirs(filepath.Dir(p))
	m.files[p] = append([]byte(nil), data...)
}

// Excluded reports whether ExcludeFromBackup was applied to p.
func (m *MemFS) Excluded(p string) bool { return m.excluded[filepath.Clean(p)] }

func (m *MemFS) addDirs(p string) {
	for {
		m.dirs[p] = true
		parent := filepath.Dir(p)
		if parent == p {
			return
		}
		p = parent
	}
}

func (m *MemFS) Stat(p string) (fs.FileInfo, error) {
	p = filepath.Clean(p)
	if m.dirs[p] {
		return memInfo{name: filepath.Base(p), dir: true}, nil
	}
	if data, ok := m.files[p]; ok {
		return memInfo{name: filepath.Base(p), size: int64(len(data))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (m *MemFS) ReadDir(p string) ([]fs.DirEntry, error) {
	p = filepath.Clean(p)
	if !m.dirs[p] {
		if _, ok := m.files[p]; ok {
			return nil, &fs.PathError{Op: "readdir", Path: p, Err: fmt.Errorf("not a directory")}
		}
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}

	var entries []fs.DirEntry
	for d := range m.dirs {
		if d != p && filepath.Dir(d) == p {
			entries = append(entries, memEntry{memInfo{name: filepath.Base(d), dir: true}})
		}
	}
	for f, data := range m.files {
		if filepath.Dir(f) == p {
			entries = append(entries, memEntry{memInfo{name: filepath.Base(f), size: int64(len(data))}})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemFS) MkdirAll(p string, _ os.FileMode) error {
	p = filepath.Clean(p)
	if _, ok := m.files[p]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	m.addDirs(p)
	return nil
}

func (m *MemFS) RemoveAll(p string) error {
	p = filepath.Clean(p)
	prefix := p + string(os.PathSeparator)
	for d := range m.dirs {
		if d == p || strings.HasPrefix(d, prefix) {
			delete(m.dirs, d)
		}
	}
	for f := range m.files {
		if f == p || strings.HasPrefix(f, prefix) {
			delete(m.files, f)
		}
	}
	return nil
}

func (m *MemFS) ReadFile(p string, _ ReadOptions) ([]byte, error) {
	p = filepath.Clean(p)
	if m.dirs[p] {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fmt.Errorf("is a directory")}
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFS) ExcludeFromBackup(p string) error {
	p = filepath.Clean(p)
	if !m.dirs[p] {
		return &fs.PathError{Op: "exclude", Path: p, Err: fs.ErrNotExist}
	}
	m.excluded[p] = true
	return nil
}

func (m *MemFS) Lookup(dir WellKnownDir) (string, error) {
	p, ok := m.wellKnown[dir]
	if !ok {
		return "", fmt.Errorf("fsys: no mapping for %s", dir)
	}
	return p, nil
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }

type memEntry struct{ memInfo }

func (e memEntry) Type() fs.FileMode          { return e.Mode().Type() }
func (e memEntry) Info() (fs.FileInfo, error) { return e.memInfo, nil }
