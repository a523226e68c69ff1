// Package fsys abstracts the host filesystem behind a small interface so
// that path operations can run against the real disk or a substituted
// implementation (see MemFS) without changing callers.
package fsys

import (
	"io/fs"
	"os"
)

// WellKnownDir identifies an OS-designated storage location resolved by
// symbolic identifier rather than literal path.
type WellKnownDir int

const (
	Documents WellKnownDir = iota
	Library
	Caches
	ApplicationSupport
	Temp
)

// String returns the identifier name.
func (d WellKnownDir) String() string {
	switch d {
	case Documents:
		return "documents"
	case Library:
		return "library"
	case Caches:
		return "caches"
	case ApplicationSupport:
		return "application-support"
	case Temp:
		return "temp"
	}
	return "unknown"
}

// ReadOptions control how ReadFile pulls bytes into memory.
type ReadOptions uint8

const (
	// ReadMappedIfSafe maps the file into memory instead of copying when the
	// platform supports it, falling back to a plain read when mapping fails.
	ReadMappedIfSafe ReadOptions = 1 << iota

	// ReadAlwaysMapped maps the file and surfaces the mapping failure instead
	// of falling back.
	ReadAlwaysMapped
)

// FS is the filesystem-access contract every Path operation routes through.
// Implementations forward to the platform API; none of the methods retry.
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	ReadFile(path string, opts ReadOptions) ([]byte, error)

	// ExcludeFromBackup marks a directory as skipped by automatic backup
	// tooling.
	ExcludeFromBackup(path string) error

	// Lookup resolves a well-known directory to a concrete location.
	Lookup(dir WellKnownDir) (string, error)
}

// TreeSizer is implemented by filesystems that can total a subtree faster
// than a generic ReadDir recursion.
type TreeSizer interface {
	TreeSize(root string) int64
}
