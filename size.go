package pathkit

import (
	"io/fs"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/pathkit/fsys"
)

// FileAttribute is a point-in-time snapshot of OS-reported metadata for one
// filesystem entry. It goes stale as soon as the entry changes.
type FileAttribute struct {
	Size     int64
	Mode     fs.FileMode
	Modified time.Time
	IsDir    bool
}

// Attributes returns a metadata snapshot, or nil when the query fails for
// any reason.
func (p Path) Attributes() *FileAttribute {
	info, err := p.sys().Stat(p.loc)
	if err != nil {
		pkgLog.Debug("attribute lookup failed", zap.String("path", p.loc), zap.Error(err))
		return nil
	}
	return &FileAttribute{
		Size:     info.Size(),
		Mode:     info.Mode(),
		Modified: info.ModTime(),
		IsDir:    info.IsDir(),
	}
}

// Size returns 0 for a missing path, the byte length for a file, and the
// recursive subtree total for a directory. Entries that fail mid-walk
// contribute zero; the operation itself never fails.
func (p Path) Size() int64 {
	info, err := p.sys().Stat(p.loc)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}
	if ts, ok := p.sys().(fsys.TreeSizer); ok {
		return ts.TreeSize(p.loc)
	}
	return treeSize(p.sys(), p.loc)
}

// SizeString formats Size with FormatByteCount.
func (p Path) SizeString() string { return FormatByteCount(p.Size()) }

// treeSize is the generic depth-first fallback for filesystems without a
// fast walker.
func treeSize(sys fsys.FS, root string) int64 {
	entries, err := sys.ReadDir(root)
	if err != nil {
		pkgLog.Debug("size walk skipped subtree", zap.String("path", root), zap.Error(err))
		return 0
	}

	var total int64
	for _, e := range entries {
		child := filepath.Join(root, e.Name())
		if e.IsDir() {
			total += treeSize(sys, child)
			continue
		}
		info, err := sys.Stat(child)
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total
}
