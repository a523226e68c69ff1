package pathkit

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/pathkit/fsys"
)

// DefaultFS backs every Path built by the package-level constructors.
var DefaultFS fsys.FS = fsys.OS{}

// Path is an immutable filesystem location, absolute or relative. The target
// is not required to exist; only the explicitly disk-mutating methods touch
// the filesystem, and none of them change the Path value itself.
type Path struct {
	loc string
	dir bool
	fs  fsys.FS
}

// New wraps a path string. No existence check, no normalization beyond
// filepath.Clean.
func New(p string) Path { return NewIn(DefaultFS, p) }

// NewIn wraps a path string bound to an explicit filesystem implementation.
func NewIn(fs fsys.FS, p string) Path {
	return Path{loc: filepath.Clean(p), fs: fs}
}

// NewURL wraps a file URL.
func NewURL(u *url.URL) Path { return New(u.Path) }

// String returns the canonical string form. Folder-composed paths keep a
// trailing separator.
func (p Path) String() string {
	if p.dir && !strings.HasSuffix(p.loc, string(os.PathSeparator)) {
		return p.loc + string(os.PathSeparator)
	}
	return p.loc
}

// URL returns the file URL form of the location.
func (p Path) URL() *url.URL {
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(p.loc)}
}

// Resource returns a Path for the non-directory child entry named name.
// Pure composition; the disk is never consulted.
func (p Path) Resource(name string) Path {
	return Path{loc: filepath.Join(p.loc, name), fs: p.fs}
}

// Folder is Resource with directory intent.
func (p Path) Folder(name string) Path {
	return Path{loc: filepath.Join(p.loc, name), dir: true, fs: p.fs}
}

func (p Path) sys() fsys.FS {
	if p.fs != nil {
		return p.fs
	}
	return DefaultFS
}
