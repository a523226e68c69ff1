package pathkit

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Children lists the immediate entries of the directory as Path values. A
// path that is not an existing directory yields an empty result, not an
// error. Order is whatever the OS enumeration returns.
func (p Path) Children(skipHidden bool) ([]Path, error) {
	if !p.FolderExists() {
		return nil, nil
	}

	entries, err := p.sys().ReadDir(p.loc)
	if err != nil {
		return nil, &FilesystemError{Op: "list", Path: p.loc, Err: err}
	}

	children := make([]Path, 0, len(entries))
	for _, e := range entries {
		if skipHidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.IsDir() {
			children = append(children, p.Folder(e.Name()))
		} else {
			children = append(children, p.Resource(e.Name()))
		}
	}
	return children, nil
}

// Glob matches pattern against the subtree (doublestar syntax, ** supported)
// and returns the matches as Path values. Glob runs against the host
// filesystem regardless of the Path's bound implementation.
func (p Path) Glob(pattern string) ([]Path, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(p.loc, pattern))
	if err != nil {
		return nil, &FilesystemError{Op: "glob", Path: p.loc, Err: err}
	}

	paths := make([]Path, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, Path{loc: m, fs: p.fs})
	}
	return paths, nil
}
