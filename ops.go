package pathkit

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/pathkit/fsys"
)

// CreateDirectory creates the directory at this path along with any missing
// parents.
func (p Path) CreateDirectory() error {
	if err := p.sys().MkdirAll(p.loc, 0o755); err != nil {
		return &FilesystemError{Op: "create directory", Path: p.loc, Err: err}
	}
	return nil
}

// RemoveFromDisk recursively removes the file or directory at this path.
// Removing a path that does not exist is an error.
func (p Path) RemoveFromDisk() error {
	// RemoveAll reports nil for missing paths; stat first so a vanished
	// target is visible to the caller.
	if _, err := p.sys().Stat(p.loc); err != nil {
		return &FilesystemError{Op: "remove", Path: p.loc, Err: err}
	}
	if err := p.sys().RemoveAll(p.loc); err != nil {
		return &FilesystemError{Op: "remove", Path: p.loc, Err: err}
	}
	return nil
}

// DisableAutoBackup marks the directory as excluded from automatic backups.
// Best effort: missing paths, plain files, and attribute failures are all
// silently ignored.
func (p Path) DisableAutoBackup() {
	exists, isFile := p.FileExists()
	if !exists || isFile {
		return
	}
	if err := p.sys().ExcludeFromBackup(p.loc); err != nil {
		pkgLog.Debug("backup exclusion failed", zap.String("path", p.loc), zap.Error(err))
	}
}

// ReadData reads the entire file contents into memory, honoring the given
// read options.
func (p Path) ReadData(opts fsys.ReadOptions) ([]byte, error) {
	data, err := p.sys().ReadFile(p.loc, opts)
	if err != nil {
		return nil, &FilesystemError{Op: "read", Path: p.loc, Err: err}
	}
	return data, nil
}
