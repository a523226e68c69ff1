package pathkit

import (
	"fmt"

	"github.com/GriffinCanCode/pathkit/fsys"
)

// FilesystemError wraps an OS-level failure from a propagating operation.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("pathkit: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// DirectoryResolutionError reports a well-known directory that could not be
// resolved or created.
type DirectoryResolutionError struct {
	Dir fsys.WellKnownDir
	Err error
}

func (e *DirectoryResolutionError) Error() string {
	return fmt.Sprintf("pathkit: resolve %s: %v", e.Dir, e.Err)
}

func (e *DirectoryResolutionError) Unwrap() error { return e.Err }
