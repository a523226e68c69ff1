package pathkit

import (
	"path/filepath"

	"github.com/GriffinCanCode/pathkit/fsys"
	"github.com/google/uuid"
)

// Resolve resolves a well-known sandbox directory through the default
// filesystem. When create is set, the directory is created if absent.
func Resolve(dir fsys.WellKnownDir, create bool) (Path, error) {
	return ResolveIn(DefaultFS, dir, create)
}

// ResolveIn is Resolve against an explicit filesystem implementation.
func ResolveIn(fs fsys.FS, dir fsys.WellKnownDir, create bool) (Path, error) {
	loc, err := fs.Lookup(dir)
	if err != nil {
		return Path{}, &DirectoryResolutionError{Dir: dir, Err: err}
	}

	p := Path{loc: filepath.Clean(loc), dir: true, fs: fs}
	if create && !p.FolderExists() {
		if err := fs.MkdirAll(p.loc, 0o755); err != nil {
			return Path{}, &DirectoryResolutionError{Dir: dir, Err: err}
		}
	}
	return p, nil
}

// Documents returns the user documents directory.
//
// The four core sandbox directories are guaranteed present by the OS
// contract; a resolution failure here is unrecoverable and panics rather
// than propagating an error nobody can handle.
func Documents() Path { return mustResolve(fsys.Documents) }

// Library returns the user library (data) directory.
func Library() Path { return mustResolve(fsys.Library) }

// Cache returns the user caches directory.
func Cache() Path { return mustResolve(fsys.Caches) }

// Temp returns the temporary directory.
func Temp() Path { return mustResolve(fsys.Temp) }

// ApplicationSupport resolves the application-support directory, creating it
// when autoCreate is set. Unlike the other factories, resolution failure is
// returned to the caller.
func ApplicationSupport(autoCreate bool) (Path, error) {
	return Resolve(fsys.ApplicationSupport, autoCreate)
}

func mustResolve(dir fsys.WellKnownDir) Path {
	p, err := Resolve(dir, false)
	if err != nil {
		panic(err)
	}
	return p
}

// ScratchDir creates a uniquely named directory under Temp and returns it.
func ScratchDir() (Path, error) { return ScratchDirIn(DefaultFS) }

// ScratchDirIn is ScratchDir against an explicit filesystem implementation.
func ScratchDirIn(fs fsys.FS) (Path, error) {
	tmp, err := ResolveIn(fs, fsys.Temp, false)
	if err != nil {
		return Path{}, err
	}

	p := tmp.Folder(uuid.NewString())
	if err := p.CreateDirectory(); err != nil {
		return Path{}, err
	}
	return p, nil
}
