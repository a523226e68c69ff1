package fsys

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/kelseyhightower/envconfig"
)

// OS forwards every call to the host filesystem. The zero value is ready to
// use.
type OS struct{}

func (OS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (OS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

func (OS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (OS) RemoveAll(path string) error { return os.RemoveAll(path) }

func (OS) ReadFile(path string, opts ReadOptions) ([]byte, error) {
	if opts&(ReadMappedIfSafe|ReadAlwaysMapped) != 0 {
		return readMapped(path, opts)
	}
	return os.ReadFile(path)
}

// Cache-directory tagging standard marker, honored by backup and sync tools.
const (
	backupTagName    = "CACHEDIR.TAG"
	backupTagContent = "Signature: 8a477f597d28d172789f06886806bc55\n" +
		"# This directory is excluded from automatic backups.\n"
)

// ExcludeFromBackup drops a CACHEDIR.TAG marker into the directory.
func (OS) ExcludeFromBackup(path string) error {
	return os.WriteFile(filepath.Join(path, backupTagName), []byte(backupTagContent), 0o644)
}

// dirOverrides lets deployments pin well-known directories through the
// environment (PATHKIT_DOCUMENTS_DIR and friends).
type dirOverrides struct {
	Documents  string `envconfig:"DOCUMENTS_DIR"`
	Library    string `envconfig:"LIBRARY_DIR"`
	Caches     string `envconfig:"CACHES_DIR"`
	AppSupport string `envconfig:"APP_SUPPORT_DIR"`
	Temp       string `envconfig:"TEMP_DIR"`
}

// Lookup resolves a well-known directory, preferring environment overrides
// over the platform defaults.
func (OS) Lookup(dir WellKnownDir) (string, error) {
	var o dirOverrides
	if err := envconfig.Process("pathkit", &o); err != nil {
		return "", err
	}

	switch dir {
	case Documents:
		if o.Documents != "" {
			return o.Documents, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Documents"), nil
	case Library:
		if o.Library != "" {
			return o.Library, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	case Caches:
		if o.Caches != "" {
			return o.Caches, nil
		}
		return os.UserCacheDir()
	case ApplicationSupport:
		if o.AppSupport != "" {
			return o.AppSupport, nil
		}
		return os.UserConfigDir()
	case Temp:
		if o.Temp != "" {
			return o.Temp, nil
		}
		return os.TempDir(), nil
	}
	return "", fmt.Errorf("fsys: unknown well-known directory %d", int(dir))
}

// TreeSize totals every regular file under root. Entries that fail mid-walk
// contribute zero; the walk itself never fails.
func (OS) TreeSize(root string) int64 {
	var total atomic.Int64
	conf := fastwalk.Config{Follow: false}

	_ = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})

	return total.Load()
}
