//go:build !unix

package fsys

import "os"

// Platforms without mmap support fall back to a plain read regardless of the
// requested options.
func readMapped(path string, _ ReadOptions) ([]byte, error) {
	return os.ReadFile(path)
}
