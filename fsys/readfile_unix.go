//go:build unix

package fsys

import (
	"os"

	"golang.org/x/sys/unix"
)

// readMapped maps the file and copies the mapping out, so callers never hold
// pages whose backing file may disappear.
func readMapped(path string, opts ReadOptions) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		if opts&ReadAlwaysMapped != 0 {
			return nil, err
		}
		return os.ReadFile(path)
	}
	defer unix.Munmap(data)

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
