package fsys

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemFSWriteFileCreatesParents tests implicit parent directory creation
func TestMemFSWriteFileCreatesParents(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/a/b/c.txt", []byte("x"))

	info, err := mem.Stat("/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mem.Stat("/a/b/c.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(1), info.Size())
}

// TestMemFSStatMissing tests the not-exist error shape
func TestMemFSStatMissing(t *testing.T) {
	_, err := NewMemFS().Stat("/nope")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestMemFSReadDir tests sorted one-level listing
func TestMemFSReadDir(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/d/z.txt", nil)
	mem.WriteFile("/d/a.txt", nil)
	mem.WriteFile("/d/sub/nested", nil)

	entries, err := mem.ReadDir("/d")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.Equal(t, "sub", entries[1].Name())
	assert.True(t, entries[1].IsDir())
	assert.Equal(t, "z.txt", entries[2].Name())

	_, err = mem.ReadDir("/d/a.txt")
	assert.Error(t, err)
	_, err = mem.ReadDir("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestMemFSRemoveAll tests recursive removal and prefix safety
func TestMemFSRemoveAll(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/a/f", nil)
	mem.WriteFile("/ab/g", nil)

	require.NoError(t, mem.RemoveAll("/a"))

	_, err := mem.Stat("/a")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = mem.Stat("/ab/g")
	assert.NoError(t, err)

	// Removing a missing path is not an error, matching os.RemoveAll.
	assert.NoError(t, mem.RemoveAll("/gone"))
}

// TestMemFSMkdirAllOverFile tests the collision failure mode
func TestMemFSMkdirAllOverFile(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/a/f", nil)

	assert.Error(t, mem.MkdirAll("/a/f", 0o755))
}

// TestMemFSReadFile tests reads and their failure modes
func TestMemFSReadFile(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/a/f", []byte("data"))

	data, err := mem.ReadFile("/a/f", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = mem.ReadFile("/a", 0)
	assert.Error(t, err)
	_, err = mem.ReadFile("/missing", 0)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestMemFSLookup tests well-known mappings
func TestMemFSLookup(t *testing.T) {
	mem := NewMemFS()
	mem.SetWellKnown(Caches, "/sandbox/caches")

	loc, err := mem.Lookup(Caches)
	require.NoError(t, err)
	assert.Equal(t, "/sandbox/caches", loc)

	_, err = mem.Lookup(Documents)
	assert.Error(t, err)
}

// TestMemFSExcludeFromBackup tests exclusion marking
func TestMemFSExcludeFromBackup(t *testing.T) {
	mem := NewMemFS()
	mem.WriteFile("/d/f", nil)

	require.NoError(t, mem.ExcludeFromBackup("/d"))
	assert.True(t, mem.Excluded("/d"))

	assert.Error(t, mem.ExcludeFromBackup("/d/f"))
	assert.Error(t, mem.ExcludeFromBackup("/missing"))
}
