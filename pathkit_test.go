package pathkit_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pathkit"
	"github.com/GriffinCanCode/pathkit/fsys"
)

// TestNewCleansPath tests that construction normalizes but never touches disk
func TestNewCleansPath(t *testing.T) {
	p := pathkit.New("/a//b/../c/")
	assert.Equal(t, "/a/c", p.String())
}

// TestNewURL tests construction from a file URL
func TestNewURL(t *testing.T) {
	u, err := url.Parse("file:///data/report.pdf")
	require.NoError(t, err)

	p := pathkit.NewURL(u)
	assert.Equal(t, "/data/report.pdf", p.String())
}

// TestURLRoundTrip tests the URL form of a path
func TestURLRoundTrip(t *testing.T) {
	p := pathkit.New("/a/b.txt")
	assert.Equal(t, "file:///a/b.txt", p.URL().String())
}

// TestResourceComposition tests child entry composition
func TestResourceComposition(t *testing.T) {
	p := pathkit.New("/base").Resource("file.txt")
	assert.Equal(t, "/base/file.txt", p.String())
}

// TestFolderKeepsTrailingSeparator tests directory-intent composition
func TestFolderKeepsTrailingSeparator(t *testing.T) {
	p := pathkit.New("/base").Folder("sub")
	assert.Equal(t, "/base/sub/", p.String())
}

// TestCompositionNeverTouchesDisk tests that Resource and Folder are pure
func TestCompositionNeverTouchesDisk(t *testing.T) {
	mem := fsys.NewMemFS()
	parent := pathkit.NewIn(mem, "/does/not/exist")

	child := parent.Resource("a.txt")
	sub := parent.Folder("sub")

	assert.False(t, parent.Exists())
	assert.False(t, child.Exists())
	assert.False(t, sub.Exists())
}
