package types_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathkit/pkg/testutil"
	"github.com/arthur-debert/pathkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSymlink(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/d", 0755))
	require.NoError(t, fsys.WriteFile("/d/file", []byte("x"), 0644))
	require.NoError(t, fsys.Symlink("file", "/d/link"))
	require.NoError(t, fsys.Symlink("missing", "/d/dangling"))

	assert.True(t, types.IsSymlink(fsys, "/d/link"))
	assert.True(t, types.IsSymlink(fsys, "/d/dangling"))
	assert.False(t, types.IsSymlink(fsys, "/d/file"))
	assert.False(t, types.IsSymlink(fsys, "/d"))
	assert.False(t, types.IsSymlink(fsys, "/d/nope"))
}

func TestIsSymlink_InjectedError(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.Symlink("/target", "/link"))
	fsys.WithError("/link", os.ErrPermission)

	assert.False(t, types.IsSymlink(fsys, filepath.Join("/", "link")))
}
