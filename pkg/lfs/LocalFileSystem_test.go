// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfs/gocopy/pkg/fs"
)

func TestLocalFileSystemReadAttributes(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	modTime := time.Date(2020, time.March, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("a"), 0640))
	require.NoError(t, a.Chtimes("/data/a.txt", modTime, modTime))
	lfs := NewLocalFileSystemWithFs(a, "/")

	attributes, err := lfs.ReadAttributes(ctx, "/data/a.txt", fs.ModelPosix, true)
	require.NoError(t, err)
	assert.Equal(t, fs.KindRegular, attributes.Kind)
	assert.Equal(t, fs.ModelPosix, attributes.Model)
	assert.Equal(t, os.FileMode(0640), attributes.Permissions)
	assert.True(t, attributes.ModTime.Equal(modTime))

	attributes, err = lfs.ReadAttributes(ctx, "/data/a.txt", fs.ModelBasic, true)
	require.NoError(t, err)
	assert.Equal(t, fs.ModelBasic, attributes.Model)
	assert.Equal(t, os.FileMode(0), attributes.Permissions)
}

func TestLocalFileSystemReadAttributesDirectory(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, a.MkdirAll("/data", 0755))
	lfs := NewLocalFileSystemWithFs(a, "/")

	attributes, err := lfs.ReadAttributes(ctx, "/data", fs.ModelBasic, true)
	require.NoError(t, err)
	assert.Equal(t, fs.KindDirectory, attributes.Kind)
}

func TestLocalFileSystemReadAttributesNotExist(t *testing.T) {
	ctx := context.Background()

	lfs := NewLocalFileSystemWithFs(afero.NewMemMapFs(), "/")

	_, err := lfs.ReadAttributes(ctx, "/data/missing.txt", fs.ModelBasic, true)
	require.Error(t, err)
	assert.True(t, lfs.IsNotExist(err))
}

func TestLocalFileSystemRemoveIfExists(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("a"), 0644))
	lfs := NewLocalFileSystemWithFs(a, "/")

	removed, err := lfs.RemoveIfExists(ctx, "/data/a.txt")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = lfs.RemoveIfExists(ctx, "/data/a.txt")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLocalFileSystemReadDir(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, a.MkdirAll("/data/sub", 0755))
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("a"), 0644))
	lfs := NewLocalFileSystemWithFs(a, "/")

	directoryEntries, err := lfs.ReadDir(ctx, "/data")
	require.NoError(t, err)
	require.Len(t, directoryEntries, 2)

	names := map[string]bool{}
	for _, directoryEntry := range directoryEntries {
		names[directoryEntry.Name()] = directoryEntry.IsDir()
	}
	assert.Equal(t, map[string]bool{"a.txt": false, "sub": true}, names)
}

func TestLocalFileSystemSize(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("hello"), 0644))
	lfs := NewLocalFileSystemWithFs(a, "/")

	size, err := lfs.Size(ctx, "/data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
}

func TestLocalFileSystemJoinDir(t *testing.T) {
	lfs := NewLocalFileSystemWithFs(afero.NewMemMapFs(), "/")
	assert.Equal(t, "/data/a.txt", lfs.Join("/data", "a.txt"))
	assert.Equal(t, "/data", lfs.Dir("/data/a.txt"))
	assert.Equal(t, "/", lfs.Root())
}
