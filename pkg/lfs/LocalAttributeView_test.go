// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

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

func TestLocalBasicAttributeViewSetTimes(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("a"), 0644))
	lfs := NewLocalFileSystemWithFs(a, "/")

	view, ok := lfs.AttributeView(ctx, "/data/a.txt", fs.ModelBasic)
	require.True(t, ok)

	modTime := time.Date(2020, time.March, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, view.SetTimes(ctx, modTime, time.Time{}, time.Time{}))

	fi, err := a.Stat("/data/a.txt")
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(modTime))
}

func TestLocalPosixAttributeViewSetPermissions(t *testing.T) {
	ctx := context.Background()

	a := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(a, "/data/a.txt", []byte("a"), 0644))
	lfs := NewLocalFileSystemWithFs(a, "/")

	view, ok := lfs.AttributeView(ctx, "/data/a.txt", fs.ModelPosix)
	require.True(t, ok)

	posixView, isPosix := view.(fs.PosixAttributeView)
	require.True(t, isPosix)

	require.NoError(t, posixView.SetPermissions(ctx, os.FileMode(0600)))

	fi, err := a.Stat("/data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestLocalAttributeViewUnknownModel(t *testing.T) {
	ctx := context.Background()

	lfs := NewLocalFileSystemWithFs(afero.NewMemMapFs(), "/")

	_, ok := lfs.AttributeView(ctx, "/data/a.txt", fs.AttributeModel(42))
	assert.False(t, ok)
}
