// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfs/gocopy/pkg/fs"
)

// brokenRemoveFileSystem wraps a source provider whose Remove always fails.
type brokenRemoveFileSystem struct {
	fs.FileSystem
	removeErr error
}

func (b *brokenRemoveFileSystem) Remove(ctx context.Context, name string) error {
	return b.removeErr
}

func TestMoveFile(t *testing.T) {
	ctx := context.Background()

	source, sourceFs := newMemProvider("/")
	destination, destinationFs := newMemProvider("/")

	modTime := time.Date(2020, time.March, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, afero.WriteFile(sourceFs, "/src/hello.txt", []byte("hello world"), 0644))
	require.NoError(t, sourceFs.Chtimes("/src/hello.txt", modTime, modTime))

	err := fs.Move(ctx, &fs.MoveInput{
		SourceName:            "/src/hello.txt",
		SourceFileSystem:      source,
		DestinationName:       "/dst/hello.txt",
		DestinationFileSystem: destination,
		MakeParents:           true,
	})
	require.NoError(t, err)

	// the destination carries the bytes and the source attributes
	data, err := afero.ReadFile(destinationFs, "/dst/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	fi, err := destinationFs.Stat("/dst/hello.txt")
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(modTime))

	// the source is gone
	exists, err := afero.Exists(sourceFs, "/src/hello.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMoveAtomic(t *testing.T) {
	ctx := context.Background()

	source, sourceFs := newMemProvider("/")
	destination, destinationFs := newMemProvider("/")

	require.NoError(t, afero.WriteFile(sourceFs, "/src/hello.txt", []byte("hello world"), 0644))

	// the atomic option is rejected before either side is touched
	err := fs.Move(ctx, &fs.MoveInput{
		SourceName:            "/src/hello.txt",
		SourceFileSystem:      source,
		DestinationName:       "/dst/hello.txt",
		DestinationFileSystem: destination,
		Options:               []fs.Option{fs.OptionAtomicMove},
		MakeParents:           true,
	})
	assert.ErrorIs(t, err, fs.ErrAtomicMoveNotSupported)

	exists, err := afero.Exists(sourceFs, "/src/hello.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(destinationFs, "/dst/hello.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMoveRemoveSourceFails(t *testing.T) {
	ctx := context.Background()

	source, sourceFs := newMemProvider("/")
	destination, destinationFs := newMemProvider("/")

	require.NoError(t, afero.WriteFile(sourceFs, "/src/hello.txt", []byte("hello world"), 0644))

	removeErr := errors.New("remove /src/hello.txt: permission denied")

	err := fs.Move(ctx, &fs.MoveInput{
		SourceName:            "/src/hello.txt",
		SourceFileSystem:      &brokenRemoveFileSystem{FileSystem: source, removeErr: removeErr},
		DestinationName:       "/dst/hello.txt",
		DestinationFileSystem: destination,
		MakeParents:           true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, removeErr)

	// the completed copy is not undone
	data, readErr := afero.ReadFile(destinationFs, "/dst/hello.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "hello world", string(data))

	exists, existsErr := afero.Exists(sourceFs, "/src/hello.txt")
	require.NoError(t, existsErr)
	assert.True(t, exists)
}

func TestMoveNilOption(t *testing.T) {
	ctx := context.Background()

	source, _ := newMemProvider("/")
	destination, _ := newMemProvider("/")

	err := fs.Move(ctx, &fs.MoveInput{
		SourceName:            "/src/hello.txt",
		SourceFileSystem:      source,
		DestinationName:       "/dst/hello.txt",
		DestinationFileSystem: destination,
		Options:               []fs.Option{fs.OptionNone},
	})
	assert.ErrorIs(t, err, fs.ErrNilOption)
}
