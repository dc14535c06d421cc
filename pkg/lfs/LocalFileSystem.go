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
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/crossfs/gocopy/pkg/fs"
)

// LocalFileSystem is a provider backed by an afero file system, by default
// the operating system's.  It supports the POSIX attribute model.
type LocalFileSystem struct {
	fs   afero.Fs
	iofs afero.IOFS
	root string
}

func (lfs *LocalFileSystem) AttributeView(ctx context.Context, name string, model fs.AttributeModel) (fs.AttributeView, bool) {
	switch model {
	case fs.ModelPosix:
		return &LocalPosixAttributeView{LocalBasicAttributeView{fs: lfs.fs, name: name}}, true
	case fs.ModelBasic:
		return &LocalBasicAttributeView{fs: lfs.fs, name: name}, true
	}
	return nil, false
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) Mkdir(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.Mkdir(name, mode)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) ReadAttributes(ctx context.Context, name string, model fs.AttributeModel, followLinks bool) (*fs.Attributes, error) {
	fi, err := lfs.stat(name, followLinks)
	if err != nil {
		return nil, err
	}

	kind := fs.KindRegular
	if fi.IsDir() {
		kind = fs.KindDirectory
	} else if fi.Mode()&os.ModeSymlink != 0 {
		kind = fs.KindSymlink
	}

	attributes := &fs.Attributes{
		Kind:       kind,
		ModTime:    fi.ModTime(),
		AccessTime: accessTime(fi),
		CreateTime: createTime(fi),
		Model:      fs.ModelBasic,
	}

	if model == fs.ModelPosix {
		attributes.Permissions = fi.Mode().Perm()
		attributes.Model = fs.ModelPosix
	}

	return attributes, nil
}

// stat does not dereference a terminal symbolic link when followLinks is
// false and the underlying afero file system supports Lstat.  Memory-backed
// file systems do not, and fall back to Stat.
func (lfs *LocalFileSystem) stat(name string, followLinks bool) (os.FileInfo, error) {
	if !followLinks {
		if lstater, ok := lfs.fs.(afero.Lstater); ok {
			fi, _, err := lstater.LstatIfPossible(name)
			return fi, err
		}
	}
	return lfs.fs.Stat(name)
}

func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntryInterface, error) {
	directoryEntries := []fs.DirectoryEntryInterface{}
	readDirOutput, err := lfs.iofs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for _, directoryEntry := range readDirOutput {
		directoryEntries = append(directoryEntries, &LocalDirectoryEntry{
			de: directoryEntry,
		})
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Remove(ctx context.Context, name string) error {
	return lfs.fs.Remove(name)
}

func (lfs *LocalFileSystem) RemoveIfExists(ctx context.Context, name string) (bool, error) {
	if err := lfs.fs.Remove(name); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (lfs *LocalFileSystem) Root() string {
	return lfs.root
}

func (lfs *LocalFileSystem) Size(ctx context.Context, name string) (int64, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return int64(0), err
	}
	return fi.Size(), nil
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

func NewLocalFileSystem(root string) *LocalFileSystem {
	a := afero.NewOsFs()
	return &LocalFileSystem{
		fs:   a,
		iofs: afero.NewIOFS(a),
		root: root,
	}
}

// NewLocalFileSystemWithFs wraps any afero file system, e.g., a MemMapFs,
// which behaves as a second provider in tests.
func NewLocalFileSystemWithFs(a afero.Fs, root string) *LocalFileSystem {
	return &LocalFileSystem{
		fs:   a,
		iofs: afero.NewIOFS(a),
		root: root,
	}
}
