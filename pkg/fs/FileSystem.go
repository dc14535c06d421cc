// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"os"
)

// FileSystem is implemented by each provider, e.g., a local file system or
// an S3 bucket.  The Copy, Move, and Sync functions in this package operate
// on a pair of file systems that do not share an implementation, using only
// the primitives below.
type FileSystem interface {
	AttributeView(ctx context.Context, name string, model AttributeModel) (AttributeView, bool)
	Dir(name string) string
	IsNotExist(err error) bool
	Join(name ...string) string
	Mkdir(ctx context.Context, name string, mode os.FileMode) error
	MkdirAll(ctx context.Context, name string, mode os.FileMode) error
	Open(ctx context.Context, name string) (File, error)
	OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (File, error)
	ReadAttributes(ctx context.Context, name string, model AttributeModel, followLinks bool) (*Attributes, error)
	ReadDir(ctx context.Context, name string) ([]DirectoryEntryInterface, error)
	Remove(ctx context.Context, name string) error
	RemoveIfExists(ctx context.Context, name string) (bool, error)
	Root() string
	Size(ctx context.Context, name string) (int64, error)
	Stat(ctx context.Context, name string) (FileInfo, error)
}
