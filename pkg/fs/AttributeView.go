// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"os"
	"time"
)

// AttributeView writes metadata on a single file system entry under a
// specific attribute model.  Providers that cannot represent one of the
// three timestamps set the ones they can.
type AttributeView interface {
	SetTimes(ctx context.Context, modTime time.Time, accessTime time.Time, createTime time.Time) error
}

// PosixAttributeView is an AttributeView that can also write a POSIX
// permission set.
type PosixAttributeView interface {
	AttributeView
	SetPermissions(ctx context.Context, perm os.FileMode) error
}
