// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3fs

import (
	"context"
	"time"
)

// S3AttributeView is the basic attribute view of an object.  S3 assigns the
// last-modified time on upload and there is no way to overwrite it, so
// SetTimes accepts the timestamps without applying them.
type S3AttributeView struct {
}

func (v *S3AttributeView) SetTimes(ctx context.Context, modTime time.Time, accessTime time.Time, createTime time.Time) error {
	return nil
}
