// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/crossfs/gocopy/pkg/fs"
)

// LocalBasicAttributeView writes the basic attribute model.  The creation
// time of a local file is assigned by the operating system and cannot be
// written, so SetTimes sets the modification and access times only.
type LocalBasicAttributeView struct {
	fs   afero.Fs
	name string
}

func (v *LocalBasicAttributeView) SetTimes(ctx context.Context, modTime time.Time, accessTime time.Time, createTime time.Time) error {
	if accessTime.IsZero() {
		accessTime = modTime
	}
	if err := v.fs.Chtimes(v.name, accessTime, modTime); err != nil {
		return fmt.Errorf("error changing timestamps of %q: %w", v.name, err)
	}
	return nil
}

// LocalPosixAttributeView extends the basic view with the permission set.
type LocalPosixAttributeView struct {
	LocalBasicAttributeView
}

func (v *LocalPosixAttributeView) SetPermissions(ctx context.Context, perm os.FileMode) error {
	if err := v.fs.Chmod(v.name, perm.Perm()); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("error changing permissions of %q: %w", v.name, fs.ErrSecurityDenied)
		}
		return fmt.Errorf("error changing permissions of %q: %w", v.name, err)
	}
	return nil
}
