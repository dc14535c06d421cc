// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"os"
	"time"
)

// AttributeModel identifies a metadata model supported by a provider.
type AttributeModel int

const (
	// ModelBasic covers the timestamps common to all providers.
	ModelBasic AttributeModel = iota
	// ModelPosix extends ModelBasic with a permission set.
	ModelPosix
)

func (m AttributeModel) String() string {
	if m == ModelPosix {
		return "posix"
	}
	return "basic"
}

// Kind classifies a file system entry.
type Kind int

const (
	KindRegular Kind = iota
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	}
	return "regular"
}

// Attributes is a read-only snapshot of the metadata of a file system entry
// at the time it was read.  A snapshot is captured once per operation and is
// never re-read, so a concurrent modification of the entry after the capture
// is not detected.
type Attributes struct {
	Kind        Kind
	ModTime     time.Time
	AccessTime  time.Time
	CreateTime  time.Time
	Permissions os.FileMode
	Model       AttributeModel
}
