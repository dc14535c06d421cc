// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"io"
)

// File is an open handle on a provider.  A handle opened by Open supports
// reading and one opened by OpenFile with a write flag supports writing.
type File interface {
	io.ReadSeekCloser
	io.Writer
	Name() string
}
