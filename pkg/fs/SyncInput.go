// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"time"
)

type SyncInput struct {
	Source                string // could be file or directory
	SourceFileSystem      FileSystem
	Destination           string // could be file or directory
	DestinationFileSystem FileSystem
	Options               []Option // applied to each file copied
	Parents               bool
	CheckTimestamps       bool
	Limit                 int
	Logger                Logger
	MaxThreads            int
	TimestampPrecision    time.Duration
}
