// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3fs

import (
	"fmt"
	"io"
)

// ReadAt reads up to len(p) bytes at the given offset of the object.
type ReadAt func(offset int64, p []byte) (int, error)

// ReadSeeker adapts ranged object reads to the io.ReadSeeker interface.
type ReadSeeker struct {
	offset int64
	size   int64
	readAt ReadAt
}

func (rs *ReadSeeker) Read(p []byte) (int, error) {
	if rs.offset >= rs.size {
		return 0, io.EOF
	}
	if remaining := rs.size - rs.offset; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := rs.readAt(rs.offset, p)
	rs.offset += int64(n)
	return n, err
}

func (rs *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	position := int64(0)
	switch whence {
	case io.SeekStart:
		position = offset
	case io.SeekCurrent:
		position = rs.offset + offset
	case io.SeekEnd:
		position = rs.size + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if position < 0 {
		return 0, fmt.Errorf("cannot seek to negative position %d", position)
	}
	rs.offset = position
	return position, nil
}

func NewReadSeeker(offset int64, size int64, readAt ReadAt) *ReadSeeker {
	return &ReadSeeker{
		offset: offset,
		size:   size,
		readAt: readAt,
	}
}
