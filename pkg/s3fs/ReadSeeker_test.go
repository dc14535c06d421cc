// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3fs

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReadSeeker(data []byte) *ReadSeeker {
	return NewReadSeeker(0, int64(len(data)), func(offset int64, p []byte) (int, error) {
		return copy(p, data[offset:]), nil
	})
}

func TestReadSeekerRead(t *testing.T) {
	rs := newTestReadSeeker([]byte("hello world"))

	data, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	// at the end of the object Read returns EOF
	n, err := rs.Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestReadSeekerSeek(t *testing.T) {
	rs := newTestReadSeeker([]byte("hello world"))

	position, err := rs.Seek(6, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(6), position)

	data, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))

	position, err = rs.Seek(-5, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), position)

	position, err = rs.Seek(-6, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), position)

	_, err = rs.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	_, err = rs.Seek(0, 42)
	assert.Error(t, err)
}

func TestReadSeekerReadTruncated(t *testing.T) {
	rs := newTestReadSeeker([]byte("hello"))

	// a buffer larger than the remaining bytes is truncated to the object size
	p := make([]byte, 16)
	n, err := rs.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(p[:n]))
}
