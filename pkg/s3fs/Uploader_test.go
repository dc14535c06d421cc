// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3fs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploaderBuffersBelowPartSize(t *testing.T) {
	ctx := context.Background()

	uploader := NewUploader(ctx, &UploaderInput{
		Bucket:   "bucket",
		Key:      "key",
		PartSize: 1024,
	})

	n, err := uploader.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = uploader.Write([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// nothing is sent until Close, so the bytes sit in the buffer
	assert.Equal(t, "hello world", uploader.buffer.String())
	assert.Nil(t, uploader.uploadID)
}

func TestUploaderWriteAfterClose(t *testing.T) {
	ctx := context.Background()

	uploader := NewUploader(ctx, &UploaderInput{
		Bucket:   "bucket",
		Key:      "key",
		PartSize: 1024,
	})
	uploader.closed = true

	_, err := uploader.Write([]byte("hello"))
	assert.Error(t, err)

	assert.Error(t, uploader.Close())
}
