// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3fs

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Uploader is a WriteCloser that buffers writes and uploads the object on
// Close.  If the buffered bytes exceed the part size before Close, the
// upload switches to a multipart upload and parts are sent as they fill.
type Uploader struct {
	ctx context.Context
	//
	acl              types.ObjectCannedACL
	client           *s3.Client
	bucket           *string
	bucketKeyEnabled bool
	key              *string
	partSize         int
	//
	buffer         *bytes.Buffer
	uploadID       *string
	lastPartNumber int32
	etags          map[int32]*string
	closed         bool
}

func (u *Uploader) Write(p []byte) (int, error) {
	if u.closed {
		return 0, io.ErrUnexpectedEOF
	}

	n, err := u.buffer.Write(p)
	if err != nil {
		return 0, err
	}

	if u.buffer.Len() >= u.partSize {
		if u.uploadID == nil {
			createMultipartUploadOutput, err := u.client.CreateMultipartUpload(u.ctx, &s3.CreateMultipartUploadInput{
				ACL:              u.acl,
				Bucket:           u.bucket,
				BucketKeyEnabled: aws.Bool(u.bucketKeyEnabled),
				Key:              u.key,
			})
			if err != nil {
				return 0, err
			}
			u.uploadID = createMultipartUploadOutput.UploadId
		}
		if err := u.uploadPart(bytes.NewReader(u.buffer.Bytes())); err != nil {
			return 0, err
		}
		u.buffer = bytes.NewBuffer([]byte{})
	}

	return n, nil
}

func (u *Uploader) Close() error {
	if u.closed {
		return io.ErrUnexpectedEOF
	}

	u.closed = true

	// if the upload never grew past a single part, put the object directly.
	// a read seeker is needed so the client can rewind and retry.
	if u.uploadID == nil {
		reader := bytes.NewReader(u.buffer.Bytes())
		_, err := u.client.PutObject(u.ctx, &s3.PutObjectInput{
			ACL:              u.acl,
			Body:             reader,
			Bucket:           u.bucket,
			BucketKeyEnabled: aws.Bool(u.bucketKeyEnabled),
			ContentLength:    aws.Int64(int64(reader.Len())),
			Key:              u.key,
		})
		if err != nil {
			return err
		}
		u.buffer = bytes.NewBuffer([]byte{})
		return nil
	}

	// upload remaining bytes
	if u.buffer.Len() > 0 {
		if err := u.uploadPart(bytes.NewReader(u.buffer.Bytes())); err != nil {
			return err
		}
		u.buffer = bytes.NewBuffer([]byte{})
	}

	completedParts := []types.CompletedPart{}
	for i := int32(1); i <= u.lastPartNumber; i++ {
		completedParts = append(completedParts, types.CompletedPart{
			ETag:       u.etags[i],
			PartNumber: aws.Int32(i),
		})
	}

	_, err := u.client.CompleteMultipartUpload(u.ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   u.bucket,
		Key:      u.key,
		UploadId: u.uploadID,
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completedParts,
		},
	})
	if err != nil {
		return err
	}
	return nil
}

func (u *Uploader) uploadPart(reader *bytes.Reader) error {
	partNumber := u.lastPartNumber + 1
	uploadPartOutput, err := u.client.UploadPart(u.ctx, &s3.UploadPartInput{
		Body:          reader,
		Bucket:        u.bucket,
		Key:           u.key,
		PartNumber:    aws.Int32(partNumber),
		UploadId:      u.uploadID,
		ContentLength: aws.Int64(int64(reader.Len())),
	})
	if err != nil {
		return err
	}
	u.etags[partNumber] = uploadPartOutput.ETag
	u.lastPartNumber = partNumber
	return nil
}

type UploaderInput struct {
	ACL              types.ObjectCannedACL
	Client           *s3.Client
	Bucket           string
	BucketKeyEnabled bool
	Key              string
	PartSize         int
}

func NewUploader(ctx context.Context, input *UploaderInput) *Uploader {
	return &Uploader{
		ctx: ctx,
		//
		acl:              input.ACL,
		client:           input.Client,
		bucket:           aws.String(input.Bucket),
		bucketKeyEnabled: input.BucketKeyEnabled,
		key:              aws.String(input.Key),
		partSize:         input.PartSize,
		//
		buffer:         bytes.NewBuffer([]byte{}),
		uploadID:       nil,
		lastPartNumber: int32(0),
		etags:          map[int32]*string{},
		closed:         false,
	}
}
