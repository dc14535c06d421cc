// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package s3fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/crossfs/gocopy/pkg/fs"
)

// S3FileSystem is a provider backed by one or more S3 clients, one per
// bucket region.  S3 objects carry no POSIX metadata, so only the basic
// attribute model is supported, and S3 assigns timestamps itself, so the
// basic attribute view accepts writes without applying them.
type S3FileSystem struct {
	defaultRegion       string
	bucket              string
	prefix              string
	clients             map[string]*s3.Client
	bucketRegions       map[string]string
	bucketCreationDates map[string]time.Time
	maxEntries          int
	maxPages            int
	bucketKeyEnabled    bool
	partSize            int
}

func (s3fs *S3FileSystem) AttributeView(ctx context.Context, name string, model fs.AttributeModel) (fs.AttributeView, bool) {
	if model == fs.ModelBasic {
		return &S3AttributeView{}, true
	}
	return nil, false
}

func (s3fs *S3FileSystem) Dir(name string) string {
	return path.Dir(name)
}

// GetBucketRegion returns the region for the bucket.
// If the bucket is not known, then returns the default region
func (s3fs *S3FileSystem) GetBucketRegion(bucket string) string {
	if bucketRegion, ok := s3fs.bucketRegions[bucket]; ok {
		return bucketRegion
	}
	return s3fs.defaultRegion
}

// parse returns the bucket and key for the given name
func (s3fs *S3FileSystem) parse(name string) (string, string) {
	if len(s3fs.bucket) == 0 {
		nameParts := strings.Split(strings.TrimPrefix(name, "/"), "/")
		return nameParts[0], strings.Join(nameParts[1:], "/")
	}
	return s3fs.bucket, strings.TrimPrefix(s3fs.Join(s3fs.prefix, name), "/")
}

func (s3fs *S3FileSystem) IsNotExist(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiError smithy.APIError
	if errors.As(err, &apiError) {
		switch apiError.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func (s3fs *S3FileSystem) Join(name ...string) string {
	return path.Join(name...)
}

func (s3fs *S3FileSystem) HeadObject(ctx context.Context, name string) (*S3FileInfo, error) {
	bucket, key := s3fs.parse(name)
	headObjectOutput, err := s3fs.clients[s3fs.GetBucketRegion(bucket)].HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	modTime := time.Time{}
	if headObjectOutput.LastModified != nil {
		modTime = *headObjectOutput.LastModified
	}
	return NewS3FileInfo(name, modTime, false, aws.ToInt64(headObjectOutput.ContentLength)), nil
}

// Mkdir creates a zero-byte object with a trailing slash, the convention
// used by the S3 console for folders.
func (s3fs *S3FileSystem) Mkdir(ctx context.Context, name string, mode os.FileMode) error {
	bucket, key := s3fs.parse(name)
	_, err := s3fs.clients[s3fs.GetBucketRegion(bucket)].PutObject(ctx, &s3.PutObjectInput{
		ACL:              types.ObjectCannedACLBucketOwnerFullControl,
		Body:             bytes.NewReader([]byte{}),
		Bucket:           aws.String(bucket),
		BucketKeyEnabled: aws.Bool(s3fs.bucketKeyEnabled),
		ContentLength:    aws.Int64(0),
		Key:              aws.String(key + "/"),
	})
	if err != nil {
		return err
	}
	return nil
}

func (s3fs *S3FileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return s3fs.Mkdir(ctx, name, mode)
}

func (s3fs *S3FileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	size, sizeError := s3fs.Size(ctx, name)
	if sizeError != nil {
		return nil, sizeError
	}
	bucket, key := s3fs.parse(name)
	client := s3fs.clients[s3fs.GetBucketRegion(bucket)]
	readSeeker := NewReadSeeker(
		0,
		size,
		func(offset int64, p []byte) (int, error) {
			getObjectOutput, err := client.GetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
				Range:  aws.String(fmt.Sprintf("bytes=%d-%d", offset, int(offset)+len(p)-1)),
			})
			if err != nil {
				return 0, err
			}
			body, err := io.ReadAll(getObjectOutput.Body)
			if err != nil {
				return 0, err
			}
			copy(p, body)
			return len(body), nil
		},
	)
	return NewS3File(name, readSeeker, nil), nil
}

func (s3fs *S3FileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return s3fs.Open(ctx, name)
	}

	if flag&os.O_EXCL != 0 {
		if _, err := s3fs.HeadObject(ctx, name); err == nil {
			return nil, fmt.Errorf("destination %q already exists: %w", name, os.ErrExist)
		} else if !s3fs.IsNotExist(err) {
			return nil, err
		}
	}

	bucket, key := s3fs.parse(name)
	uploader := NewUploader(ctx, &UploaderInput{
		ACL:              types.ObjectCannedACLBucketOwnerFullControl,
		Client:           s3fs.clients[s3fs.GetBucketRegion(bucket)],
		Bucket:           bucket,
		BucketKeyEnabled: s3fs.bucketKeyEnabled,
		Key:              key,
		PartSize:         s3fs.partSize,
	})
	return NewS3File(name, nil, uploader), nil
}

// ReadAttributes supports the basic attribute model only.  S3 exposes a
// single timestamp, so the access and creation times of the snapshot are
// the last-modified time.
func (s3fs *S3FileSystem) ReadAttributes(ctx context.Context, name string, model fs.AttributeModel, followLinks bool) (*fs.Attributes, error) {
	if model != fs.ModelBasic {
		return nil, fmt.Errorf("attribute model %q for %q: %w", model.String(), name, fs.ErrUnsupported)
	}
	fi, err := s3fs.Stat(ctx, name)
	if err != nil {
		return nil, err
	}
	kind := fs.KindRegular
	if fi.IsDir() {
		kind = fs.KindDirectory
	}
	return &fs.Attributes{
		Kind:       kind,
		ModTime:    fi.ModTime(),
		AccessTime: fi.ModTime(),
		CreateTime: fi.ModTime(),
		Model:      fs.ModelBasic,
	}, nil
}

func (s3fs *S3FileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntryInterface, error) {
	bucket, key := s3fs.parse(name)
	prefix := key
	if len(prefix) > 0 && !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	client := s3fs.clients[s3fs.GetBucketRegion(bucket)]

	directoryEntries := []fs.DirectoryEntryInterface{}
	var continuationToken *string
	for pages := 0; s3fs.maxPages == -1 || pages < s3fs.maxPages; pages++ {
		listObjectsOutput, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, err
		}
		for _, commonPrefix := range listObjectsOutput.CommonPrefixes {
			directoryEntries = append(directoryEntries, NewS3DirectoryEntry(
				path.Base(strings.TrimSuffix(aws.ToString(commonPrefix.Prefix), "/")),
				true,
				time.Time{},
				int64(0),
			))
		}
		for _, object := range listObjectsOutput.Contents {
			objectKey := aws.ToString(object.Key)
			if objectKey == prefix {
				// the zero-byte folder marker for the directory itself
				continue
			}
			modTime := time.Time{}
			if object.LastModified != nil {
				modTime = *object.LastModified
			}
			directoryEntries = append(directoryEntries, NewS3DirectoryEntry(
				path.Base(objectKey),
				strings.HasSuffix(objectKey, "/"),
				modTime,
				aws.ToInt64(object.Size),
			))
		}
		if s3fs.maxEntries != -1 && len(directoryEntries) >= s3fs.maxEntries {
			directoryEntries = directoryEntries[:s3fs.maxEntries]
			break
		}
		if !aws.ToBool(listObjectsOutput.IsTruncated) {
			break
		}
		continuationToken = listObjectsOutput.NextContinuationToken
	}
	return directoryEntries, nil
}

func (s3fs *S3FileSystem) Remove(ctx context.Context, name string) error {
	bucket, key := s3fs.parse(name)
	_, err := s3fs.clients[s3fs.GetBucketRegion(bucket)].DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting object %q: %w", name, err)
	}
	return nil
}

func (s3fs *S3FileSystem) RemoveIfExists(ctx context.Context, name string) (bool, error) {
	if _, err := s3fs.HeadObject(ctx, name); err != nil {
		if s3fs.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := s3fs.Remove(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

func (s3fs *S3FileSystem) Root() string {
	if len(s3fs.bucket) == 0 {
		return "s3://"
	}
	return fmt.Sprintf("s3://%s%s", s3fs.bucket, s3fs.prefix)
}

func (s3fs *S3FileSystem) Size(ctx context.Context, name string) (int64, error) {
	bucket, key := s3fs.parse(name)
	headObjectOutput, err := s3fs.clients[s3fs.GetBucketRegion(bucket)].HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return int64(0), err
	}
	return aws.ToInt64(headObjectOutput.ContentLength), nil
}

func (s3fs *S3FileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if name == "/" || name == "" {
		bucket, _ := s3fs.parse(name)
		if len(bucket) == 0 {
			return NewS3FileInfo(name, time.Time{}, true, int64(0)), nil
		}
		_, err := s3fs.clients[s3fs.GetBucketRegion(bucket)].HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		if err != nil {
			return nil, err
		}
		return NewS3FileInfo(name, s3fs.bucketCreationDates[bucket], true, int64(0)), nil
	}

	fi, err := s3fs.HeadObject(ctx, name)
	if err != nil {
		if !s3fs.IsNotExist(err) {
			return nil, err
		}
		// not an object, so check for a directory
		directoryEntries, readDirError := s3fs.ReadDir(ctx, name)
		if readDirError != nil {
			return nil, readDirError
		}
		if len(directoryEntries) > 0 {
			bucket, _ := s3fs.parse(name)
			return NewS3FileInfo(name, s3fs.bucketCreationDates[bucket], true, int64(0)), nil
		}
		return nil, err
	}

	return fi, nil
}

func NewS3FileSystem(
	defaultRegion string,
	bucket string,
	prefix string,
	clients map[string]*s3.Client,
	bucketRegions map[string]string,
	bucketCreationDates map[string]time.Time,
	maxEntries int,
	maxPages int,
	bucketKeyEnabled bool,
	partSize int) *S3FileSystem {
	return &S3FileSystem{
		defaultRegion:       defaultRegion,
		bucket:              bucket,
		prefix:              prefix,
		clients:             clients,
		bucketRegions:       bucketRegions,
		bucketCreationDates: bucketCreationDates,
		maxEntries:          maxEntries,
		maxPages:            maxPages,
		bucketKeyEnabled:    bucketKeyEnabled,
		partSize:            partSize,
	}
}
