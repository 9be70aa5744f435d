package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader delivers a built artifact to remote storage.
type Uploader interface {
	Upload(ctx context.Context, name string, body []byte, sha256Hex string) error
}

// S3Uploader delivers artifacts to an S3 bucket. The digest travels as object
// metadata so verification does not require re-downloading the manifest.
type S3Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Uploader constructs an S3Uploader.
func NewS3Uploader(client *s3.Client, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix}
}

// Upload implements Uploader.
func (u *S3Uploader) Upload(ctx context.Context, name string, body []byte, sha256Hex string) error {
	key := name
	if u.prefix != "" {
		key = path.Join(u.prefix, name)
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
		Metadata: map[string]string{
			"sha256": sha256Hex,
		},
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", u.bucket, key, err)
	}
	return nil
}
