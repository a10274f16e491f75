package storage

import (
	"bytes"
	"context"
	"fmt"

	"fueltrack/internal/codex"
	"fueltrack/internal/forms"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 API the image store uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore writes receipt images to S3 under deterministic keys and
// derives the public URLs they are served from. Every image is stored in two
// size variants: o/ original and t/ thumbnail.
type ImageStore struct {
	client ObjectPutter
	codex  *codex.Codex
	bucket string
	region string
	prefix string
}

func NewImageStore(client ObjectPutter, codex *codex.Codex, bucket, region, prefix string) *ImageStore {
	return &ImageStore{
		client: client,
		codex:  codex,
		bucket: bucket,
		region: region,
		prefix: prefix,
	}
}

// Upload stores the image under both size variants. The thumbnail variant
// currently carries the original bytes; resizing happens downstream.
func (s *ImageStore) Upload(ctx context.Context, userID, fuelID int64, img *forms.Attachment) error {
	for _, thumbnail := range []bool{false, true} {
		key := s.objectKey(userID, fuelID, thumbnail)

		contentType := img.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}

		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(img.Data),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return fmt.Errorf("put receipt object %s: %w", key, err)
		}
	}

	return nil
}

// ObjectURL returns the public URL a stored receipt redirects to.
func (s *ImageStore) ObjectURL(userID, fuelID int64, thumbnail bool) string {
	return fmt.Sprintf("https://s3-%s.amazonaws.com/%s/%s", s.region, s.bucket, s.objectKey(userID, fuelID, thumbnail))
}

func (s *ImageStore) objectKey(userID, fuelID int64, thumbnail bool) string {
	variant := "o/"
	if thumbnail {
		variant = "t/"
	}
	return fmt.Sprintf("%s%s%s_%d.jpg", s.prefix, variant, s.codex.Encode(userID), fuelID)
}
