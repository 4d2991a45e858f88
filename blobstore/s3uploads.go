package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploads stores uploaded files in an S3 bucket and hands back stable
// reference URLs that are persisted on assignment and course records.
type S3Uploads struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploads(region string, bucket string) (*S3Uploads, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Uploads{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Store uploads content under the given key and returns the object URL.
func (b *S3Uploads) Store(ctx context.Context, key string, content []byte, mediaType string) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &b.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)

	return objectURL, nil
}

// Delete removes the object behind a reference URL previously returned by
// Store. Unknown references are not an error.
func (b *S3Uploads) Delete(ctx context.Context, reference string) error {
	key, ok := b.keyFromReference(reference)
	if !ok {
		return fmt.Errorf("reference %q does not belong to bucket %s", reference, b.bucket)
	}
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (b *S3Uploads) Download(ctx context.Context, reference string) ([]byte, error) {
	key, ok := b.keyFromReference(reference)
	if !ok {
		return nil, fmt.Errorf("reference %q does not belong to bucket %s", reference, b.bucket)
	}
	output, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer output.Body.Close()
	buf := new(bytes.Buffer)
	buf.ReadFrom(output.Body)
	return buf.Bytes(), nil
}

func (b *S3Uploads) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}

func (b *S3Uploads) keyFromReference(reference string) (string, bool) {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", b.bucket, b.region)
	if !strings.HasPrefix(reference, prefix) {
		return "", false
	}
	return strings.TrimPrefix(reference, prefix), true
}
