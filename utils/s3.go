package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var ErrStorageDisabled = errors.New("file storage is not configured")

type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Storage holds uploaded registration receipts.
type S3Storage struct {
	client s3iface.S3API
	bucket string
	region string
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrStorageDisabled
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewS3StorageWithClient(s3.New(sess), cfg.Bucket, cfg.Region), nil
}

func NewS3StorageWithClient(client s3iface.S3API, bucket, region string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, region: region}
}

// Delete removes a stored object. ref may be the object key or its public URL.
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key := s.keyFromRef(ref)
	if key == "" {
		return errors.New("empty storage key")
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from S3: %w", key, err)
	}
	return nil
}

func (s *S3Storage) keyFromRef(ref string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	return strings.TrimPrefix(strings.TrimSpace(ref), prefix)
}

// DisabledStorage is used when no bucket is configured; every call fails with
// ErrStorageDisabled.
type DisabledStorage struct{}

func (DisabledStorage) Delete(context.Context, string) error {
	return ErrStorageDisabled
}
