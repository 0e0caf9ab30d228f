package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

var _ ports.ObjectStorage = (*BucketStorage)(nil)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// BucketStorage writes objects into a single bucket.
type BucketStorage struct {
	client *minio.Client
	bucket string
}

func NewBucketStorage(client *minio.Client, bucket string) *BucketStorage {
	return &BucketStorage{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *BucketStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *BucketStorage) Upload(ctx context.Context, objectName, contentType string, body []byte) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s/%s: %w", s.bucket, objectName, err)
	}
	return info.Bucket + "/" + info.Key, nil
}
