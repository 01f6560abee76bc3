package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const receiptPrefix = "reimbursements"

// MinioReceiptStore stores receipt images in an object-storage bucket and
// hands back the object URL.
type MinioReceiptStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewMinioReceiptStore(cfg internal.StorageConfig) (*MinioReceiptStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioReceiptStore{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (s *MinioReceiptStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload writes the receipt under a unique key and returns its URL. The
// original file name only contributes its extension.
func (s *MinioReceiptStore) Upload(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	key := path.Join(receiptPrefix, uuid.NewString()+strings.ToLower(path.Ext(fileName)))

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return s.objectURL(key), nil
}

func (s *MinioReceiptStore) objectURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}
