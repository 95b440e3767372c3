package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/model"
)

const keyPrefix = "attachments/"

type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// Client stores message attachments in an S3 compatible bucket and hands
// out time limited download links.
type Client struct {
	objects    objectAPI
	bucket     string
	presignTTL time.Duration
}

func New(cfg *config.Config) (*Client, error) {
	mc, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %v", cfg.Storage.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %v", cfg.Storage.Bucket, err)
		}
	}

	return &Client{
		objects:    mc,
		bucket:     cfg.Storage.Bucket,
		presignTTL: cfg.Storage.PresignTTL,
	}, nil
}

// Upload stores the attachment under a fresh key and returns that key.
func (c *Client) Upload(ctx context.Context, upload *model.Upload) (string, error) {
	key := keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(upload.Name))

	_, err := c.objects.PutObject(ctx, c.bucket, key, bytes.NewReader(upload.Data), int64(len(upload.Data)), minio.PutObjectOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %v", err)
	}

	return key, nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.objects.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %v", key, err)
	}

	return nil
}

// URL presigns a GET for key. Absolute links stored by older clients are
// returned unchanged.
func (c *Client) URL(ctx context.Context, key string) (string, error) {
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}

	u, err := c.objects.PresignedGetObject(ctx, c.bucket, key, c.presignTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %v", key, err)
	}

	return u.String(), nil
}

// LinkEpoch numbers the half-TTL window now falls into. A link presigned in
// one window stays valid until the next window has ended.
func (c *Client) LinkEpoch(now time.Time) int64 {
	window := c.presignTTL / 2
	if window <= 0 {
		return now.UnixNano()
	}

	return now.UnixNano() / int64(window)
}
