// Package minio implements fetch.Fetcher for MinIO and other S3-compatible
// object stores.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Fetcher downloads dataset archives from a MinIO endpoint. URLs use the
// minio://bucket/key form (s3://bucket/key is accepted too).
type Fetcher struct {
	client *minio.Client
}

// New creates a Fetcher from an existing MinIO client.
func New(client *minio.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch implements fetch.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, dst io.Writer) error {
	bucket, key, err := parseURL(rawURL)
	if err != nil {
		return err
	}
	obj, err := f.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	if _, err := io.Copy(dst, obj); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return fmt.Errorf("minio: object %s/%s not found", bucket, key)
		}
		return err
	}
	return nil
}

func parseURL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	if (u.Scheme != "minio" && u.Scheme != "s3") || u.Host == "" {
		return "", "", fmt.Errorf("minio: invalid url %q (want minio://bucket/key)", rawURL)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("minio: missing object key in %q", rawURL)
	}
	return u.Host, key, nil
}
