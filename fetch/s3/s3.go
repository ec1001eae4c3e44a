package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the subset of the S3 API used by the fetcher.
type Client interface {
	manager.DownloadAPIClient
}

// Fetcher downloads dataset archives from Amazon S3. URLs use the
// s3://bucket/key form.
type Fetcher struct {
	client      Client
	concurrency int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithConcurrency sets the number of parallel range requests used when the
// destination supports random-access writes. Defaults to the SDK default.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) { f.concurrency = n }
}

// New creates a Fetcher with a client built from the default AWS config.
func New(ctx context.Context, opts ...Option) (*Fetcher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewFromClient(s3.NewFromConfig(cfg), opts...), nil
}

// NewFromClient creates a Fetcher from an existing S3 client.
func NewFromClient(client Client, opts ...Option) *Fetcher {
	f := &Fetcher{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch implements fetch.Fetcher. When dst also implements io.WriterAt
// (e.g. an *os.File), the download manager fetches ranges in parallel;
// otherwise the object is streamed sequentially.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, dst io.Writer) error {
	bucket, key, err := parseURL(rawURL)
	if err != nil {
		return err
	}
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	if wa, ok := dst.(io.WriterAt); ok {
		dl := manager.NewDownloader(f.client, func(d *manager.Downloader) {
			if f.concurrency > 0 {
				d.Concurrency = f.concurrency
			}
		})
		_, err := dl.Download(ctx, wa, input)
		return err
	}

	resp, err := f.client.GetObject(ctx, input)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.Copy(dst, resp.Body)
	return err
}

func parseURL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("s3: invalid url %q (want s3://bucket/key)", rawURL)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("s3: missing object key in %q", rawURL)
	}
	return u.Host, key, nil
}
