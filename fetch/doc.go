// Package fetch acquires dataset archives from remote sources.
//
// The Fetcher interface is deliberately small so tests can substitute a
// local-copy stand-in (see FetcherFunc and testutil.LocalFetcher) and so
// alternative backends can be plugged in. Built-in implementations:
//
//   - HTTP: plain http(s) downloads with optional rate limiting and a
//     progress bar
//   - s3.Fetcher: Amazon S3 via the AWS SDK download manager
//   - minio.Fetcher: MinIO and other S3-compatible object stores
//
// Fetching is the only long-latency operation in the dataset lifecycle and
// therefore the only one that takes a context.
package fetch
