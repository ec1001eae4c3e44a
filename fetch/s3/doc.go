// Package s3 implements fetch.Fetcher for Amazon S3.
//
// Datasets distributed through S3 declare their archive location as an
// s3://bucket/key URL. Construct a Fetcher and pass it to the dataset via
// its WithFetcher option:
//
//	f, err := s3.New(ctx)
//	ds, err := paired.New(ctx, cfg, paired.WithDownload(true), paired.WithFetcher(f))
package s3
