// Package datago provides machine-learning dataset loaders for Go.
//
// A dataset is a read-only, integer-indexed collection of samples. Each
// sample is a map from fixed string keys ("image", "mask", "label") to
// fixed-shape numeric arrays, decoded fresh on every access. Datasets verify
// their on-disk layout at construction time and can acquire the data from a
// remote source when permitted:
//
//	ctx := context.Background()
//	ds, err := paired.New(ctx, myDatasetConfig,
//	    paired.WithRoot("./data"),
//	    paired.WithSplit("train"),
//	    paired.WithDownload(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := ds.Sample(0)
//
// # Verification and acquisition
//
// Construction runs a three-way verification policy before indexing:
//
//  1. If the extracted layout exists under the root, use it directly.
//  2. Else if the archive is present, verify its checksum and extract it.
//  3. Else if download is enabled, fetch the archive, verify, extract.
//  4. Else fail with ErrDatasetNotFound.
//
// A checksum mismatch is fatal and aborts construction. Acquisition is
// pluggable through the fetch.Fetcher interface; HTTP, S3 and MinIO
// fetchers are provided.
//
// # Concurrency
//
// After construction a dataset is immutable. Sample retrieval performs
// independent reads with no shared mutable state, so a dataset may be used
// from multiple goroutines without locking.
//
// # Subpackages
//
//   - sample: the sample dictionary and array types
//   - paired: reference loader for split directories of image/mask pairs
//   - archive: checksums and archive extraction
//   - fetch, fetch/s3, fetch/minio: remote acquisition
//   - viz: rendering samples for visual inspection
//   - testutil: seeded RNG and dummy dataset generation for tests
package datago
