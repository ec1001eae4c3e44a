// Package archive handles dataset distribution bundles: integrity digests
// and extraction of the compressed archive back into the on-disk layout.
//
// Supported formats are selected by filename: .zip, .tar.gz/.tgz, .tar.zst
// and .tar.lz4.
package archive
