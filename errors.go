package datago

import (
	"errors"
	"fmt"

	"github.com/hupe1980/datago/archive"
)

var (
	// ErrDatasetNotFound is returned by dataset constructors when the data is
	// missing from the root directory and automatic download is disabled.
	// Enable download or place the data in the root manually.
	ErrDatasetNotFound = errors.New("dataset not found in root directory: enable download or supply the data manually")
)

// ErrInvalidSplit indicates a split name outside the dataset's declared set.
// It is a configuration error, raised before any filesystem access.
type ErrInvalidSplit struct {
	Split string
	Valid []string
}

func (e *ErrInvalidSplit) Error() string {
	return fmt.Sprintf("invalid split %q (valid: %v)", e.Split, e.Valid)
}

// ErrChecksumMismatch indicates a corrupted or tampered archive. It is fatal:
// construction aborts before any indexing.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrChecksumMismatch struct {
	Path     string
	Expected archive.Digest
	Actual   archive.Digest
	cause    error
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *ErrChecksumMismatch) Unwrap() error { return e.cause }

// NewChecksumMismatch builds an ErrChecksumMismatch. The cause may be nil.
func NewChecksumMismatch(path string, expected, actual archive.Digest, cause error) error {
	return &ErrChecksumMismatch{Path: path, Expected: expected, Actual: actual, cause: cause}
}

// ErrIndexOutOfRange indicates a sample index outside [0, Len).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
