package archive

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"strings"
)

// Digest is an integrity digest in "<algo>:<hex>" form. Supported algorithms
// are md5, sha256 and crc32. A bare hex string is treated as md5, the common
// convention for published dataset checksums.
//
// MD5 and CRC32 detect accidental corruption only. Use sha256 when the digest
// also guards against tampering.
type Digest string

// Algorithm-only digests, usable wherever just the algorithm matters
// (e.g. computing a fresh digest with Sum or WriteZipFile).
const (
	MD5    Digest = "md5:"
	SHA256 Digest = "sha256:"
	CRC32  Digest = "crc32:"
)

// Algo returns the algorithm part of the digest.
func (d Digest) Algo() string {
	algo, _, ok := strings.Cut(string(d), ":")
	if !ok {
		return "md5"
	}
	return strings.ToLower(algo)
}

// Hex returns the lower-case hex part of the digest.
func (d Digest) Hex() string {
	_, hx, ok := strings.Cut(string(d), ":")
	if !ok {
		hx = string(d)
	}
	return strings.ToLower(hx)
}

func (d Digest) newHash() (hash.Hash, error) {
	switch d.Algo() {
	case "md5":
		return md5.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "crc32":
		return crc32.New(crc32.MakeTable(crc32.IEEE)), nil
	default:
		return nil, fmt.Errorf("archive: unsupported digest algorithm %q", d.Algo())
	}
}

// Sum computes the digest of r using d's algorithm and returns it in
// "<algo>:<hex>" form.
func (d Digest) Sum(r io.Reader) (Digest, error) {
	h, err := d.newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return Digest(d.Algo() + ":" + hex.EncodeToString(h.Sum(nil))), nil
}

// Verify computes the digest of r and reports whether it matches d.
// It returns the actual digest for error reporting.
func (d Digest) Verify(r io.Reader) (bool, Digest, error) {
	actual, err := d.Sum(r)
	if err != nil {
		return false, "", err
	}
	return actual.Hex() == d.Hex(), actual, nil
}

// SumFile computes the digest of the file at path.
func SumFile(path string, d Digest) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return d.Sum(f)
}

// VerifyFile reports whether the file at path matches the expected digest.
func VerifyFile(path string, expected Digest) (bool, Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, "", err
	}
	defer f.Close()
	return expected.Verify(f)
}
