package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteZip bundles the contents of dir into a zip archive written to w.
// Entry names are relative to dir, using forward slashes, so extracting the
// archive into a fresh directory reproduces the original layout.
func WriteZip(dir string, w io.Writer) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		f, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(f, src)
		src.Close()
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// WriteZipFile bundles dir into a zip archive at path and returns its digest
// computed with the algorithm of d (the hex part of d is ignored).
func WriteZipFile(dir, path string, d Digest) (Digest, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteZip(dir, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return SumFile(path, d)
}
