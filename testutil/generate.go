package testutil

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/datago/archive"
	"github.com/hupe1980/datago/fetch"
)

// LayoutSpec describes a dummy dataset to synthesize.
type LayoutSpec struct {
	// Splits maps split names to sample counts.
	Splits map[string]int
	// Width and Height of every generated image. Default 8x8.
	Width, Height int
	// Classes is the number of mask class ids. Default 4.
	Classes int
	// Seed for deterministic pixel data.
	Seed int64
	// ImageSuffix and MaskSuffix form the pair naming rule.
	// Defaults "_image.png" and "_mask.png".
	ImageSuffix, MaskSuffix string
}

func (s LayoutSpec) withDefaults() LayoutSpec {
	if s.Width <= 0 {
		s.Width = 8
	}
	if s.Height <= 0 {
		s.Height = 8
	}
	if s.Classes <= 0 {
		s.Classes = 4
	}
	if s.ImageSuffix == "" {
		s.ImageSuffix = "_image.png"
	}
	if s.MaskSuffix == "" {
		s.MaskSuffix = "_mask.png"
	}
	return s
}

// GenerateLayout writes the dummy dataset layout under dir: one directory
// per split, each holding image/mask PNG pairs named "<i><suffix>". Splits
// are generated in parallel.
func GenerateLayout(dir string, spec LayoutSpec) error {
	spec = spec.withDefaults()

	g := new(errgroup.Group)
	for split, count := range spec.Splits {
		// Per-split RNG keeps output deterministic regardless of scheduling.
		rng := NewRNG(spec.Seed + int64(len(split)))
		splitDir := filepath.Join(dir, split)
		g.Go(func() error {
			if err := os.MkdirAll(splitDir, 0o755); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				img := rng.RandomImage(spec.Width, spec.Height)
				mask := rng.RandomMask(spec.Width, spec.Height, spec.Classes)
				if err := writePNG(filepath.Join(splitDir, fmt.Sprintf("%d%s", i, spec.ImageSuffix)), img); err != nil {
					return err
				}
				if err := writePNG(filepath.Join(splitDir, fmt.Sprintf("%d%s", i, spec.MaskSuffix)), mask); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// GenerateArchive synthesizes the layout in a scratch directory, zips it to
// archivePath and returns the archive's md5 digest. The scratch directory is
// removed afterwards.
func GenerateArchive(archivePath string, spec LayoutSpec) (archive.Digest, error) {
	scratch, err := os.MkdirTemp(filepath.Dir(archivePath), "layout-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(scratch)

	if err := GenerateLayout(scratch, spec); err != nil {
		return "", err
	}
	return archive.WriteZipFile(scratch, archivePath, archive.MD5)
}

// LocalFetcher returns a Fetcher that ignores the URL and copies the file
// at path instead. It stands in for network acquisition in tests.
func LocalFetcher(path string) fetch.FetcherFunc {
	return func(ctx context.Context, _ string, dst io.Writer) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(dst, f)
		return err
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
