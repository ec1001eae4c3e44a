package paired

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hupe1980/datago"
	"github.com/hupe1980/datago/archive"
	"github.com/hupe1980/datago/fetch"
	"github.com/hupe1980/datago/sample"
	"github.com/hupe1980/datago/viz"
)

// Config is the immutable description of one concrete dataset. Define it as
// a package-level value next to the dataset it describes, analogous to
// class-level URL/checksum constants in other dataset libraries.
type Config struct {
	// Name identifies the dataset in errors and logs.
	Name string
	// URL is the remote location of the distributable archive.
	URL string
	// ArchiveName is the archive's filename under the root directory.
	// Defaults to the base name of URL.
	ArchiveName string
	// Digest is the archive's expected integrity digest. When set, the
	// archive is verified before extraction and after every fetch; a
	// mismatch aborts construction.
	Digest archive.Digest
	// Splits declares the dataset's split names. The first entry is the
	// default split.
	Splits []string
	// ImageSuffix and MaskSuffix form the pair naming rule: a target file
	// shares its image's name with ImageSuffix replaced by MaskSuffix.
	// Defaults "_image.png" and "_mask.png".
	ImageSuffix string
	MaskSuffix  string
	// Classes are the mask class names; the class id is the slice index.
	Classes []string
}

func (c Config) withDefaults() Config {
	if c.ArchiveName == "" && c.URL != "" {
		c.ArchiveName = filepath.Base(c.URL)
	}
	if c.ImageSuffix == "" {
		c.ImageSuffix = "_image.png"
	}
	if c.MaskSuffix == "" {
		c.MaskSuffix = "_mask.png"
	}
	return c
}

// pair locates one sample's backing files.
type pair struct {
	image string
	mask  string
}

// Dataset is a read-only collection of image/mask samples for one split.
// It implements datago.Dataset and datago.Plotter. All fields are fixed at
// construction; instances are safe for concurrent use.
type Dataset struct {
	cfg       Config
	root      string
	split     string
	transform sample.Transform
	index     []pair
}

// New constructs a dataset. It validates the configuration before any I/O,
// then verifies the on-disk layout (acquiring and extracting the archive if
// needed and permitted), and finally builds the sample index.
//
// Errors: *datago.ErrInvalidSplit for an undeclared split,
// datago.ErrDatasetNotFound when data is absent and download is disabled,
// *datago.ErrChecksumMismatch for a corrupt archive.
func New(ctx context.Context, cfg Config, opts ...Option) (*Dataset, error) {
	cfg = cfg.withDefaults()

	o := options{
		root:    "data",
		fetcher: fetch.NewHTTP(),
		logger:  datago.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if len(cfg.Splits) == 0 {
		return nil, fmt.Errorf("paired: config %q declares no splits", cfg.Name)
	}
	if o.split == "" {
		o.split = cfg.Splits[0]
	}
	if !slices.Contains(cfg.Splits, o.split) {
		return nil, &datago.ErrInvalidSplit{Split: o.split, Valid: cfg.Splits}
	}

	logger := o.logger.WithDataset(cfg.Name).WithSplit(o.split)

	if err := verify(ctx, cfg, o, logger); err != nil {
		return nil, err
	}

	index, err := buildIndex(cfg, filepath.Join(o.root, o.split))
	logger.LogIndex(ctx, o.split, len(index), err)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		cfg:       cfg,
		root:      o.root,
		split:     o.split,
		transform: o.transform,
		index:     index,
	}, nil
}

// verify implements the three-way acquisition policy: extracted layout on
// disk, archive on disk, or remote fetch when permitted.
func verify(ctx context.Context, cfg Config, o options, logger *datago.Logger) error {
	if layoutExists(cfg, o.root) {
		return nil
	}

	archivePath := filepath.Join(o.root, cfg.ArchiveName)
	if cfg.ArchiveName != "" {
		if _, err := os.Stat(archivePath); err == nil {
			ok, err := checkDigest(archivePath, cfg.Digest)
			if ok {
				return extract(ctx, archivePath, o.root, logger)
			}
			// Corrupt or stale archive: refetch when permitted,
			// otherwise the mismatch is fatal.
			if !o.download {
				return err
			}
		}
	}

	if !o.download {
		return fmt.Errorf("%s: %w", cfg.Name, datago.ErrDatasetNotFound)
	}
	if cfg.URL == "" {
		return fmt.Errorf("paired: config %q declares no URL to download from", cfg.Name)
	}

	err := fetch.ToFile(ctx, o.fetcher, cfg.URL, archivePath)
	logger.LogFetch(ctx, cfg.URL, archivePath, err)
	if err != nil {
		return err
	}
	if _, err := checkDigest(archivePath, cfg.Digest); err != nil {
		return err
	}
	return extract(ctx, archivePath, o.root, logger)
}

// checkDigest verifies path against expected. With a matching digest it
// returns (true, nil); a mismatch returns (false, *datago.ErrChecksumMismatch).
// An empty digest skips verification.
func checkDigest(path string, expected archive.Digest) (bool, error) {
	if expected == "" {
		return true, nil
	}
	ok, actual, err := archive.VerifyFile(path, expected)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, datago.NewChecksumMismatch(path, expected, actual, nil)
	}
	return true, nil
}

func extract(ctx context.Context, archivePath, root string, logger *datago.Logger) error {
	err := archive.Extract(archivePath, root)
	logger.LogExtract(ctx, archivePath, err)
	return err
}

func layoutExists(cfg Config, root string) bool {
	for _, split := range cfg.Splits {
		info, err := os.Stat(filepath.Join(root, split))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// buildIndex enumerates the split directory once, in sorted order, pairing
// each image with its target via the suffix rule. An image without a target
// means the layout is malformed.
func buildIndex(cfg Config, dir string) ([]pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("paired: read split directory: %w", err)
	}

	var index []pair
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, cfg.ImageSuffix) {
			continue
		}
		maskName := strings.TrimSuffix(name, cfg.ImageSuffix) + cfg.MaskSuffix
		maskPath := filepath.Join(dir, maskName)
		if _, err := os.Stat(maskPath); err != nil {
			return nil, fmt.Errorf("paired: %s is missing its target %s: %w", name, maskName, err)
		}
		index = append(index, pair{
			image: filepath.Join(dir, name),
			mask:  maskPath,
		})
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("paired: no samples found in %s", dir)
	}
	return index, nil
}

// Len returns the number of samples in the selected split.
func (d *Dataset) Len() int { return len(d.index) }

// Split returns the selected split name.
func (d *Dataset) Split() string { return d.split }

// Classes returns the mask class names declared by the config.
func (d *Dataset) Classes() []string { return slices.Clone(d.cfg.Classes) }

// Sample decodes the sample at index i. Each call reads and decodes the
// backing files independently; the returned sample is fresh and safe to
// mutate. The transform, if configured, runs last.
func (d *Dataset) Sample(i int) (sample.Sample, error) {
	if i < 0 || i >= len(d.index) {
		return nil, &datago.ErrIndexOutOfRange{Index: i, Length: len(d.index)}
	}
	p := d.index[i]

	img, err := decodeImage(p.image)
	if err != nil {
		return nil, fmt.Errorf("paired: decode %s: %w", p.image, err)
	}
	mask, err := decodeImage(p.mask)
	if err != nil {
		return nil, fmt.Errorf("paired: decode %s: %w", p.mask, err)
	}

	s := sample.Sample{
		sample.KeyImage: sample.FromImage(img),
		sample.KeyMask:  sample.FromMask(mask),
	}
	if d.transform != nil {
		s = d.transform(s)
	}
	return s, nil
}

// Plot renders a sample from this dataset. The sample may carry an added
// prediction entry; it is never modified.
func (d *Dataset) Plot(s sample.Sample, opts ...viz.PlotOption) (*viz.Figure, error) {
	return viz.Render(s, opts...)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		// png.Decode preserves the concrete color model (gray, paletted),
		// which mask decoding relies on.
		return png.Decode(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}
