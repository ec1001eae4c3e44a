package paired_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/datago"
	"github.com/hupe1980/datago/archive"
	"github.com/hupe1980/datago/fetch"
	"github.com/hupe1980/datago/paired"
	"github.com/hupe1980/datago/sample"
	"github.com/hupe1980/datago/testutil"
)

var splitCounts = map[string]int{"train": 4, "val": 2, "test": 2}

// makeDataset generates a dummy archive and returns a config plus a fetcher
// serving it from disk instead of the network.
func makeDataset(t *testing.T) (paired.Config, fetch.Fetcher) {
	t.Helper()
	archivePath := filepath.Join(t.TempDir(), "dummy.zip")
	digest, err := testutil.GenerateArchive(archivePath, testutil.LayoutSpec{
		Splits:  splitCounts,
		Width:   8,
		Height:  8,
		Classes: 4,
		Seed:    42,
	})
	require.NoError(t, err)

	cfg := paired.Config{
		Name:    "dummy",
		URL:     "https://example.com/dummy.zip",
		Digest:  digest,
		Splits:  []string{"train", "val", "test"},
		Classes: []string{"background", "water", "forest", "urban"},
	}
	return cfg, testutil.LocalFetcher(archivePath)
}

func TestNew_DownloadYieldsKnownLengths(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	root := filepath.Join(t.TempDir(), "data")

	for split, want := range splitCounts {
		ds, err := paired.New(context.Background(), cfg,
			paired.WithRoot(root),
			paired.WithSplit(split),
			paired.WithDownload(true),
			paired.WithFetcher(fetcher),
		)
		require.NoError(t, err, "split %s", split)
		require.Equal(t, want, ds.Len(), "split %s", split)
		require.Equal(t, split, ds.Split())
	}
}

func TestSample_FixedKeysShapesAndDTypes(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	for i := 0; i < ds.Len(); i++ {
		s, err := ds.Sample(i)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{sample.KeyImage, sample.KeyMask}, s.Keys())

		img := s[sample.KeyImage]
		require.Equal(t, sample.Float32, img.DType())
		require.Equal(t, []int{3, 8, 8}, img.Shape())
		for _, v := range img.Float32s() {
			require.GreaterOrEqual(t, v, float32(0))
			require.LessOrEqual(t, v, float32(1))
		}

		mask := s[sample.KeyMask]
		require.Equal(t, sample.Int64, mask.DType())
		require.Equal(t, []int{8, 8}, mask.Shape())
		for _, v := range mask.Int64s() {
			require.GreaterOrEqual(t, v, int64(0))
			require.Less(t, v, int64(len(cfg.Classes)))
		}
	}
}

func TestSample_OutOfRange(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	for _, i := range []int{-1, ds.Len(), ds.Len() + 10} {
		_, err := ds.Sample(i)
		var oor *datago.ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor, "index %d", i)
		require.Equal(t, i, oor.Index)
		require.Equal(t, ds.Len(), oor.Length)
	}
}

func TestNew_InvalidSplitFailsBeforeIO(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	root := filepath.Join(t.TempDir(), "never-created")

	_, err := paired.New(context.Background(), cfg,
		paired.WithRoot(root),
		paired.WithSplit("trian"),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	var invalid *datago.ErrInvalidSplit
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "trian", invalid.Split)
	require.Equal(t, cfg.Splits, invalid.Valid)

	_, statErr := os.Stat(root)
	require.True(t, os.IsNotExist(statErr), "config errors must precede filesystem access")
}

func TestNew_NotFoundWithoutDownload(t *testing.T) {
	cfg, _ := makeDataset(t)

	_, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
	)
	require.ErrorIs(t, err, datago.ErrDatasetNotFound)
}

func TestNew_ExtractsArchiveAlreadyInRoot(t *testing.T) {
	cfg, fetcher := makeDataset(t)

	// Fresh acquisition for the expected length.
	fresh, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	// Root contains only the un-extracted archive; download stays disabled.
	root := t.TempDir()
	dst, err := os.Create(filepath.Join(root, "dummy.zip"))
	require.NoError(t, err)
	require.NoError(t, fetcher.Fetch(context.Background(), cfg.URL, dst))
	require.NoError(t, dst.Close())

	ds, err := paired.New(context.Background(), cfg, paired.WithRoot(root))
	require.NoError(t, err)
	require.Equal(t, fresh.Len(), ds.Len())
}

func TestNew_ChecksumMismatchIsFatal(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	cfg.Digest = archive.Digest("md5:00000000000000000000000000000000")

	_, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	var mismatch *datago.ErrChecksumMismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, cfg.Digest, mismatch.Expected)
}

func TestNew_CorruptArchiveInRootWithoutDownload(t *testing.T) {
	cfg, _ := makeDataset(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "dummy.zip"), []byte("garbage"), 0o644))

	_, err := paired.New(context.Background(), cfg, paired.WithRoot(root))
	var mismatch *datago.ErrChecksumMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestNew_MissingMaskIsMalformed(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	root := t.TempDir()

	_, err := paired.New(context.Background(), cfg,
		paired.WithRoot(root),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "train", "0_mask.png")))
	_, err = paired.New(context.Background(), cfg, paired.WithRoot(root), paired.WithSplit("train"))
	require.Error(t, err)
}

func TestSample_TransformRunsLast(t *testing.T) {
	cfg, fetcher := makeDataset(t)

	addLabel := func(s sample.Sample) sample.Sample {
		// Both decoded entries must already be present.
		if s[sample.KeyImage] == nil || s[sample.KeyMask] == nil {
			return s
		}
		s[sample.KeyLabel] = sample.NewInt64([]int{1}, []int64{1})
		return s
	}

	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
		paired.WithTransform(addLabel),
	)
	require.NoError(t, err)

	s, err := ds.Sample(0)
	require.NoError(t, err)
	require.NotNil(t, s[sample.KeyLabel])
}

func TestSample_ReturnsFreshCopies(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	a, err := ds.Sample(0)
	require.NoError(t, err)
	a[sample.KeyMask].Int64s()[0] = 999
	delete(a, sample.KeyImage)

	b, err := ds.Sample(0)
	require.NoError(t, err)
	require.NotNil(t, b[sample.KeyImage])
	require.NotEqual(t, int64(999), b[sample.KeyMask].Int64s()[0])
}

func TestSample_ConcurrentReads(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < ds.Len(); i++ {
				s, err := ds.Sample(i)
				require.NoError(t, err)
				require.NotNil(t, s[sample.KeyImage])
			}
		}()
	}
	wg.Wait()
}

func TestPlot_WithPrediction(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	s, err := ds.Sample(0)
	require.NoError(t, err)
	s[sample.KeyPrediction] = s[sample.KeyMask].Clone()
	before := s.Clone()

	fig, err := ds.Plot(s)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 3)

	require.ElementsMatch(t, before.Keys(), s.Keys())
	for k := range before {
		require.True(t, before[k].Equal(s[k]))
	}
}

func TestClasses_ReturnsCopy(t *testing.T) {
	cfg, fetcher := makeDataset(t)
	ds, err := paired.New(context.Background(), cfg,
		paired.WithRoot(t.TempDir()),
		paired.WithDownload(true),
		paired.WithFetcher(fetcher),
	)
	require.NoError(t, err)

	classes := ds.Classes()
	require.Equal(t, cfg.Classes, classes)
	classes[0] = "mutated"
	require.Equal(t, "background", ds.Classes()[0])
}
