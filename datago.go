package datago

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/datago/sample"
	"github.com/hupe1980/datago/viz"
)

// Dataset is a read-only, integer-indexed collection of samples.
//
// Len is stable for the lifetime of the instance and every index in
// [0, Len) resolves to a sample. Implementations hold no mutable state
// after construction, so concurrent Sample calls are safe.
type Dataset interface {
	// Len returns the number of samples.
	Len() int
	// Sample decodes and returns the sample at index i. Each call performs
	// an independent read and returns a fresh Sample the caller may mutate.
	// An index outside [0, Len) yields an *ErrIndexOutOfRange.
	Sample(i int) (sample.Sample, error)
}

// Plotter is implemented by datasets that can render a sample for
// inspection. Plot never mutates the given sample.
type Plotter interface {
	Plot(s sample.Sample, opts ...viz.PlotOption) (*viz.Figure, error)
}

// Take returns a view of ds restricted to its first n samples.
// If n exceeds ds.Len(), the full dataset is used.
func Take(ds Dataset, n int) Dataset {
	if n > ds.Len() {
		n = ds.Len()
	}
	if n < 0 {
		n = 0
	}
	return &takeDataset{ds: ds, n: n}
}

type takeDataset struct {
	ds Dataset
	n  int
}

func (t *takeDataset) Len() int { return t.n }

func (t *takeDataset) Sample(i int) (sample.Sample, error) {
	if i < 0 || i >= t.n {
		return nil, &ErrIndexOutOfRange{Index: i, Length: t.n}
	}
	return t.ds.Sample(i)
}

// Subset returns a view of ds containing only the given indices, in
// ascending order with duplicates removed. Indices outside [0, ds.Len())
// are dropped. The bitmap keeps large, sparse selections cheap.
func Subset(ds Dataset, indices []int) Dataset {
	bm := roaring.New()
	n := uint32(ds.Len())
	for _, i := range indices {
		if i >= 0 && uint32(i) < n {
			bm.Add(uint32(i))
		}
	}
	return &subsetDataset{ds: ds, positions: bm.ToArray()}
}

type subsetDataset struct {
	ds        Dataset
	positions []uint32
}

func (s *subsetDataset) Len() int { return len(s.positions) }

func (s *subsetDataset) Sample(i int) (sample.Sample, error) {
	if i < 0 || i >= len(s.positions) {
		return nil, &ErrIndexOutOfRange{Index: i, Length: len(s.positions)}
	}
	return s.ds.Sample(int(s.positions[i]))
}
