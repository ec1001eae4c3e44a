package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the resource identified by url and writes its contents
// to dst. Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dst io.Writer) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, dst io.Writer) error

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string, dst io.Writer) error {
	return f(ctx, url, dst)
}

// ToFile fetches url into the file at path. The download goes through a
// temporary file in the same directory which is renamed into place on
// success, so a partial download is never visible under the final name.
func ToFile(ctx context.Context, f Fetcher, url, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := f.Fetch(ctx, url, tmp); err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Item names one remote resource and its local destination.
type Item struct {
	URL  string
	Path string
}

// All fetches every item concurrently and returns the first error, if any.
// Already-present destination files are skipped.
func All(ctx context.Context, f Fetcher, items []Item) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, it := range items {
		g.Go(func() error {
			if _, err := os.Stat(it.Path); err == nil {
				return nil
			}
			return ToFile(ctx, f, it.URL, it.Path)
		})
	}
	return g.Wait()
}
