package paired

import (
	"github.com/hupe1980/datago"
	"github.com/hupe1980/datago/fetch"
	"github.com/hupe1980/datago/sample"
)

type options struct {
	root      string
	split     string
	transform sample.Transform
	download  bool
	fetcher   fetch.Fetcher
	logger    *datago.Logger
}

// Option configures dataset construction.
type Option func(*options)

// WithRoot sets the root directory where the dataset is stored.
// Defaults to "data".
func WithRoot(root string) Option {
	return func(o *options) { o.root = root }
}

// WithSplit selects the split to load. Defaults to the first split declared
// in the Config. An undeclared split fails construction with
// *datago.ErrInvalidSplit before any filesystem access.
func WithSplit(split string) Option {
	return func(o *options) { o.split = split }
}

// WithTransform sets a transform applied as the final step of every
// retrieval.
func WithTransform(t sample.Transform) Option {
	return func(o *options) { o.transform = t }
}

// WithDownload permits fetching the archive from the dataset's declared URL
// when the data is not present under the root.
func WithDownload(enabled bool) Option {
	return func(o *options) { o.download = enabled }
}

// WithFetcher sets the fetcher used for acquisition. Defaults to a plain
// HTTP fetcher. Tests inject a local-copy stand-in here.
func WithFetcher(f fetch.Fetcher) Option {
	return func(o *options) {
		if f == nil {
			f = fetch.NewHTTP()
		}
		o.fetcher = f
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *datago.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = datago.NoopLogger()
		}
		o.logger = l
	}
}
