package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

// HTTP fetches resources over http(s) using a standard client.
type HTTP struct {
	client   *http.Client
	limiter  *rate.Limiter
	progress bool
}

// HTTPOption configures an HTTP fetcher.
type HTTPOption func(*HTTP)

// WithClient sets the http.Client used for downloads. If nil,
// http.DefaultClient is used.
func WithClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		if c == nil {
			c = http.DefaultClient
		}
		h.client = c
	}
}

// WithRateLimit caps the download rate at bytesPerSec. Zero or negative
// disables limiting.
func WithRateLimit(bytesPerSec int) HTTPOption {
	return func(h *HTTP) {
		if bytesPerSec <= 0 {
			h.limiter = nil
			return
		}
		h.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
}

// WithProgress renders a progress bar on stderr while downloading.
func WithProgress(enabled bool) HTTPOption {
	return func(h *HTTP) { h.progress = enabled }
}

// NewHTTP creates an HTTP fetcher.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{client: http.DefaultClient}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fetch implements Fetcher.
func (h *HTTP) Fetch(ctx context.Context, url string, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	var src io.Reader = resp.Body
	if h.limiter != nil {
		src = &limitedReader{r: src, limiter: h.limiter, ctx: ctx}
	}
	if h.progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
		dst = io.MultiWriter(dst, bar)
	}

	_, err = io.Copy(dst, src)
	return err
}

// limitedReader throttles reads through a token bucket.
type limitedReader struct {
	r       io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func (l *limitedReader) Read(p []byte) (int, error) {
	// Cap single reads at the limiter burst so WaitN never exceeds it.
	if burst := l.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := l.r.Read(p)
	if n > 0 {
		if werr := l.limiter.WaitN(l.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
