// Package http provides net/http implementations of patchnotes.Fetcher and
// patchnotes.ImageFetcher for forums that serve plain HTML.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages with a browser User-Agent.
// Redirects are followed by the underlying http.Client.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher or an ImageFetcher.
type Option func(*options)

type options struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// WithTimeout sets the per-request timeout.
// Defaults to patchnotes.DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to patchnotes.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithTransport sets the RoundTripper used for requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.client = &http.Client{Transport: rt}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		timeout:   patchnotes.DefaultTimeout,
		userAgent: patchnotes.DefaultUserAgent,
		client:    &http.Client{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.client.Timeout = o.timeout
	return o
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := buildOptions(opts)
	return &Fetcher{
		client:    o.client,
		userAgent: o.userAgent,
	}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", patchnotes.Errorf(patchnotes.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", patchnotes.Errorf(patchnotes.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
