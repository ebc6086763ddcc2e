package patchnotes

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL, following redirects, and returns the HTML body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Image holds the raw bytes of a downloaded image.
// Decoding is left to the display surface.
type Image struct {
	URL         string
	ContentType string
	Data        []byte
}

// ImageFetcher downloads image bytes referenced by image blocks.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (*Image, error)
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
