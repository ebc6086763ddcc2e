package mock

import (
	"context"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of patchnotes.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ patchnotes.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of patchnotes.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) (*patchnotes.Image, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) (*patchnotes.Image, error) {
	return f.FetchImageFn(ctx, url)
}

var _ patchnotes.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of patchnotes.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
