package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.ImageFetcher = (*ImageFetcher)(nil)

// maxImageBytes bounds a single image download.
const maxImageBytes = 16 << 20

// ImageFetcher downloads image bytes for ImageRef URLs. A single 301 or 302
// is followed via the Location header; a second redirect is an error.
type ImageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewImageFetcher creates a new ImageFetcher.
func NewImageFetcher(opts ...Option) *ImageFetcher {
	o := buildOptions(opts)
	client := *o.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &ImageFetcher{
		client:    &client,
		userAgent: o.userAgent,
	}
}

// FetchImage downloads the image at rawURL.
func (f *ImageFetcher) FetchImage(ctx context.Context, rawURL string) (*patchnotes.Image, error) {
	resp, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if isRedirect(resp.StatusCode) {
		location := resp.Header.Get("Location")
		resp.Body.Close()
		if location == "" {
			return nil, patchnotes.Errorf(patchnotes.EUNAVAILABLE, "HTTP %d without Location for %s", resp.StatusCode, rawURL)
		}
		next, err := resolveLocation(rawURL, location)
		if err != nil {
			return nil, err
		}
		if resp, err = f.get(ctx, next); err != nil {
			return nil, err
		}
		if isRedirect(resp.StatusCode) {
			resp.Body.Close()
			return nil, patchnotes.Errorf(patchnotes.EUNAVAILABLE, "too many redirects for %s", rawURL)
		}
		rawURL = next
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, patchnotes.Errorf(patchnotes.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	if len(data) > maxImageBytes {
		return nil, patchnotes.Errorf(patchnotes.EUNAVAILABLE, "image exceeds %d bytes: %s", maxImageBytes, rawURL)
	}

	return &patchnotes.Image{
		URL:         rawURL,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (f *ImageFetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, patchnotes.Errorf(patchnotes.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	return resp, nil
}

func isRedirect(code int) bool {
	return code == http.StatusMovedPermanently || code == http.StatusFound
}

// resolveLocation resolves a Location header against the request URL.
func resolveLocation(base, location string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", patchnotes.Errorf(patchnotes.EINVALID, "invalid URL %q: %v", base, err)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", patchnotes.Errorf(patchnotes.EUNAVAILABLE, "invalid redirect location %q", location)
	}
	return b.ResolveReference(ref).String(), nil
}
