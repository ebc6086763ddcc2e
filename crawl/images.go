package crawl

import (
	"context"

	"github.com/fwojciec/patchnotes"
	"golang.org/x/sync/errgroup"
)

// DefaultImageConcurrency is the default number of parallel image downloads.
const DefaultImageConcurrency = 4

// ImageResult is the outcome of downloading one image.
type ImageResult struct {
	URL   string
	Image *patchnotes.Image
	Err   error
}

// PrefetchImages downloads every distinct URL once. Results follow the
// order in which each URL first appears. A failed download does not stop
// the others.
func PrefetchImages(ctx context.Context, fetcher patchnotes.ImageFetcher, urls []string, concurrency int) []ImageResult {
	if concurrency <= 0 {
		concurrency = DefaultImageConcurrency
	}

	seen := make(map[string]bool, len(urls))
	var unique []string
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}

	results := make([]ImageResult, len(unique))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range unique {
		g.Go(func() error {
			img, err := fetcher.FetchImage(ctx, u)
			results[i] = ImageResult{URL: u, Image: img, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
