// Package crawl provides patch-notes fetch orchestration.
// It walks the forum index to the latest update thread, extracts its first
// post and substitutes a fixed fallback result when any stage fails.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/patchnotes"
)

// Crawler orchestrates the three page fetches and the extraction.
// A Crawler holds no per-call state and is safe for concurrent use.
type Crawler struct {
	Fetcher   patchnotes.Fetcher
	Navigator patchnotes.Navigator
	Extractor patchnotes.Extractor

	// Converter, if set, renders the post body as Markdown.
	Converter patchnotes.Converter

	// RateLimiter, if set, is waited on before every page fetch.
	RateLimiter patchnotes.HostLimiter

	// RetryDelays lists the backoff before each retry. Nil means one attempt.
	RetryDelays []time.Duration

	// Timeout bounds each page fetch. Zero leaves it to the Fetcher.
	Timeout time.Duration

	Logger *slog.Logger
}

// ResolveLatestThread walks from the forum index to the announcements
// sub-forum and returns the first qualifying update thread.
func (c *Crawler) ResolveLatestThread(ctx context.Context, rootURL string) (*patchnotes.ThreadReference, error) {
	rootHTML, err := c.fetch(ctx, rootURL)
	if err != nil {
		return nil, fmt.Errorf("fetch forum index: %w", err)
	}
	sectionURL, err := c.Navigator.FindSection(rootHTML, rootURL)
	if err != nil {
		return nil, err
	}

	sectionHTML, err := c.fetch(ctx, sectionURL)
	if err != nil {
		return nil, fmt.Errorf("fetch section: %w", err)
	}
	threadURL, err := c.Navigator.FindThread(sectionHTML, sectionURL)
	if err != nil {
		return nil, err
	}

	return &patchnotes.ThreadReference{URL: threadURL}, nil
}

// FetchPatchNotes runs the full pipeline and returns the first error
// encountered. Most callers want FetchLatestPatchNotes instead.
func (c *Crawler) FetchPatchNotes(ctx context.Context, rootURL string) (*patchnotes.PatchNotes, error) {
	thread, err := c.ResolveLatestThread(ctx, rootURL)
	if err != nil {
		return nil, err
	}

	threadHTML, err := c.fetch(ctx, thread.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch thread: %w", err)
	}

	extracted, err := c.Extractor.Extract(threadHTML)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", thread.URL, err)
	}

	notes := &patchnotes.PatchNotes{
		Title:          extracted.Title,
		SourceURL:      thread.URL,
		HeaderImageURL: extracted.HeaderImageURL,
		Blocks:         extracted.Blocks,
	}

	if c.Converter != nil && extracted.ContentHTML != "" {
		markdown, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			c.logger().Warn("convert post", "url", thread.URL, "err", err)
		} else {
			notes.Markdown = markdown
		}
	}

	return notes, nil
}

// FetchLatestPatchNotes never fails: any error or panic in the pipeline is
// logged and replaced by patchnotes.Fallback(rootURL).
func (c *Crawler) FetchLatestPatchNotes(ctx context.Context, rootURL string) (notes *patchnotes.PatchNotes) {
	defer func() {
		if r := recover(); r != nil {
			c.logger().Error("fetch patch notes", "root", rootURL, "panic", r)
			notes = patchnotes.Fallback(rootURL)
		}
	}()

	notes, err := c.FetchPatchNotes(ctx, rootURL)
	if err != nil {
		c.logger().Error("fetch patch notes", "root", rootURL, "err", err)
		return patchnotes.Fallback(rootURL)
	}
	return notes
}

// FetchLatestPatchNotesAsync starts FetchLatestPatchNotes on a new goroutine
// and returns immediately. Concurrent calls are independent.
func (c *Crawler) FetchLatestPatchNotesAsync(ctx context.Context, rootURL string) *Future {
	f := newFuture()
	go func() {
		f.complete(c.FetchLatestPatchNotes(ctx, rootURL))
	}()
	return f
}

// fetch applies rate limiting, the per-page timeout and retries to one GET.
func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	fetchFn := func(ctx context.Context, rawURL string) (string, error) {
		if c.RateLimiter != nil {
			u, err := url.Parse(rawURL)
			if err != nil {
				return "", patchnotes.Errorf(patchnotes.EINVALID, "invalid URL %q: %v", rawURL, err)
			}
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		if c.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.Timeout)
			defer cancel()
		}
		return c.Fetcher.Fetch(ctx, rawURL)
	}

	logRetry := func(format string, args ...any) {
		c.logger().Warn(fmt.Sprintf(format, args...))
	}
	return FetchWithRetryDelays(ctx, rawURL, fetchFn, logRetry, c.RetryDelays)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
