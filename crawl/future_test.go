package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingFetcher serves forum pages once release is closed.
func blockingFetcher(release <-chan struct{}) *mock.Fetcher {
	inner := pageFetcher(forumPages)
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			<-release
			return inner.FetchFn(ctx, url)
		},
	}
}

func TestFuture(t *testing.T) {
	t.Parallel()

	t.Run("Wait returns context error while pending", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)
		c := newCrawler(forumPages)
		c.Fetcher = blockingFetcher(release)

		future := c.FetchLatestPatchNotesAsync(context.Background(), rootURL)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := future.Wait(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Done closes on completion", func(t *testing.T) {
		t.Parallel()

		future := newCrawler(forumPages).FetchLatestPatchNotesAsync(context.Background(), rootURL)

		select {
		case <-future.Done():
		case <-time.After(time.Second):
			t.Fatal("future did not complete")
		}
		notes, ok := future.Result()
		require.True(t, ok)
		assert.Equal(t, threadURL, notes.SourceURL)
	})

	t.Run("Then runs continuation on the executor", func(t *testing.T) {
		t.Parallel()

		// A single-goroutine loop standing in for a UI thread.
		tasks := make(chan func(), 1)
		exec := patchnotes.ExecutorFunc(func(fn func()) { tasks <- fn })

		future := newCrawler(forumPages).FetchLatestPatchNotesAsync(context.Background(), rootURL)

		var got *patchnotes.PatchNotes
		future.Then(exec, func(notes *patchnotes.PatchNotes) {
			got = notes
		})

		select {
		case task := <-tasks:
			task()
		case <-time.After(time.Second):
			t.Fatal("continuation was not scheduled")
		}
		require.NotNil(t, got)
		assert.Equal(t, threadURL, got.SourceURL)
	})

	t.Run("Then runs after completion when attached late", func(t *testing.T) {
		t.Parallel()

		future := newCrawler(nil).FetchLatestPatchNotesAsync(context.Background(), rootURL)
		_, err := future.Wait(context.Background())
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		var fallback bool
		future.Then(patchnotes.InlineExecutor(), func(notes *patchnotes.PatchNotes) {
			defer wg.Done()
			fallback = notes.Fallback
		})
		wg.Wait()

		assert.True(t, fallback)
	})

	t.Run("Then with a nil executor runs the callback inline", func(t *testing.T) {
		t.Parallel()

		future := newCrawler(nil).FetchLatestPatchNotesAsync(context.Background(), rootURL)

		var wg sync.WaitGroup
		wg.Add(1)
		var title string
		future.Then(nil, func(notes *patchnotes.PatchNotes) {
			defer wg.Done()
			title = notes.Title
		})
		wg.Wait()

		assert.Equal(t, patchnotes.FallbackTitle, title)
	})
}
