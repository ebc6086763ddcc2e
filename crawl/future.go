package crawl

import (
	"context"

	"github.com/fwojciec/patchnotes"
)

// Future is the pending result of FetchLatestPatchNotesAsync.
// It always completes with a non-nil result.
type Future struct {
	done   chan struct{}
	result *patchnotes.PatchNotes
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(notes *patchnotes.PatchNotes) {
	f.result = notes
	close(f.done)
}

// Done returns a channel that is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done.
// Abandoning a wait does not stop the underlying fetch.
func (f *Future) Wait(ctx context.Context) (*patchnotes.PatchNotes, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the result without blocking. ok is false while pending.
func (f *Future) Result() (notes *patchnotes.PatchNotes, ok bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return nil, false
	}
}

// Then schedules fn on exec once the result is available. fn never runs on
// the fetching goroutine unless exec runs callbacks inline. A nil exec
// runs fn inline on the waiting goroutine.
func (f *Future) Then(exec patchnotes.Executor, fn func(*patchnotes.PatchNotes)) {
	if exec == nil {
		exec = patchnotes.InlineExecutor()
	}
	go func() {
		<-f.done
		exec.Execute(func() { fn(f.result) })
	}()
}
