package mock

import (
	"context"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of patchnotes.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, notes *patchnotes.PatchNotes) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, notes *patchnotes.PatchNotes) (string, error) {
	return s.SummarizeFn(ctx, notes)
}
