package patchnotes

import "context"

// Summarizer condenses patch notes into a short natural language summary.
type Summarizer interface {
	// Summarize returns EINVALID for fallback results or notes without content.
	Summarize(ctx context.Context, notes *PatchNotes) (string, error)
}
