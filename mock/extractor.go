package mock

import "github.com/fwojciec/patchnotes"

var _ patchnotes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of patchnotes.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*patchnotes.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*patchnotes.ExtractResult, error) {
	return e.ExtractFn(html)
}
