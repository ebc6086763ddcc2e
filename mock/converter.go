package mock

import "github.com/fwojciec/patchnotes"

var _ patchnotes.Converter = (*Converter)(nil)

// Converter is a mock implementation of patchnotes.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
