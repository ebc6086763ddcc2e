package mock

import "github.com/fwojciec/patchnotes"

var _ patchnotes.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of patchnotes.Navigator.
type Navigator struct {
	FindSectionFn func(html, baseURL string) (string, error)
	FindThreadFn  func(html, baseURL string) (string, error)
}

func (n *Navigator) FindSection(html, baseURL string) (string, error) {
	return n.FindSectionFn(html, baseURL)
}

func (n *Navigator) FindThread(html, baseURL string) (string, error) {
	return n.FindThreadFn(html, baseURL)
}
