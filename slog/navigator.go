package slog

import (
	"log/slog"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator and logs each resolved hop at debug level.
type LoggingNavigator struct {
	next   patchnotes.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next patchnotes.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// FindSection delegates to the wrapped navigator.
func (n *LoggingNavigator) FindSection(html, baseURL string) (sectionURL string, err error) {
	defer func() {
		n.logger.Debug("find section",
			"base", baseURL,
			"section", sectionURL,
			"err", err,
		)
	}()
	return n.next.FindSection(html, baseURL)
}

// FindThread delegates to the wrapped navigator.
func (n *LoggingNavigator) FindThread(html, baseURL string) (threadURL string, err error) {
	defer func() {
		n.logger.Debug("find thread",
			"base", baseURL,
			"thread", threadURL,
			"err", err,
		)
	}()
	return n.next.FindThread(html, baseURL)
}
