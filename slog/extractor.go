package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs the size of each result.
type LoggingExtractor struct {
	next   patchnotes.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next patchnotes.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (result *patchnotes.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var blocks int
		if result != nil {
			title = result.Title
			blocks = len(result.Blocks)
		}
		e.logger.Debug("extract",
			"title", title,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
