package slog

import (
	"log/slog"
	"time"

	"github.com/nkgc/churchdir"
)

// Ensure LoggingExtractor implements churchdir.Extractor.
var _ churchdir.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   churchdir.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next churchdir.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many contacts it found.
func (e *LoggingExtractor) Extract(html string, category string) (entries []*churchdir.Entry, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"category", category,
			"contacts", churchdir.CountContacts(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, category)
}
