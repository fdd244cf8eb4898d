package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nkgc/churchdir"
)

// Ensure LoggingMerger implements churchdir.Merger.
var _ churchdir.Merger = (*LoggingMerger)(nil)

// LoggingMerger wraps a Merger with logging.
type LoggingMerger struct {
	next   churchdir.Merger
	logger *slog.Logger
}

// NewLoggingMerger creates a new LoggingMerger.
func NewLoggingMerger(next churchdir.Merger, logger *slog.Logger) *LoggingMerger {
	return &LoggingMerger{next: next, logger: logger}
}

// Merge delegates to the wrapped merger and logs the operation.
func (m *LoggingMerger) Merge(ctx context.Context, entries []*churchdir.Entry, path string) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("merge",
			"path", path,
			"rows", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Merge(ctx, entries, path)
}
