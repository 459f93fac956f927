package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/slidezone"
)

// Ensure LoggingDatasetWriter implements slidezone.DatasetWriter.
var _ slidezone.DatasetWriter = (*LoggingDatasetWriter)(nil)

// LoggingDatasetWriter wraps a DatasetWriter with debug logging.
type LoggingDatasetWriter struct {
	next   slidezone.DatasetWriter
	logger *slog.Logger
}

// NewLoggingDatasetWriter creates a new LoggingDatasetWriter.
func NewLoggingDatasetWriter(next slidezone.DatasetWriter, logger *slog.Logger) *LoggingDatasetWriter {
	return &LoggingDatasetWriter{next: next, logger: logger}
}

// WriteDataset delegates to the wrapped writer and logs the record count.
func (w *LoggingDatasetWriter) WriteDataset(ctx context.Context, records []*slidezone.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write dataset",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDataset(ctx, records)
}
