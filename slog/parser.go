package slog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/slidezone"
)

// Ensure LoggingSlideParser implements slidezone.SlideParser.
var _ slidezone.SlideParser = (*LoggingSlideParser)(nil)

// LoggingSlideParser wraps a SlideParser with debug logging.
type LoggingSlideParser struct {
	next   slidezone.SlideParser
	logger *slog.Logger
}

// NewLoggingSlideParser creates a new LoggingSlideParser.
func NewLoggingSlideParser(next slidezone.SlideParser, logger *slog.Logger) *LoggingSlideParser {
	return &LoggingSlideParser{next: next, logger: logger}
}

// ParseSlide delegates to the wrapped parser and logs what was classified.
func (p *LoggingSlideParser) ParseSlide(ctx context.Context, path string, zones slidezone.Zones) (content slidezone.SlideContent, err error) {
	defer func(begin time.Time) {
		texts := 0
		for _, entries := range content {
			texts += len(entries)
		}
		p.logger.Info("parse slide",
			"file", filepath.Base(path),
			"zones", len(content),
			"texts", texts,
			"unknown", len(content[slidezone.ZoneUnknown]),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseSlide(ctx, path, zones)
}
