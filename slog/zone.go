package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/slidezone"
)

// Ensure LoggingZoneLoader implements slidezone.ZoneLoader.
var _ slidezone.ZoneLoader = (*LoggingZoneLoader)(nil)

// LoggingZoneLoader wraps a ZoneLoader with debug logging.
type LoggingZoneLoader struct {
	next   slidezone.ZoneLoader
	logger *slog.Logger
}

// NewLoggingZoneLoader creates a new LoggingZoneLoader.
func NewLoggingZoneLoader(next slidezone.ZoneLoader, logger *slog.Logger) *LoggingZoneLoader {
	return &LoggingZoneLoader{next: next, logger: logger}
}

// LoadZones delegates to the wrapped loader and logs the configured zones.
func (l *LoggingZoneLoader) LoadZones(path string) (zones slidezone.Zones, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load zones",
			"path", path,
			"count", len(zones),
			"zones", zones.Names(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadZones(path)
}
