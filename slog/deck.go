package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/slidezone"
)

// Ensure LoggingDeckOpener implements slidezone.DeckOpener.
var _ slidezone.DeckOpener = (*LoggingDeckOpener)(nil)

// LoggingDeckOpener wraps a DeckOpener with debug logging.
type LoggingDeckOpener struct {
	next   slidezone.DeckOpener
	logger *slog.Logger
}

// NewLoggingDeckOpener creates a new LoggingDeckOpener.
func NewLoggingDeckOpener(next slidezone.DeckOpener, logger *slog.Logger) *LoggingDeckOpener {
	return &LoggingDeckOpener{next: next, logger: logger}
}

// OpenDeck delegates to the wrapped opener and logs the slide count.
func (o *LoggingDeckOpener) OpenDeck(path string) (deck slidezone.Deck, err error) {
	defer func(begin time.Time) {
		slides := 0
		if deck != nil {
			slides = deck.SlideCount()
		}
		o.logger.Info("open deck",
			"path", path,
			"slides", slides,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.OpenDeck(path)
}
