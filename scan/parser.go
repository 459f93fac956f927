package scan

import (
	"context"

	"github.com/fwojciec/slidezone"
)

var _ slidezone.SlideParser = (*Parser)(nil)

// Parser implements slidezone.SlideParser on top of a DeckOpener.
type Parser struct {
	Decks slidezone.DeckOpener
}

// NewParser creates a new Parser reading decks through opener.
func NewParser(opener slidezone.DeckOpener) *Parser {
	return &Parser{Decks: opener}
}

// ParseSlide classifies and cleans every text shape on the first slide of
// the document at path.
func (p *Parser) ParseSlide(ctx context.Context, path string, zones slidezone.Zones) (slidezone.SlideContent, error) {
	deck, err := p.Decks.OpenDeck(path)
	if err != nil {
		return nil, err
	}
	defer deck.Close()

	if deck.SlideCount() == 0 {
		return nil, slidezone.Errorf(slidezone.EEMPTY, "presentation has no slides")
	}

	shapes, err := deck.Shapes(0)
	if err != nil {
		return nil, err
	}

	content := make(slidezone.SlideContent)
	for _, shape := range shapes {
		if !shape.HasText {
			continue
		}
		if !shape.HasPosition {
			return nil, slidezone.Errorf(slidezone.EINVALID, "shape %q has no position", shape.Name)
		}
		content.Add(slidezone.Classify(shape, zones), slidezone.Clean(shape.Text))
	}

	return content, nil
}
