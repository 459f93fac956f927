package mock

import (
	"github.com/fwojciec/slidezone"
)

var _ slidezone.DeckOpener = (*DeckOpener)(nil)

// DeckOpener is a mock implementation of slidezone.DeckOpener.
type DeckOpener struct {
	OpenDeckFn func(path string) (slidezone.Deck, error)
}

func (o *DeckOpener) OpenDeck(path string) (slidezone.Deck, error) {
	return o.OpenDeckFn(path)
}

var _ slidezone.Deck = (*Deck)(nil)

// Deck is a mock implementation of slidezone.Deck.
type Deck struct {
	SlideCountFn func() int
	ShapesFn     func(index int) ([]slidezone.Shape, error)
	CloseFn      func() error
}

func (d *Deck) SlideCount() int {
	return d.SlideCountFn()
}

func (d *Deck) Shapes(index int) ([]slidezone.Shape, error) {
	return d.ShapesFn(index)
}

func (d *Deck) Close() error {
	return d.CloseFn()
}
