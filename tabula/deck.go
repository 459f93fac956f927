// Package tabula adapts the tabula PPTX reader to the slidezone deck
// interfaces.
//
// Compared with the etree reader, tabula only reports shapes that carry
// non-empty text, includes the text of grouped shapes after the top-level
// ones, orders slides by part name rather than by the presentation's slide
// list, and does not resolve placeholder positions from layouts. A block
// without a transform of its own is reported without a position.
package tabula

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/slidezone"
	"github.com/tsawler/tabula/pptx"
)

// Ensure DeckOpener implements slidezone.DeckOpener at compile time.
var _ slidezone.DeckOpener = (*DeckOpener)(nil)

// DeckOpener opens decks with tabula's pptx reader.
type DeckOpener struct{}

// NewDeckOpener creates a new DeckOpener.
func NewDeckOpener() *DeckOpener {
	return &DeckOpener{}
}

// OpenDeck opens and fully parses the deck at path. tabula refuses decks
// without slides; that case is reported as EEMPTY.
func (o *DeckOpener) OpenDeck(path string) (slidezone.Deck, error) {
	r, err := pptx.Open(path)
	if err != nil {
		if strings.Contains(err.Error(), "no slides") {
			return nil, slidezone.Errorf(slidezone.EEMPTY, "%s has no slides", filepath.Base(path))
		}
		return nil, slidezone.Errorf(slidezone.EOPEN, "%s is not a presentation: %v", filepath.Base(path), err)
	}
	return &Deck{r: r}, nil
}

// Ensure Deck implements slidezone.Deck at compile time.
var _ slidezone.Deck = (*Deck)(nil)

// Deck wraps an open tabula reader.
type Deck struct {
	r *pptx.Reader
}

// SlideCount returns the number of parsed slides.
func (d *Deck) SlideCount() int {
	return d.r.SlideCount()
}

// Shapes converts the text blocks of the slide at index into shapes.
func (d *Deck) Shapes(index int) ([]slidezone.Shape, error) {
	slide, err := d.r.Slide(index)
	if err != nil {
		return nil, slidezone.Errorf(slidezone.ENOTFOUND, "slide %d not found: %v", index, err)
	}

	shapes := make([]slidezone.Shape, 0, len(slide.Content))
	for _, block := range slide.Content {
		shapes = append(shapes, slidezone.Shape{
			Name:        block.Placeholder,
			Kind:        slidezone.ShapeAutoShape,
			Top:         int64(block.Y),
			Left:        int64(block.X),
			Width:       int64(block.Width),
			Height:      int64(block.Height),
			HasPosition: hasTransform(block),
			HasText:     true,
			Text:        block.Text,
		})
	}
	return shapes, nil
}

// hasTransform reports whether tabula read an a:xfrm for the block. It leaves
// all four values at zero otherwise, typically for placeholders that inherit
// their position from the layout.
func hasTransform(block pptx.TextBlock) bool {
	return block.X != 0 || block.Y != 0 || block.Width != 0 || block.Height != 0
}

// Close releases the underlying zip file.
func (d *Deck) Close() error {
	return d.r.Close()
}
