package slidezone

// ShapeKind identifies the element a shape was read from.
type ShapeKind string

// ShapeKind constants for Shape.Kind.
const (
	ShapeAutoShape    ShapeKind = "shape"
	ShapeGroup        ShapeKind = "group"
	ShapeGraphicFrame ShapeKind = "graphic_frame"
	ShapeConnector    ShapeKind = "connector"
	ShapePicture      ShapeKind = "picture"
	ShapeOther        ShapeKind = "other"
)

// Shape is an item on a slide. Positions and sizes are in EMU.
type Shape struct {
	ID     int
	Name   string
	Kind   ShapeKind
	Top    int64
	Left   int64
	Width  int64
	Height int64

	// HasPosition is false when no transform could be resolved for the
	// shape, including through placeholder inheritance.
	HasPosition bool

	// HasText is true when the shape carries a text frame, even if empty.
	HasText bool
	Text    string
}

// Deck is an open presentation document.
type Deck interface {
	// SlideCount returns the number of slides in presentation order.
	SlideCount() int

	// Shapes returns the top-level shapes of the slide at index in
	// document order.
	Shapes(index int) ([]Shape, error)

	// Close releases the underlying file.
	Close() error
}

// DeckOpener opens presentation documents.
type DeckOpener interface {
	// OpenDeck opens the document at path.
	// Returns EOPEN if the file is not a readable presentation.
	OpenDeck(path string) (Deck, error)
}
