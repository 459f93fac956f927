// Package etree reads presentation decks from Office Open XML (.pptx)
// packages using the etree XML element tree.
package etree

import (
	"archive/zip"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/slidezone"
	"golang.org/x/net/html/charset"
)

const (
	presentationPart = "ppt/presentation.xml"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeSlideLayout = "/slideLayout"
	relTypeSlideMaster = "/slideMaster"
)

// Ensure DeckOpener implements slidezone.DeckOpener at compile time.
var _ slidezone.DeckOpener = (*DeckOpener)(nil)

// DeckOpener opens .pptx packages.
type DeckOpener struct{}

// NewDeckOpener creates a new DeckOpener.
func NewDeckOpener() *DeckOpener {
	return &DeckOpener{}
}

// OpenDeck opens the package at p and reads its slide list.
func (o *DeckOpener) OpenDeck(p string) (slidezone.Deck, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, slidezone.Errorf(slidezone.EOPEN, "%s is not a presentation: %v", filepath.Base(p), err)
	}

	d := &Deck{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
		docs:  make(map[string]*etree.Document),
	}
	for _, f := range zr.File {
		d.files[f.Name] = f
	}

	if err := d.readSlideList(); err != nil {
		zr.Close()
		return nil, slidezone.Errorf(slidezone.EOPEN, "%s is not a presentation: %v", filepath.Base(p), err)
	}

	return d, nil
}

// Ensure Deck implements slidezone.Deck at compile time.
var _ slidezone.Deck = (*Deck)(nil)

// Deck is an open .pptx package. Parsed parts are cached for the lifetime
// of the deck so layouts shared by several slides are read once.
type Deck struct {
	zr     *zip.ReadCloser
	files  map[string]*zip.File
	docs   map[string]*etree.Document
	slides []string // slide part names in presentation order
}

// SlideCount returns the number of slides listed by the presentation.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Close releases the underlying zip file.
func (d *Deck) Close() error {
	if d.zr != nil {
		err := d.zr.Close()
		d.zr = nil
		return err
	}
	return nil
}

// Shapes returns the top-level shapes of the slide at index in document
// order. Placeholders without their own transform take their position from
// the slide layout, then the slide master.
func (d *Deck) Shapes(index int) ([]slidezone.Shape, error) {
	if index < 0 || index >= len(d.slides) {
		return nil, slidezone.Errorf(slidezone.ENOTFOUND, "slide %d not found", index)
	}

	slidePart := d.slides[index]
	doc, err := d.part(slidePart)
	if err != nil {
		return nil, slidezone.Errorf(slidezone.EOPEN, "reading slide %d: %v", index+1, err)
	}

	tree := doc.Root().FindElement("./cSld/spTree")
	if tree == nil {
		return nil, nil
	}

	var layout *inheritance
	shapes := make([]slidezone.Shape, 0)
	for _, el := range tree.ChildElements() {
		kind, ok := shapeKinds[el.Tag]
		if !ok {
			continue
		}

		shape := readShape(el, kind)
		if !shape.HasPosition {
			if ph := readPlaceholder(el); ph != nil {
				if layout == nil {
					layout = d.inheritance(slidePart)
				}
				if pos := layout.resolve(ph); pos != nil {
					pos.apply(&shape)
				}
			}
		}
		shapes = append(shapes, shape)
	}

	return shapes, nil
}

// readSlideList resolves the slide order declared in presentation.xml.
func (d *Deck) readSlideList() error {
	doc, err := d.part(presentationPart)
	if err != nil {
		return err
	}

	rels, err := d.relationships(presentationPart)
	if err != nil {
		return err
	}

	for _, sldID := range doc.Root().FindElements("./sldIdLst/sldId") {
		rel, ok := rels[relationshipID(sldID)]
		if !ok {
			return fmt.Errorf("slide relationship %q not found", relationshipID(sldID))
		}
		d.slides = append(d.slides, rel.target)
	}

	return nil
}

// part returns the parsed XML document for a package part.
func (d *Deck) part(name string) (*etree.Document, error) {
	if doc, ok := d.docs[name]; ok {
		return doc, nil
	}

	f, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("parsing %s: %v", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("empty part %s", name)
	}

	d.docs[name] = doc
	return doc, nil
}

// relationship is one entry of a part's .rels file.
type relationship struct {
	typ    string
	target string // resolved part name
}

// relationships reads the .rels file belonging to part, keyed by Id.
// External targets are skipped.
func (d *Deck) relationships(part string) (map[string]relationship, error) {
	dir, file := path.Split(part)
	doc, err := d.part(dir + "_rels/" + file + ".rels")
	if err != nil {
		return nil, err
	}

	rels := make(map[string]relationship)
	for _, el := range doc.Root().SelectElements("Relationship") {
		if el.SelectAttrValue("TargetMode", "") == "External" {
			continue
		}
		rels[el.SelectAttrValue("Id", "")] = relationship{
			typ:    el.SelectAttrValue("Type", ""),
			target: resolveTarget(dir, el.SelectAttrValue("Target", "")),
		}
	}

	return rels, nil
}

// related returns the first target of part whose relationship type ends
// with suffix.
func (d *Deck) related(part, suffix string) string {
	rels, err := d.relationships(part)
	if err != nil {
		return ""
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.typ, suffix) {
			return rel.target
		}
	}
	return ""
}

func resolveTarget(dir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(dir, target)
}

// relationshipID returns the r:id attribute of el, matching the
// relationships namespace whatever prefix the package uses.
func relationshipID(el *etree.Element) string {
	for i := range el.Attr {
		attr := &el.Attr[i]
		if attr.Key == "id" && attr.NamespaceURI() == nsRelationships {
			return attr.Value
		}
	}
	return el.SelectAttrValue("r:id", "")
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}
