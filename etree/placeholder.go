package etree

import (
	"github.com/beevik/etree"
)

// placeholder identifies a placeholder shape. Type defaults to "obj" and
// idx to 0 when the attributes are omitted.
type placeholder struct {
	typ string
	idx int
}

// readPlaceholder returns the placeholder reference of a shape, or nil if
// the shape is not a placeholder.
func readPlaceholder(el *etree.Element) *placeholder {
	ph := el.FindElement("./*/nvPr/ph")
	if ph == nil {
		return nil
	}
	idx, _ := atoi(ph.SelectAttrValue("idx", "0"))
	return &placeholder{
		typ: ph.SelectAttrValue("type", "obj"),
		idx: idx,
	}
}

// baseType maps a layout placeholder type to the master placeholder type it
// inherits from.
func baseType(typ string) string {
	switch typ {
	case "title", "ctrTitle":
		return "title"
	case "dt", "ftr", "sldNum":
		return typ
	default:
		return "body"
	}
}

// layoutPlaceholder is a placeholder declared on a layout or master.
type layoutPlaceholder struct {
	placeholder
	pos *position
}

// inheritance holds the placeholders a slide can inherit positions from.
type inheritance struct {
	layout []layoutPlaceholder
	master []layoutPlaceholder
}

// inheritance collects the layout and master placeholders of a slide part.
// Missing layout or master parts leave the corresponding list empty.
func (d *Deck) inheritance(slidePart string) *inheritance {
	inh := &inheritance{}

	layoutPart := d.related(slidePart, relTypeSlideLayout)
	if layoutPart == "" {
		return inh
	}
	inh.layout = d.placeholders(layoutPart)

	if masterPart := d.related(layoutPart, relTypeSlideMaster); masterPart != "" {
		inh.master = d.placeholders(masterPart)
	}

	return inh
}

// placeholders lists the top-level placeholders of a layout or master part.
func (d *Deck) placeholders(part string) []layoutPlaceholder {
	doc, err := d.part(part)
	if err != nil {
		return nil
	}
	tree := doc.Root().FindElement("./cSld/spTree")
	if tree == nil {
		return nil
	}

	var phs []layoutPlaceholder
	for _, el := range tree.ChildElements() {
		if _, ok := shapeKinds[el.Tag]; !ok {
			continue
		}
		ph := readPlaceholder(el)
		if ph == nil {
			continue
		}
		phs = append(phs, layoutPlaceholder{
			placeholder: *ph,
			pos:         readPosition(el),
		})
	}
	return phs
}

// resolve returns the inherited position of a slide placeholder. The layout
// placeholder is matched by idx; if it has no transform of its own, the
// master placeholder is matched by base type.
func (inh *inheritance) resolve(ph *placeholder) *position {
	for _, lp := range inh.layout {
		if lp.idx != ph.idx {
			continue
		}
		if lp.pos != nil {
			return lp.pos
		}
		want := baseType(lp.typ)
		for _, mp := range inh.master {
			if mp.typ == want && mp.pos != nil {
				return mp.pos
			}
		}
		return nil
	}
	return nil
}
