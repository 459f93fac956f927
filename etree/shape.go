package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/slidezone"
)

// shapeKinds maps the shape elements allowed in a shape tree to their kind.
var shapeKinds = map[string]slidezone.ShapeKind{
	"sp":           slidezone.ShapeAutoShape,
	"grpSp":        slidezone.ShapeGroup,
	"graphicFrame": slidezone.ShapeGraphicFrame,
	"cxnSp":        slidezone.ShapeConnector,
	"pic":          slidezone.ShapePicture,
	"contentPart":  slidezone.ShapeOther,
}

// readShape reads identity, transform, and text of a shape element.
func readShape(el *etree.Element, kind slidezone.ShapeKind) slidezone.Shape {
	shape := slidezone.Shape{Kind: kind}

	if cNvPr := el.FindElement("./*/cNvPr"); cNvPr != nil {
		shape.ID, _ = atoi(cNvPr.SelectAttrValue("id", ""))
		shape.Name = cNvPr.SelectAttrValue("name", "")
	}

	if pos := readPosition(el); pos != nil {
		pos.apply(&shape)
	}

	if kind == slidezone.ShapeAutoShape {
		if txBody := el.SelectElement("txBody"); txBody != nil {
			shape.HasText = true
			shape.Text = readText(txBody)
		}
	}

	return shape
}

// position is a resolved transform in EMU.
type position struct {
	x, y, cx, cy int64
}

func (p *position) apply(shape *slidezone.Shape) {
	shape.Left = p.x
	shape.Top = p.y
	shape.Width = p.cx
	shape.Height = p.cy
	shape.HasPosition = true
}

// readPosition returns the shape's own transform, or nil if it has none.
// Group shapes keep it under grpSpPr and graphic frames directly under the
// element.
func readPosition(el *etree.Element) *position {
	var xfrm *etree.Element
	for _, p := range []string{"./spPr/xfrm", "./grpSpPr/xfrm", "./xfrm"} {
		if xfrm = el.FindElement(p); xfrm != nil {
			break
		}
	}
	if xfrm == nil {
		return nil
	}

	off := xfrm.SelectElement("off")
	if off == nil {
		return nil
	}
	x, okX := parseInt(off.SelectAttrValue("x", ""))
	y, okY := parseInt(off.SelectAttrValue("y", ""))
	if !okX || !okY {
		return nil
	}

	pos := &position{x: x, y: y}
	if ext := xfrm.SelectElement("ext"); ext != nil {
		pos.cx, _ = parseInt(ext.SelectAttrValue("cx", ""))
		pos.cy, _ = parseInt(ext.SelectAttrValue("cy", ""))
	}
	return pos
}

// readText joins the paragraphs of a text body with newlines. Runs and
// fields are concatenated; line breaks become newlines.
func readText(txBody *etree.Element) string {
	paragraphs := txBody.SelectElements("p")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		var sb strings.Builder
		for _, child := range p.ChildElements() {
			switch child.Tag {
			case "r", "fld":
				if t := child.SelectElement("t"); t != nil {
					sb.WriteString(t.Text())
				}
			case "br":
				sb.WriteString("\n")
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func atoi(s string) (int, bool) {
	v, ok := parseInt(s)
	return int(v), ok
}
