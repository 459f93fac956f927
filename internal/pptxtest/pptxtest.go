// Package pptxtest builds minimal .pptx packages for tests.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"testing"
)

const (
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
)

// Placeholder marks a shape as a placeholder.
type Placeholder struct {
	Type string // omitted when empty
	Idx  int
}

// Shape describes one shape of a fixture slide.
type Shape struct {
	Name string
	X, Y int64

	// Text is split on "\n" into paragraphs.
	Text string

	// NoText omits the text body entirely.
	NoText bool

	// NoPosition omits the transform.
	NoPosition bool

	// Picture writes a p:pic element instead of p:sp.
	Picture bool

	Placeholder *Placeholder
}

// Deck describes a fixture presentation.
type Deck struct {
	Slides [][]Shape

	// Layout and Master placeholders shared by every slide.
	Layout []Shape
	Master []Shape
}

// Write writes the deck to path.
func Write(tb testing.TB, path string, deck Deck) {
	tb.Helper()
	if err := os.WriteFile(path, Bytes(tb, deck), 0644); err != nil {
		tb.Fatalf("writing deck: %v", err)
	}
}

// WriteSlide writes a single-slide deck to path.
func WriteSlide(tb testing.TB, path string, shapes ...Shape) {
	tb.Helper()
	Write(tb, path, Deck{Slides: [][]Shape{shapes}})
}

// Bytes returns the zipped package.
func Bytes(tb testing.TB, deck Deck) []byte {
	tb.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	add := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			tb.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			tb.Fatalf("writing %s: %v", name, err)
		}
	}

	add("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)

	var ids, presRels strings.Builder
	for i, shapes := range deck.Slides {
		n := i + 1
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 255+n, n)
		fmt.Fprintf(&presRels, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, n, relSlide, n)
		add(fmt.Sprintf("ppt/slides/slide%d.xml", n), part("p:sld", shapes))
		add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n),
			rels(fmt.Sprintf(`<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relLayout)))
	}

	add("ppt/presentation.xml", fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<p:presentation xmlns:p="%s" xmlns:a="%s" xmlns:r="%s"><p:sldIdLst>%s</p:sldIdLst>`+
			`<p:sldSz cx="12192000" cy="6858000"/></p:presentation>`, nsP, nsA, nsR, ids.String()))
	add("ppt/_rels/presentation.xml.rels", rels(presRels.String()))

	add("ppt/slideLayouts/slideLayout1.xml", part("p:sldLayout", deck.Layout))
	add("ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		rels(fmt.Sprintf(`<Relationship Id="rId1" Type="%s" Target="../slideMasters/slideMaster1.xml"/>`, relMaster)))
	add("ppt/slideMasters/slideMaster1.xml", part("p:sldMaster", deck.Master))

	if err := zw.Close(); err != nil {
		tb.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func rels(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		body + `</Relationships>`
}

func part(root string, shapes []Shape) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><%s xmlns:p="%s" xmlns:a="%s" xmlns:r="%s">`, root, nsP, nsA, nsR)
	sb.WriteString(`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	for i, s := range shapes {
		writeShape(&sb, i+2, s)
	}
	fmt.Fprintf(&sb, `</p:spTree></p:cSld></%s>`, root)
	return sb.String()
}

func writeShape(sb *strings.Builder, id int, s Shape) {
	tag, nv := "p:sp", "p:nvSpPr"
	if s.Picture {
		tag, nv = "p:pic", "p:nvPicPr"
	}

	fmt.Fprintf(sb, `<%s><%s><p:cNvPr id="%d" name="%s"/><p:nvPr>`, tag, nv, id, escape(s.Name))
	if ph := s.Placeholder; ph != nil {
		sb.WriteString(`<p:ph`)
		if ph.Type != "" {
			fmt.Fprintf(sb, ` type="%s"`, ph.Type)
		}
		fmt.Fprintf(sb, ` idx="%d"/>`, ph.Idx)
	}
	fmt.Fprintf(sb, `</p:nvPr></%s><p:spPr>`, nv)
	if !s.NoPosition {
		fmt.Fprintf(sb, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="914400" cy="457200"/></a:xfrm>`, s.X, s.Y)
	}
	sb.WriteString(`</p:spPr>`)
	if !s.NoText && !s.Picture {
		sb.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
		for _, line := range strings.Split(s.Text, "\n") {
			fmt.Fprintf(sb, `<a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p>`, escape(line))
		}
		sb.WriteString(`</p:txBody>`)
	}
	fmt.Fprintf(sb, `</%s>`, tag)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
