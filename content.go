package slidezone

import (
	"context"
	"strings"
)

// Zone names read into metadata fields.
const (
	ZoneEmail    = "email"
	ZonePhone    = "phone"
	ZoneLocation = "location"
	ZoneTitle    = "title"
)

// RelevantZones are the zones joined into a record's text content, in
// output order.
var RelevantZones = []string{"projects", "profile", "industry_experience", "expertise"}

// SlideContent maps a zone name to the cleaned text of its shapes in slide
// order. Zones without shapes are absent.
type SlideContent map[string][]string

// Add appends text to the zone's sequence.
func (c SlideContent) Add(zone, text string) {
	c[zone] = append(c[zone], text)
}

// First returns the first text in zone, or "" if the zone is absent.
func (c SlideContent) First(zone string) string {
	if texts := c[zone]; len(texts) > 0 {
		return texts[0]
	}
	return ""
}

// Join concatenates the relevant zones into labeled lines of the form
// "zone: text". Zones with no non-empty text are skipped.
func Join(content SlideContent) string {
	var sb strings.Builder
	for _, zone := range RelevantZones {
		text := firstNonEmpty(content[zone])
		if text == "" {
			continue
		}
		sb.WriteString(zone)
		sb.WriteString(": ")
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}

func firstNonEmpty(texts []string) string {
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return ""
}

// SlideParser extracts zone-classified content from a document.
type SlideParser interface {
	// ParseSlide reads the first slide of the document at path.
	// Returns EOPEN if the document cannot be read, EEMPTY if it has no
	// slides, and EINVALID if a text shape has no position.
	ParseSlide(ctx context.Context, path string, zones Zones) (SlideContent, error)
}

// ContentFormatter shapes slide content into a record's content value.
type ContentFormatter interface {
	FormatContent(content SlideContent) any
}

// JoinedContentFormatter formats content as the joined text block.
type JoinedContentFormatter struct{}

// FormatContent returns Join(content).
func (JoinedContentFormatter) FormatContent(content SlideContent) any {
	return Join(content)
}

// RawContentFormatter keeps the per-zone content unchanged.
type RawContentFormatter struct{}

// FormatContent returns content itself.
func (RawContentFormatter) FormatContent(content SlideContent) any {
	return content
}
