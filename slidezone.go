// Package slidezone extracts zone-classified text from presentation slides
// and assembles one cleaned record per document for RAG indexing.
//
// Each text shape on a deck's first slide is assigned to a named zone by
// testing its position against configured bounding rectangles. The cleaned
// text is grouped per zone and then shaped into a dataset record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, sqlite/, yaml/).
package slidezone
