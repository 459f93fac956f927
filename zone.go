package slidezone

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ZoneUnknown is the zone assigned to shapes that match no configured zone.
const ZoneUnknown = "unknown"

// Bounds is an inclusive [Min, Max] range on one axis, in the same unit as
// shape positions (EMU for .pptx decks).
type Bounds struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within the bounds, inclusive.
func (b *Bounds) Contains(v int64) bool {
	f := float64(v)
	return b.Min <= f && f <= b.Max
}

// Zone is a named rectangle constraint. A nil axis is unconstrained.
type Zone struct {
	Name string
	Top  *Bounds
	Left *Bounds
}

// Contains reports whether every configured axis of the zone contains the
// shape's position.
func (z *Zone) Contains(shape Shape) bool {
	if z.Top != nil && !z.Top.Contains(shape.Top) {
		return false
	}
	if z.Left != nil && !z.Left.Contains(shape.Left) {
		return false
	}
	return true
}

// Zones is a zone configuration. Order is significant: the first zone that
// contains a shape wins.
type Zones []Zone

// Validate returns an error if the configuration declares a zone twice.
func (zs Zones) Validate() error {
	seen := make(map[string]bool, len(zs))
	for _, z := range zs {
		if seen[z.Name] {
			return Errorf(ECONFIG, "zone %q declared more than once", z.Name)
		}
		seen[z.Name] = true
	}
	return nil
}

// Names returns the zone names in configured order.
func (zs Zones) Names() []string {
	names := make([]string, 0, len(zs))
	for _, z := range zs {
		names = append(names, z.Name)
	}
	return names
}

// Classify returns the name of the first zone containing the shape, or
// ZoneUnknown when none does.
func Classify(shape Shape, zones Zones) string {
	for i := range zones {
		if zones[i].Contains(shape) {
			return zones[i].Name
		}
	}
	return ZoneUnknown
}

// UnmarshalJSON decodes a JSON object of the form
//
//	{"header": {"top": [0, 100]}, "sidebar": {"left": [0, 50]}}
//
// keeping the object's key order.
func (zs *Zones) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("zones: expected object, got %v", tok)
	}

	zones := Zones{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("zones: expected zone name, got %v", tok)
		}

		var raw struct {
			Top  json.RawMessage `json:"top"`
			Left json.RawMessage `json:"left"`
		}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("zone %q: %w", name, err)
		}

		zone := Zone{Name: name}
		if zone.Top, err = parseJSONBounds(raw.Top); err != nil {
			return fmt.Errorf("zone %q top: %w", name, err)
		}
		if zone.Left, err = parseJSONBounds(raw.Left); err != nil {
			return fmt.Errorf("zone %q left: %w", name, err)
		}
		zones = append(zones, zone)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*zs = zones
	return nil
}

// parseJSONBounds decodes a [min, max] pair. Missing, null, and [null, null]
// all mean unconstrained.
func parseJSONBounds(raw json.RawMessage) (*Bounds, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var pair []*float64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, err
	}
	return NewBounds(pair)
}

// NewBounds builds Bounds from a decoded [min, max] pair. A nil min leaves the
// axis unconstrained whatever the max is. A nil max with a min set is an error.
func NewBounds(pair []*float64) (*Bounds, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("expected [min, max], got %d values", len(pair))
	}
	if pair[0] == nil {
		return nil, nil
	}
	if pair[1] == nil {
		return nil, fmt.Errorf("max must be set when min is")
	}
	return &Bounds{Min: *pair[0], Max: *pair[1]}, nil
}

// ZoneLoader loads a zone configuration.
type ZoneLoader interface {
	// LoadZones reads the configuration at path.
	// Returns ECONFIG if the file is missing or malformed.
	LoadZones(path string) (Zones, error)
}
