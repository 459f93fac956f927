// Package yaml provides YAML encodings of slidezone types.
package yaml

import (
	"fmt"

	"github.com/fwojciec/slidezone"
	"gopkg.in/yaml.v3"
)

// DecodeZones decodes a zone configuration mapping such as
//
//	header:
//	  top: [0, 100]
//	sidebar:
//	  left: [0, 50]
//
// preserving the mapping order.
func DecodeZones(data []byte) (slidezone.Zones, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty zone configuration")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected mapping of zones", root.Line)
	}

	zones := slidezone.Zones{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var raw struct {
			Top  []*float64 `yaml:"top"`
			Left []*float64 `yaml:"left"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("zone %q: %w", key.Value, err)
		}

		zone := slidezone.Zone{Name: key.Value}
		var err error
		if raw.Top != nil {
			if zone.Top, err = slidezone.NewBounds(raw.Top); err != nil {
				return nil, fmt.Errorf("zone %q top: %w", key.Value, err)
			}
		}
		if raw.Left != nil {
			if zone.Left, err = slidezone.NewBounds(raw.Left); err != nil {
				return nil, fmt.Errorf("zone %q left: %w", key.Value, err)
			}
		}
		zones = append(zones, zone)
	}

	return zones, nil
}
