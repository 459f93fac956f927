// Package fs provides file-based loading and storage for slidezone.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/slidezone"
	"github.com/fwojciec/slidezone/yaml"
)

// Ensure ZoneLoader implements slidezone.ZoneLoader at compile time.
var _ slidezone.ZoneLoader = (*ZoneLoader)(nil)

// ZoneLoader reads zone configurations from disk. Files ending in .yaml or
// .yml are decoded as YAML; everything else as JSON.
type ZoneLoader struct{}

// NewZoneLoader creates a new ZoneLoader.
func NewZoneLoader() *ZoneLoader {
	return &ZoneLoader{}
}

// LoadZones reads and validates the configuration at path.
func (l *ZoneLoader) LoadZones(path string) (slidezone.Zones, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, slidezone.Errorf(slidezone.ECONFIG, "zone configuration %s not found", path)
	} else if err != nil {
		return nil, slidezone.Errorf(slidezone.ECONFIG, "reading zone configuration %s: %v", path, err)
	}

	var zones slidezone.Zones
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		zones, err = yaml.DecodeZones(data)
	default:
		err = json.Unmarshal(data, &zones)
	}
	if err != nil {
		return nil, slidezone.Errorf(slidezone.ECONFIG, "invalid zone configuration %s: %v", path, err)
	}

	if err := zones.Validate(); err != nil {
		return nil, err
	}
	return zones, nil
}
