package mock

import (
	"github.com/fwojciec/slidezone"
)

var _ slidezone.ZoneLoader = (*ZoneLoader)(nil)

// ZoneLoader is a mock implementation of slidezone.ZoneLoader.
type ZoneLoader struct {
	LoadZonesFn func(path string) (slidezone.Zones, error)
}

func (l *ZoneLoader) LoadZones(path string) (slidezone.Zones, error) {
	return l.LoadZonesFn(path)
}
