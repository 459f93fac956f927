package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/slidezone"
)

// Run executes the shapes command. Zone names are shown when the zone
// configuration loads; otherwise only positions are listed.
func (c *ShapesCmd) Run(deps *Dependencies) error {
	zones, err := deps.Zones.LoadZones(deps.ZonesPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s; zones not shown\n", slidezone.ErrorMessage(err))
		zones = nil
	}

	deck, err := deps.Decks.OpenDeck(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}
	defer deck.Close()

	if deck.SlideCount() == 0 {
		err := slidezone.Errorf(slidezone.EEMPTY, "%s has no slides", c.File)
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}

	shapes, err := deck.Shapes(0)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tTOP\tLEFT\tZONE\tTEXT")
	for _, shape := range shapes {
		top, left, zone := "-", "-", "-"
		if shape.HasPosition {
			top = fmt.Sprint(shape.Top)
			left = fmt.Sprint(shape.Left)
			if zones != nil {
				zone = slidezone.Classify(shape, zones)
			}
		}
		text := ""
		if shape.HasText {
			text = fmt.Sprintf("%q", slidezone.Clean(shape.Text))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", shape.Name, shape.Kind, top, left, zone, text)
	}
	return w.Flush()
}
