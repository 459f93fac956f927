package main

import (
	"fmt"

	"github.com/fwojciec/slidezone"
)

// Run executes the dump command.
func (c *DumpCmd) Run(deps *Dependencies) error {
	scanner := *deps.Scanner
	scanner.Formatter = slidezone.RawContentFormatter{}

	result, err := scanner.Run(deps.Ctx, deps.Folder, deps.ZonesPath, reportFailures(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}

	return deps.Printer.WriteDataset(deps.Ctx, result.Records)
}
