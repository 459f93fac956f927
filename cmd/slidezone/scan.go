package main

import (
	"fmt"

	"github.com/fwojciec/slidezone"
	"github.com/fwojciec/slidezone/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	scanner := *deps.Scanner
	scanner.Formatter = slidezone.JoinedContentFormatter{}

	result, err := scanner.Run(deps.Ctx, deps.Folder, deps.ZonesPath, reportFailures(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}

	if err := deps.Dataset.WriteDataset(deps.Ctx, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing dataset: %s\n", slidezone.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s", len(result.Records), c.Output)
	if n := len(result.Failures); n > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", n)
	}
	fmt.Fprintln(deps.Stdout)

	if deps.Records == nil {
		return nil
	}

	saved := 0
	for _, record := range result.Records {
		written, err := deps.Records.SaveRecord(deps.Ctx, record)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", record.Metadata.FileName, slidezone.ErrorMessage(err))
			return err
		}
		if written {
			saved++
		}
	}
	fmt.Fprintf(deps.Stdout, "Stored %d changed records (%d unchanged)\n", saved, len(result.Records)-saved)

	return nil
}

// reportFailures returns a progress callback printing one line per file that
// could not be parsed.
func reportFailures(deps *Dependencies) scan.ProgressFunc {
	return func(event scan.ProgressEvent) {
		if event.Type == scan.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "Error parsing %s: %s\n", event.FileName, slidezone.ErrorMessage(event.Error))
		}
	}
}
