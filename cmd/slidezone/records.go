package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/slidezone"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	if deps.Records == nil {
		err := slidezone.Errorf(slidezone.ECONFIG, "no database configured")
		fmt.Fprintln(deps.Stderr, "error: no database configured. Set --db or SLIDEZONE_DB.")
		return err
	}

	if c.Delete {
		return c.delete(deps)
	}

	var records []*slidezone.StoredRecord
	if c.File != "" {
		r, err := deps.Records.FindRecordByFileName(deps.Ctx, c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
			return err
		}
		records = []*slidezone.StoredRecord{r}
	} else {
		var err error
		records, err = deps.Records.FindRecords(deps.Ctx, slidezone.RecordFilter{Limit: c.Limit, Offset: c.Offset})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
			return err
		}
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'slidezone scan --db' to store some.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.FileName, r.UpdatedAt.Local().Format(time.DateTime), r.Metadata.Title)
		if c.Full && r.Content != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", r.Content)
		}
	}

	return nil
}

func (c *RecordsCmd) delete(deps *Dependencies) error {
	if c.File == "" {
		err := slidezone.Errorf(slidezone.EINVALID, "--delete requires --file")
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}
	if err := deps.Records.DeleteRecord(deps.Ctx, c.File); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", slidezone.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted record for %s\n", c.File)
	return nil
}
