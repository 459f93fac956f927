package yaml

import (
	"context"
	"io"

	"github.com/fwojciec/slidezone"
	"gopkg.in/yaml.v3"
)

// Ensure DatasetPrinter implements slidezone.DatasetWriter at compile time.
var _ slidezone.DatasetWriter = (*DatasetPrinter)(nil)

// DatasetPrinter renders a result set as a YAML document for reading on a
// terminal.
type DatasetPrinter struct {
	w io.Writer
}

// NewDatasetPrinter creates a new DatasetPrinter writing to w.
func NewDatasetPrinter(w io.Writer) *DatasetPrinter {
	return &DatasetPrinter{w: w}
}

// WriteDataset writes records as a YAML sequence.
func (p *DatasetPrinter) WriteDataset(ctx context.Context, records []*slidezone.Record) error {
	if records == nil {
		records = []*slidezone.Record{}
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
