package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/slidezone"
)

// DefaultDatasetPath is the dataset file name used when none is given.
const DefaultDatasetPath = "rag_dataset.json"

// Ensure DatasetWriter implements slidezone.DatasetWriter at compile time.
var _ slidezone.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter writes the result set as an indented JSON array. The file
// is written next to its destination under a .tmp name and renamed into
// place, so a failed run never leaves a truncated dataset behind.
type DatasetWriter struct {
	path string
}

// NewDatasetWriter creates a new DatasetWriter targeting path.
func NewDatasetWriter(path string) *DatasetWriter {
	if path == "" {
		path = DefaultDatasetPath
	}
	return &DatasetWriter{path: path}
}

// Path returns the destination file path.
func (w *DatasetWriter) Path() string {
	return w.path
}

func (w *DatasetWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteDataset encodes records and atomically replaces the dataset file.
func (w *DatasetWriter) WriteDataset(ctx context.Context, records []*slidezone.Record) error {
	data, err := EncodeDataset(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(w.tempPath(), data, 0644); err != nil {
		return err
	}
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}
	return nil
}

// EncodeDataset returns the JSON encoding of records: UTF-8, four-space
// indentation, no HTML escaping.
func EncodeDataset(records []*slidezone.Record) ([]byte, error) {
	if records == nil {
		records = []*slidezone.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
