// Package scan provides folder scanning orchestration. It coordinates zone
// loading, slide parsing, and record assembly for every presentation in a
// directory, isolating per-file failures.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/slidezone"
)

// Extension is the file extension of scanned documents, compared
// case-insensitively.
const Extension = ".pptx"

// LockFilePrefix marks editor lock files for currently open documents.
const LockFilePrefix = "~$"

// Scanner turns a folder of presentations into a result set.
type Scanner struct {
	Zones     slidezone.ZoneLoader
	Parser    slidezone.SlideParser
	Formatter slidezone.ContentFormatter
}

// Result holds the outcome of a scan. Records follow directory listing
// order; every candidate file appears in exactly one of the two slices.
type Result struct {
	Records  []*slidezone.Record
	Failures []*Failure
}

// Failure records a file excluded from the result set.
type Failure struct {
	FileName string
	Err      error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.FileName, f.Err)
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	FileName  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// IsCandidate reports whether a directory entry name should be scanned.
func IsCandidate(name string) bool {
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		return false
	}
	return !strings.HasPrefix(name, LockFilePrefix)
}

// Run loads the zone configuration at zonesPath and scans folder with it.
// A configuration error aborts the run before any file is opened.
func (s *Scanner) Run(ctx context.Context, folder, zonesPath string, progress ProgressFunc) (*Result, error) {
	zones, err := s.Zones.LoadZones(zonesPath)
	if err != nil {
		return nil, err
	}
	return s.ScanFolder(ctx, folder, zones, progress)
}

// ScanFolder parses every candidate presentation in folder. Errors for
// individual files are collected as failures and never abort the scan; the
// returned error is non-nil only if the folder cannot be listed or ctx is
// canceled.
func (s *Scanner) ScanFolder(ctx context.Context, folder string, zones slidezone.Zones, progress ProgressFunc) (*Result, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("listing folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsCandidate(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	total := len(names)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	result := &Result{}
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := s.processFile(ctx, filepath.Join(folder, name), zones)
		if err != nil {
			result.Failures = append(result.Failures, &Failure{FileName: name, Err: err})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					FileName:  name,
					Error:     err,
				})
			}
			continue
		}

		result.Records = append(result.Records, record)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				FileName:  name,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// processFile builds the record for a single document. Panics raised while
// parsing are converted into errors so one bad file cannot end the scan.
func (s *Scanner) processFile(ctx context.Context, path string, zones slidezone.Zones) (record *slidezone.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = slidezone.Errorf(slidezone.EINTERNAL, "unexpected failure: %v", r)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	metadata := slidezone.NewMetadata(filepath.Base(path), info.ModTime())

	content, err := s.Parser.ParseSlide(ctx, path, zones)
	if err != nil {
		return nil, err
	}
	metadata.Fill(content)

	formatter := s.Formatter
	if formatter == nil {
		formatter = slidezone.JoinedContentFormatter{}
	}

	return &slidezone.Record{
		Metadata: metadata,
		Content:  formatter.FormatContent(content),
	}, nil
}
