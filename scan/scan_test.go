package scan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/slidezone"
	"github.com/fwojciec/slidezone/etree"
	"github.com/fwojciec/slidezone/internal/pptxtest"
	"github.com/fwojciec/slidezone/mock"
	"github.com/fwojciec/slidezone/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Folder Scanning
// Every presentation in a folder becomes a record unless it fails

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

// staticParser returns the same content for every file and records the
// paths it was asked to parse.
func staticParser(content slidezone.SlideContent) (*mock.SlideParser, func() []string) {
	var mu sync.Mutex
	var paths []string
	parser := &mock.SlideParser{
		ParseSlideFn: func(_ context.Context, path string, _ slidezone.Zones) (slidezone.SlideContent, error) {
			mu.Lock()
			defer mu.Unlock()
			paths = append(paths, filepath.Base(path))
			return content, nil
		},
	}
	return parser, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return paths
	}
}

func TestIsCandidate(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"cv.pptx":          true,
		"CV.PPTX":          true,
		"cv.Pptx":          true,
		"~$cv.pptx":        false,
		"cv.ppt":           false,
		"cv.pptx.bak":      false,
		"notes.txt":        false,
		"pptx":             false,
		"archive.pptx.zip": false,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, scan.IsCandidate(name))
		})
	}
}

func TestScanner_ScanFolder(t *testing.T) {
	t.Parallel()

	t.Run("builds one record per presentation in listing order", func(t *testing.T) {
		t.Parallel()

		// Given a folder with presentations and unrelated files
		dir := t.TempDir()
		touch(t, dir, "b.pptx")
		touch(t, dir, "a.PPTX")
		touch(t, dir, "notes.txt")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pptx"), 0755))

		parser, parsed := staticParser(slidezone.SlideContent{
			"email":   {"jane@example.com"},
			"profile": {"Engineer"},
		})
		scanner := &scan.Scanner{Parser: parser}

		// When I scan it
		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		// Then each presentation yields a joined record
		require.NoError(t, err)
		require.Len(t, result.Records, 2)
		assert.Empty(t, result.Failures)
		assert.Equal(t, []string{"a.PPTX", "b.pptx"}, parsed())
		assert.Equal(t, "a.PPTX", result.Records[0].Metadata.FileName)
		assert.Equal(t, "jane@example.com", result.Records[0].Metadata.Email)
		assert.Equal(t, "profile: Engineer", result.Records[0].Content)
	})

	t.Run("stamps last modified time", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := touch(t, dir, "cv.pptx")
		mtime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
		require.NoError(t, os.Chtimes(path, mtime, mtime))

		parser, _ := staticParser(slidezone.SlideContent{})
		scanner := &scan.Scanner{Parser: parser}

		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "2024-03-01T09:30:00", result.Records[0].Metadata.LastModified)
	})

	t.Run("uses configured formatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "cv.pptx")
		content := slidezone.SlideContent{"profile": {"Engineer"}}
		parser, _ := staticParser(content)
		scanner := &scan.Scanner{Parser: parser, Formatter: slidezone.RawContentFormatter{}}

		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		require.NoError(t, err)
		assert.Equal(t, content, result.Records[0].Content)
	})

	t.Run("isolates per-file failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "a.pptx")
		touch(t, dir, "b.pptx")
		touch(t, dir, "c.pptx")
		parser := &mock.SlideParser{
			ParseSlideFn: func(_ context.Context, path string, _ slidezone.Zones) (slidezone.SlideContent, error) {
				switch filepath.Base(path) {
				case "a.pptx":
					return nil, slidezone.Errorf(slidezone.EEMPTY, "presentation has no slides")
				case "b.pptx":
					panic("broken shape tree")
				}
				return slidezone.SlideContent{}, nil
			},
		}
		scanner := &scan.Scanner{Parser: parser}

		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "c.pptx", result.Records[0].Metadata.FileName)
		require.Len(t, result.Failures, 2)
		assert.Equal(t, "a.pptx", result.Failures[0].FileName)
		assert.Equal(t, slidezone.EEMPTY, slidezone.ErrorCode(result.Failures[0]))
		assert.Equal(t, "b.pptx", result.Failures[1].FileName)
		assert.Equal(t, slidezone.EINTERNAL, slidezone.ErrorCode(result.Failures[1]))
		assert.Contains(t, slidezone.ErrorMessage(result.Failures[1]), "broken shape tree")
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "a.pptx")
		touch(t, dir, "b.pptx")
		fail := errors.New("boom")
		parser := &mock.SlideParser{
			ParseSlideFn: func(_ context.Context, path string, _ slidezone.Zones) (slidezone.SlideContent, error) {
				if filepath.Base(path) == "a.pptx" {
					return nil, fail
				}
				return slidezone.SlideContent{}, nil
			},
		}
		scanner := &scan.Scanner{Parser: parser}

		var events []scan.ProgressEvent
		_, err := scanner.ScanFolder(context.Background(), dir, testZones, func(e scan.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, scan.ProgressEvent{Type: scan.ProgressStarted, Total: 2}, events[0])
		assert.Equal(t, scan.ProgressEvent{Type: scan.ProgressFailed, Completed: 1, Total: 2, FileName: "a.pptx", Error: fail}, events[1])
		assert.Equal(t, scan.ProgressEvent{Type: scan.ProgressCompleted, Completed: 2, Total: 2, FileName: "b.pptx"}, events[2])
		assert.Equal(t, scan.ProgressEvent{Type: scan.ProgressFinished, Completed: 2, Total: 2}, events[3])
	})

	t.Run("empty folder yields empty result", func(t *testing.T) {
		t.Parallel()

		parser, parsed := staticParser(nil)
		scanner := &scan.Scanner{Parser: parser}

		result, err := scanner.ScanFolder(context.Background(), t.TempDir(), testZones, nil)

		require.NoError(t, err)
		assert.Empty(t, result.Records)
		assert.Empty(t, result.Failures)
		assert.Empty(t, parsed())
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "a.pptx")
		parser, parsed := staticParser(nil)
		scanner := &scan.Scanner{Parser: parser}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := scanner.ScanFolder(ctx, dir, testZones, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, parsed())
	})

	t.Run("returns error for missing folder", func(t *testing.T) {
		t.Parallel()

		parser, _ := staticParser(nil)
		scanner := &scan.Scanner{Parser: parser}

		_, err := scanner.ScanFolder(context.Background(), filepath.Join(t.TempDir(), "missing"), testZones, nil)

		require.Error(t, err)
	})
}

func TestScanner_Run(t *testing.T) {
	t.Parallel()

	t.Run("aborts on configuration error before opening files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "a.pptx")
		parser, parsed := staticParser(nil)
		scanner := &scan.Scanner{
			Zones: &mock.ZoneLoader{
				LoadZonesFn: func(path string) (slidezone.Zones, error) {
					return nil, slidezone.Errorf(slidezone.ECONFIG, "%s not found", path)
				},
			},
			Parser: parser,
		}

		_, err := scanner.Run(context.Background(), dir, "zones.json", nil)

		require.Error(t, err)
		assert.Equal(t, slidezone.ECONFIG, slidezone.ErrorCode(err))
		assert.Empty(t, parsed())
	})

	t.Run("passes loaded zones to the parser", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "a.pptx")
		var got slidezone.Zones
		scanner := &scan.Scanner{
			Zones: &mock.ZoneLoader{
				LoadZonesFn: func(string) (slidezone.Zones, error) { return testZones, nil },
			},
			Parser: &mock.SlideParser{
				ParseSlideFn: func(_ context.Context, _ string, zones slidezone.Zones) (slidezone.SlideContent, error) {
					got = zones
					return slidezone.SlideContent{}, nil
				},
			},
		}

		_, err := scanner.Run(context.Background(), dir, "zones.json", nil)

		require.NoError(t, err)
		assert.Equal(t, testZones, got)
	})
}

// Story: End-to-end extraction
// Real presentation files flow through the default deck reader

func TestScanner_WithPresentations(t *testing.T) {
	t.Parallel()

	t.Run("logs a corrupt file and keeps the good one", func(t *testing.T) {
		t.Parallel()

		// Given a folder with a valid CV and a file that is not a presentation
		dir := t.TempDir()
		pptxtest.WriteSlide(t, filepath.Join(dir, "good.pptx"),
			pptxtest.Shape{Name: "Title", X: 100, Y: 100, Text: "Jane Doe"},
			pptxtest.Shape{Name: "Profile", X: 100, Y: 1000000, Text: "Senior\nEngineer"},
			pptxtest.Shape{Name: "Skills", X: 5000000, Y: 1000000, Text: "Go, SQL"},
		)
		touch(t, dir, "bad.pptx")

		scanner := &scan.Scanner{Parser: scan.NewParser(etree.NewDeckOpener())}

		// When I scan it
		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		// Then the good file is extracted
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		record := result.Records[0]
		assert.Equal(t, "good.pptx", record.Metadata.FileName)
		assert.Equal(t, "Jane Doe", record.Metadata.Title)
		assert.Equal(t, "profile: Senior Engineer\nexpertise: Go, SQL", record.Content)

		// And the bad one is reported as an open failure
		require.Len(t, result.Failures, 1)
		assert.Equal(t, "bad.pptx", result.Failures[0].FileName)
		assert.Equal(t, slidezone.EOPEN, slidezone.ErrorCode(result.Failures[0]))
	})

	t.Run("never opens lock files", func(t *testing.T) {
		t.Parallel()

		// Given a CV and the lock file of an open editor
		dir := t.TempDir()
		pptxtest.WriteSlide(t, filepath.Join(dir, "cv.pptx"),
			pptxtest.Shape{Name: "Title", X: 100, Y: 100, Text: "Jane"},
		)
		touch(t, dir, "~$cv.pptx")

		var opened []string
		decks := etree.NewDeckOpener()
		opener := &mock.DeckOpener{
			OpenDeckFn: func(path string) (slidezone.Deck, error) {
				opened = append(opened, filepath.Base(path))
				return decks.OpenDeck(path)
			},
		}
		scanner := &scan.Scanner{Parser: scan.NewParser(opener)}

		// When I scan the folder
		result, err := scanner.ScanFolder(context.Background(), dir, testZones, nil)

		// Then only the CV is opened and nothing fails
		require.NoError(t, err)
		assert.Equal(t, []string{"cv.pptx"}, opened)
		assert.Len(t, result.Records, 1)
		assert.Empty(t, result.Failures)
	})
}
