package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/slidezone"
	main "github.com/fwojciec/slidezone/cmd/slidezone"
	"github.com/fwojciec/slidezone/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored records", func(t *testing.T) {
		t.Parallel()

		var gotFilter slidezone.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter slidezone.RecordFilter) ([]*slidezone.StoredRecord, error) {
				gotFilter = filter
				return []*slidezone.StoredRecord{
					{FileName: "a.pptx", Metadata: slidezone.Metadata{Title: "Engineer"}, UpdatedAt: time.Now()},
					{FileName: "b.pptx", Metadata: slidezone.Metadata{Title: "Designer"}, UpdatedAt: time.Now()},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.RecordsCmd{Limit: 5, Offset: 10}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, gotFilter.FileName)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)
		assert.Contains(t, stdout.String(), "a.pptx")
		assert.Contains(t, stdout.String(), "Designer")
	})

	t.Run("looks up a single record by file name", func(t *testing.T) {
		t.Parallel()

		var gotName string
		records := &mock.RecordService{
			FindRecordByFileNameFn: func(_ context.Context, fileName string) (*slidezone.StoredRecord, error) {
				gotName = fileName
				return &slidezone.StoredRecord{
					FileName:  "a.pptx",
					Metadata:  slidezone.Metadata{Title: "Engineer"},
					Content:   "profile: Go",
					UpdatedAt: time.Now(),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Records: records}

		err := (&main.RecordsCmd{File: "a.pptx", Full: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "a.pptx", gotName)
		assert.Contains(t, stdout.String(), "Engineer")
		assert.Contains(t, stdout.String(), "profile: Go")
	})

	t.Run("reports unknown file name", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByFileNameFn: func(_ context.Context, fileName string) (*slidezone.StoredRecord, error) {
				return nil, slidezone.Errorf(slidezone.ENOTFOUND, "record not found: %s", fileName)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Records: records}

		err := (&main.RecordsCmd{File: "missing.pptx"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, slidezone.ENOTFOUND, slidezone.ErrorCode(err))
		assert.Contains(t, stderr.String(), "missing.pptx")
	})

	t.Run("deletes the named record", func(t *testing.T) {
		t.Parallel()

		var deleted string
		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, fileName string) error {
				deleted = fileName
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Records: records}

		err := (&main.RecordsCmd{File: "a.pptx", Delete: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "a.pptx", deleted)
		assert.Contains(t, stdout.String(), "Deleted record for a.pptx")
	})

	t.Run("delete requires a file name", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Records: &mock.RecordService{}}

		err := (&main.RecordsCmd{Delete: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, slidezone.EINVALID, slidezone.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--file")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(context.Context, slidezone.RecordFilter) ([]*slidezone.StoredRecord, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Records: records}

		err := (&main.RecordsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records found")
	})

	t.Run("requires a database", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.RecordsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, slidezone.ECONFIG, slidezone.ErrorCode(err))
		assert.Contains(t, stderr.String(), "SLIDEZONE_DB")
	})

	t.Run("returns service error", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(context.Context, slidezone.RecordFilter) ([]*slidezone.StoredRecord, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Records: records}

		err := (&main.RecordsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database locked")
	})
}
