package mock

import (
	"context"

	"github.com/fwojciec/slidezone"
)

var _ slidezone.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of slidezone.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, records []*slidezone.Record) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, records []*slidezone.Record) error {
	return w.WriteDatasetFn(ctx, records)
}

var _ slidezone.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of slidezone.RecordService.
type RecordService struct {
	SaveRecordFn           func(ctx context.Context, record *slidezone.Record) (bool, error)
	FindRecordByFileNameFn func(ctx context.Context, fileName string) (*slidezone.StoredRecord, error)
	FindRecordsFn          func(ctx context.Context, filter slidezone.RecordFilter) ([]*slidezone.StoredRecord, error)
	DeleteRecordFn         func(ctx context.Context, fileName string) error
}

func (s *RecordService) SaveRecord(ctx context.Context, record *slidezone.Record) (bool, error) {
	return s.SaveRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByFileName(ctx context.Context, fileName string) (*slidezone.StoredRecord, error) {
	return s.FindRecordByFileNameFn(ctx, fileName)
}

func (s *RecordService) FindRecords(ctx context.Context, filter slidezone.RecordFilter) ([]*slidezone.StoredRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, fileName string) error {
	return s.DeleteRecordFn(ctx, fileName)
}
