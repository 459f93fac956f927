package slidezone

import (
	"context"
	"time"
)

// Metadata describes the source file of a record. The contact fields are
// copied from the first text of the matching zone.
type Metadata struct {
	FileName     string `json:"file_name" yaml:"file_name"`
	LastModified string `json:"last_modified" yaml:"last_modified"`
	Email        string `json:"email" yaml:"email"`
	Phone        string `json:"phone" yaml:"phone"`
	Location     string `json:"location" yaml:"location"`
	Title        string `json:"title" yaml:"title"`
}

// NewMetadata returns metadata for a file with the given name and
// modification time.
func NewMetadata(fileName string, modTime time.Time) Metadata {
	return Metadata{
		FileName:     fileName,
		LastModified: FormatTimestamp(modTime),
	}
}

// Fill copies the contact fields from content.
func (m *Metadata) Fill(content SlideContent) {
	m.Email = content.First(ZoneEmail)
	m.Phone = content.First(ZonePhone)
	m.Location = content.First(ZoneLocation)
	m.Title = content.First(ZoneTitle)
}

// FormatTimestamp formats t as a local ISO-8601 timestamp without a zone
// offset. Microseconds are included only when non-zero.
func FormatTimestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

// Record is one entry of the output dataset. Content holds either the
// joined text (string) or the raw SlideContent, depending on the
// ContentFormatter that produced it.
type Record struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Content  any      `json:"content" yaml:"content"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Metadata.FileName == "" {
		return Errorf(EINVALID, "record file name required")
	}
	return nil
}

// DatasetWriter persists a complete result set.
type DatasetWriter interface {
	WriteDataset(ctx context.Context, records []*Record) error
}

// StoredRecord is a record persisted in a RecordService.
type StoredRecord struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	Metadata    Metadata  `json:"metadata"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	FileName *string `json:"fileName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// SaveRecord inserts the record or replaces the stored record with the
	// same file name. Reports whether anything was written; an unchanged
	// content hash skips the write.
	SaveRecord(ctx context.Context, record *Record) (bool, error)

	// FindRecordByFileName retrieves a record by its source file name.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByFileName(ctx context.Context, fileName string) (*StoredRecord, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*StoredRecord, error)

	// DeleteRecord removes the record for a file name.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, fileName string) error
}
