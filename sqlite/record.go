package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/slidezone"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ slidezone.RecordService = (*RecordService)(nil)

// RecordService implements slidezone.RecordService using SQLite.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// encodeContent returns the stored form of record content. Joined content
// is stored as is; anything else is stored as JSON.
func encodeContent(content any) (string, error) {
	switch c := content.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	}
	b, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to encode content: %w", err)
	}
	return string(b), nil
}

// hashRecord computes the xxHash of the metadata and content as a hex string.
func hashRecord(m slidezone.Metadata, content string) string {
	d := xxhash.New()
	for _, field := range []string{m.LastModified, m.Email, m.Phone, m.Location, m.Title, content} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// SaveRecord inserts the record or updates the row with the same file name.
// Rows whose hash is unchanged are left alone.
func (s *RecordService) SaveRecord(ctx context.Context, record *slidezone.Record) (bool, error) {
	if err := record.Validate(); err != nil {
		return false, err
	}

	content, err := encodeContent(record.Content)
	if err != nil {
		return false, err
	}
	hash := hashRecord(record.Metadata, content)
	updatedAt := s.now().UTC().Format(time.RFC3339)
	m := record.Metadata

	var id, storedHash string
	err = s.db.QueryRowContext(ctx,
		"SELECT id, content_hash FROM records WHERE file_name = ?", m.FileName,
	).Scan(&id, &storedHash)

	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (id, file_name, last_modified, email, phone, location, title, content, content_hash, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), m.FileName, m.LastModified, m.Email, m.Phone, m.Location, m.Title,
			content, hash, updatedAt)
		if err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, err
	case storedHash == hash:
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE records
		SET last_modified = ?, email = ?, phone = ?, location = ?, title = ?, content = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, m.LastModified, m.Email, m.Phone, m.Location, m.Title, content, hash, updatedAt, id)
	if err != nil {
		return false, err
	}
	return true, nil
}

const selectRecords = `SELECT id, file_name, last_modified, email, phone, location, title, content, content_hash, updated_at FROM records`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*slidezone.StoredRecord, error) {
	var r slidezone.StoredRecord
	var updatedAt string

	if err := row.Scan(&r.ID, &r.FileName, &r.Metadata.LastModified, &r.Metadata.Email,
		&r.Metadata.Phone, &r.Metadata.Location, &r.Metadata.Title,
		&r.Content, &r.ContentHash, &updatedAt); err != nil {
		return nil, err
	}
	r.Metadata.FileName = r.FileName

	var err error
	if r.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &r, nil
}

// FindRecordByFileName retrieves the record for a source file.
func (s *RecordService) FindRecordByFileName(ctx context.Context, fileName string) (*slidezone.StoredRecord, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectRecords+" WHERE file_name = ?", fileName))
	if err == sql.ErrNoRows {
		return nil, slidezone.Errorf(slidezone.ENOTFOUND, "record not found: %s", fileName)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRecords retrieves records matching the filter, ordered by file name.
func (s *RecordService) FindRecords(ctx context.Context, filter slidezone.RecordFilter) ([]*slidezone.StoredRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectRecords + " WHERE 1=1")

	if filter.FileName != nil {
		query.WriteString(" AND file_name = ?")
		args = append(args, *filter.FileName)
	}

	query.WriteString(" ORDER BY file_name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*slidezone.StoredRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes the record for a source file.
func (s *RecordService) DeleteRecord(ctx context.Context, fileName string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE file_name = ?", fileName)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return slidezone.Errorf(slidezone.ENOTFOUND, "record not found: %s", fileName)
	}

	return nil
}
