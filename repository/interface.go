package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"hey-sweetie-print/models"
)

var (
	// ErrEmptyFile is returned when the export contains no bytes at all
	ErrEmptyFile = errors.New("file is empty")
	// ErrMissingHeader is returned when the export has no header row
	ErrMissingHeader = errors.New("missing header row")
	// ErrUnsupportedFormat is returned for file extensions no source can read
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// RowSourceInterface defines the contract for reading an order export.
// Rows are read eagerly; callers get the whole export at once.
type RowSourceInterface interface {
	ReadRows(ctx context.Context) ([]models.RawRow, error)
}

// NewRowSource picks a row source from the file extension (.csv or .xlsx)
func NewRowSource(path string) (RowSourceInterface, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", "":
		return NewCSVSource(path), nil
	case ".xlsx", ".xlsm":
		return NewXLSXSource(path, ""), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// MemorySource serves rows that are already in memory
type MemorySource struct {
	rows []models.RawRow
}

// NewMemorySource creates a MemorySource over rows
func NewMemorySource(rows []models.RawRow) *MemorySource {
	return &MemorySource{rows: rows}
}

// ReadRows returns the stored rows
func (s *MemorySource) ReadRows(ctx context.Context) ([]models.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.rows, nil
}

// Ensure sources implement RowSourceInterface
var (
	_ RowSourceInterface = (*MemorySource)(nil)
	_ RowSourceInterface = (*CSVSource)(nil)
	_ RowSourceInterface = (*XLSXSource)(nil)
)

// rowFromRecord zips a header with a record. Missing trailing cells become empty
// strings; cells beyond the header are dropped. Returns false for fully blank records.
func rowFromRecord(headers []string, record []string) (models.RawRow, bool) {
	row := make(models.RawRow, len(headers))
	hasData := false
	for i, h := range headers {
		if h == "" {
			continue
		}
		value := ""
		if i < len(record) {
			value = record[i]
		}
		if strings.TrimSpace(value) != "" {
			hasData = true
		}
		row[h] = value
	}
	return row, hasData
}
