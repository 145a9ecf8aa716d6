package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"hey-sweetie-print/models"
)

// XLSXSource reads an order export saved as an Excel workbook
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource creates an XLSXSource. An empty sheet name reads the first sheet.
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

// ReadRows reads the sheet; its first row is the header
func (s *XLSXSource) ReadRows(ctx context.Context) ([]models.RawRow, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := ReadWorkbook(ctx, f, s.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	log.Infof("📥 Read %d rows from %s", len(rows), s.path)
	return rows, nil
}

// ReadWorkbook converts one sheet of an open workbook into rows
func ReadWorkbook(ctx context.Context, f *excelize.File, sheet string) ([]models.RawRow, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyFile
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	var rows []models.RawRow
	for _, record := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, ok := rowFromRecord(header, record)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
