package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"hey-sweetie-print/models"
)

// utf8BOM is stripped from the start of exports saved by spreadsheet tools
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads an order export saved as CSV
type CSVSource struct {
	path      string
	delimiter rune
}

// NewCSVSource creates a CSVSource for the file at path
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{
		path:      path,
		delimiter: ',',
	}
}

// ReadRows reads the whole file
func (s *CSVSource) ReadRows(ctx context.Context) ([]models.RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := ParseCSV(ctx, f, s.delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	log.Infof("📥 Read %d rows from %s", len(rows), s.path)
	return rows, nil
}

// ParseCSV reads a header row followed by records from r.
// Quotes are handled lazily and rows may have a different number of fields.
func ParseCSV(ctx context.Context, r io.Reader, delimiter rune) ([]models.RawRow, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	if bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []models.RawRow
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", line, err)
		}

		row, ok := rowFromRecord(header, record)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
