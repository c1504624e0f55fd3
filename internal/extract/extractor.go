package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"rosternorm/pkg/contracts/domain"
)

var (
	// ErrNoTable is returned when a readable container holds no table.
	ErrNoTable = errors.New("no table detected in file")
	// ErrUnsupportedFormat is returned for container formats the tool
	// does not read (legacy .xls, PDF, everything unknown).
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// RawTableExtractor turns the raw bytes of one container format into at
// most one raw table of string cells. Implementations pad short rows to
// the header's column count and trim longer ones, so downstream stages can
// index rows by resolved column position without bounds checks.
type RawTableExtractor interface {
	Extract(ctx context.Context, data []byte, source string) (*domain.RawTable, error)
}

// ForFile picks the extractor for a filename by extension.
func ForFile(name string) (RawTableExtractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return NewCSVExtractor(), nil
	case ".xlsx":
		return NewXLSXExtractor(), nil
	case ".docx":
		return NewDOCXExtractor(), nil
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls workbooks are not readable, save as .xlsx or .csv", ErrUnsupportedFormat)
	case ".pdf":
		return nil, fmt.Errorf("%w: PDF extraction is not implemented, export the table to .csv or .xlsx", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// SupportedExtensions lists the container formats ForFile accepts.
func SupportedExtensions() []string {
	return []string{".csv", ".xlsx", ".docx"}
}

// normalizeWidth pads short rows with empty cells and trims long rows so
// every row matches the header width.
func normalizeWidth(header []string, rows [][]string) [][]string {
	width := len(header)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		case len(row) > width:
			row = row[:width]
		}
		out = append(out, row)
	}
	return out
}

// tableFromRows builds a RawTable using the first row as header, dropping
// rows that are entirely blank.
func tableFromRows(source string, rows [][]string) (*domain.RawTable, error) {
	if len(rows) == 0 {
		return nil, ErrNoTable
	}
	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowIsBlank(row) {
			continue
		}
		body = append(body, row)
	}
	return &domain.RawTable{
		Source: source,
		Header: header,
		Rows:   normalizeWidth(header, body),
	}, nil
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
