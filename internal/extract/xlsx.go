package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rosternorm/pkg/contracts/domain"
)

// XLSXExtractor reads spreadsheet rosters with excelize. Workbooks often
// carry cover or summary sheets next to the roster, so the sheet with the
// most rows wins, mirroring the "pick the largest candidate table" rule.
type XLSXExtractor struct{}

func NewXLSXExtractor() *XLSXExtractor {
	return &XLSXExtractor{}
}

func (e *XLSXExtractor) Extract(ctx context.Context, data []byte, source string) (*domain.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()

	var best [][]string
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(rows) > len(best) {
			best = rows
		}
	}
	if len(best) == 0 {
		return nil, ErrNoTable
	}
	return tableFromRows(source, best)
}
