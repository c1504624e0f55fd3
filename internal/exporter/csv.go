package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"rosternorm/pkg/contracts/domain"
)

// CSVWriter serializes import records to the delimited-text template the
// downstream system ingests.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer. A nil logger falls back to the
// default slog logger.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger.With(slog.String("component", "csv_writer"))}
}

// WriteImport streams the exact import header row followed by the records,
// UTF-8 encoded.
func (w *CSVWriter) WriteImport(dst io.Writer, records []domain.ImportRecord) error {
	cw := csv.NewWriter(dst)
	if err := cw.Write(domain.ImportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteImportFile writes an import CSV file, prefixed with a UTF-8 BOM so
// Excel opens the Arabic name column correctly.
func (w *CSVWriter) WriteImportFile(path string, records []domain.ImportRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	if err := w.WriteImport(file, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w.logger.Info("wrote import file",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}
