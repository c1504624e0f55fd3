package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileValidator provides the file checks shared by the CLI and the upload
// handler.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// rosterExtensions are the container formats the extractors read.
var rosterExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".docx": true,
}

// ValidateRosterFilename checks that a filename has a readable roster
// extension and is not an Office lock file.
func (v *FileValidator) ValidateRosterFilename(name string) error {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~$") {
		return fmt.Errorf("file %s is a temporary Office lock file", name)
	}
	ext := strings.ToLower(filepath.Ext(base))
	if !rosterExtensions[ext] {
		return fmt.Errorf("file %s has unsupported extension %q (expected .csv, .xlsx or .docx)", name, ext)
	}
	return nil
}

// ValidateUploadSize rejects payloads above the configured limit before
// any parsing happens.
func (v *FileValidator) ValidateUploadSize(name string, size, limit int64) error {
	if limit > 0 && size > limit {
		v.logger.Warn("upload exceeds size limit",
			slog.String("file", name),
			slog.Int64("size", size),
			slog.Int64("limit", limit))
		return fmt.Errorf("file %s is %d bytes, above the %d byte limit", name, size, limit)
	}
	return nil
}

// ValidateInputDirectory checks that the input directory exists and
// reports how many roster files it holds.
func (v *FileValidator) ValidateInputDirectory(dir string) (int, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("input directory %s does not exist", dir)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if v.ValidateRosterFilename(entry.Name()) == nil {
			count++
		}
	}
	v.logger.Info("input directory validated",
		slog.String("directory", dir),
		slog.Int("roster_files", count))
	return count, nil
}

// ValidateOutputDirectory ensures the output directory exists and is
// writable.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)
	return nil
}
