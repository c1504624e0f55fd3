package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosternorm/pkg/contracts/domain"
)

func TestWriteImport(t *testing.T) {
	records := ProjectAll([]domain.NormalizedRecord{
		{Name: "Ali Khan", Grade: 5, Section: "A", Citizenship: "UAE National"},
	})

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(nil).WriteImport(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ImportColumns, rows[0])
	assert.Equal(t, "Ali Khan", rows[1][1])
	assert.Equal(t, "5", rows[1][3])
	assert.Equal(t, "A", rows[1][4])
}

func TestWriteImportHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(nil).WriteImport(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, strings.Join(domain.ImportColumns, ","), strings.Join(rows[0], ","))
}

func TestWriteImportFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "exporter-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	records := ProjectAll([]domain.NormalizedRecord{
		{Name: "Ali Khan", NameArabic: "علي خان", Grade: 5},
	})
	path := filepath.Join(dir, "School_Import.csv")
	require.NoError(t, NewCSVWriter(nil).WriteImportFile(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ImportColumns, rows[0])
	assert.Equal(t, "علي خان", rows[1][2])
}

func TestWriteImportFileCreatesDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "exporter-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "nested", "out", "School_Import.csv")
	require.NoError(t, NewCSVWriter(nil).WriteImportFile(path, nil))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
