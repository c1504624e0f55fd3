package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosternorm/internal/config"
	apierrors "rosternorm/internal/errors"
	"rosternorm/internal/services"
	"rosternorm/internal/shared/testutil"
	"rosternorm/pkg/contracts/domain"
)

const sampleCSV = "Name,DOB,Gender,Grade,Section,Nationality\n" +
	"mr. ali khan,15/03/2012,M,G5,1,Emirati\n" +
	"sara ahmed,01/09/2011,F,Grade 5,A,Egypt\n"

func newTestHandler(t *testing.T) *RosterHandler {
	t.Helper()
	logger, _ := testutil.NewLogger(t)
	svc := services.NewNormalizeService(config.NormalizerConfig{
		SectionMode:    "auto",
		MaxUploadBytes: 1 << 20,
		Concurrency:    2,
	}, logger)
	return NewRosterHandler(svc, 1<<20, logger, apierrors.NewErrorHandler(logger))
}

func multipartUpload(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, data := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestNormalizeJSON(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, nil, map[string][]byte{
		"alpha.csv": []byte(sampleCSV),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var batch services.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	require.Len(t, batch.Results, 1)
	assert.Empty(t, batch.Errors)

	res := batch.Results[0]
	assert.Equal(t, "alpha.csv", res.Filename)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Ali Khan", res.Records[0].Name)
	assert.Equal(t, "2012-03-15", res.Records[0].DateOfBirth)
	assert.Equal(t, "A", res.Records[0].Section)
	assert.Equal(t, "UAE National", res.Records[0].Citizenship)
}

func TestNormalizeCSVFormat(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, map[string]string{"school": "Alpha"}, map[string][]byte{
		"alpha.csv": []byte(sampleCSV),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize?format=csv", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "roster_import.csv")

	payload := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(domain.ImportColumns, ","), strings.TrimRight(lines[0], "\r"))
	assert.Contains(t, lines[1], "Ali Khan")
}

func TestNormalizeSectionsOverride(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, map[string]string{"sections": "numbers"}, map[string][]byte{
		"alpha.csv": []byte(sampleCSV),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var batch services.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	require.Len(t, batch.Results, 1)
	assert.Equal(t, "1", batch.Results[0].Records[0].Section)
	assert.Equal(t, "1", batch.Results[0].Records[1].Section)
}

func TestNormalizeInvalidSectionsMode(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, map[string]string{"sections": "roman"}, map[string][]byte{
		"alpha.csv": []byte(sampleCSV),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestNormalizeNoFiles(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, map[string]string{"school": "Alpha"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizeRejectsUnsupportedUploadName(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, nil, map[string][]byte{
		"roster.exe": []byte("nope"),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizeBrokenFileReportedNotFatal(t *testing.T) {
	h := newTestHandler(t)
	body, contentType := multipartUpload(t, nil, map[string][]byte{
		"alpha.csv":  []byte(sampleCSV),
		"empty.xlsx": []byte("not a workbook"),
	})

	req := httptest.NewRequest(http.MethodPost, "/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var batch services.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Len(t, batch.Results, 1)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, "empty.xlsx", batch.Errors[0].Filename)
}

func TestSchemaFields(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/schema/fields", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		ImportColumns []string            `json:"import_columns"`
		Synonyms      map[string][]string `json:"synonyms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, domain.ImportColumns, payload.ImportColumns)
	assert.Contains(t, payload.Synonyms["Student Name"], "full name")
	assert.Contains(t, payload.Synonyms["Date Of Birth"], "dob")
}

func TestHealthCheck(t *testing.T) {
	logger, _ := testutil.NewLogger(t)
	h := NewHealthHandler(logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
}
