package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "rosternorm/internal/errors"
	"rosternorm/internal/exporter"
	"rosternorm/internal/normalize"
	"rosternorm/internal/services"
	"rosternorm/internal/validation"
	"rosternorm/pkg/contracts/domain"
)

// NormalizeServiceInterface is the service surface the handler needs;
// narrowed for testability.
type NormalizeServiceInterface interface {
	ResolveMode(requested string) (normalize.Mode, error)
	ProcessBatch(ctx context.Context, inputs []services.FileInput, mode normalize.Mode) *services.BatchResult
	GroupBySchool(batch *services.BatchResult) map[string][]domain.ImportRecord
}

// RosterHandler serves the roster upload and schema endpoints.
type RosterHandler struct {
	service      NormalizeServiceInterface
	validator    *validation.FileValidator
	writer       *exporter.CSVWriter
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxUpload    int64
}

// NewRosterHandler creates the handler.
func NewRosterHandler(service NormalizeServiceInterface, maxUpload int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *RosterHandler {
	return &RosterHandler{
		service:      service,
		validator:    validation.NewFileValidator(logger),
		writer:       exporter.NewCSVWriter(logger),
		logger:       logger.With(slog.String("component", "roster_handler")),
		errorHandler: errorHandler,
		maxUpload:    maxUpload,
	}
}

// Routes returns the roster routes.
func (h *RosterHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/normalize", h.Normalize)
	r.Get("/schema/fields", h.SchemaFields)
	return r
}

// Normalize handles POST /api/normalize: one or more uploaded roster
// files, an optional "sections" mode field and an optional "school" label.
// The default JSON response reports per-file results and errors;
// ?format=csv streams the consolidated import CSV instead.
func (h *RosterHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooBig)
		return
	}
	defer r.MultipartForm.RemoveAll()

	mode, err := h.service.ResolveMode(r.FormValue("sections"))
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("sections", err.Error()))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrNoFiles)
		return
	}

	inputs, err := h.readUploads(files, r.FormValue("school"))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	batch := h.service.ProcessBatch(ctx, inputs, mode)
	h.logger.InfoContext(ctx, "processed upload batch",
		slog.Int("files", len(inputs)),
		slog.Int("succeeded", len(batch.Results)),
		slog.Int("failed", len(batch.Errors)))

	if r.URL.Query().Get("format") == "csv" {
		h.respondCSV(w, r, batch)
		return
	}
	render.JSON(w, r, batch)
}

// readUploads drains the multipart file headers into service inputs,
// validating name and size up front.
func (h *RosterHandler) readUploads(files []*multipart.FileHeader, school string) ([]services.FileInput, error) {
	inputs := make([]services.FileInput, 0, len(files))
	for _, fh := range files {
		if err := h.validator.ValidateRosterFilename(fh.Filename); err != nil {
			return nil, apierrors.ErrValidation("files", err.Error())
		}
		if err := h.validator.ValidateUploadSize(fh.Filename, fh.Size, h.maxUpload); err != nil {
			return nil, apierrors.ErrPayloadTooBig
		}
		file, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		inputs = append(inputs, services.FileInput{
			Filename: fh.Filename,
			School:   school,
			Data:     data,
		})
	}
	return inputs, nil
}

// respondCSV streams every successfully normalized record as one import
// CSV attachment, BOM-prefixed for Excel.
func (h *RosterHandler) respondCSV(w http.ResponseWriter, r *http.Request, batch *services.BatchResult) {
	var records []domain.ImportRecord
	for _, res := range batch.Results {
		records = append(records, res.Import...)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="roster_import.csv"`)
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return
	}
	if err := h.writer.WriteImport(w, records); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream CSV",
			slog.String("error", err.Error()))
	}
}

// SchemaFields handles GET /api/schema/fields: the import template columns
// and the header synonyms the resolver understands.
func (h *RosterHandler) SchemaFields(w http.ResponseWriter, r *http.Request) {
	synonyms := normalize.Synonyms()
	byField := make(map[string][]string)
	for syn, field := range synonyms {
		byField[string(field)] = append(byField[string(field)], syn)
	}
	for _, syns := range byField {
		sort.Strings(syns)
	}
	render.JSON(w, r, map[string]interface{}{
		"import_columns": domain.ImportColumns,
		"synonyms":       byField,
	})
}
