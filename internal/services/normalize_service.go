package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rosternorm/internal/config"
	"rosternorm/internal/exporter"
	"rosternorm/internal/extract"
	"rosternorm/internal/normalize"
	"rosternorm/pkg/contracts/domain"
)

// FileInput is one uploaded roster file.
type FileInput struct {
	Filename string
	// School labels the output group; defaults to the filename stem.
	School string
	Data   []byte
}

// TableResult is the outcome of normalizing one file.
type TableResult struct {
	Filename string                    `json:"filename"`
	School   string                    `json:"school"`
	Pattern  normalize.Pattern         `json:"section_pattern"`
	Records  []domain.NormalizedRecord `json:"records"`
	Import   []domain.ImportRecord     `json:"import"`
}

// FileError reports a per-file failure without failing the batch.
type FileError struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Message)
}

// BatchResult collects per-file outcomes and errors for one upload batch.
type BatchResult struct {
	Results []*TableResult `json:"results"`
	Errors  []FileError    `json:"errors,omitempty"`
}

// NormalizeService runs roster files through extraction, normalization and
// projection. The core transformations are pure and in-memory, so files in
// a batch are processed in parallel with no coordination beyond collecting
// results.
type NormalizeService struct {
	cfg    config.NormalizerConfig
	logger *slog.Logger
}

// NewNormalizeService creates the service with the given pipeline options.
func NewNormalizeService(cfg config.NormalizerConfig, logger *slog.Logger) *NormalizeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NormalizeService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "normalize_service")),
	}
}

// ResolveMode turns a request-level section mode into the effective one,
// falling back to the configured default for an empty value.
func (s *NormalizeService) ResolveMode(requested string) (normalize.Mode, error) {
	v := requested
	if strings.TrimSpace(v) == "" {
		v = s.cfg.SectionMode
	}
	mode, ok := normalize.ParseMode(v)
	if !ok {
		return "", fmt.Errorf("invalid section mode %q", requested)
	}
	return mode, nil
}

// ProcessFile normalizes a single roster file: extract the raw table,
// resolve and clean every field, reconcile the section column, derive the
// dependent fields, and project onto the import template.
func (s *NormalizeService) ProcessFile(ctx context.Context, in FileInput, mode normalize.Mode) (*TableResult, error) {
	extractor, err := extract.ForFile(in.Filename)
	if err != nil {
		return nil, err
	}
	table, err := extractor.Extract(ctx, in.Data, in.Filename)
	if err != nil {
		return nil, err
	}

	records := normalize.Table(table, mode)

	result := &TableResult{
		Filename: in.Filename,
		School:   schoolName(in),
		Pattern:  resolvedPattern(records, mode),
		Records:  records,
		Import:   exporter.ProjectAll(records),
	}

	s.logger.InfoContext(ctx, "normalized roster file",
		slog.String("file", in.Filename),
		slog.String("school", result.School),
		slog.String("section_pattern", string(result.Pattern)),
		slog.Int("rows", len(records)))
	return result, nil
}

// ProcessBatch runs every file of a batch through ProcessFile with bounded
// concurrency. A file that fails is reported in Errors; it never aborts
// the rest of the batch. Result and error order follows input order.
func (s *NormalizeService) ProcessBatch(ctx context.Context, inputs []FileInput, mode normalize.Mode) *BatchResult {
	results := make([]*TableResult, len(inputs))
	errs := make([]error, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, in := range inputs {
		g.Go(func() error {
			res, err := s.ProcessFile(gctx, in, mode)
			if err != nil {
				s.logger.WarnContext(gctx, "roster file failed",
					slog.String("file", in.Filename),
					slog.String("error", err.Error()))
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	// Workers never return errors; per-file failures land in errs.
	_ = g.Wait()

	batch := &BatchResult{}
	for i := range inputs {
		if errs[i] != nil {
			batch.Errors = append(batch.Errors, FileError{
				Filename: inputs[i].Filename,
				Message:  errs[i].Error(),
			})
			continue
		}
		batch.Results = append(batch.Results, results[i])
	}
	return batch
}

// GroupBySchool consolidates batch results into one import record set per
// school, preserving row order within each school.
func (s *NormalizeService) GroupBySchool(batch *BatchResult) map[string][]domain.ImportRecord {
	grouped := make(map[string][]domain.ImportRecord)
	for _, res := range batch.Results {
		grouped[res.School] = append(grouped[res.School], res.Import...)
	}
	return grouped
}

// Schools lists the school names of a grouped result in stable order.
func Schools(grouped map[string][]domain.ImportRecord) []string {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *NormalizeService) concurrency() int {
	if s.cfg.Concurrency < 1 {
		return 1
	}
	return s.cfg.Concurrency
}

func schoolName(in FileInput) string {
	if strings.TrimSpace(in.School) != "" {
		return strings.TrimSpace(in.School)
	}
	base := filepath.Base(in.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolvedPattern reports the pattern the table's sections ended up in,
// for the response payload. Conversion already happened inside
// normalize.Table; this recomputes the classification over the converted
// values, which is stable because conversion is idempotent per pattern.
func resolvedPattern(records []domain.NormalizedRecord, mode normalize.Mode) normalize.Pattern {
	sections := make([]string, len(records))
	for i := range records {
		sections[i] = records[i].Section
	}
	return normalize.TargetPattern(sections, mode)
}
