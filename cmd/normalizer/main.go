package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"rosternorm/internal/config"
	"rosternorm/internal/exporter"
	"rosternorm/internal/infrastructure"
	"rosternorm/internal/services"
	"rosternorm/internal/validation"
)

func main() {
	inDir := flag.String("in", ".", "input directory holding roster files (.csv, .xlsx, .docx)")
	outDir := flag.String("out", "out", "output directory for per-school import CSV files")
	sections := flag.String("sections", "", "section pattern: auto, letters or numbers (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := run(cfg, logger, *inDir, *outDir, *sections); err != nil {
		logger.Error("normalizer failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, inDir, outDir, sections string) error {
	validator := validation.NewFileValidator(logger)
	count, err := validator.ValidateInputDirectory(inDir)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no roster files found in %s", inDir)
	}
	if err := validator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	service := services.NewNormalizeService(cfg.Normalizer, logger)
	mode, err := service.ResolveMode(sections)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(inDir, validator)
	if err != nil {
		return err
	}

	batch := service.ProcessBatch(context.Background(), inputs, mode)
	for _, ferr := range batch.Errors {
		logger.Warn("skipped file",
			slog.String("file", ferr.Filename),
			slog.String("reason", ferr.Message))
	}
	if len(batch.Results) == 0 {
		return fmt.Errorf("all %d files failed to process", len(inputs))
	}

	writer := exporter.NewCSVWriter(logger)
	grouped := service.GroupBySchool(batch)
	for _, school := range services.Schools(grouped) {
		path := filepath.Join(outDir, school+"_Import.csv")
		if err := writer.WriteImportFile(path, grouped[school]); err != nil {
			return fmt.Errorf("write output for %s: %w", school, err)
		}
	}

	logger.Info("normalization complete",
		slog.Int("files_processed", len(batch.Results)),
		slog.Int("files_failed", len(batch.Errors)),
		slog.Int("schools", len(grouped)))
	return nil
}

func collectInputs(dir string, validator *validation.FileValidator) ([]services.FileInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var inputs []services.FileInput
	for _, entry := range entries {
		if entry.IsDir() || validator.ValidateRosterFilename(entry.Name()) != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, services.FileInput{Filename: entry.Name(), Data: data})
	}
	return inputs, nil
}
