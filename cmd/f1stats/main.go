package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"f1cli/internal/config"
	"f1cli/internal/infrastructure"
	"f1cli/internal/pipeline"
)

func main() {
	dir := flag.String("dir", "", "directory containing the F1 CSV tables (defaults to data)")
	out := flag.String("out", "", "output directory for result tables (defaults to processed_data)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags win over config; a bare positional argument is accepted as
	// the input directory for script compatibility.
	if *dir != "" {
		cfg.Paths.InputDir = *dir
	} else if flag.NArg() > 0 {
		cfg.Paths.InputDir = flag.Arg(0)
	}
	if *out != "" {
		cfg.Paths.OutputDir = *out
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting F1 statistics pipeline",
		slog.String("input_dir", cfg.Paths.InputDir),
		slog.String("output_dir", cfg.Paths.OutputDir),
		slog.Bool("write_workbook", cfg.Export.WriteWorkbook))

	if err := pipeline.New(cfg, logger).Run(context.Background()); err != nil {
		logger.Error("Pipeline failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.Info("Pipeline finished successfully")
}
