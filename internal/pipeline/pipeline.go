// Package pipeline wires the loader, the aggregations and the writers
// into one single-pass run: load all inputs, compute every result table,
// then write everything. Nothing is written before every aggregation has
// succeeded, so a failed run never leaves a partial dashboard dataset.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"f1cli/internal/config"
	"f1cli/internal/dataset"
	"f1cli/internal/exporter"
	"f1cli/internal/stats"
)

// Pipeline runs the full load, aggregate and export cycle.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes one pipeline pass. A missing input table aborts before
// any output is written; a write error aborts the remaining writes.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "loading input tables",
		slog.String("input_dir", p.cfg.Paths.InputDir))

	ds, err := dataset.Load(p.cfg.Paths.InputDir)
	if err != nil {
		return fmt.Errorf("load inputs: %w", err)
	}

	analyzer := stats.NewAnalyzer(ds, p.logger)

	tables := []exporter.ResultTable{
		exporter.AveragePositionsGainedTable(analyzer.AveragePositionsGained(ctx)),
		exporter.TotalCareerRacesTable(analyzer.TotalCareerRaces(ctx)),
		exporter.AverageFinishPositionTable(analyzer.AverageCareerFinishPosition(ctx)),
		exporter.TotalDriverPointsTable(analyzer.TotalCareerPoints(ctx)),
		exporter.TotalTeamPointsTable(analyzer.TotalTeamPoints(ctx)),
	}

	writer := exporter.NewCSVWriter(p.cfg.Paths.OutputDir, p.cfg.Export.BOMPrefix)
	for _, table := range tables {
		if err := writer.WriteTable(table.FileName, table.Headers, table.Records); err != nil {
			return fmt.Errorf("write %s: %w", table.FileName, err)
		}
	}

	if p.cfg.Export.WriteWorkbook {
		if err := exporter.NewWorkbookWriter(p.cfg.Paths.OutputDir).Write(tables); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "pipeline complete",
		slog.String("output_dir", p.cfg.Paths.OutputDir),
		slog.Int("tables", len(tables)))

	return nil
}
