package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "f1cli/internal/errors"
)

// Fixed output file names, one per result table.
const (
	AveragePositionsGainedFile = "average_positions_gained.csv"
	TotalCareerRacesFile       = "total_career_races.csv"
	AverageFinishPositionFile  = "average_career_finish_position.csv"
	TotalDriverPointsFile      = "total_career_points_drivers.csv"
	TotalTeamPointsFile        = "total_career_points_teams.csv"
	WorkbookFile               = "f1_dashboard.xlsx"
)

// CSVWriter writes result tables into a fixed output directory.
type CSVWriter struct {
	outputDir string
	bomPrefix bool
}

// NewCSVWriter creates a CSV writer rooted at outputDir. When bomPrefix
// is set each file starts with a UTF-8 BOM for Excel compatibility.
func NewCSVWriter(outputDir string, bomPrefix bool) *CSVWriter {
	return &CSVWriter{outputDir: outputDir, bomPrefix: bomPrefix}
}

// WriteTable writes one result table as fileName under the output
// directory, creating the directory if absent and overwriting any
// existing file of the same name.
func (w *CSVWriter) WriteTable(fileName string, headers []string, records [][]string) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	fullPath := filepath.Join(w.outputDir, fileName)
	slog.Info("writing result table",
		slog.String("path", fullPath),
		slog.Int("rows", len(records)))

	file, err := os.Create(fullPath)
	if err != nil {
		return apperrors.NewStorageError("failed to create output file "+fileName, err)
	}

	if w.bomPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			file.Close()
			return apperrors.NewStorageError("failed to write BOM to "+fileName, err)
		}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		file.Close()
		return apperrors.NewStorageError("failed to write header row of "+fileName, err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			file.Close()
			return apperrors.NewStorageError("failed to write data row of "+fileName, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return apperrors.NewStorageError("failed to flush "+fileName, err)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewStorageError("failed to close "+fileName, err)
	}
	return nil
}
