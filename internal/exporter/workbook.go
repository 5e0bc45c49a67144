package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "f1cli/internal/errors"
)

// WorkbookWriter bundles all result tables into one Excel workbook, one
// sheet per table, for dashboard tools that prefer a single import.
type WorkbookWriter struct {
	outputDir string
}

// NewWorkbookWriter creates a workbook writer rooted at outputDir.
func NewWorkbookWriter(outputDir string) *WorkbookWriter {
	return &WorkbookWriter{outputDir: outputDir}
}

// Write writes the tables into WorkbookFile under the output directory,
// overwriting any existing workbook.
func (w *WorkbookWriter) Write(tables []ResultTable) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		sheet := sheetName(table.FileName)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return apperrors.NewStorageError("failed to name workbook sheet "+sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return apperrors.NewStorageError("failed to add workbook sheet "+sheet, err)
			}
		}

		if err := writeSheetRow(f, sheet, 1, table.Headers); err != nil {
			return err
		}
		for r, record := range table.Records {
			if err := writeSheetRow(f, sheet, r+2, record); err != nil {
				return err
			}
		}
	}

	fullPath := filepath.Join(w.outputDir, WorkbookFile)
	slog.Info("writing dashboard workbook",
		slog.String("path", fullPath),
		slog.Int("sheets", len(tables)))

	if err := f.SaveAs(fullPath); err != nil {
		return apperrors.NewStorageError("failed to save dashboard workbook", err)
	}
	return nil
}

// writeSheetRow writes one row of string cells starting at column A.
func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return apperrors.NewStorageError("failed to compute workbook cell", err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return apperrors.NewStorageError("failed to write workbook row", err)
	}
	return nil
}

// sheetName derives a sheet name from the CSV file name.
func sheetName(fileName string) string {
	return strings.TrimSuffix(fileName, ".csv")
}
