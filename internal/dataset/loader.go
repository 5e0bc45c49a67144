package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "f1cli/internal/errors"
)

// Dataset holds the five loaded source tables for one pipeline run.
// All tables are read-only after Load returns.
type Dataset struct {
	Drivers      *Table
	Races        *Table
	Results      *Table
	Qualifying   *Table
	Constructors *Table
}

// inputFiles maps logical table names to their fixed file names.
var inputFiles = []struct {
	table string
	file  string
}{
	{"drivers", "drivers.csv"},
	{"races", "races.csv"},
	{"results", "results.csv"},
	{"qualifying", "qualifying.csv"},
	{"constructors", "constructors.csv"},
}

// Load reads the five required tables from dir. A missing or unreadable
// file yields a MissingInputError naming the table; the pipeline must not
// proceed with partial inputs.
func Load(dir string) (*Dataset, error) {
	tables := make(map[string]*Table, len(inputFiles))

	for _, in := range inputFiles {
		path := filepath.Join(dir, in.file)
		table, err := readTable(in.table, path)
		if err != nil {
			return nil, err
		}
		tables[in.table] = table
		slog.Info("loaded input table",
			slog.String("table", in.table),
			slog.String("path", path),
			slog.Int("rows", table.Len()))
	}

	return &Dataset{
		Drivers:      tables["drivers"],
		Races:        tables["races"],
		Results:      tables["results"],
		Qualifying:   tables["qualifying"],
		Constructors: tables["constructors"],
	}, nil
}

// readTable reads one CSV file into a Table.
func readTable(name, path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewMissingInputError(name, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, apperrors.NewParsingError("input table "+name+" has no header row", err)
		}
		return nil, apperrors.NewParsingError("failed to read header of table "+name, err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read rows of table "+name, err)
		}
		rows = append(rows, record)
	}

	return NewTable(name, headers, rows), nil
}
