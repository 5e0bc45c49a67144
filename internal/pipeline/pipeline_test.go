package pipeline

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"f1cli/internal/config"
	"f1cli/internal/exporter"
)

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

// writeScenario writes the single-driver end-to-end fixture: Verstappen
// qualifies first, finishes third, scores 15 points for Red Bull.
func writeScenario(t *testing.T, dir string) {
	t.Helper()
	writeInput(t, dir, "drivers.csv", "driverId,forename,surname\n1,Max,Verstappen\n")
	writeInput(t, dir, "races.csv", "raceId\n10\n")
	writeInput(t, dir, "results.csv", "raceId,driverId,constructorId,positionOrder,points\n10,1,5,3,15\n")
	writeInput(t, dir, "qualifying.csv", "raceId,driverId,position\n10,1,1\n")
	writeInput(t, dir, "constructors.csv", "constructorId,name\n5,Red Bull\n")
}

func testConfig(inputDir, outputDir string) *config.Config {
	cfg := config.Default()
	cfg.Paths.InputDir = inputDir
	cfg.Paths.OutputDir = outputDir
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun_EndToEnd(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "processed_data")
	writeScenario(t, inputDir)

	err := New(testConfig(inputDir, outputDir), nil).Run(context.Background())
	require.NoError(t, err)

	gained := readCSV(t, filepath.Join(outputDir, exporter.AveragePositionsGainedFile))
	require.Len(t, gained, 2)
	assert.Equal(t, []string{"driverName", "AveragePositionsGained"}, gained[0])
	assert.Equal(t, []string{"Max Verstappen", "-2"}, gained[1])

	teams := readCSV(t, filepath.Join(outputDir, exporter.TotalTeamPointsFile))
	require.Len(t, teams, 2)
	assert.Equal(t, []string{"TeamName", "TotalTeamPoints"}, teams[0])
	assert.Equal(t, []string{"Red Bull", "15"}, teams[1])

	races := readCSV(t, filepath.Join(outputDir, exporter.TotalCareerRacesFile))
	assert.Equal(t, []string{"Max Verstappen", "1"}, races[1])

	finish := readCSV(t, filepath.Join(outputDir, exporter.AverageFinishPositionFile))
	assert.Equal(t, []string{"Max Verstappen", "3"}, finish[1])

	points := readCSV(t, filepath.Join(outputDir, exporter.TotalDriverPointsFile))
	assert.Equal(t, []string{"Max Verstappen", "15"}, points[1])

	// Workbook export is off by default.
	_, err = os.Stat(filepath.Join(outputDir, exporter.WorkbookFile))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "processed_data")
	writeScenario(t, inputDir)
	require.NoError(t, os.Remove(filepath.Join(inputDir, "qualifying.csv")))

	err := New(testConfig(inputDir, outputDir), nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qualifying")

	// The output directory must not even exist: nothing was written.
	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_Idempotent(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "processed_data")
	writeScenario(t, inputDir)
	cfg := testConfig(inputDir, outputDir)

	require.NoError(t, New(cfg, nil).Run(context.Background()))
	first := map[string][]byte{}
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(outputDir, e.Name()))
		require.NoError(t, err)
		first[e.Name()] = data
	}
	require.Len(t, first, 5)

	require.NoError(t, New(cfg, nil).Run(context.Background()))
	for name, before := range first {
		after, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		assert.Equal(t, before, after, name)
	}
}

func TestRun_RetirementCodesHandledPerComputation(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeInput(t, inputDir, "drivers.csv", "driverId,forename,surname\n1,Max,Verstappen\n")
	writeInput(t, inputDir, "races.csv", "raceId\n10\n11\n12\n")
	writeInput(t, inputDir, "results.csv",
		"raceId,driverId,constructorId,positionOrder,points\n"+
			"10,1,5,1,25\n"+
			"11,1,5,2,18\n"+
			"12,1,5,R,0\n")
	writeInput(t, inputDir, "qualifying.csv",
		"raceId,driverId,position\n10,1,2\n11,1,1\n12,1,1\n")
	writeInput(t, inputDir, "constructors.csv", "constructorId,name\n5,Red Bull\n")

	require.NoError(t, New(testConfig(inputDir, outputDir), nil).Run(context.Background()))

	// Mean finish over {1,2}; the R row affects neither numerator nor
	// denominator.
	finish := readCSV(t, filepath.Join(outputDir, exporter.AverageFinishPositionFile))
	assert.Equal(t, []string{"Max Verstappen", "1.5"}, finish[1])

	// The R race still counts toward the career race total.
	races := readCSV(t, filepath.Join(outputDir, exporter.TotalCareerRacesFile))
	assert.Equal(t, []string{"Max Verstappen", "3"}, races[1])

	// Positions gained drops only the R race: ((2-1)+(1-2))/2 = 0.
	gained := readCSV(t, filepath.Join(outputDir, exporter.AveragePositionsGainedFile))
	assert.Equal(t, []string{"Max Verstappen", "0"}, gained[1])
}

func TestRun_WorkbookExport(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeScenario(t, inputDir)

	cfg := testConfig(inputDir, outputDir)
	cfg.Export.WriteWorkbook = true
	require.NoError(t, New(cfg, nil).Run(context.Background()))

	f, err := excelize.OpenFile(filepath.Join(outputDir, exporter.WorkbookFile))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 5)
}
