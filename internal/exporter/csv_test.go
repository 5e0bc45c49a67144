package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_WriteTable(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, false)

	err := w.WriteTable("total_career_points_teams.csv",
		[]string{"TeamName", "TotalTeamPoints"},
		[][]string{{"Red Bull", "15"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "total_career_points_teams.csv"))
	require.NoError(t, err)
	assert.Equal(t, "TeamName,TotalTeamPoints\nRed Bull,15\n", string(data))
}

func TestCSVWriter_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "processed_data")
	w := NewCSVWriter(dir, false)

	err := w.WriteTable("total_career_races.csv",
		[]string{"driverName", "TotalCareerRaces"}, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "total_career_races.csv"))
	assert.NoError(t, err)
}

func TestCSVWriter_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "average_positions_gained.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	w := NewCSVWriter(dir, false)
	err := w.WriteTable("average_positions_gained.csv",
		[]string{"driverName", "AveragePositionsGained"},
		[][]string{{"Max Verstappen", "-2"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "driverName,AveragePositionsGained\nMax Verstappen,-2\n", string(data))
}

func TestCSVWriter_Idempotent(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, false)
	headers := []string{"driverName", "TotalCareerPoints"}
	records := [][]string{{"Max Verstappen", "43.5"}, {"Lewis Hamilton", "18"}}

	require.NoError(t, w.WriteTable("total_career_points_drivers.csv", headers, records))
	first, err := os.ReadFile(filepath.Join(dir, "total_career_points_drivers.csv"))
	require.NoError(t, err)

	require.NoError(t, w.WriteTable("total_career_points_drivers.csv", headers, records))
	second, err := os.ReadFile(filepath.Join(dir, "total_career_points_drivers.csv"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVWriter_BOMPrefix(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, true)

	require.NoError(t, w.WriteTable("total_career_races.csv",
		[]string{"driverName", "TotalCareerRaces"}, nil))

	data, err := os.ReadFile(filepath.Join(dir, "total_career_races.csv"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestCSVWriter_QuotesFieldsWithCommas(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, false)

	require.NoError(t, w.WriteTable("total_career_points_teams.csv",
		[]string{"TeamName", "TotalTeamPoints"},
		[][]string{{"Benetton, Ford", "12"}}))

	data, err := os.ReadFile(filepath.Join(dir, "total_career_points_teams.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Benetton, Ford",12`)
}
