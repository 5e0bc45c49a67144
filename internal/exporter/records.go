package exporter

import (
	"f1cli/internal/stats"
)

// ResultTable pairs the fixed output file name of one aggregation with
// its header row and formatted records.
type ResultTable struct {
	FileName string
	Headers  []string
	Records  [][]string
}

// AveragePositionsGainedTable formats the positions-gained aggregation.
func AveragePositionsGainedTable(rows []stats.DriverMetric) ResultTable {
	return ResultTable{
		FileName: AveragePositionsGainedFile,
		Headers:  []string{"driverName", "AveragePositionsGained"},
		Records:  driverMetricRecords(rows),
	}
}

// TotalCareerRacesTable formats the career race count aggregation.
func TotalCareerRacesTable(rows []stats.DriverCount) ResultTable {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.DriverName, formatCount(row.Races)}
	}
	return ResultTable{
		FileName: TotalCareerRacesFile,
		Headers:  []string{"driverName", "TotalCareerRaces"},
		Records:  records,
	}
}

// AverageFinishPositionTable formats the career mean finish aggregation.
func AverageFinishPositionTable(rows []stats.DriverMetric) ResultTable {
	return ResultTable{
		FileName: AverageFinishPositionFile,
		Headers:  []string{"driverName", "AverageFinishPosition"},
		Records:  driverMetricRecords(rows),
	}
}

// TotalDriverPointsTable formats the career points aggregation.
func TotalDriverPointsTable(rows []stats.DriverMetric) ResultTable {
	return ResultTable{
		FileName: TotalDriverPointsFile,
		Headers:  []string{"driverName", "TotalCareerPoints"},
		Records:  driverMetricRecords(rows),
	}
}

// TotalTeamPointsTable formats the constructor points aggregation.
func TotalTeamPointsTable(rows []stats.TeamMetric) ResultTable {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.TeamName, formatMetric(row.Points)}
	}
	return ResultTable{
		FileName: TotalTeamPointsFile,
		Headers:  []string{"TeamName", "TotalTeamPoints"},
		Records:  records,
	}
}

func driverMetricRecords(rows []stats.DriverMetric) [][]string {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.DriverName, formatMetric(row.Value)}
	}
	return records
}
