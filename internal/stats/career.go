package stats

import (
	"context"
	"log/slog"
	"sort"

	"f1cli/internal/dataset"
)

// TotalCareerRaces counts distinct races per driver across all result
// rows, regardless of finish position validity. Sorted by count
// descending, driver name ascending on ties.
func (a *Analyzer) TotalCareerRaces(ctx context.Context) []DriverCount {
	results := a.ds.Results

	raceSets := make(map[string]map[string]struct{})
	for i := 0; i < results.Len(); i++ {
		driverID := results.Value(i, "driverId")
		raceID := results.Value(i, "raceId")
		set, ok := raceSets[driverID]
		if !ok {
			set = make(map[string]struct{})
			raceSets[driverID] = set
		}
		set[raceID] = struct{}{}
	}

	names := a.driverNames()
	rows := make([]DriverCount, 0, len(raceSets))
	for _, driverID := range sortedKeys(raceSets) {
		rows = append(rows, DriverCount{
			DriverName: names[driverID],
			Races:      len(raceSets[driverID]),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Races != rows[j].Races {
			return rows[i].Races > rows[j].Races
		}
		return rows[i].DriverName < rows[j].DriverName
	})

	a.logger.InfoContext(ctx, "computed total career races",
		slog.Int("drivers", len(rows)))

	return rows
}

// AverageCareerFinishPosition computes the mean finish position per
// driver over result rows whose positionOrder coerces to a number;
// retirement codes drop the row from both numerator and denominator.
// Sorted ascending, lower mean position first.
func (a *Analyzer) AverageCareerFinishPosition(ctx context.Context) []DriverMetric {
	results := a.ds.Results

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 0; i < results.Len(); i++ {
		pos, ok := dataset.ParseNumber(results.Value(i, "positionOrder"))
		if !ok {
			continue
		}
		driverID := results.Value(i, "driverId")
		sums[driverID] += pos
		counts[driverID]++
	}

	names := a.driverNames()
	rows := make([]DriverMetric, 0, len(counts))
	for _, driverID := range sortedKeys(counts) {
		rows = append(rows, DriverMetric{
			DriverName: names[driverID],
			Value:      sums[driverID] / float64(counts[driverID]),
		})
	}
	sortDriverMetrics(rows, false)

	a.logger.InfoContext(ctx, "computed average career finish position",
		slog.Int("drivers", len(rows)))

	return rows
}

// TotalCareerPoints sums points per driver. Non-numeric points contribute
// zero to the sum but still materialize the driver's row, matching a
// dataframe sum over an all-missing group. Sorted descending.
func (a *Analyzer) TotalCareerPoints(ctx context.Context) []DriverMetric {
	results := a.ds.Results

	sums := make(map[string]float64)
	for i := 0; i < results.Len(); i++ {
		driverID := results.Value(i, "driverId")
		points, ok := dataset.ParseNumber(results.Value(i, "points"))
		if !ok {
			points = 0
		}
		sums[driverID] += points
	}

	names := a.driverNames()
	rows := make([]DriverMetric, 0, len(sums))
	for _, driverID := range sortedKeys(sums) {
		rows = append(rows, DriverMetric{
			DriverName: names[driverID],
			Value:      sums[driverID],
		})
	}
	sortDriverMetrics(rows, true)

	a.logger.InfoContext(ctx, "computed total career points",
		slog.Int("drivers", len(rows)))

	return rows
}
