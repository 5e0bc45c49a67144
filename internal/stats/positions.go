package stats

import (
	"context"
	"log/slog"

	"f1cli/internal/dataset"
)

// raceDriverKey identifies one driver's participation in one race.
// (raceId, driverId) uniquely identifies a result row and a qualifying row.
type raceDriverKey struct {
	raceID   string
	driverID string
}

// AveragePositionsGained computes the mean difference between qualifying
// position and race finish position per driver, positive meaning the
// driver gained ground. Only rows present in both the qualifying and the
// results table survive the join, and rows where either position fails
// numeric coercion are dropped. Rows group by display name, so the result
// is sorted by mean gain descending with name as the tiebreak.
func (a *Analyzer) AveragePositionsGained(ctx context.Context) []DriverMetric {
	results := a.ds.Results
	qualifying := a.ds.Qualifying

	finishes := make(map[raceDriverKey]string, results.Len())
	for i := 0; i < results.Len(); i++ {
		key := raceDriverKey{
			raceID:   results.Value(i, "raceId"),
			driverID: results.Value(i, "driverId"),
		}
		finishes[key] = results.Value(i, "positionOrder")
	}

	names := a.driverNames()
	sums := make(map[string]float64)
	counts := make(map[string]int)

	joined, dropped := 0, 0
	for i := 0; i < qualifying.Len(); i++ {
		key := raceDriverKey{
			raceID:   qualifying.Value(i, "raceId"),
			driverID: qualifying.Value(i, "driverId"),
		}
		finish, ok := finishes[key]
		if !ok {
			continue // inner join: qualified but no result row
		}
		joined++

		qualPos, ok := dataset.ParseNumber(qualifying.Value(i, "position"))
		if !ok {
			dropped++
			continue
		}
		finishPos, ok := dataset.ParseNumber(finish)
		if !ok {
			dropped++
			continue
		}

		name := names[key.driverID]
		sums[name] += qualPos - finishPos
		counts[name]++
	}

	rows := make([]DriverMetric, 0, len(counts))
	for _, name := range sortedKeys(counts) {
		rows = append(rows, DriverMetric{
			DriverName: name,
			Value:      sums[name] / float64(counts[name]),
		})
	}
	sortDriverMetrics(rows, true)

	a.logger.InfoContext(ctx, "computed average positions gained",
		slog.Int("joined_rows", joined),
		slog.Int("dropped_rows", dropped),
		slog.Int("drivers", len(rows)))

	return rows
}
