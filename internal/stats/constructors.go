package stats

import (
	"context"
	"log/slog"
	"sort"

	"f1cli/internal/dataset"
)

// TotalTeamPoints sums points per constructor across all result rows.
// Non-numeric points contribute zero. Team names resolve through a left
// join against the constructors table; an unknown constructorId keeps its
// row with an empty name. Sorted by points descending, name ascending on
// ties.
func (a *Analyzer) TotalTeamPoints(ctx context.Context) []TeamMetric {
	results := a.ds.Results

	sums := make(map[string]float64)
	for i := 0; i < results.Len(); i++ {
		constructorID := results.Value(i, "constructorId")
		points, ok := dataset.ParseNumber(results.Value(i, "points"))
		if !ok {
			points = 0
		}
		sums[constructorID] += points
	}

	names := a.constructorNames()
	rows := make([]TeamMetric, 0, len(sums))
	for _, constructorID := range sortedKeys(sums) {
		rows = append(rows, TeamMetric{
			TeamName: names[constructorID],
			Points:   sums[constructorID],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].TeamName < rows[j].TeamName
	})

	a.logger.InfoContext(ctx, "computed total team points",
		slog.Int("constructors", len(rows)))

	return rows
}
