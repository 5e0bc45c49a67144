package stats

import (
	"log/slog"
	"sort"

	"f1cli/internal/dataset"
)

// DriverMetric is one output row of a driver-keyed float aggregation.
// DriverName is empty when the driverId had no match in the drivers table.
type DriverMetric struct {
	DriverName string
	Value      float64
}

// DriverCount is one output row of the career race count aggregation.
type DriverCount struct {
	DriverName string
	Races      int
}

// TeamMetric is one output row of the constructor points aggregation.
type TeamMetric struct {
	TeamName string
	Points   float64
}

// Analyzer computes the dashboard aggregations over one loaded dataset.
// The dataset is borrowed read-only; analyzers share no mutable state and
// the aggregations may run in any order.
type Analyzer struct {
	ds     *dataset.Dataset
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer for the given dataset.
func NewAnalyzer(ds *dataset.Dataset, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{ds: ds, logger: logger}
}

// driverNames builds the driverId to display name mapping.
// The display name is forename and surname joined by a single space; it is
// never used as an aggregation key because two drivers may share it.
func (a *Analyzer) driverNames() map[string]string {
	drivers := a.ds.Drivers
	names := make(map[string]string, drivers.Len())
	for i := 0; i < drivers.Len(); i++ {
		id := drivers.Value(i, "driverId")
		if id == "" {
			continue
		}
		names[id] = drivers.Value(i, "forename") + " " + drivers.Value(i, "surname")
	}
	return names
}

// constructorNames builds the constructorId to team name mapping.
func (a *Analyzer) constructorNames() map[string]string {
	constructors := a.ds.Constructors
	names := make(map[string]string, constructors.Len())
	for i := 0; i < constructors.Len(); i++ {
		id := constructors.Value(i, "constructorId")
		if id == "" {
			continue
		}
		names[id] = constructors.Value(i, "name")
	}
	return names
}

// sortDriverMetrics sorts rows by value (descending when desc is set) with
// driver name ascending as the tiebreak. The sort is stable so rows built
// in key order stay deterministic even for namesake drivers.
func sortDriverMetrics(rows []DriverMetric, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			if desc {
				return rows[i].Value > rows[j].Value
			}
			return rows[i].Value < rows[j].Value
		}
		return rows[i].DriverName < rows[j].DriverName
	})
}

// sortedKeys returns the map keys in ascending order so row construction
// does not depend on map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
