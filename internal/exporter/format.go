package exporter

import (
	"strconv"
)

// formatMetric renders a float with the shortest decimal form that
// round-trips, so integer-valued deltas stay integers ("-2", "1.5").
func formatMetric(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatCount renders a row count.
func formatCount(n int) string {
	return strconv.Itoa(n)
}
