package dataset

import (
	"strconv"
	"strings"
)

// ParseNumber converts a textual field to a float64 with an explicit
// missing marker. Retirement codes ("R", "D", "W"), empty cells and the
// Ergast \N null marker are not numbers; ok is false for them and the
// caller decides whether the row is dropped or contributes zero.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == `\N` {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
