// Package dataset loads the normalized Formula 1 CSV tables into
// header-indexed in-memory tables.
//
// The loader requires all five source tables (drivers, races, results,
// qualifying, constructors) and fails with a MissingInputError naming the
// absent table; beyond presence no validation happens here. Malformed or
// non-numeric cells are tolerated and resolved downstream through
// ParseNumber, which makes the drop-vs-zero policy explicit per
// computation instead of letting a sentinel value leak through arithmetic.
package dataset
