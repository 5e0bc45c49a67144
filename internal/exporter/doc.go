// Package exporter serializes the computed result tables.
//
// CSVWriter writes one comma-delimited file per result table with a
// header row and no index column, overwriting unconditionally; each file
// is opened, written and closed before the next. WorkbookWriter
// optionally bundles all result tables into a single Excel workbook for
// dashboard imports.
package exporter
