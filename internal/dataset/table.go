package dataset

// Table is an immutable header-indexed view of one loaded CSV table.
// Rows may be shorter than the header when the source file carried
// ragged records; Value returns an empty string for those cells.
type Table struct {
	name    string
	headers []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates a table from a header row and data rows.
func NewTable(name string, headers []string, rows [][]string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	return &Table{
		name:    name,
		headers: headers,
		index:   index,
		rows:    rows,
	}
}

// Name returns the logical table name (e.g. "results").
func (t *Table) Name() string {
	return t.name
}

// Headers returns the header row in file order.
func (t *Table) Headers() []string {
	return t.headers
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Value returns the cell at the given row for the named column.
// Unknown columns and cells beyond a short row yield an empty string.
func (t *Table) Value(row int, column string) string {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	r := t.rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}
