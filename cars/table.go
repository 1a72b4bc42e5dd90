package cars

// Table is an ordered, column-labelled set of rows: the in-memory combined
// form of every parsed CSV. Cells are strings as read from a file, an int
// for the forced year column, or nil where a row lacks a column introduced
// by a different file.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Append concatenates a per-year frame onto t. Columns not yet present are
// added after the existing ones, in the frame's order; rows already in t are
// padded with nil for the new columns, and incoming rows are laid out in t's
// column order. Relative row order is preserved.
func (t *Table) Append(columns []string, rows [][]any) {
	colIndex := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		colIndex[col] = i
	}
	for _, col := range columns {
		if _, ok := colIndex[col]; !ok {
			colIndex[col] = len(t.Columns)
			t.Columns = append(t.Columns, col)
		}
	}

	for i, row := range t.Rows {
		if len(row) < len(t.Columns) {
			padded := make([]any, len(t.Columns))
			copy(padded, row)
			t.Rows[i] = padded
		}
	}

	for _, row := range rows {
		out := make([]any, len(t.Columns))
		for i, col := range columns {
			out[colIndex[col]] = row[i]
		}
		t.Rows = append(t.Rows, out)
	}
}
