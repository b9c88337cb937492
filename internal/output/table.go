package output

import (
	"fmt"
	"io"
	"strings"
)

// Table is an ordered sequence of rows with named columns. Rows are
// rendered as tab-separated values, one line per row, in the order
// they were added. Columns are never reordered or truncated.
type Table struct {
	Header []string
	Rows   [][]string
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.Rows = append(t.Rows, cols)
}

// Write renders the table to w. When withHeader is set, a header line
// naming the columns precedes the rows.
func (t *Table) Write(w io.Writer, withHeader bool) error {
	if withHeader {
		if _, err := fmt.Fprintln(w, strings.Join(t.Header, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
