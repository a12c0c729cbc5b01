package features

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/DerThorsten/ilastikrag/rag"
)

// Table is the assembled feature matrix: one row per canonical edge,
// one column per accumulator output. It owns copies of the edge pairs
// and columns and may outlive the graph it was computed from.
type Table struct {
	edges   []rag.Edge
	names   []string
	columns [][]float64
	byName  map[string]int
}

// NumRows returns the row count, equal to the edge count of the source
// graph.
// Complexity: O(1).
func (t *Table) NumRows() int { return len(t.edges) }

// NumCols returns the number of feature columns (the edge pair is not
// counted).
// Complexity: O(1).
func (t *Table) NumCols() int { return len(t.columns) }

// ColumnNames returns the column names in assembly order.
// Complexity: O(cols).
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Column returns a copy of the named column.
// Complexity: O(rows).
func (t *Table) Column(name string) ([]float64, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(t.columns[idx]))
	copy(out, t.columns[idx])

	return out, true
}

// Edge returns the region pair of one row.
// Complexity: O(1).
func (t *Table) Edge(row int) rag.Edge { return t.edges[row] }

// Value returns the cell at (row, col) in assembly column order.
// Complexity: O(1).
func (t *Table) Value(row, col int) float64 { return t.columns[col][row] }

// WriteCSV streams the table as CSV: header sp1,sp2,<columns...>, one
// row per edge. Floats use the shortest round-trip representation.
// Complexity: O(rows × cols).
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, 2+len(t.names))
	header = append(header, "sp1", "sp2")
	header = append(header, t.names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 2+len(t.columns))
	for i, e := range t.edges {
		row[0] = strconv.FormatUint(uint64(e.U), 10)
		row[1] = strconv.FormatUint(uint64(e.V), 10)
		for j := range t.columns {
			row[2+j] = strconv.FormatFloat(t.columns[j][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ToMarkdown renders the table as a GitHub-style markdown table with
// the same layout as WriteCSV.
// Complexity: O(rows × cols).
func (t *Table) ToMarkdown() string {
	var b strings.Builder

	b.WriteString("| sp1 | sp2 |")
	for _, name := range t.names {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(" |")
	}
	b.WriteString("\n| --- | --- |")
	for range t.names {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for i, e := range t.edges {
		b.WriteString("| ")
		b.WriteString(strconv.FormatUint(uint64(e.U), 10))
		b.WriteString(" | ")
		b.WriteString(strconv.FormatUint(uint64(e.V), 10))
		b.WriteString(" |")
		for j := range t.columns {
			b.WriteString(" ")
			b.WriteString(strconv.FormatFloat(t.columns[j][i], 'g', -1, 64))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	return b.String()
}
