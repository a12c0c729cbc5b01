package features_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerThorsten/ilastikrag/features"
	"github.com/DerThorsten/ilastikrag/rag"
)

// smallTable assembles a one-row table with two known columns.
func smallTable(t *testing.T) *features.Table {
	t.Helper()
	r, field := twoRegionFixture(t)
	tbl, err := features.ComputeTable(r, field, []features.Accumulator{
		features.EdgeStatistics(features.Count, features.Mean),
	})
	require.NoError(t, err)

	return tbl
}

// TestTable_Accessors covers the row/column surface.
func TestTable_Accessors(t *testing.T) {
	tbl := smallTable(t)

	require.Equal(t, 1, tbl.NumRows())
	require.Equal(t, 2, tbl.NumCols())
	require.Equal(t, rag.Edge{U: 1, V: 2}, tbl.Edge(0))
	require.Equal(t, float64(2), tbl.Value(0, 0))
	require.Equal(t, float64(3), tbl.Value(0, 1))

	_, ok := tbl.Column("no_such_column")
	require.False(t, ok)
}

// TestTable_ColumnIsACopy ensures callers cannot mutate the table
// through a returned column.
func TestTable_ColumnIsACopy(t *testing.T) {
	tbl := smallTable(t)

	col, ok := tbl.Column("edge_mean")
	require.True(t, ok)
	col[0] = -1

	again, _ := tbl.Column("edge_mean")
	require.Equal(t, float64(3), again[0])
}

// TestTable_WriteCSV pins the exact CSV hand-off layout: sp1, sp2, then
// the feature columns.
func TestTable_WriteCSV(t *testing.T) {
	tbl := smallTable(t)

	var b strings.Builder
	require.NoError(t, tbl.WriteCSV(&b))
	require.Equal(t, "sp1,sp2,edge_count,edge_mean\n1,2,2,3\n", b.String())
}

// TestTable_ToMarkdown pins the markdown rendering of the same table.
func TestTable_ToMarkdown(t *testing.T) {
	tbl := smallTable(t)

	want := "| sp1 | sp2 | edge_count | edge_mean |\n" +
		"| --- | --- | --- | --- |\n" +
		"| 1 | 2 | 2 | 3 |\n"
	require.Equal(t, want, tbl.ToMarkdown())
}
