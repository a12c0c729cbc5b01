package features_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerThorsten/ilastikrag/features"
	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// twoRegionFixture builds the smallest two-region graph with a known
// intensity field: one edge (1,2) with face values 2 and 4.
func twoRegionFixture(t *testing.T) (*rag.Rag, *volume.Field) {
	t.Helper()
	labels, err := volume.LabelsFrom2D([][]int{
		{1, 1},
		{2, 2},
	})
	require.NoError(t, err)
	field, err := volume.FieldFrom2D([][]float64{
		{0, 2},
		{4, 6},
	})
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	return r, field
}

// column fetches a column that must exist.
func column(t *testing.T, tbl *features.Table, name string) []float64 {
	t.Helper()
	col, ok := tbl.Column(name)
	require.True(t, ok, "column %q", name)

	return col
}

// TestEdgeStatistics_KnownValues pins every statistic on the two-face
// fixture: the face values are (0+4)/2 = 2 and (2+6)/2 = 4.
func TestEdgeStatistics_KnownValues(t *testing.T) {
	r, field := twoRegionFixture(t)

	tbl, err := features.ComputeTable(r, field, []features.Accumulator{
		features.EdgeStatistics(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.NumRows())

	want := map[string]float64{
		"edge_count":        2,
		"edge_sum":          6,
		"edge_minimum":      2,
		"edge_maximum":      4,
		"edge_mean":         3,
		"edge_variance":     1,
		"edge_skewness":     0,
		"edge_quantiles_10": 2.2,
		"edge_quantiles_25": 2.5,
		"edge_quantiles_50": 3,
		"edge_quantiles_75": 3.5,
		"edge_quantiles_90": 3.8,
	}
	for name, value := range want {
		require.InDelta(t, value, column(t, tbl, name)[0], 1e-9, name)
	}
	// Excess kurtosis of a symmetric two-point sample is -2.
	require.InDelta(t, -2, column(t, tbl, "edge_kurtosis")[0], 1e-9)
}

// TestRegionStatistics_KnownValues checks the sum/difference split and
// the square-root reduction of region counts in 2D.
func TestRegionStatistics_KnownValues(t *testing.T) {
	r, field := twoRegionFixture(t)

	tbl, err := features.ComputeTable(r, field, []features.Accumulator{
		features.RegionStatistics(features.Count, features.Mean),
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"sp_count_sum", "sp_count_difference",
		"sp_mean_sum", "sp_mean_difference",
	}, tbl.ColumnNames())

	// Both regions hold 2 voxels; sqrt(2) each in 2D.
	require.InDelta(t, 2*math.Sqrt2, column(t, tbl, "sp_count_sum")[0], 1e-9)
	require.InDelta(t, 0, column(t, tbl, "sp_count_difference")[0], 1e-9)

	// Region 1 mean is 1, region 2 mean is 5.
	require.InDelta(t, 6, column(t, tbl, "sp_mean_sum")[0], 1e-9)
	require.InDelta(t, 4, column(t, tbl, "sp_mean_difference")[0], 1e-9)
}

// TestRegionStatistics_CubeRootIn3D pins the ndim-th root rule on a
// 3-axis volume.
func TestRegionStatistics_CubeRootIn3D(t *testing.T) {
	labels, err := volume.LabelsFrom3D([][][]int{
		{{1, 1}, {1, 1}},
		{{2, 2}, {2, 2}},
	})
	require.NoError(t, err)
	field, err := volume.NewField(volume.Shape{2, 2, 2}, make([]float32, 8))
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	tbl, err := features.ComputeTable(r, field, []features.Accumulator{
		features.RegionStatistics(features.Count),
	})
	require.NoError(t, err)
	require.InDelta(t, 2*math.Cbrt(4), column(t, tbl, "sp_count_sum")[0], 1e-9)
}

// TestGeometry_KnownValues checks boundary_face_count and size_ratio on
// an unbalanced pair of regions. No auxiliary field is needed.
func TestGeometry_KnownValues(t *testing.T) {
	labels, err := volume.LabelsFrom2D([][]int{
		{1, 1, 1},
		{1, 2, 2},
	})
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	tbl, err := features.ComputeTable(r, nil, []features.Accumulator{
		features.Geometry(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.NumRows())
	require.Equal(t, rag.Edge{U: 1, V: 2}, tbl.Edge(0))

	// Two vertical faces plus one horizontal face.
	require.Equal(t, float64(3), column(t, tbl, "boundary_face_count")[0])
	// Region 1 has 4 voxels, region 2 has 2.
	require.InDelta(t, 0.5, column(t, tbl, "size_ratio")[0], 1e-9)
}

// TestAccumulators_MissingAux requires the value-reading accumulators
// to fail eagerly when no field is supplied.
func TestAccumulators_MissingAux(t *testing.T) {
	r, _ := twoRegionFixture(t)

	_, err := features.ComputeTable(r, nil, []features.Accumulator{
		features.EdgeStatistics(features.Mean),
	})
	require.ErrorIs(t, err, features.ErrMissingAuxiliaryData)

	_, err = features.ComputeTable(r, nil, []features.Accumulator{
		features.RegionStatistics(features.Mean),
	})
	require.ErrorIs(t, err, features.ErrMissingAuxiliaryData)
}

// probe counts Accumulate calls, to show precondition failures of other
// accumulators surface before any accumulation.
type probe struct {
	accumulated int
}

func (p *probe) Name() string                       { return "probe" }
func (p *probe) Init(*rag.Rag, *volume.Field) error { return nil }
func (p *probe) Accumulate(int, rag.Edge) error     { p.accumulated++; return nil }
func (p *probe) Finalize() ([]features.Column, error) {
	return []features.Column{{Name: "probe", Values: make([]float64, 1)}}, nil
}

// TestAccumulators_ShapeMismatch supplies a misaligned field and
// requires the failure before any accumulation happens.
func TestAccumulators_ShapeMismatch(t *testing.T) {
	r, _ := twoRegionFixture(t)
	wrong, err := volume.FieldFrom2D([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	p := &probe{}
	_, err = features.ComputeTable(r, wrong, []features.Accumulator{
		p,
		features.EdgeStatistics(features.Mean),
	})
	require.ErrorIs(t, err, volume.ErrShapeMismatch)
	require.Zero(t, p.accumulated, "accumulation must not start on a precondition failure")

	_, err = features.ComputeTable(r, wrong, []features.Accumulator{
		features.RegionStatistics(features.Mean),
	})
	require.ErrorIs(t, err, volume.ErrShapeMismatch)
}

// TestAccumulators_LabelsNotStored runs region-dependent accumulators
// against a graph restored without its label volume.
func TestAccumulators_LabelsNotStored(t *testing.T) {
	bare, err := rag.Restore(
		volume.Shape{2, 2},
		nil,
		[]rag.Edge{{U: 1, V: 2}},
		[]int{2},
		[][]rag.Face{{{Edge: 0, Offset: 0}, {Edge: 0, Offset: 1}}, {}},
		nil,
	)
	require.NoError(t, err)
	field, err := volume.FieldFrom2D([][]float64{
		{0, 0},
		{0, 0},
	})
	require.NoError(t, err)

	_, err = features.ComputeTable(bare, nil, []features.Accumulator{features.Geometry()})
	require.ErrorIs(t, err, rag.ErrLabelsNotStored)

	_, err = features.ComputeTable(bare, field, []features.Accumulator{
		features.RegionStatistics(features.Mean),
	})
	require.ErrorIs(t, err, rag.ErrLabelsNotStored)

	// Edge statistics only read faces; they still work.
	tbl, err := features.ComputeTable(bare, field, []features.Accumulator{
		features.EdgeStatistics(features.Count),
	})
	require.NoError(t, err)
	require.Equal(t, float64(2), column(t, tbl, "edge_count")[0])
}
