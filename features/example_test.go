package features_test

import (
	"fmt"
	"os"

	"github.com/DerThorsten/ilastikrag/features"
	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// ExampleComputeFeatures selects features by name and streams the
// resulting table as CSV.
func ExampleComputeFeatures() {
	labels, _ := volume.LabelsFrom2D([][]int{
		{1, 1},
		{2, 2},
	})
	intensity, _ := volume.FieldFrom2D([][]float64{
		{0, 2},
		{4, 6},
	})
	r, _ := rag.Build(labels)

	tbl, _ := features.ComputeFeatures(r, intensity, []string{"edge_count", "edge_mean"})
	_ = tbl.WriteCSV(os.Stdout)

	// Output:
	// sp1,sp2,edge_count,edge_mean
	// 1,2,2,3
}

// ExampleGeometry computes purely structural features, no intensity
// data required.
func ExampleGeometry() {
	labels, _ := volume.LabelsFrom2D([][]int{
		{1, 1, 1},
		{1, 2, 2},
	})
	r, _ := rag.Build(labels)

	tbl, _ := features.ComputeTable(r, nil, []features.Accumulator{features.Geometry()})
	faces, _ := tbl.Column("boundary_face_count")
	ratio, _ := tbl.Column("size_ratio")
	fmt.Println("faces:", faces[0], "ratio:", ratio[0])

	// Output:
	// faces: 3 ratio: 0.5
}
