package snapshot_test

import (
	"bytes"
	"fmt"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/snapshot"
	"github.com/DerThorsten/ilastikrag/volume"
)

// ExampleWrite round-trips a graph through an in-memory snapshot with
// the label volume stored.
func ExampleWrite() {
	labels, _ := volume.LabelsFrom2D([][]int{
		{1, 1, 2},
		{1, 2, 2},
	})
	r, _ := rag.Build(labels)

	var buf bytes.Buffer
	_ = snapshot.Write(&buf, r, snapshot.WithLabels())

	restored, _ := snapshot.Read(&buf)
	fmt.Println("edges:", restored.NumEdges())
	fmt.Println("labels stored:", restored.HasLabels())

	// Output:
	// edges: 1
	// labels stored: true
}
